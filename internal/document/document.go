/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package document holds marked-up text together with its lazily parsed
// chunked form.
package document

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mikeb26/tuikit/internal/chunk"
	"github.com/mikeb26/tuikit/internal/colorparser"
	"github.com/mikeb26/tuikit/internal/log"
	"github.com/mikeb26/tuikit/internal/markup"
	"github.com/mikeb26/tuikit/internal/types"
)

// TextDocument owns raw lines of markup and the ChunkLines parsed from
// them. The parsed form is built on first use and then kept until the
// text or its shape changes.
type TextDocument struct {
	id          uuid.UUID
	title       string
	contentType markup.ContentType
	host        colorparser.Host

	stylesheet string
	styleDir   string
	config     *colorparser.StyleDef
	registry   *markup.Registry

	rawText []string
	handler *colorparser.ColorParser
	native  []*chunk.ChunkLine
	parsed  bool
}

type Option func(*TextDocument)

func WithTitle(title string) Option {
	return func(d *TextDocument) { d.title = title }
}

// WithStylesheet names the stylesheet (a path or a bare symbol) applied
// when the document is parsed.
func WithStylesheet(nameOrPath string) Option {
	return func(d *TextDocument) { d.stylesheet = nameOrPath }
}

func WithStyleDir(dir string) Option {
	return func(d *TextDocument) { d.styleDir = dir }
}

// WithConfig supplies default colors instead of the host's.
func WithConfig(cfg colorparser.StyleDef) Option {
	return func(d *TextDocument) { d.config = &cfg }
}

func WithMarkupRegistry(r *markup.Registry) Option {
	return func(d *TextDocument) { d.registry = r }
}

func New(ct markup.ContentType, host colorparser.Host, opts ...Option) (*TextDocument, error) {
	if ct == "" {
		return nil, ErrMissingContentType
	}
	d := &TextDocument{
		id:          uuid.New(),
		contentType: ct,
		host:        host,
	}
	for _, o := range opts {
		o(d)
	}
	return d, nil
}

func (d *TextDocument) ID() uuid.UUID { return d.id }

func (d *TextDocument) Title() string { return d.title }

func (d *TextDocument) SetTitle(title string) { d.title = title }

func (d *TextDocument) ContentType() markup.ContentType { return d.contentType }

// SetText replaces the whole document.
func (d *TextDocument) SetText(lines []string) {
	d.rawText = append([]string(nil), lines...)
	d.parsed = false
	d.native = nil
}

func (d *TextDocument) Text() []string { return d.rawText }

func (d *TextDocument) RowCount() int { return len(d.rawText) }

func (d *TextDocument) IsParsed() bool { return d.parsed }

// SetStylesheet changes the stylesheet and forces a full reparse.
func (d *TextDocument) SetStylesheet(nameOrPath string) error {
	if d.handler != nil {
		if err := d.handler.SetStylesheet(nameOrPath); err != nil {
			return err
		}
	}
	d.stylesheet = nameOrPath
	d.parsed = false
	return nil
}

func (d *TextDocument) contentHandler() (*colorparser.ColorParser, error) {
	if d.handler != nil {
		return d.handler, nil
	}

	opts := []colorparser.Option{colorparser.WithHost(d.host)}
	if d.styleDir != "" {
		opts = append(opts, colorparser.WithStyleDir(d.styleDir))
	}
	if d.config != nil {
		opts = append(opts, colorparser.WithConfig(*d.config))
	}
	if d.registry != nil {
		opts = append(opts, colorparser.WithMarkupRegistry(d.registry))
	}
	cp, err := colorparser.New(d.contentType, opts...)
	if err != nil {
		return nil, err
	}
	if d.stylesheet != "" {
		if err := cp.SetStylesheet(d.stylesheet); err != nil {
			return nil, err
		}
	}
	d.handler = cp
	return cp, nil
}

// NativeText returns the parsed document, parsing every row if the
// document is not already parsed.
func (d *TextDocument) NativeText() ([]*chunk.ChunkLine, error) {
	if d.parsed {
		return d.native, nil
	}
	cp, err := d.contentHandler()
	if err != nil {
		return nil, err
	}
	native, err := cp.ParseText(d.rawText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %v: %w", d.id, err)
	}
	d.native = native
	d.parsed = true
	log.Entry("document").WithField("id", d.id).
		WithField("rows", len(native)).Debug("parsed")
	return d.native, nil
}

// OnRowChanged reparses row i alone. Before the first full parse there is
// nothing to update and the call is a no-op.
func (d *TextDocument) OnRowChanged(i int) error {
	if i < 0 || i >= len(d.rawText) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}
	if !d.parsed || d.handler == nil {
		return nil
	}
	line, err := d.handler.ConvertToChunk(d.rawText[i], types.NoPair, d.handler.DefaultAttr())
	if err != nil {
		return fmt.Errorf("failed to parse row %d: %w", i, err)
	}
	d.native[i] = line
	return nil
}

// OnDimensionChanged discards the parsed form; the next NativeText call
// reparses every row.
func (d *TextDocument) OnDimensionChanged() {
	d.parsed = false
}

func (d *TextDocument) SetRow(i int, text string) error {
	if i < 0 || i >= len(d.rawText) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}
	d.rawText[i] = text
	return d.OnRowChanged(i)
}

// InsertRow inserts text before row i; i == RowCount() appends.
func (d *TextDocument) InsertRow(i int, text string) error {
	if i < 0 || i > len(d.rawText) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}
	d.rawText = append(d.rawText, "")
	copy(d.rawText[i+1:], d.rawText[i:])
	d.rawText[i] = text
	d.OnDimensionChanged()
	return nil
}

func (d *TextDocument) DeleteRow(i int) error {
	if i < 0 || i >= len(d.rawText) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}
	d.rawText = append(d.rawText[:i], d.rawText[i+1:]...)
	d.OnDimensionChanged()
	return nil
}

// PlainText returns every row with markup removed.
func (d *TextDocument) PlainText() ([]string, error) {
	native, err := d.NativeText()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(native))
	for i, l := range native {
		out[i] = l.PlainText()
	}
	return out, nil
}

// Find searches the plain text for needle starting at (row, col) and
// wrapping past the end of the document. col is a rune offset.
func (d *TextDocument) Find(needle string, row, col int) (int, int, bool, error) {
	native, err := d.NativeText()
	if err != nil {
		return 0, 0, false, err
	}
	n := len(native)
	if n == 0 || needle == "" {
		return 0, 0, false, nil
	}
	if row < 0 || row >= n {
		row, col = 0, 0
	}

	for step := 0; step <= n; step++ {
		r := (row + step) % n
		line := native[r]
		hint := 0
		if step == 0 {
			hint = col
		}
		off, ok := line.FindSubstring(needle, hint)
		if !ok {
			continue
		}
		// FindSubstring wraps within the line; only accept a match
		// that lies in the part of the document being searched.
		if step == 0 && off < hint {
			continue
		}
		if step == n && off >= col {
			continue
		}
		return r, off, true, nil
	}
	return 0, 0, false, nil
}

// Palette is the palette the document's rows render with.
func (d *TextDocument) Palette() (chunk.Palette, error) {
	cp, err := d.contentHandler()
	if err != nil {
		return chunk.Palette{}, err
	}
	return cp.Palette()
}

// DefaultAttr is the attribute of text that declares none.
func (d *TextDocument) DefaultAttr() (types.Attr, error) {
	cp, err := d.contentHandler()
	if err != nil {
		return types.AttrNormal, err
	}
	return cp.DefaultAttr(), nil
}

// RenderRow draws row i at (y, x) clipped to width, using defAttr for
// chunks that declare no attribute. It returns the cells written.
func (d *TextDocument) RenderRow(s types.Surface, i, y, x, width int,
	defAttr types.Attr) (int, error) {

	native, err := d.NativeText()
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= len(native) {
		return 0, fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}
	palette, err := d.handler.Palette()
	if err != nil {
		return 0, err
	}
	return native[i].RenderTo(s, palette, y, x, width, types.NoPair, defAttr), nil
}

// Render draws rows [top, top+height) onto s starting at screen row y.
func (d *TextDocument) Render(s types.Surface, top, y, x, height, width int) error {
	native, err := d.NativeText()
	if err != nil {
		return err
	}
	defAttr := d.handler.DefaultAttr()
	for i := 0; i < height && top+i < len(native); i++ {
		if top+i < 0 {
			continue
		}
		if _, err := d.RenderRow(s, top+i, y+i, x, width, defAttr); err != nil {
			return err
		}
	}
	return nil
}
