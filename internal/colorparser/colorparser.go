/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package colorparser converts marked-up lines into chunk.ChunkLines. It
// drives a markup.Parser, keeps the stack of open style spans so nested
// text inherits from its enclosing span, and resolves named styles through
// an optional stylesheet.
package colorparser

import (
	"fmt"

	"github.com/mikeb26/tuikit/internal/chunk"
	"github.com/mikeb26/tuikit/internal/log"
	"github.com/mikeb26/tuikit/internal/markup"
	"github.com/mikeb26/tuikit/internal/types"
)

// Host is the widget a parser draws for. Its palette supplies the color
// registry and the defaults that end every parent chain.
type Host interface {
	Palette() chunk.Palette
	DefaultAttr() types.Attr
}

type ColorParser struct {
	contentType markup.ContentType
	parser      markup.Parser
	registry    *markup.Registry

	host    Host
	config  *StyleDef
	cfgFg   types.Color
	cfgBg   types.Color
	defAttr types.Attr

	styleDir   string
	stylesheet *Stylesheet
}

type Option func(*ColorParser)

// WithHost sets the parent widget at construction time.
func WithHost(h Host) Option {
	return func(cp *ColorParser) { cp.host = h }
}

// WithConfig takes the default colors and attribute from cfg rather than
// from the host. A host is still required for its color registry.
func WithConfig(cfg StyleDef) Option {
	return func(cp *ColorParser) { cp.config = &cfg }
}

// WithStyleDir sets the directory bare stylesheet names resolve against.
func WithStyleDir(dir string) Option {
	return func(cp *ColorParser) { cp.styleDir = dir }
}

// WithMarkupRegistry selects parsers from r instead of the process-wide
// registry.
func WithMarkupRegistry(r *markup.Registry) Option {
	return func(cp *ColorParser) { cp.registry = r }
}

func New(ct markup.ContentType, opts ...Option) (*ColorParser, error) {
	cp := &ColorParser{contentType: ct}
	for _, o := range opts {
		o(cp)
	}

	var err error
	if cp.registry != nil {
		cp.parser, err = cp.registry.Lookup(ct)
	} else {
		cp.parser, err = markup.Lookup(ct)
	}
	if err != nil {
		return nil, err
	}

	if cp.config != nil {
		st := cp.config.Style()
		cp.cfgFg, cp.cfgBg = st.Fg, st.Bg
		cp.defAttr = st.Attr
	}
	if cp.host != nil {
		cp.SetParent(cp.host)
	}

	return cp, nil
}

func (cp *ColorParser) ContentType() markup.ContentType { return cp.contentType }

// SetParent binds the parser to the widget it converts text for.
func (cp *ColorParser) SetParent(h Host) {
	cp.host = h
	if cp.config == nil && h != nil {
		cp.defAttr = h.DefaultAttr()
	}
	if h == nil {
		return
	}
	log.Entry("colorparser").WithField("content_type", cp.contentType).
		Debug("parent set")
}

// Palette is the palette chunks produced by this parser should be
// rendered with.
func (cp *ColorParser) Palette() (chunk.Palette, error) {
	if cp.host == nil {
		return chunk.Palette{}, ErrParentNotSet
	}
	p := cp.host.Palette()
	if cp.config != nil {
		// sides the config leaves unset keep following the host
		p.Defaults = chunk.NewDefaultsOver(p.Defaults, cp.cfgFg, cp.cfgBg)
	}
	return p, nil
}

// DefaultPair is the pair handle for the parser's default colors.
func (cp *ColorParser) DefaultPair() (types.PairHandle, error) {
	p, err := cp.Palette()
	if err != nil {
		return types.NoPair, err
	}
	return p.DefaultPair(), nil
}

func (cp *ColorParser) DefaultAttr() types.Attr { return cp.defAttr }

// SetStylesheet loads the stylesheet named by a path or a bare symbol.
func (cp *ColorParser) SetStylesheet(pathOrSymbol string) error {
	path := ResolveStylesheetPath(pathOrSymbol, cp.styleDir)
	s, err := LoadStylesheet(path)
	if err != nil {
		return err
	}
	cp.stylesheet = s
	log.Entry("colorparser").WithField("path", path).
		WithField("styles", len(s.styles)).Debug("stylesheet loaded")
	return nil
}

// UseStylesheet installs an already-built stylesheet; nil removes it.
func (cp *ColorParser) UseStylesheet(s *Stylesheet) { cp.stylesheet = s }

func (cp *ColorParser) Stylesheet() *Stylesheet { return cp.stylesheet }

// ParseText converts each line with the parser's own defaults.
func (cp *ColorParser) ParseText(lines []string) ([]*chunk.ChunkLine, error) {
	out := make([]*chunk.ChunkLine, 0, len(lines))
	for i, l := range lines {
		cl, err := cp.ConvertToChunk(l, types.NoPair, cp.defAttr)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		out = append(out, cl)
	}
	return out, nil
}

// ConvertToChunk converts one line. Text outside any style span gets
// pairDefault (types.NoPair leaves the pair to be resolved at render
// time) and attrDefault.
func (cp *ColorParser) ConvertToChunk(line string, pairDefault types.PairHandle,
	attrDefault types.Attr) (*chunk.ChunkLine, error) {

	if cp.host == nil {
		return nil, ErrParentNotSet
	}

	cs := convertState{
		cp:          cp,
		registry:    cp.host.Palette().Registry,
		pending:     markup.EmptyStyle(),
		pairDefault: pairDefault,
		attrDefault: attrDefault,
	}
	out := chunk.NewLine()
	for tok := range cp.parser.ParseFormat(line) {
		switch tok.Kind {
		case markup.TokenText:
			out.AddChunk(cs.text(tok.Text))
		case markup.TokenStyleOpen:
			if err := cs.open(tok.Style); err != nil {
				return nil, err
			}
		case markup.TokenStyleClose:
			cs.close()
		case markup.TokenReset:
			cs.reset()
		}
	}
	return out, nil
}

// convertState is the state of a single ConvertToChunk pass.
type convertState struct {
	cp       *ColorParser
	registry types.ColorRegistry

	parents []*chunk.Chunk
	pending markup.Style
	pair    types.PairHandle
	opened  bool

	pairDefault types.PairHandle
	attrDefault types.Attr
}

func (cs *convertState) top() *chunk.Chunk {
	if len(cs.parents) == 0 {
		return nil
	}
	return cs.parents[len(cs.parents)-1]
}

func (cs *convertState) text(s string) *chunk.Chunk {
	c := chunk.New(s)
	c.SetColor(cs.pending.Fg)
	c.SetBgColor(cs.pending.Bg)
	if cs.pending.HasAttr {
		c.SetAttr(cs.pending.Attr)
	}
	c.SetColorPair(cs.pair)

	parent := cs.top()
	c.SetParent(parent)
	if parent == nil && !cs.opened {
		c.SetColorPair(cs.pairDefault)
		if cs.attrDefault != types.AttrNormal {
			c.SetAttr(cs.attrDefault)
		}
	}
	if cs.opened {
		cs.parents = append(cs.parents, c)
		cs.opened = false
		cs.clearPending()
	}
	return c
}

func (cs *convertState) open(st markup.Style) error {
	if st.Name != "" {
		if cs.cp.stylesheet == nil {
			return fmt.Errorf("%w: %q", ErrUndefinedStyle, st.Name)
		}
		named, ok := cs.cp.stylesheet.Lookup(st.Name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidStyle, st.Name)
		}
		if !st.Fg.IsSet() {
			st.Fg = named.Fg
		}
		if !st.Bg.IsSet() {
			st.Bg = named.Bg
		}
		if !st.HasAttr && named.HasAttr {
			st.Attr = named.Attr
			st.HasAttr = true
		}
	}

	// Consecutive opens before any text merge into a single span.
	if st.Fg.IsSet() {
		cs.pending.Fg = st.Fg
	}
	if st.Bg.IsSet() {
		cs.pending.Bg = st.Bg
	}
	if st.HasAttr {
		cs.pending.Attr |= st.Attr
		cs.pending.HasAttr = true
	}
	cs.pair = types.NoPair
	if cs.pending.Fg.IsSet() && cs.pending.Bg.IsSet() {
		cs.pair = cs.registry.PairFor(cs.pending.Fg, cs.pending.Bg)
	}
	cs.opened = true
	return nil
}

func (cs *convertState) close() {
	if cs.opened {
		// the span never received text
		cs.opened = false
	} else if len(cs.parents) > 0 {
		cs.parents = cs.parents[:len(cs.parents)-1]
	}
	cs.clearPending()
}

func (cs *convertState) reset() {
	cs.parents = cs.parents[:0]
	cs.opened = false
	cs.clearPending()
}

func (cs *convertState) clearPending() {
	cs.pending = markup.EmptyStyle()
	cs.pair = types.NoPair
}
