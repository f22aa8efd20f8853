/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/mikeb26/tuikit/internal/chunk"
	"github.com/mikeb26/tuikit/internal/types"
)

// ANSISurface renders onto a byte stream with SGR escapes, for output
// that is not driven by ncurses. The cursor only moves forward: moving
// to a later row emits newlines and moving right pads with spaces.
// Whether escapes are written follows color.NoColor.
type ANSISurface struct {
	w     io.Writer
	pairs *PairTable

	started  bool
	row, col int
	pair     types.PairHandle
	attr     types.Attr
}

func NewANSISurface(w io.Writer, pairs *PairTable) *ANSISurface {
	return &ANSISurface{w: w, pairs: pairs}
}

func (s *ANSISurface) MoveTo(row, col int) {
	if !s.started {
		s.started = true
		s.row = row
	}
	if row > s.row {
		io.WriteString(s.w, strings.Repeat("\n", row-s.row))
		s.row = row
		s.col = 0
	}
	if col > s.col {
		io.WriteString(s.w, strings.Repeat(" ", col-s.col))
		s.col = col
	}
}

func (s *ANSISurface) SetColorPair(pair types.PairHandle) { s.pair = pair }

func (s *ANSISurface) SetAttr(attr types.Attr) { s.attr = attr }

func (s *ANSISurface) ClearAttr(attr types.Attr) { s.attr &^= attr }

func (s *ANSISurface) WriteText(text string, maxWidth int) int {
	text = chunk.ClipToWidth(text, maxWidth)
	if text == "" {
		return 0
	}
	s.started = true
	params := s.params()
	if len(params) == 0 {
		io.WriteString(s.w, text)
	} else {
		color.New(params...).Fprint(s.w, text)
	}
	n := runewidth.StringWidth(text)
	s.col += n
	return n
}

// Finish terminates the last line written.
func (s *ANSISurface) Finish() {
	if s.started {
		io.WriteString(s.w, "\n")
		s.started = false
		s.col = 0
	}
}

func (s *ANSISurface) params() []color.Attribute {
	var out []color.Attribute
	for _, m := range []struct {
		flag types.Attr
		attr color.Attribute
	}{
		{types.AttrBold, color.Bold},
		{types.AttrDim, color.Faint},
		{types.AttrItalic, color.Italic},
		{types.AttrUnderline, color.Underline},
		{types.AttrBlink, color.BlinkSlow},
		{types.AttrReverse, color.ReverseVideo},
		{types.AttrStandout, color.ReverseVideo},
	} {
		if s.attr.Has(m.flag) {
			out = append(out, m.attr)
		}
	}
	if s.pair == types.NoPair || s.pairs == nil {
		return out
	}
	fg, bg := s.pairs.Colors(s.pair)
	out = append(out, colorParams(fg, color.FgBlack, color.FgHiBlack, 38)...)
	out = append(out, colorParams(bg, color.BgBlack, color.BgHiBlack, 48)...)
	return out
}

func colorParams(c types.Color, base, hiBase color.Attribute, extended int) []color.Attribute {
	switch {
	case c < 0:
		return nil
	case c < 8:
		return []color.Attribute{base + color.Attribute(c)}
	case c < 16:
		return []color.Attribute{hiBase + color.Attribute(c-8)}
	}
	return []color.Attribute{color.Attribute(extended), 5, color.Attribute(c)}
}
