/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"github.com/mattn/go-runewidth"
	gc "github.com/rthornton128/goncurses"

	"github.com/mikeb26/tuikit/internal/chunk"
	"github.com/mikeb26/tuikit/internal/types"
)

// NcursesSurface draws onto a goncurses window.
type NcursesSurface struct {
	win  *gc.Window
	pair types.PairHandle
	attr types.Attr
}

func NewNcursesSurface(win *gc.Window) *NcursesSurface {
	return &NcursesSurface{win: win}
}

func (s *NcursesSurface) Window() *gc.Window { return s.win }

func (s *NcursesSurface) MoveTo(row, col int) { s.win.Move(row, col) }

func (s *NcursesSurface) SetColorPair(pair types.PairHandle) {
	s.pair = pair
	s.apply()
}

func (s *NcursesSurface) SetAttr(attr types.Attr) {
	s.attr = attr
	s.apply()
}

func (s *NcursesSurface) ClearAttr(attr types.Attr) {
	s.attr &^= attr
	s.apply()
}

func (s *NcursesSurface) apply() {
	_ = s.win.AttrSet(ncursesAttr(s.attr) | gc.ColorPair(int16(s.pair)))
}

func (s *NcursesSurface) WriteText(text string, maxWidth int) int {
	text = chunk.ClipToWidth(text, maxWidth)
	if text == "" {
		return 0
	}
	s.win.Print(text)
	return runewidth.StringWidth(text)
}

// ncursesAttr converts an attribute mask. Italic is drawn as underline.
func ncursesAttr(a types.Attr) gc.Char {
	var c gc.Char = gc.A_NORMAL
	if a.Has(types.AttrBold) {
		c |= gc.A_BOLD
	}
	if a.Has(types.AttrDim) {
		c |= gc.A_DIM
	}
	if a.Has(types.AttrItalic) || a.Has(types.AttrUnderline) {
		c |= gc.A_UNDERLINE
	}
	if a.Has(types.AttrBlink) {
		c |= gc.A_BLINK
	}
	if a.Has(types.AttrReverse) {
		c |= gc.A_REVERSE
	}
	if a.Has(types.AttrStandout) {
		c |= gc.A_STANDOUT
	}
	return c
}

// NewNcursesRegistry returns a pair table that registers each new pair
// with ncurses. Colors must already have been started.
func NewNcursesRegistry() *PairTable {
	return NewPairTable(gc.ColorPairs(), gc.Colors(),
		func(h types.PairHandle, fg, bg types.Color) error {
			return gc.InitPair(int16(h), int16(fg), int16(bg))
		})
}

// StartColors enables color and default-color support. It reports
// whether colors are usable.
func StartColors() bool {
	if !gc.HasColors() {
		return false
	}
	if err := gc.StartColor(); err != nil {
		return false
	}
	return gc.UseDefaultColors() == nil
}
