/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package chunk implements styled text runs and the lines built from
// them. Color and attribute resolution is deferred to render time: a
// chunk records only what its markup stated explicitly and asks its parent
// chain for the rest when it is drawn.
package chunk

import (
	"github.com/mikeb26/tuikit/internal/types"
)

// Chunk is a run of literal text with optional explicit styling.
//
// parent is a back reference used only for inheritance lookups. Parsers
// only ever point it at chunks created earlier in the same pass, so the
// chain is acyclic.
type Chunk struct {
	text    string
	pair    types.PairHandle
	fg      types.Color
	bg      types.Color
	attr    types.Attr
	hasAttr bool
	parent  *Chunk
}

// New creates a chunk holding text with no explicit styling.
func New(text string) *Chunk {
	return &Chunk{text: text, fg: types.ColorNone, bg: types.ColorNone}
}

// NewStyled creates a chunk with an explicit pair handle and attribute.
// types.NoPair leaves the pair unset.
func NewStyled(text string, pair types.PairHandle, attr types.Attr) *Chunk {
	c := New(text)
	c.pair = pair
	c.SetAttr(attr)
	return c
}

func (c *Chunk) Text() string { return c.text }

func (c *Chunk) Parent() *Chunk { return c.parent }

func (c *Chunk) SetParent(p *Chunk) { c.parent = p }

// SetColor records an explicit foreground; the background stays inherited
// unless SetBgColor is also called.
func (c *Chunk) SetColor(fg types.Color) { c.fg = fg }

func (c *Chunk) SetBgColor(bg types.Color) { c.bg = bg }

func (c *Chunk) SetColorPair(pair types.PairHandle) { c.pair = pair }

func (c *Chunk) SetAttr(attr types.Attr) {
	c.attr = attr
	c.hasAttr = true
}

// Color returns the explicit foreground, or types.ColorNone.
func (c *Chunk) Color() types.Color { return c.fg }

// BgColor returns the explicit background, or types.ColorNone.
func (c *Chunk) BgColor() types.Color { return c.bg }

// ColorPair returns the explicit pair handle, or types.NoPair.
func (c *Chunk) ColorPair() types.PairHandle { return c.pair }

// Attr returns the explicit attribute and whether one was set.
func (c *Chunk) Attr() (types.Attr, bool) { return c.attr, c.hasAttr }

// EffectiveColors walks the parent chain filling in whichever of fg/bg
// this chunk did not state, then falls back to d.
func (c *Chunk) EffectiveColors(d *Defaults) (fg, bg types.Color) {
	fg, bg = c.fg, c.bg
	for p := c.parent; p != nil && (!fg.IsSet() || !bg.IsSet()); p = p.parent {
		if !fg.IsSet() {
			fg = p.fg
		}
		if !bg.IsSet() {
			bg = p.bg
		}
	}
	if d == nil {
		d = global
	}
	dfg, dbg := d.Colors()
	if !fg.IsSet() {
		fg = dfg
	}
	if !bg.IsSet() {
		bg = dbg
	}
	return fg, bg
}

// ResolveColorPair returns the pair this chunk should be drawn with. An
// explicit handle wins; otherwise the effective fg/bg are looked up in the
// palette's registry. Nothing is cached, so the result always reflects the
// current defaults.
func (c *Chunk) ResolveColorPair(p Palette) types.PairHandle {
	if c.pair != types.NoPair {
		return c.pair
	}
	if c.fg.IsSet() && c.bg.IsSet() {
		return p.Registry.PairFor(c.fg, c.bg)
	}
	fg, bg := c.EffectiveColors(p.defaults())
	return p.Registry.PairFor(fg, bg)
}

// ResolveAttr returns the explicit attribute, else the nearest ancestor's,
// else types.AttrNormal.
func (c *Chunk) ResolveAttr() types.Attr {
	for ch := c; ch != nil; ch = ch.parent {
		if ch.hasAttr {
			return ch.attr
		}
	}
	return types.AttrNormal
}

// DeclaresColor reports whether this chunk or any ancestor states a color.
func (c *Chunk) DeclaresColor() bool {
	for ch := c; ch != nil; ch = ch.parent {
		if ch.pair != types.NoPair || ch.fg.IsSet() || ch.bg.IsSet() {
			return true
		}
	}
	return false
}

// DeclaresAttr reports whether this chunk or any ancestor states an
// attribute.
func (c *Chunk) DeclaresAttr() bool {
	for ch := c; ch != nil; ch = ch.parent {
		if ch.hasAttr {
			return true
		}
	}
	return false
}
