/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package chunk

import (
	"testing"

	"github.com/mikeb26/tuikit/internal/types"
	"github.com/stretchr/testify/assert"
)

// pairTable hands out sequential handles per (fg, bg) combination.
type pairTable struct {
	pairs map[[2]types.Color]types.PairHandle
}

func newPairTable() *pairTable {
	return &pairTable{pairs: make(map[[2]types.Color]types.PairHandle)}
}

func (pt *pairTable) PairFor(fg, bg types.Color) types.PairHandle {
	key := [2]types.Color{fg, bg}
	if h, ok := pt.pairs[key]; ok {
		return h
	}
	h := types.PairHandle(len(pt.pairs) + 1)
	pt.pairs[key] = h
	return h
}

func TestResolveUnstyledChunkUsesDefaults(t *testing.T) {
	reg := newPairTable()
	d := NewDefaults(types.ColorWhite, types.ColorBlack)
	p := Palette{Registry: reg, Defaults: d}

	c := New("plain")
	assert.Equal(t, reg.PairFor(types.ColorWhite, types.ColorBlack), c.ResolveColorPair(p))
	assert.Equal(t, p.DefaultPair(), c.ResolveColorPair(p))
	assert.Equal(t, types.AttrNormal, c.ResolveAttr())
	assert.False(t, c.DeclaresColor())
	assert.False(t, c.DeclaresAttr())
}

func TestResolveExplicitPairWins(t *testing.T) {
	reg := newPairTable()
	p := Palette{Registry: reg, Defaults: NewDefaults(types.ColorWhite, types.ColorBlack)}

	c := NewStyled("x", types.PairHandle(42), types.AttrBold)
	c.SetColor(types.ColorRed)
	assert.Equal(t, types.PairHandle(42), c.ResolveColorPair(p))
	assert.Equal(t, types.AttrBold, c.ResolveAttr())
}

func TestResolveFgOnlyDefersBackground(t *testing.T) {
	reg := newPairTable()
	d := NewDefaults(types.ColorWhite, types.ColorBlack)
	p := Palette{Registry: reg, Defaults: d}

	c := New("alert")
	c.SetColor(types.ColorRed)
	before := c.ResolveColorPair(p)
	assert.Equal(t, reg.PairFor(types.ColorRed, types.ColorBlack), before)

	// Changing the default background after parsing is picked up on the
	// next resolution without touching the chunk.
	d.SetColors(types.ColorNone, types.ColorBlue)
	after := c.ResolveColorPair(p)
	assert.NotEqual(t, before, after)
	assert.Equal(t, reg.PairFor(types.ColorRed, types.ColorBlue), after)
}

func TestResolveInheritsThroughParentChain(t *testing.T) {
	reg := newPairTable()
	p := Palette{Registry: reg, Defaults: NewDefaults(types.ColorWhite, types.ColorBlack)}

	root := New("a")
	root.SetBgColor(types.ColorBlue)
	root.SetAttr(types.AttrUnderline)

	mid := New("b")
	mid.SetColor(types.ColorYellow)
	mid.SetParent(root)

	leaf := New("c")
	leaf.SetParent(mid)

	fg, bg := leaf.EffectiveColors(p.Defaults)
	assert.Equal(t, types.ColorYellow, fg)
	assert.Equal(t, types.ColorBlue, bg)
	assert.Equal(t, reg.PairFor(types.ColorYellow, types.ColorBlue), leaf.ResolveColorPair(p))
	assert.Equal(t, types.AttrUnderline, leaf.ResolveAttr())
	assert.True(t, leaf.DeclaresColor())
	assert.True(t, leaf.DeclaresAttr())

	// Resolution never writes into ancestors.
	assert.Equal(t, types.ColorNone, root.Color())
	assert.Equal(t, types.ColorNone, mid.BgColor())
}

func TestNilDefaultsFallsBackToGlobal(t *testing.T) {
	fg, bg := Global().Colors()
	defer Global().SetColors(fg, bg)

	Global().SetColors(types.ColorGreen, types.ColorMagenta)
	c := New("x")
	gotFg, gotBg := c.EffectiveColors(nil)
	assert.Equal(t, types.ColorGreen, gotFg)
	assert.Equal(t, types.ColorMagenta, gotBg)

	reg := newPairTable()
	assert.Equal(t, reg.PairFor(types.ColorGreen, types.ColorMagenta),
		c.ResolveColorPair(Palette{Registry: reg}))
}

func TestDefaultsOverReadsFallbackAtLookup(t *testing.T) {
	base := NewDefaults(types.ColorWhite, types.ColorBlack)
	d := NewDefaultsOver(base, types.ColorRed, types.ColorNone)

	fg, bg := d.Colors()
	assert.Equal(t, types.ColorRed, fg)
	assert.Equal(t, types.ColorBlack, bg)

	base.SetColors(types.ColorGreen, types.ColorBlue)
	fg, bg = d.Colors()
	assert.Equal(t, types.ColorRed, fg)
	assert.Equal(t, types.ColorBlue, bg)
}

func TestDefaultsOverNilFallbackUsesGlobal(t *testing.T) {
	gfg, gbg := Global().Colors()
	defer Global().SetColors(gfg, gbg)

	d := NewDefaultsOver(nil, types.ColorNone, types.ColorCyan)
	Global().SetColors(types.ColorMagenta, types.ColorNone)
	fg, bg := d.Colors()
	assert.Equal(t, types.ColorMagenta, fg)
	assert.Equal(t, types.ColorCyan, bg)
}
