/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package colorparser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mikeb26/tuikit/internal/chunk"
	"github.com/mikeb26/tuikit/internal/markup"
	"github.com/mikeb26/tuikit/internal/types"
	"github.com/stretchr/testify/assert"
)

type pairTable struct {
	pairs map[[2]types.Color]types.PairHandle
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

type testHost struct {
	reg      *pairTable
	defaults *chunk.Defaults
	attr     types.Attr
}

func newTestHost() *testHost {
	return &testHost{
		reg:      &pairTable{pairs: make(map[[2]types.Color]types.PairHandle)},
		defaults: chunk.NewDefaults(types.ColorWhite, types.ColorBlack),
	}
}

func (h *testHost) Palette() chunk.Palette {
	return chunk.Palette{Registry: h.reg, Defaults: h.defaults}
}

func (h *testHost) DefaultAttr() types.Attr { return h.attr }

func newTmux(t *testing.T, h Host, opts ...Option) *ColorParser {
	t.Helper()
	cp, err := New(markup.ContentTmux, append([]Option{WithHost(h)}, opts...)...)
	assert.NoError(t, err)
	return cp
}

func TestConvertAlertThenNormal(t *testing.T) {
	h := newTestHost()
	cp := newTmux(t, h)

	line, err := cp.ConvertToChunk("#[fg=red]ALERT#[/end] normal text", types.NoPair, types.AttrNormal)
	assert.NoError(t, err)
	chunks := line.Chunks()
	assert.Len(t, chunks, 2)

	alert, normal := chunks[0], chunks[1]
	assert.Equal(t, "ALERT", alert.Text())
	assert.Equal(t, types.ColorRed, alert.Color())
	assert.Equal(t, types.ColorNone, alert.BgColor())
	assert.Equal(t, types.NoPair, alert.ColorPair())
	assert.Nil(t, alert.Parent())

	assert.Equal(t, " normal text", normal.Text())
	assert.Nil(t, normal.Parent())
	assert.False(t, normal.DeclaresColor())

	p := h.Palette()
	assert.Equal(t, h.reg.PairFor(types.ColorRed, types.ColorBlack), alert.ResolveColorPair(p))
	assert.Equal(t, p.DefaultPair(), normal.ResolveColorPair(p))

	// the deferred background follows a later change of defaults
	h.defaults.SetColors(types.ColorNone, types.ColorBlue)
	assert.Equal(t, h.reg.PairFor(types.ColorRed, types.ColorBlue), alert.ResolveColorPair(p))
}

func TestConvertEagerPairWhenBothColorsKnown(t *testing.T) {
	h := newTestHost()
	cp := newTmux(t, h)

	line, err := cp.ConvertToChunk("#[fg=red,bg=blue]x", types.NoPair, types.AttrNormal)
	assert.NoError(t, err)
	c := line.Chunks()[0]
	assert.Equal(t, h.reg.PairFor(types.ColorRed, types.ColorBlue), c.ColorPair())
	assert.Equal(t, types.ColorRed, c.Color())
	assert.Equal(t, types.ColorBlue, c.BgColor())
}

func TestConvertNestedSpans(t *testing.T) {
	h := newTestHost()
	cp := newTmux(t, h)

	line, err := cp.ConvertToChunk("#[fg=red]a#[bold]b#[end]c#[end]d", types.NoPair, types.AttrNormal)
	assert.NoError(t, err)
	chunks := line.Chunks()
	assert.Len(t, chunks, 4)
	a, b, c, d := chunks[0], chunks[1], chunks[2], chunks[3]

	assert.Nil(t, a.Parent())
	assert.Same(t, a, b.Parent())
	assert.Same(t, a, c.Parent())
	assert.Nil(t, d.Parent())

	p := h.Palette()
	red := h.reg.PairFor(types.ColorRed, types.ColorBlack)
	assert.Equal(t, red, b.ResolveColorPair(p))
	assert.Equal(t, types.AttrBold, b.ResolveAttr())
	assert.Equal(t, red, c.ResolveColorPair(p))
	assert.Equal(t, types.AttrNormal, c.ResolveAttr())
	assert.Equal(t, p.DefaultPair(), d.ResolveColorPair(p))

	// resolving b must not touch its ancestor
	assert.Equal(t, types.ColorNone, a.BgColor())
	_, hasAttr := a.Attr()
	assert.False(t, hasAttr)
}

func TestConvertResetClearsStack(t *testing.T) {
	cp := newTmux(t, newTestHost())

	line, err := cp.ConvertToChunk("#[fg=red]a#[fg=green]b#[default]c", types.NoPair, types.AttrNormal)
	assert.NoError(t, err)
	chunks := line.Chunks()
	assert.Len(t, chunks, 3)
	assert.Same(t, chunks[0], chunks[1].Parent())
	assert.Nil(t, chunks[2].Parent())
	assert.False(t, chunks[2].DeclaresColor())
}

func TestConvertCloseNeverPopsPastRoot(t *testing.T) {
	cp := newTmux(t, newTestHost())

	line, err := cp.ConvertToChunk("#[end]#[end]a#[fg=red]#[end]b", types.NoPair, types.AttrNormal)
	assert.NoError(t, err)
	for _, c := range line.Chunks() {
		assert.Nil(t, c.Parent())
		assert.False(t, c.DeclaresColor())
	}
	assert.Equal(t, "ab", line.PlainText())
}

func TestConvertRootDefaults(t *testing.T) {
	cp := newTmux(t, newTestHost())

	line, err := cp.ConvertToChunk("x#[fg=red]y", types.PairHandle(7), types.AttrBold)
	assert.NoError(t, err)
	x, y := line.Chunks()[0], line.Chunks()[1]
	assert.Equal(t, types.PairHandle(7), x.ColorPair())
	assert.Equal(t, types.AttrBold, x.ResolveAttr())
	assert.Equal(t, types.NoPair, y.ColorPair())
	_, hasAttr := y.Attr()
	assert.False(t, hasAttr)
}

func TestConvertWithoutParent(t *testing.T) {
	cp, err := New(markup.ContentTmux)
	assert.NoError(t, err)

	_, err = cp.ConvertToChunk("x", types.NoPair, types.AttrNormal)
	assert.True(t, errors.Is(err, ErrParentNotSet))
	_, err = cp.DefaultPair()
	assert.True(t, errors.Is(err, ErrParentNotSet))

	cp.SetParent(newTestHost())
	line, err := cp.ConvertToChunk("x", types.NoPair, types.AttrNormal)
	assert.NoError(t, err)
	assert.Equal(t, "x", line.PlainText())
}

func TestNewUnknownContentType(t *testing.T) {
	_, err := New("markdown", WithHost(newTestHost()))
	assert.True(t, errors.Is(err, markup.ErrUnknownContentType))
}

func TestConfigOverridesHostDefaults(t *testing.T) {
	h := newTestHost()
	h.attr = types.AttrDim
	cp := newTmux(t, h, WithConfig(StyleDef{Color: "green", Attr: AttrSpec{"underline"}}))

	p, err := cp.Palette()
	assert.NoError(t, err)
	fg, bg := p.Defaults.Colors()
	assert.Equal(t, types.ColorGreen, fg)
	assert.Equal(t, types.ColorBlack, bg)
	assert.Equal(t, types.AttrUnderline, cp.DefaultAttr())

	pair, err := cp.DefaultPair()
	assert.NoError(t, err)
	assert.Equal(t, h.reg.PairFor(types.ColorGreen, types.ColorBlack), pair)
}

func TestConfigUnsetSideFollowsGlobalDefaults(t *testing.T) {
	fg, bg := chunk.Global().Colors()
	defer chunk.Global().SetColors(fg, bg)

	h := newTestHost()
	h.defaults = nil
	cp := newTmux(t, h, WithConfig(StyleDef{Color: "red"}))
	line, err := cp.ConvertToChunk("plain", types.NoPair, types.AttrNormal)
	assert.NoError(t, err)
	c := line.Chunks()[0]

	chunk.Global().SetColors(types.ColorNone, types.ColorBlue)
	p, err := cp.Palette()
	assert.NoError(t, err)
	assert.Equal(t, h.reg.PairFor(types.ColorRed, types.ColorBlue), c.ResolveColorPair(p))

	chunk.Global().SetColors(types.ColorNone, types.ColorYellow)
	p, err = cp.Palette()
	assert.NoError(t, err)
	assert.Equal(t, h.reg.PairFor(types.ColorRed, types.ColorYellow), c.ResolveColorPair(p))
}

func TestHostSuppliesDefaultAttr(t *testing.T) {
	h := newTestHost()
	h.attr = types.AttrDim
	cp := newTmux(t, h)
	assert.Equal(t, types.AttrDim, cp.DefaultAttr())

	lines, err := cp.ParseText([]string{"a", "#[fg=red]b"})
	assert.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Equal(t, types.AttrDim, lines[0].Chunks()[0].ResolveAttr())
}

func TestNamedStyles(t *testing.T) {
	h := newTestHost()
	cp := newTmux(t, h)

	_, err := cp.ConvertToChunk("#[style=warning]w", types.NoPair, types.AttrNormal)
	assert.True(t, errors.Is(err, ErrUndefinedStyle))

	cp.UseStylesheet(NewStylesheet(map[string]StyleDef{
		"warning": {Color: "yellow", BgColor: "default", Attr: AttrSpec{"bold"}},
		"muted":   {Color: "brightblack"},
	}))

	line, err := cp.ConvertToChunk("#[style=warning]w#[end]#[fg=red,style=warning]r#[end]#[style=muted]m", types.NoPair, types.AttrNormal)
	assert.NoError(t, err)
	w, r, m := line.Chunks()[0], line.Chunks()[1], line.Chunks()[2]

	assert.Equal(t, h.reg.PairFor(types.ColorYellow, types.ColorDefault), w.ColorPair())
	assert.Equal(t, types.AttrBold, w.ResolveAttr())
	assert.Equal(t, types.ColorRed, r.Color())
	assert.Equal(t, types.ColorDefault, r.BgColor())
	assert.Equal(t, types.Color(8), m.Color())
	assert.Equal(t, types.NoPair, m.ColorPair())

	_, err = cp.ConvertToChunk("#[style=nope]x", types.NoPair, types.AttrNormal)
	assert.True(t, errors.Is(err, ErrInvalidStyle))
}

func TestSetStylesheetFromStyleDir(t *testing.T) {
	dir := t.TempDir()
	sheet := "warning:\n  color: yellow\n  attr: [bold, underline]\nerror:\n  color: red\n  bgcolor: black\n  attr: reverse\n"
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "alerts.yml"), []byte(sheet), 0600))

	cp := newTmux(t, newTestHost(), WithStyleDir(dir))
	assert.NoError(t, cp.SetStylesheet("alerts"))
	assert.Equal(t, []string{"error", "warning"}, cp.Stylesheet().Names())
	assert.Equal(t, filepath.Join(dir, "alerts.yml"), cp.Stylesheet().Path())

	st, ok := cp.Stylesheet().Lookup("warning")
	assert.True(t, ok)
	assert.Equal(t, types.AttrBold|types.AttrUnderline, st.Attr)
	st, ok = cp.Stylesheet().Lookup("error")
	assert.True(t, ok)
	assert.Equal(t, types.AttrReverse, st.Attr)
	assert.Equal(t, types.ColorBlack, st.Bg)

	err := cp.SetStylesheet("missing")
	assert.True(t, errors.Is(err, ErrStylesheetNotFound))
	// a failed load keeps the previous stylesheet
	assert.NotNil(t, cp.Stylesheet())
}

func TestLoadStylesheetBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	assert.NoError(t, os.WriteFile(path, []byte("warning: [unclosed"), 0600))
	_, err := LoadStylesheet(path)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrStylesheetNotFound))
}

func TestResolveStylesheetPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/styles", "dark.yml"), ResolveStylesheetPath("dark", "/styles"))
	assert.Equal(t, "/tmp/x.yml", ResolveStylesheetPath("/tmp/x.yml", "/styles"))
	assert.Equal(t, "local.yaml", ResolveStylesheetPath("local.yaml", "/styles"))
}

func TestConvertANSI(t *testing.T) {
	h := newTestHost()
	cp, err := New(markup.ContentANSI, WithHost(h))
	assert.NoError(t, err)

	line, err := cp.ConvertToChunk("\x1b[31mred\x1b[0m plain", types.NoPair, types.AttrNormal)
	assert.NoError(t, err)
	assert.Equal(t, "red plain", line.PlainText())
	assert.Equal(t, types.ColorRed, line.Chunks()[0].Color())
	assert.Nil(t, line.Chunks()[1].Parent())
	assert.False(t, line.Chunks()[1].DeclaresColor())
}
