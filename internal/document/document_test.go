/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package document

import (
	"errors"
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mikeb26/tuikit/internal/chunk"
	"github.com/mikeb26/tuikit/internal/colorparser"
	"github.com/mikeb26/tuikit/internal/markup"
	"github.com/mikeb26/tuikit/internal/types"
	"github.com/stretchr/testify/assert"
)

type testHost struct {
	reg *types.MockColorRegistry
}

func (h *testHost) Palette() chunk.Palette {
	return chunk.Palette{Registry: h.reg, Defaults: chunk.NewDefaults(types.ColorWhite, types.ColorBlack)}
}

func (h *testHost) DefaultAttr() types.Attr { return types.AttrNormal }

// countingParser wraps the tmux parser and counts lines parsed.
type countingParser struct {
	inner markup.Parser
	calls int
}

func (c *countingParser) ParseFormat(line string) iter.Seq[markup.Token] {
	c.calls++
	return c.inner.ParseFormat(line)
}

func newCountingDoc(t *testing.T, opts ...Option) (*TextDocument, *countingParser) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reg := types.NewMockColorRegistry(ctrl)
	reg.EXPECT().PairFor(gomock.Any(), gomock.Any()).Return(types.PairHandle(1)).AnyTimes()

	cp := &countingParser{inner: markup.NewTmuxParser()}
	mr := markup.NewRegistry()
	mr.Register("counted", func() markup.Parser { return cp })

	d, err := New("counted", &testHost{reg: reg}, append([]Option{WithMarkupRegistry(mr)}, opts...)...)
	assert.NoError(t, err)
	return d, cp
}

func TestNewWithoutContentType(t *testing.T) {
	_, err := New("", &testHost{})
	assert.True(t, errors.Is(err, ErrMissingContentType))
}

func TestNativeTextParsesOnce(t *testing.T) {
	d, cp := newCountingDoc(t, WithTitle("log"))
	d.SetText([]string{"#[fg=red]a", "b", "c"})
	assert.False(t, d.IsParsed())
	assert.Equal(t, "log", d.Title())

	first, err := d.NativeText()
	assert.NoError(t, err)
	assert.Len(t, first, 3)
	assert.Equal(t, 3, cp.calls)
	assert.True(t, d.IsParsed())

	second, err := d.NativeText()
	assert.NoError(t, err)
	assert.Equal(t, 3, cp.calls)
	for i := range first {
		assert.Same(t, first[i], second[i])
	}
}

func TestOnRowChangedReplacesOnlyThatRow(t *testing.T) {
	d, cp := newCountingDoc(t)
	d.SetText([]string{"a", "b", "c"})
	before, err := d.NativeText()
	assert.NoError(t, err)
	row0, row1, row2 := before[0], before[1], before[2]

	assert.NoError(t, d.SetRow(1, "#[bold]B"))
	assert.Equal(t, 4, cp.calls)
	assert.True(t, d.IsParsed())

	after, err := d.NativeText()
	assert.NoError(t, err)
	assert.Equal(t, 4, cp.calls)
	assert.Same(t, row0, after[0])
	assert.NotSame(t, row1, after[1])
	assert.Same(t, row2, after[2])
	assert.Equal(t, "B", after[1].PlainText())

	err = d.OnRowChanged(3)
	assert.True(t, errors.Is(err, ErrRowOutOfRange))
}

func TestOnRowChangedBeforeParseIsNoop(t *testing.T) {
	d, cp := newCountingDoc(t)
	d.SetText([]string{"a"})
	assert.NoError(t, d.OnRowChanged(0))
	assert.Equal(t, 0, cp.calls)
	assert.False(t, d.IsParsed())
}

func TestDimensionChangeForcesFullReparse(t *testing.T) {
	d, cp := newCountingDoc(t)
	d.SetText([]string{"a", "b"})
	_, err := d.NativeText()
	assert.NoError(t, err)

	assert.NoError(t, d.InsertRow(1, "new"))
	assert.False(t, d.IsParsed())
	lines, err := d.PlainText()
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "new", "b"}, lines)
	assert.Equal(t, 5, cp.calls)

	assert.NoError(t, d.DeleteRow(0))
	lines, err = d.PlainText()
	assert.NoError(t, err)
	assert.Equal(t, []string{"new", "b"}, lines)
	assert.Equal(t, 7, cp.calls)

	assert.True(t, errors.Is(d.DeleteRow(5), ErrRowOutOfRange))
	assert.True(t, errors.Is(d.InsertRow(-1, "x"), ErrRowOutOfRange))

	d.OnDimensionChanged()
	_, err = d.NativeText()
	assert.NoError(t, err)
	assert.Equal(t, 9, cp.calls)
}

func TestFindWrapsAcrossRows(t *testing.T) {
	d, _ := newCountingDoc(t)
	d.SetText([]string{"alpha #[fg=red]beta", "gamma", "beta again"})

	tests := []struct {
		name     string
		needle   string
		row, col int
		wantRow  int
		wantCol  int
		found    bool
	}{
		{"first match", "beta", 0, 0, 0, 6, true},
		{"next row", "beta", 0, 7, 2, 0, true},
		{"wraps to top", "alpha", 1, 0, 0, 0, true},
		{"same row before cursor", "alpha", 0, 1, 0, 0, true},
		{"missing", "delta", 0, 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, c, ok, err := d.Find(tt.needle, tt.row, tt.col)
			assert.NoError(t, err)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.wantRow, r)
			assert.Equal(t, tt.wantCol, c)
		})
	}
}

func TestStylesheetErrorsSurfaceOnParse(t *testing.T) {
	d, _ := newCountingDoc(t, WithStyleDir(t.TempDir()), WithStylesheet("absent"))
	d.SetText([]string{"x"})
	_, err := d.NativeText()
	assert.True(t, errors.Is(err, colorparser.ErrStylesheetNotFound))
}

func TestSetStylesheetReparses(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "base.yml"), []byte("hot:\n  color: red\n"), 0600))

	d, cp := newCountingDoc(t, WithStyleDir(dir))
	d.SetText([]string{"#[style=hot]x"})
	_, err := d.NativeText()
	assert.True(t, errors.Is(err, colorparser.ErrUndefinedStyle))

	assert.NoError(t, d.SetStylesheet("base"))
	lines, err := d.NativeText()
	assert.NoError(t, err)
	assert.Equal(t, types.ColorRed, lines[0].Chunks()[0].Color())
	assert.Equal(t, 2, cp.calls)
}

func TestRenderDrawsVisibleRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := types.NewMockSurface(ctrl)

	d, _ := newCountingDoc(t)
	d.SetText([]string{"one", "two", "three"})

	surface.EXPECT().SetColorPair(types.PairHandle(1)).Times(2)
	surface.EXPECT().SetAttr(types.AttrNormal).Times(2)
	surface.EXPECT().ClearAttr(types.AttrNormal).Times(2)
	gomock.InOrder(
		surface.EXPECT().MoveTo(4, 1),
		surface.EXPECT().WriteText("two", 10).Return(3),
		surface.EXPECT().MoveTo(5, 1),
		surface.EXPECT().WriteText("three", 10).Return(5),
	)

	assert.NoError(t, d.Render(surface, 1, 4, 1, 5, 10))
}

func TestIDsAreUnique(t *testing.T) {
	a, err := New(markup.ContentTmux, &testHost{})
	assert.NoError(t, err)
	b, err := New(markup.ContentTmux, &testHost{})
	assert.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, markup.ContentTmux, a.ContentType())
}
