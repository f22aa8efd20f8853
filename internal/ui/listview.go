/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"sort"
	"strings"

	"github.com/mikeb26/tuikit/internal/document"
	"github.com/mikeb26/tuikit/internal/selection"
	"github.com/mikeb26/tuikit/internal/types"
)

const gutterWidth = 2

// ListView shows a TextDocument one row per line with a cursor, a
// selection gutter and a scrollbar. It is the selection host for its
// rows: selection changes only mark the affected rows for redraw.
type ListView struct {
	doc   *document.TextDocument
	sel   *selection.Model[string]
	theme Theme

	current int
	offset  int

	dirty     map[int]struct{}
	full      bool
	listeners []func(selection.Event)
}

func NewListView(doc *document.TextDocument, mode selection.Mode, theme Theme) *ListView {
	lv := &ListView{
		doc:   doc,
		theme: theme,
		dirty: make(map[int]struct{}),
		full:  true,
	}
	lv.sel = selection.New[string](lv, mode)
	return lv
}

func (lv *ListView) Document() *document.TextDocument { return lv.doc }

func (lv *ListView) Selection() *selection.Model[string] { return lv.sel }

func (lv *ListView) CurrentIndex() int { return lv.current }

func (lv *ListView) Count() int { return lv.doc.RowCount() }

// ValueAt is the plain text of row i.
func (lv *ListView) ValueAt(i int) string {
	native, err := lv.doc.NativeText()
	if err != nil || i < 0 || i >= len(native) {
		raw := lv.doc.Text()
		if i >= 0 && i < len(raw) {
			return raw[i]
		}
		return ""
	}
	return native[i].PlainText()
}

func (lv *ListView) FireRowChanged(i int) { lv.markDirty(i) }

func (lv *ListView) FireSelectionEvent(ev selection.Event) {
	lo, hi := max(ev.FirstRow, 0), min(ev.LastRow, lv.Count()-1)
	for r := lo; r <= hi; r++ {
		lv.markDirty(r)
	}
	for _, l := range lv.listeners {
		l(ev)
	}
}

// AddSelectionListener registers fn to receive every selection event.
func (lv *ListView) AddSelectionListener(fn func(selection.Event)) {
	lv.listeners = append(lv.listeners, fn)
}

func (lv *ListView) markDirty(i int) { lv.dirty[i] = struct{}{} }

// DirtyRows lists rows waiting to be redrawn.
func (lv *ListView) DirtyRows() []int {
	rows := make([]int, 0, len(lv.dirty))
	for r := range lv.dirty {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

// MoveTo places the cursor on row i, clamped to the list.
func (lv *ListView) MoveTo(i int) {
	n := lv.Count()
	if n == 0 {
		lv.current = 0
		return
	}
	i = min(max(i, 0), n-1)
	if i == lv.current {
		return
	}
	lv.markDirty(lv.current)
	lv.markDirty(i)
	lv.current = i
}

func (lv *ListView) MoveBy(delta int) { lv.MoveTo(lv.current + delta) }

// InsertRow clears the selection, since row indices shift, then inserts.
func (lv *ListView) InsertRow(i int, text string) error {
	lv.sel.ClearSelection()
	if err := lv.doc.InsertRow(i, text); err != nil {
		return err
	}
	lv.full = true
	return nil
}

func (lv *ListView) DeleteRow(i int) error {
	lv.sel.ClearSelection()
	if err := lv.doc.DeleteRow(i); err != nil {
		return err
	}
	lv.full = true
	lv.MoveTo(lv.current)
	return nil
}

func (lv *ListView) SelectedText() []string { return lv.sel.SelectedValues() }

// BindKeys installs cursor movement and selection keys. pageHeight
// reports the number of visible rows for page movement.
func (lv *ListView) BindKeys(k *Keymap, prompter types.UIInputDialogue, pageHeight func() int) {
	up := func() error { lv.MoveBy(-1); return nil }
	down := func() error { lv.MoveBy(1); return nil }
	home := func() error { lv.MoveTo(0); return nil }
	end := func() error { lv.MoveTo(lv.Count() - 1); return nil }
	k.BindKey("up", "previous row", up)
	k.BindKey("k", "previous row", up)
	k.BindKey("down", "next row", down)
	k.BindKey("j", "next row", down)
	k.BindKey("home", "first row", home)
	k.BindKey("g", "first row", home)
	k.BindKey("end", "last row", end)
	k.BindKey("G", "last row", end)
	k.BindKey("pgup", "previous page", func() error {
		lv.MoveBy(-max(pageHeight(), 1))
		return nil
	})
	k.BindKey("pgdn", "next page", func() error {
		lv.MoveBy(max(pageHeight(), 1))
		return nil
	})
	lv.sel.BindKeys(k, prompter)
}

// scrollIntoView keeps the cursor within the height visible rows.
func (lv *ListView) scrollIntoView(height int) {
	total := lv.Count()
	prev := lv.offset
	switch {
	case total == 0:
		lv.current, lv.offset = 0, 0
	case height <= 0:
		lv.current = min(max(lv.current, 0), total-1)
		lv.offset = 0
	default:
		lv.current = min(max(lv.current, 0), total-1)
		if lv.offset > lv.current {
			lv.offset = lv.current
		}
		if lv.current >= lv.offset+height {
			lv.offset = lv.current - height + 1
		}
		lv.offset = min(max(lv.offset, 0), max(total-height, 0))
	}
	if lv.offset != prev {
		lv.full = true
	}
}

// Offset is the first visible row as of the last draw.
func (lv *ListView) Offset() int { return lv.offset }

// Draw paints every visible row into the height x width area at (y, x).
func (lv *ListView) Draw(s types.Surface, y, x, height, width int) error {
	lv.scrollIntoView(height)
	sb := ComputeScrollbar(lv.Count(), height, lv.offset)
	for i := 0; i < height; i++ {
		if err := lv.drawRow(s, sb, lv.offset+i, y+i, i, x, width); err != nil {
			return err
		}
	}
	clear(lv.dirty)
	lv.full = false
	return nil
}

// Redraw paints only rows marked dirty since the last draw, unless the
// view scrolled or changed shape. It returns the number of rows drawn.
func (lv *ListView) Redraw(s types.Surface, y, x, height, width int) (int, error) {
	lv.scrollIntoView(height)
	if lv.full {
		return height, lv.Draw(s, y, x, height, width)
	}
	sb := ComputeScrollbar(lv.Count(), height, lv.offset)
	drawn := 0
	for _, r := range lv.DirtyRows() {
		idx := r - lv.offset
		if idx < 0 || idx >= height {
			continue
		}
		if err := lv.drawRow(s, sb, r, y+idx, idx, x, width); err != nil {
			return drawn, err
		}
		drawn++
	}
	clear(lv.dirty)
	return drawn, nil
}

func (lv *ListView) drawRow(s types.Surface, sb Scrollbar, row, screenY, idx, x, width int) error {
	textW := width - gutterWidth
	if sb.HasScrollbar() {
		textW--
	}
	if textW < 0 {
		return nil
	}
	total := lv.Count()

	s.MoveTo(screenY, x)
	if row < total && lv.sel.IsRowSelected(row) {
		pair, attr := lv.theme.MarkerStyle()
		s.SetColorPair(pair)
		s.SetAttr(attr)
		s.WriteText(TruncateRunes(lv.theme.marker(), 1)+" ", gutterWidth)
		s.ClearAttr(attr)
	} else {
		s.SetColorPair(types.NoPair)
		s.SetAttr(types.AttrNormal)
		s.WriteText(strings.Repeat(" ", gutterWidth), gutterWidth)
	}

	defAttr, err := lv.doc.DefaultAttr()
	if err != nil {
		return err
	}
	if row == lv.current {
		defAttr |= lv.theme.CurrentAttr()
	}
	written := 0
	if row < total {
		written, err = lv.doc.RenderRow(s, row, screenY, x+gutterWidth, textW, defAttr)
		if err != nil {
			return err
		}
	}
	if pad := textW - written; pad > 0 {
		if row >= total {
			defAttr = types.AttrNormal
		}
		s.MoveTo(screenY, x+gutterWidth+written)
		s.SetColorPair(types.NoPair)
		s.SetAttr(defAttr)
		s.WriteText(strings.Repeat(" ", pad), pad)
		s.ClearAttr(defAttr)
	}

	sb.DrawCell(s, screenY, idx, x+width-1)
	return nil
}
