/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package selection tracks which rows of a list-like widget are selected.
//
// Row indices are never renumbered when the host inserts or removes rows;
// hosts must call ClearSelection before structural edits. Indices outside
// [0, Count()) are not validated.
package selection

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/mikeb26/tuikit/internal/log"
	"github.com/mikeb26/tuikit/internal/types"
)

type Mode int

const (
	ModeSingle Mode = iota
	ModeMultiple
)

func (m Mode) String() string {
	if m == ModeSingle {
		return "single"
	}
	return "multiple"
}

// ListHost is the widget a Model selects rows of.
type ListHost[T any] interface {
	CurrentIndex() int
	Count() int
	ValueAt(i int) T
	FireRowChanged(i int)
	FireSelectionEvent(ev Event)
}

const unset = -1

type Model[T any] struct {
	host        ListHost[T]
	mode        Mode
	selected    map[int]struct{}
	anchor      int
	lastClicked int
}

func New[T any](host ListHost[T], mode Mode) *Model[T] {
	return &Model[T]{
		host:        host,
		mode:        mode,
		selected:    make(map[int]struct{}),
		anchor:      unset,
		lastClicked: unset,
	}
}

func (m *Model[T]) Mode() Mode { return m.mode }

// SetSelectionMode switches modes. Entering single mode with more than one
// row selected clears the selection.
func (m *Model[T]) SetSelectionMode(mode Mode) {
	if mode == ModeSingle && len(m.selected) > 1 {
		m.ClearSelection()
	}
	m.mode = mode
}

// AnchorIndex is the row range selection extends from: the row last
// toggled, or where the first range selection started.
func (m *Model[T]) AnchorIndex() (int, bool) {
	return m.anchor, m.anchor != unset
}

func (m *Model[T]) LastClicked() (int, bool) {
	return m.lastClicked, m.lastClicked != unset
}

func (m *Model[T]) IsRowSelected(row int) bool {
	_, ok := m.selected[row]
	return ok
}

func (m *Model[T]) IsEmpty() bool { return len(m.selected) == 0 }

func (m *Model[T]) Len() int { return len(m.selected) }

// SelectedRows returns the selected rows in ascending order.
func (m *Model[T]) SelectedRows() []int {
	rows := make([]int, 0, len(m.selected))
	for r := range m.selected {
		rows = append(rows, r)
	}
	sort.Ints(rows)
	return rows
}

func (m *Model[T]) SelectedValues() []T {
	rows := m.SelectedRows()
	vals := make([]T, len(rows))
	for i, r := range rows {
		vals[i] = m.host.ValueAt(r)
	}
	return vals
}

func (m *Model[T]) fire(kind EventKind, lo, hi int) {
	m.host.FireSelectionEvent(Event{FirstRow: lo, LastRow: hi, Source: m, Kind: kind})
}

func (m *Model[T]) ToggleRowSelection(row int) {
	m.toggle(row)
	m.anchor = row
	m.lastClicked = row
}

func (m *Model[T]) ToggleCurrent() { m.ToggleRowSelection(m.host.CurrentIndex()) }

func (m *Model[T]) toggle(row int) {
	if m.IsRowSelected(row) {
		delete(m.selected, row)
		m.fire(EventDelete, row, row)
		return
	}
	if m.mode == ModeSingle {
		for prev := range m.selected {
			delete(m.selected, prev)
			m.host.FireRowChanged(prev)
		}
	}
	m.selected[row] = struct{}{}
	m.fire(EventInsert, row, row)
}

// RangeSelect selects the rows between the anchor and row, or unselects
// them if row is already selected. With no anchor the range starts at the
// last clicked row (or row alone), and that start becomes the anchor. It
// only records row as last clicked in single mode.
func (m *Model[T]) RangeSelect(row int) {
	defer func() { m.lastClicked = row }()
	if m.mode == ModeSingle {
		return
	}

	from := m.anchor
	if from == unset {
		from = m.lastClicked
	}
	if from == unset {
		from = row
	}
	m.anchor = from
	lo, hi := min(from, row), max(from, row)

	if m.IsRowSelected(row) {
		for r := lo; r <= hi; r++ {
			delete(m.selected, r)
		}
		m.fire(EventDelete, lo, hi)
		return
	}
	for r := lo; r <= hi; r++ {
		m.selected[r] = struct{}{}
	}
	m.fire(EventInsert, lo, hi)
}

func (m *Model[T]) RangeSelectCurrent() { m.RangeSelect(m.host.CurrentIndex()) }

// AddInterval selects [lo, hi]. In single mode only hi is selected.
func (m *Model[T]) AddInterval(lo, hi int) {
	lo, hi = min(lo, hi), max(lo, hi)
	if m.mode == ModeSingle {
		if m.IsRowSelected(hi) && len(m.selected) == 1 {
			return
		}
		for prev := range m.selected {
			delete(m.selected, prev)
			m.host.FireRowChanged(prev)
		}
		lo = hi
	}
	for r := lo; r <= hi; r++ {
		if m.IsRowSelected(r) {
			continue
		}
		m.selected[r] = struct{}{}
		m.host.FireRowChanged(r)
	}
	m.fire(EventInsert, lo, hi)
}

func (m *Model[T]) RemoveInterval(lo, hi int) {
	lo, hi = min(lo, hi), max(lo, hi)
	for r := lo; r <= hi; r++ {
		if !m.IsRowSelected(r) {
			continue
		}
		delete(m.selected, r)
		m.host.FireRowChanged(r)
	}
	m.fire(EventDelete, lo, hi)
}

// SelectAll selects every row from startRow on. No-op in single mode.
func (m *Model[T]) SelectAll(startRow int) {
	n := m.host.Count()
	if m.mode == ModeSingle || startRow >= n {
		return
	}
	m.AddInterval(max(startRow, 0), n-1)
}

// InvertSelection toggles every row from startRow on. No-op in single
// mode.
func (m *Model[T]) InvertSelection(startRow int) {
	if m.mode == ModeSingle {
		return
	}
	for r := max(startRow, 0); r < m.host.Count(); r++ {
		m.toggle(r)
	}
}

// ClearSelection unselects everything, forgets the anchor and last
// clicked row, and fires one CLEAR event, even when nothing was selected.
func (m *Model[T]) ClearSelection() {
	rows := m.SelectedRows()
	clear(m.selected)
	m.anchor, m.lastClicked = unset, unset
	for _, r := range rows {
		m.host.FireRowChanged(r)
	}
	if len(rows) == 0 {
		m.fire(EventClear, unset, unset)
		return
	}
	m.fire(EventClear, rows[0], rows[len(rows)-1])
}

// MatchingRows returns the rows whose value, formatted with fmt.Sprint,
// matches pattern. A pattern that is not a valid regular expression is
// matched as a literal substring.
func (m *Model[T]) MatchingRows(pattern string) []int {
	re, err := regexp.Compile(pattern)
	if err != nil {
		log.Entry("selection").WithError(err).
			WithField("pattern", pattern).Debug("matching pattern literally")
		re = regexp.MustCompile(regexp.QuoteMeta(pattern))
	}
	var rows []int
	for i := 0; i < m.host.Count(); i++ {
		if re.MatchString(fmt.Sprint(m.host.ValueAt(i))) {
			rows = append(rows, i)
		}
	}
	return rows
}

// SelectByPattern adds every matching row, leaving other rows as they are.
func (m *Model[T]) SelectByPattern(pattern string) {
	for _, r := range m.MatchingRows(pattern) {
		m.AddInterval(r, r)
	}
}

func (m *Model[T]) UnselectByPattern(pattern string) {
	for _, r := range m.MatchingRows(pattern) {
		m.RemoveInterval(r, r)
	}
}

// SelectByPrompt asks for a pattern and selects the matching rows. An
// empty answer does nothing.
func (m *Model[T]) SelectByPrompt(p types.UIInputDialogue) error {
	pattern, err := p.Get("Select rows matching: ")
	if err != nil {
		return err
	}
	if pattern != "" {
		m.SelectByPattern(pattern)
	}
	return nil
}

func (m *Model[T]) UnselectByPrompt(p types.UIInputDialogue) error {
	pattern, err := p.Get("Unselect rows matching: ")
	if err != nil {
		return err
	}
	if pattern != "" {
		m.UnselectByPattern(pattern)
	}
	return nil
}
