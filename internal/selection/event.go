/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package selection

import "fmt"

type EventKind int

const (
	EventInsert EventKind = iota
	EventDelete
	EventClear
)

func (k EventKind) String() string {
	switch k {
	case EventInsert:
		return "INSERT"
	case EventDelete:
		return "DELETE"
	case EventClear:
		return "CLEAR"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event describes a change to the selection covering rows
// [FirstRow, LastRow]. A CLEAR of an empty selection has both set to -1.
type Event struct {
	FirstRow int
	LastRow  int
	Source   any
	Kind     EventKind
}

func (e Event) String() string {
	return fmt.Sprintf("%v[%d,%d]", e.Kind, e.FirstRow, e.LastRow)
}

// Contains reports whether row lies in the event's range.
func (e Event) Contains(row int) bool {
	return row >= e.FirstRow && row <= e.LastRow
}
