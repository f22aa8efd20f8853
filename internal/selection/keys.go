/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package selection

import "github.com/mikeb26/tuikit/internal/types"

const (
	KeyToggle      = "space"
	KeyRangeSelect = "C-space"
	KeySelectAll   = "a"
	KeyInvert      = "*"
	KeyClear       = "u"
	KeySelectMatch = "+"
	KeyUnselect    = "-"
)

// BindKeys installs the selection key bindings on binder. The pattern
// bindings are only installed when prompter is non-nil.
func (m *Model[T]) BindKeys(binder types.KeyBinder, prompter types.UIInputDialogue) {
	binder.BindKey(KeyToggle, "toggle selection", func() error {
		m.ToggleCurrent()
		return nil
	})
	binder.BindKey(KeyRangeSelect, "range select", func() error {
		m.RangeSelectCurrent()
		return nil
	})
	binder.BindKey(KeySelectAll, "select all", func() error {
		m.SelectAll(0)
		return nil
	})
	binder.BindKey(KeyInvert, "invert selection", func() error {
		m.InvertSelection(0)
		return nil
	})
	binder.BindKey(KeyClear, "clear selection", func() error {
		m.ClearSelection()
		return nil
	})
	if prompter == nil {
		return
	}
	binder.BindKey(KeySelectMatch, "select matching", func() error {
		return m.SelectByPrompt(prompter)
	})
	binder.BindKey(KeyUnselect, "unselect matching", func() error {
		return m.UnselectByPrompt(prompter)
	})
}
