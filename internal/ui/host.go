/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"github.com/mikeb26/tuikit/internal/chunk"
	"github.com/mikeb26/tuikit/internal/types"
)

// Host is the widget-level color context documents are parsed and drawn
// with. A nil Defaults means the process-wide defaults.
type Host struct {
	Registry types.ColorRegistry
	Defaults *chunk.Defaults
	Attr     types.Attr
}

func (h *Host) Palette() chunk.Palette {
	return chunk.Palette{Registry: h.Registry, Defaults: h.Defaults}
}

func (h *Host) DefaultAttr() types.Attr { return h.Attr }
