/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import "github.com/mikeb26/tuikit/internal/types"

// Theme configures how list views mark the cursor row and selected rows.
type Theme struct {
	// UseColors indicates colors were started and SelectedPair may be
	// used.
	UseColors bool

	// SelectedPair colors the selection marker.
	SelectedPair types.PairHandle

	// Marker is drawn in the gutter of selected rows.
	Marker string
}

func DefaultTheme() Theme {
	return Theme{Marker: "*"}
}

// MarkerStyle returns the pair and attribute for the selection marker.
// Without colors it falls back to bold reverse video.
func (t Theme) MarkerStyle() (types.PairHandle, types.Attr) {
	if t.UseColors && t.SelectedPair != types.NoPair {
		return t.SelectedPair, types.AttrBold
	}
	return types.NoPair, types.AttrBold | types.AttrReverse
}

// CurrentAttr is the default attribute of the row under the cursor.
func (t Theme) CurrentAttr() types.Attr { return types.AttrReverse }

func (t Theme) marker() string {
	if t.Marker == "" {
		return "*"
	}
	return t.Marker
}
