/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package types

// Surface is a drawing target capable of placing styled text runs at
// row/column positions. ui.NcursesSurface and ui.ANSISurface implement it.
//
//go:generate mockgen --build_flags=--mod=mod -destination=surface_mock.go -package=$GOPACKAGE github.com/mikeb26/tuikit/internal/types Surface,ColorRegistry
type Surface interface {
	MoveTo(row, col int)
	SetColorPair(pair PairHandle)
	SetAttr(attr Attr)
	ClearAttr(attr Attr)
	// WriteText writes at most maxWidth display cells of s at the current
	// position and returns the number of cells written.
	WriteText(s string, maxWidth int) int
}

// ColorRegistry maps (foreground, background) combinations to pair
// handles, registering a new pair the first time a combination is seen.
type ColorRegistry interface {
	PairFor(fg, bg Color) PairHandle
}

// KeyBinder installs handlers for keys or key sequences. Key names follow
// the "C-x" convention for control keys; "space" names the space bar.
type KeyBinder interface {
	BindKey(key string, description string, handler func() error)
}

// UIInputDialogue prompts the user for a single line of input. An empty
// result means the user cancelled.
type UIInputDialogue interface {
	Get(userPrompt string) (string, error)
}
