/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import "github.com/mikeb26/tuikit/internal/types"

const (
	scrollPointChar  rune = '█'
	scrollTrackChar  rune = '│'
	scrollTopChar    rune = '▲'
	scrollBottomChar rune = '▼'
)

// Scrollbar is the geometry of a vertical scrollbar with a one-row
// thumb. Arrows occupy the first and last rows when the track is at
// least three rows tall.
type Scrollbar struct {
	hasScrollbar bool
	useArrows    bool
	barStart     int
	height       int
}

func (s Scrollbar) HasScrollbar() bool { return s.hasScrollbar }

// ComputeScrollbar lays out a scrollbar of the given height for total
// rows scrolled to offset. No scrollbar is needed when everything fits.
func ComputeScrollbar(total, height, offset int) Scrollbar {
	if height <= 0 || total <= height {
		return Scrollbar{}
	}

	sb := Scrollbar{hasScrollbar: true, useArrows: height >= 3, height: height}
	scrollRange := max(total-height, 1)
	clamped := min(max(offset, 0), scrollRange)

	if sb.useArrows {
		trackSteps := max(height-2-1, 1)
		sb.barStart = 1 + clamped*trackSteps/scrollRange
	} else {
		track := max(height-1, 1)
		sb.barStart = clamped * track / scrollRange
	}
	return sb
}

// Glyph returns the character for row rowIdx (0..height-1) of the track.
func (s Scrollbar) Glyph(rowIdx int) rune {
	if s.useArrows {
		switch rowIdx {
		case 0:
			return scrollTopChar
		case s.height - 1:
			return scrollBottomChar
		}
	}
	if rowIdx == s.barStart {
		return scrollPointChar
	}
	return scrollTrackChar
}

// DrawCell draws row rowIdx of the scrollbar at (screenY, col) with a
// neutral style so it stays distinct from colored content.
func (s Scrollbar) DrawCell(surf types.Surface, screenY, rowIdx, col int) {
	if !s.hasScrollbar || col < 0 {
		return
	}
	surf.MoveTo(screenY, col)
	surf.SetColorPair(types.NoPair)
	surf.SetAttr(types.AttrNormal)
	surf.WriteText(string(s.Glyph(rowIdx)), 1)
}
