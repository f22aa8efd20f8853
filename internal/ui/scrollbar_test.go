/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func glyphs(sb Scrollbar, height int) string {
	out := make([]rune, height)
	for i := range out {
		out[i] = sb.Glyph(i)
	}
	return string(out)
}

func TestComputeScrollbar(t *testing.T) {
	assert.False(t, ComputeScrollbar(5, 10, 0).HasScrollbar())
	assert.False(t, ComputeScrollbar(5, 0, 0).HasScrollbar())

	tests := []struct {
		name                  string
		total, height, offset int
		want                  string
	}{
		{"top", 20, 5, 0, "▲█││▼"},
		{"bottom", 20, 5, 15, "▲││█▼"},
		{"offset clamped", 20, 5, 99, "▲││█▼"},
		{"negative offset", 20, 5, -3, "▲█││▼"},
		{"no arrows", 10, 2, 8, "│█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := ComputeScrollbar(tt.total, tt.height, tt.offset)
			assert.True(t, sb.HasScrollbar())
			assert.Equal(t, tt.want, glyphs(sb, tt.height))
		})
	}
}
