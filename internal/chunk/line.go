/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package chunk

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/mikeb26/tuikit/internal/types"
)

// ChunkLine is one display line: chunks in display order.
type ChunkLine struct {
	chunks []*Chunk
}

func NewLine(chunks ...*Chunk) *ChunkLine {
	l := &ChunkLine{}
	for _, c := range chunks {
		l.AddChunk(c)
	}
	return l
}

// AddChunk appends c. A nil chunk is ignored.
func (l *ChunkLine) AddChunk(c *Chunk) {
	if c == nil {
		return
	}
	l.chunks = append(l.chunks, c)
}

// Append adds a *Chunk, or concatenates the chunks of a *ChunkLine. Any
// other value fails with ErrTypeMismatch.
func (l *ChunkLine) Append(v any) error {
	switch x := v.(type) {
	case *Chunk:
		if x == nil {
			return fmt.Errorf("%w: nil chunk", ErrTypeMismatch)
		}
		l.chunks = append(l.chunks, x)
	case *ChunkLine:
		if x == nil {
			return fmt.Errorf("%w: nil line", ErrTypeMismatch)
		}
		l.chunks = append(l.chunks, x.chunks...)
	default:
		return fmt.Errorf("%w: got %T", ErrTypeMismatch, v)
	}
	return nil
}

// Chunks returns the line's chunks. The slice must not be modified.
func (l *ChunkLine) Chunks() []*Chunk { return l.chunks }

// Count returns the number of chunks.
func (l *ChunkLine) Count() int { return len(l.chunks) }

// PlainText concatenates the chunk texts.
func (l *ChunkLine) PlainText() string {
	var sb strings.Builder
	for _, c := range l.chunks {
		sb.WriteString(c.text)
	}
	return sb.String()
}

func (l *ChunkLine) String() string { return l.PlainText() }

// Length is the number of characters (runes) in the line.
func (l *ChunkLine) Length() int {
	n := 0
	for _, c := range l.chunks {
		n += utf8.RuneCountInString(c.text)
	}
	return n
}

// FindSubstring returns the character offset of the first occurrence of
// needle at or after offsetHint. If there is none it wraps around and
// returns the first occurrence anywhere in the line. Matches may span
// chunk boundaries.
func (l *ChunkLine) FindSubstring(needle string, offsetHint int) (int, bool) {
	if needle == "" {
		return 0, false
	}
	text := l.PlainText()
	if offsetHint < 0 {
		offsetHint = 0
	}

	byteOff, runeOff := 0, 0
	for _, c := range l.chunks {
		n := utf8.RuneCountInString(c.text)
		if runeOff+n > offsetHint {
			byteOff += len(string([]rune(c.text)[:offsetHint-runeOff]))
			runeOff = offsetHint
			break
		}
		byteOff += len(c.text)
		runeOff += n
	}

	if runeOff == offsetHint {
		if idx := strings.Index(text[byteOff:], needle); idx >= 0 {
			return offsetHint + utf8.RuneCountInString(text[byteOff:byteOff+idx]), true
		}
	}
	if idx := strings.Index(text, needle); idx >= 0 {
		return utf8.RuneCountInString(text[:idx]), true
	}
	return 0, false
}

// RenderTo draws the line at (row, col) clipped to width display cells
// across the whole line. Each chunk resolves its pair and attribute at
// this point; chunks that declare neither use defPair/defAttr. A defPair
// of types.NoPair means the palette's default pair.
func (l *ChunkLine) RenderTo(s types.Surface, p Palette, row, col, width int,
	defPair types.PairHandle, defAttr types.Attr) int {

	if width <= 0 {
		return 0
	}
	written := 0
	for _, c := range l.chunks {
		remaining := width - written
		if remaining <= 0 {
			break
		}
		text := ClipToWidth(c.text, remaining)
		if text == "" {
			continue
		}

		pair := defPair
		if c.DeclaresColor() || pair == types.NoPair {
			pair = c.ResolveColorPair(p)
		}
		attr := defAttr
		if c.DeclaresAttr() {
			attr = c.ResolveAttr()
		}

		s.MoveTo(row, col+written)
		s.SetColorPair(pair)
		s.SetAttr(attr)
		s.WriteText(text, remaining)
		s.ClearAttr(attr)

		written += runewidth.StringWidth(text)
	}
	return written
}

// ClipToWidth returns the longest prefix of s that fits in width display
// cells.
func ClipToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			return s[:i]
		}
		w += rw
	}
	return s
}
