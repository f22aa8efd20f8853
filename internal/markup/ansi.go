/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package markup

import (
	"iter"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/mikeb26/tuikit/internal/types"
)

// ANSIParser tokenizes text containing SGR escape sequences. Every SGR
// that sets something opens a span; SGR 0 resets; 22-27 close the
// innermost span. Escape sequences other than SGR are dropped.
type ANSIParser struct{}

func NewANSIParser() *ANSIParser { return &ANSIParser{} }

func (p *ANSIParser) ParseFormat(line string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		var text strings.Builder
		flush := func() bool {
			if text.Len() == 0 {
				return true
			}
			s := text.String()
			text.Reset()
			return yield(TextToken(s))
		}

		var state byte
		remaining := line
		for len(remaining) > 0 {
			seq, width, n, newState := ansi.DecodeSequence(remaining, state, nil)
			state = newState
			if n <= 0 {
				text.WriteString(remaining)
				break
			}
			remaining = remaining[n:]

			if width == 0 && len(seq) > 0 && seq[0] == '\x1b' {
				params, ok := sgrParams(seq)
				if !ok {
					continue
				}
				if !flush() {
					return
				}
				for _, tok := range sgrTokens(params) {
					if !yield(tok) {
						return
					}
				}
				continue
			}
			text.WriteString(seq)
		}
		flush()
	}
}

// sgrParams returns the parameter string of a CSI ... m sequence.
func sgrParams(seq string) (string, bool) {
	if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
		return "", false
	}
	params := seq[2 : len(seq)-1]
	if params != "" && strings.ContainsAny(params[:1], "?<>=") {
		return "", false
	}
	return params, true
}

func sgrTokens(params string) []Token {
	var codes []int
	for _, f := range strings.FieldsFunc(params, func(r rune) bool { return r == ';' || r == ':' }) {
		n, err := strconv.Atoi(f)
		if err != nil {
			n = -1
		}
		codes = append(codes, n)
	}
	if len(codes) == 0 {
		return []Token{ResetToken()}
	}

	var toks []Token
	st := EmptyStyle()
	emitPending := func() {
		if !st.IsEmpty() {
			toks = append(toks, OpenToken(st))
			st = EmptyStyle()
		}
	}
	setAttr := func(a types.Attr) {
		st.Attr |= a
		st.HasAttr = true
	}

	for i := 0; i < len(codes); i++ {
		c := codes[i]
		switch {
		case c == 0:
			emitPending()
			toks = append(toks, ResetToken())
		case c == 1:
			setAttr(types.AttrBold)
		case c == 2:
			setAttr(types.AttrDim)
		case c == 3:
			setAttr(types.AttrItalic)
		case c == 4:
			setAttr(types.AttrUnderline)
		case c == 5 || c == 6:
			setAttr(types.AttrBlink)
		case c == 7:
			setAttr(types.AttrReverse)
		case c >= 22 && c <= 27:
			emitPending()
			toks = append(toks, CloseToken())
		case c >= 30 && c <= 37:
			st.Fg = types.Color(c - 30)
		case c >= 90 && c <= 97:
			st.Fg = types.Color(c - 90 + 8)
		case c == 39:
			st.Fg = types.ColorDefault
		case c >= 40 && c <= 47:
			st.Bg = types.Color(c - 40)
		case c >= 100 && c <= 107:
			st.Bg = types.Color(c - 100 + 8)
		case c == 49:
			st.Bg = types.ColorDefault
		case c == 38 || c == 48:
			color, used := extendedColor(codes[i+1:])
			i += used
			if !color.IsSet() {
				continue
			}
			if c == 38 {
				st.Fg = color
			} else {
				st.Bg = color
			}
		}
	}
	emitPending()
	return toks
}

// extendedColor decodes the arguments following 38/48: "5;n" or
// "2;r;g;b". It returns the color and how many codes it consumed.
func extendedColor(args []int) (types.Color, int) {
	if len(args) == 0 {
		return types.ColorNone, 0
	}
	switch args[0] {
	case 5:
		if len(args) < 2 || args[1] < 0 || args[1] > 255 {
			return types.ColorNone, len(args)
		}
		return types.Color(args[1]), 2
	case 2:
		if len(args) < 4 {
			return types.ColorNone, len(args)
		}
		clamp := func(v int) uint8 {
			if v < 0 {
				return 0
			}
			if v > 255 {
				return 255
			}
			return uint8(v)
		}
		return types.RGBColor(clamp(args[1]), clamp(args[2]), clamp(args[3])), 4
	}
	return types.ColorNone, 1
}
