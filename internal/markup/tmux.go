/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package markup

import (
	"iter"
	"strings"

	"github.com/mikeb26/tuikit/internal/types"
)

// TmuxParser understands tmux-style directives:
//
//	#[fg=red,bg=black,bold]   open a style span
//	#[style=warning]          open a span using a stylesheet entry
//	#[end] #[/end] #[/]       close the innermost span
//	#[default] #[reset]       reset to the root style
//	##                        literal '#'
//
// An unterminated "#[" is kept as literal text.
type TmuxParser struct{}

func NewTmuxParser() *TmuxParser { return &TmuxParser{} }

func (p *TmuxParser) ParseFormat(line string) iter.Seq[Token] {
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

		for i := 0; i < len(line); {
			if line[i] == '#' && i+1 < len(line) {
				switch line[i+1] {
				case '#':
					text.WriteByte('#')
					i += 2
					continue
				case '[':
					end := strings.IndexByte(line[i+2:], ']')
					if end < 0 {
						text.WriteString(line[i:])
						i = len(line)
						continue
					}
					directive := line[i+2 : i+2+end]
					i += end + 3
					tok, ok := parseTmuxDirective(directive)
					if !ok {
						continue
					}
					if !flush() || !yield(tok) {
						return
					}
					continue
				}
			}
			text.WriteByte(line[i])
			i++
		}
		flush()
	}
}

func parseTmuxDirective(directive string) (Token, bool) {
	d := strings.ToLower(strings.TrimSpace(directive))
	switch d {
	case "":
		return Token{}, false
	case "end", "/end", "/":
		return CloseToken(), true
	case "default", "reset", "none":
		return ResetToken(), true
	}

	st := EmptyStyle()
	for _, item := range strings.FieldsFunc(directive, func(r rune) bool {
		return r == ',' || r == ' '
	}) {
		key, val, hasVal := strings.Cut(item, "=")
		key = strings.ToLower(key)
		if hasVal {
			switch key {
			case "fg":
				if c, ok := types.ParseColor(val); ok {
					st.Fg = c
				}
			case "bg":
				if c, ok := types.ParseColor(val); ok {
					st.Bg = c
				}
			case "style":
				st.Name = strings.TrimSpace(val)
			case "attr":
				if a, ok := types.ParseAttrList(val); ok {
					st.Attr |= a
					st.HasAttr = true
				}
			}
			continue
		}
		if a, ok := types.ParseAttr(key); ok {
			st.Attr |= a
			st.HasAttr = true
		}
		// "noX" attribute removals and unknown words are ignored.
	}
	return OpenToken(st), true
}
