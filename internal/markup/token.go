/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package markup

import (
	"github.com/mikeb26/tuikit/internal/types"
)

type TokenKind int

const (
	TokenText TokenKind = iota
	TokenStyleOpen
	TokenStyleClose
	TokenReset
)

func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "text"
	case TokenStyleOpen:
		return "open"
	case TokenStyleClose:
		return "close"
	case TokenReset:
		return "reset"
	}
	return "unknown"
}

// Style carries the fields a style-open directive may state. Unstated
// colors are types.ColorNone; Name refers to a stylesheet entry.
type Style struct {
	Fg      types.Color
	Bg      types.Color
	Attr    types.Attr
	HasAttr bool
	Name    string
}

// EmptyStyle returns a Style with nothing stated.
func EmptyStyle() Style {
	return Style{Fg: types.ColorNone, Bg: types.ColorNone}
}

func (s Style) IsEmpty() bool {
	return !s.Fg.IsSet() && !s.Bg.IsSet() && !s.HasAttr && s.Name == ""
}

// Token is one element of a parsed line. Text is only meaningful for
// TokenText and Style only for TokenStyleOpen.
type Token struct {
	Kind  TokenKind
	Text  string
	Style Style
}

func TextToken(s string) Token { return Token{Kind: TokenText, Text: s} }

func OpenToken(st Style) Token { return Token{Kind: TokenStyleOpen, Style: st} }

func CloseToken() Token { return Token{Kind: TokenStyleClose} }

func ResetToken() Token { return Token{Kind: TokenReset} }
