/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package types

import (
	"strconv"
	"strings"
)

// Color is a terminal color number. Values 0-255 index the 256 color
// palette (0-7 are the classic ANSI colors, 8-15 their bright variants).
// ColorDefault selects the terminal's own default color and ColorNone
// marks a color that was not specified at all.
type Color int16

const (
	ColorNone    Color = -2
	ColorDefault Color = -1

	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7
)

var colorNames = []string{"black", "red", "green", "yellow", "blue",
	"magenta", "cyan", "white"}

// IsSet reports whether c carries an explicit value (including the
// terminal default).
func (c Color) IsSet() bool { return c != ColorNone }

func (c Color) String() string {
	switch {
	case c == ColorNone:
		return "none"
	case c == ColorDefault:
		return "default"
	case c >= 0 && c < 8:
		return colorNames[c]
	case c >= 8 && c < 16:
		return "bright" + colorNames[c-8]
	}
	return "colour" + strconv.Itoa(int(c))
}

// ParseColor converts a color name into a Color. It understands the eight
// ANSI names, "bright" prefixed names (with or without a separator),
// "default", "colourN"/"colorN", bare palette numbers and "#rrggbb" which
// is mapped onto the 6x6x6 palette cube.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ColorNone, false
	}
	if s == "default" || s == "terminal" {
		return ColorDefault, true
	}
	for i, name := range colorNames {
		if s == name {
			return Color(i), true
		}
	}
	for _, prefix := range []string{"bright_", "bright-", "bright"} {
		if !strings.HasPrefix(s, prefix) {
			continue
		}
		for i, name := range colorNames {
			if s[len(prefix):] == name {
				return Color(i + 8), true
			}
		}
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	num := strings.TrimPrefix(strings.TrimPrefix(s, "colour"), "color")
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 || n > 255 {
		return ColorNone, false
	}
	return Color(n), true
}

func parseHexColor(hex string) (Color, bool) {
	if len(hex) != 6 {
		return ColorNone, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ColorNone, false
	}
	return RGBColor(uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// RGBColor approximates a 24-bit color with the nearest entry of the
// 6x6x6 cube in the 256 color palette.
func RGBColor(r, g, b uint8) Color {
	q := func(v uint8) int {
		if v < 48 {
			return 0
		}
		if v < 115 {
			return 1
		}
		return (int(v) - 35) / 40
	}
	return Color(16 + 36*q(r) + 6*q(g) + q(b))
}

// Attr is a bitmask of text attributes.
type Attr uint16

const AttrNormal Attr = 0

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStandout
)

var attrNames = []struct {
	name string
	attr Attr
}{
	{"bold", AttrBold},
	{"dim", AttrDim},
	{"italic", AttrItalic},
	{"underline", AttrUnderline},
	{"blink", AttrBlink},
	{"reverse", AttrReverse},
	{"standout", AttrStandout},
}

func (a Attr) Has(flag Attr) bool { return a&flag != 0 }

func (a Attr) String() string {
	if a == AttrNormal {
		return "normal"
	}
	var parts []string
	for _, an := range attrNames {
		if a.Has(an.attr) {
			parts = append(parts, an.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseAttr converts a single attribute word into an Attr. tmux spellings
// ("italics", "underscore", "bright") are accepted alongside the canonical
// names.
func ParseAttr(s string) (Attr, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "none":
		return AttrNormal, true
	case "bold", "bright":
		return AttrBold, true
	case "dim":
		return AttrDim, true
	case "italic", "italics":
		return AttrItalic, true
	case "underline", "underscore":
		return AttrUnderline, true
	case "blink":
		return AttrBlink, true
	case "reverse":
		return AttrReverse, true
	case "standout":
		return AttrStandout, true
	}
	return AttrNormal, false
}

// ParseAttrList combines a list of attribute words separated by commas,
// pipes or whitespace, e.g. "bold|underline".
func ParseAttrList(s string) (Attr, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return AttrNormal, false
	}
	var attr Attr
	for _, f := range fields {
		a, ok := ParseAttr(f)
		if !ok {
			return AttrNormal, false
		}
		attr |= a
	}
	return attr, true
}

// PairHandle identifies a registered (foreground, background) pair. The
// zero value means no pair has been assigned.
type PairHandle int16

const NoPair PairHandle = 0
