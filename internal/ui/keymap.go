/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"fmt"
	"sort"
	"unicode/utf8"

	gc "github.com/rthornton128/goncurses"
)

type binding struct {
	key         string
	description string
	handler     func() error
}

// Keymap is a types.KeyBinder keyed by key name ("a", "space", "C-space",
// "up", ...). Binding a key again replaces the earlier handler.
type Keymap struct {
	bindings map[string]binding
}

func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[string]binding)}
}

func (k *Keymap) BindKey(key, description string, handler func() error) {
	k.bindings[key] = binding{key: key, description: description, handler: handler}
}

// Dispatch runs the handler bound to key.
func (k *Keymap) Dispatch(key string) error {
	b, ok := k.bindings[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnboundKey, key)
	}
	return b.handler()
}

func (k *Keymap) IsBound(key string) bool {
	_, ok := k.bindings[key]
	return ok
}

// Help lists "key: description" for every binding, sorted by key.
func (k *Keymap) Help() []string {
	keys := make([]string, 0, len(k.bindings))
	for key := range k.bindings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = key + ": " + k.bindings[key].description
	}
	return out
}

var specialKeyNames = map[gc.Key]string{
	gc.KEY_UP:        "up",
	gc.KEY_DOWN:      "down",
	gc.KEY_LEFT:      "left",
	gc.KEY_RIGHT:     "right",
	gc.KEY_HOME:      "home",
	gc.KEY_END:       "end",
	gc.KEY_PAGEUP:    "pgup",
	gc.KEY_PAGEDOWN:  "pgdn",
	gc.KEY_ENTER:     "enter",
	gc.KEY_RETURN:    "enter",
	gc.KEY_BACKSPACE: "backspace",
	gc.KEY_RESIZE:    "resize",
	gc.KEY_TAB:       "tab",
	gc.Key(13):       "enter",
	gc.Key(27):       "esc",
	gc.Key(127):      "backspace",
}

// KeyName names a key read with GetChar in blocking mode. A NUL is
// reported by terminals for ctrl-space. win supplies the continuation
// bytes of UTF-8 input and may be nil for single-byte keys.
func KeyName(win *gc.Window, ch gc.Key) string {
	if name, ok := specialKeyNames[ch]; ok {
		return name
	}
	switch {
	case ch == 0:
		return "C-space"
	case ch == ' ':
		return "space"
	case ch > 0 && ch < 27:
		return "C-" + string(rune('a'+ch-1))
	case ch < 256:
		if ch >= 0x80 && win != nil {
			return string(readUTF8Rune(win, ch))
		}
		return string(rune(ch))
	}
	return gc.KeyString(ch)
}

// readUTF8Rune reassembles a multi-byte UTF-8 sequence whose lead byte
// is first from the bytes ncurses reports as consecutive keys.
func readUTF8Rune(win *gc.Window, first gc.Key) rune {
	b0 := byte(int(first) & 0xFF)
	if b0 < 0x80 {
		return rune(b0)
	}

	var need int
	switch {
	case b0&0xE0 == 0xC0:
		need = 2
	case b0&0xF0 == 0xE0:
		need = 3
	case b0&0xF8 == 0xF0:
		need = 4
	default:
		return rune(b0)
	}

	buf := []byte{b0}
	for len(buf) < need {
		ch := win.GetChar()
		if ch <= 0 || ch > 255 {
			break
		}
		b := byte(int(ch) & 0xFF)
		if b&0xC0 != 0x80 {
			break
		}
		buf = append(buf, b)
	}

	r, _ := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return rune(b0)
	}
	return r
}
