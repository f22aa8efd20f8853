/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	gc "github.com/rthornton128/goncurses"
)

// NcursesUI implements types.UIInputDialogue with centered ncurses
// modals drawn over an existing screen.
//
// The caller owns the ncurses lifecycle (Init/End). Prompts are
// serialized with a mutex.
type NcursesUI struct {
	mu  sync.Mutex
	scr *gc.Window
}

// NewNcursesUI wraps an existing ncurses screen/window. A nil screen is
// accepted; every prompt then fails with ErrNoScreen.
func NewNcursesUI(scrIn *gc.Window) *NcursesUI {
	if scrIn != nil {
		_ = scrIn.Keypad(true)
	}

	return &NcursesUI{scr: scrIn}
}

// TruncateRunes returns a prefix of s that fits in width display cells.
func TruncateRunes(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "")
}

// newCenteredBox opens a bordered window of roughly height x width rows
// and columns in the middle of the screen, shrunk to leave a one cell
// margin. It returns the window and the size of its interior.
func (n *NcursesUI) newCenteredBox(height, width int) (*gc.Window, int, int, error) {
	maxY, maxX := n.scr.MaxYX()
	height = min(max(height, 3), maxY-2)
	width = min(max(width, 4), maxX-2)
	if height < 3 || width < 4 {
		return nil, 0, 0, fmt.Errorf("%w: %dx%d", ErrTerminalTooSmall, maxX, maxY)
	}

	win, err := gc.NewWindow(height, width, (maxY-height)/2, (maxX-width)/2)
	if err != nil {
		return nil, 0, 0, err
	}
	_ = win.Keypad(true)
	_ = win.Box(0, 0)

	return win, width - 2, height - 2, nil
}

// closeModal deletes a modal and touches its parent so the next refresh
// repaints the area the modal covered.
func closeModal(modal, parent *gc.Window) {
	_ = modal.Delete()
	_ = parent.Touch()
	parent.Refresh()
}

// readLineModal shows userPrompt (which may span several lines) in a
// centered box and reads one line of input below it.
func (n *NcursesUI) readLineModal(userPrompt string) (string, error) {
	promptLines := strings.Split(strings.TrimRight(userPrompt, "\n"), "\n")

	promptWidth := 0
	for _, line := range promptLines {
		promptWidth = max(promptWidth, runewidth.StringWidth(line))
	}
	win, contentWidth, contentHeight, err :=
		n.newCenteredBox(max(len(promptLines)+3, 5), max(promptWidth+2, 30))
	if err != nil {
		return "", err
	}
	defer closeModal(win, n.scr)
	contentWidth = max(contentWidth, 1)
	contentHeight = max(contentHeight, 1)

	for i, line := range promptLines {
		if 1+i > contentHeight {
			break
		}
		win.MovePrint(1+i, 1, TruncateRunes(line, contentWidth))
	}

	inputY := min(1+len(promptLines), contentHeight)
	var buf []rune
	for {
		win.MovePrint(inputY, 1, strings.Repeat(" ", contentWidth))
		// keep the tail of long input visible
		text := string(buf)
		for runewidth.StringWidth(text) > contentWidth-1 && len(text) > 0 {
			_, size := utf8.DecodeRuneInString(text)
			text = text[size:]
		}
		win.MovePrint(inputY, 1, text)
		win.Move(inputY, min(1+runewidth.StringWidth(text), contentWidth))
		win.Refresh()

		ch := win.GetChar()
		if ch == 0 {
			continue
		}

		switch ch {
		case gc.Key(27):
			return "", nil
		case gc.KEY_ENTER, gc.KEY_RETURN:
			return string(buf), nil
		case gc.KEY_BACKSPACE, 127, 8:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		default:
			// KEY_* constants are above 255; anything below is a byte of
			// input, possibly the lead byte of a UTF-8 sequence.
			if ch >= 32 && ch < 256 {
				buf = append(buf, readUTF8Rune(win, ch))
			}
		}
	}
}

// Get prompts the user for a line of input in a centered modal. ESC
// cancels and yields an empty string.
func (n *NcursesUI) Get(userPrompt string) (string, error) {

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.scr == nil {
		return "", ErrNoScreen
	}

	line, err := n.readLineModal(userPrompt)
	if err != nil {
		return "", err
	}

	line = strings.TrimRight(line, "\r\n")
	line = strings.TrimSpace(line)
	return line, nil
}
