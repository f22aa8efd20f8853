/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/famz/SetLocale"
	"github.com/mikeb26/tuikit/internal/log"
	"github.com/mikeb26/tuikit/internal/selection"
	"github.com/mikeb26/tuikit/internal/types"
	"github.com/mikeb26/tuikit/internal/ui"
	gc "github.com/rthornton128/goncurses"
	"golang.org/x/term"
)

// statusHeight is the number of rows below the list.
const statusHeight = 1

type viewUI struct {
	scr      *gc.Window
	surf     *ui.NcursesSurface
	nui      *ui.NcursesUI
	lv       *ui.ListView
	keys     *ui.Keymap
	useColor bool
	statusFg types.PairHandle
	message  string
	quit     bool
}

func gcInit() (*gc.Window, error) {
	// ncurses reads keys from stdin and draws on stdout
	if !term.IsTerminal(int(os.Stdout.Fd())) ||
		!term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrTTYRequired
	}

	// Keep a lone ESC responsive in keypad mode. Must precede gc.Init().
	_ = os.Setenv("ESCDELAY", "100")
	// Enable UTF-8; must similarly be set before gc.Init()
	SetLocale.SetLocale(SetLocale.LC_ALL, "en_US.UTF-8")
	rootWin, err := gc.Init()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToInitScreen, err)
	}

	return rootWin, nil
}

func gcExit() {
	gc.End()
}

// resizeScreen synchronizes ncurses' idea of the terminal size with the
// actual TTY size.
func resizeScreen(scr *gc.Window) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}

	if !gc.IsTermResized(rows, cols) {
		return
	}

	_ = gc.ResizeTerm(rows, cols)
}

// viewMain browses the input in a full screen list. The rows selected
// when the user quits are printed to stdout.
func viewMain(ctx context.Context, cliCtx *CliContext, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: view reads FILE arguments", ErrNoInput)
	}
	lines, title, err := cliCtx.readInput(args)
	if err != nil {
		return err
	}
	mode, err := cliCtx.selectionMode()
	if err != nil {
		return err
	}

	if cliCtx.flags.logFile == "" {
		// stderr shares the terminal with the curses screen
		_ = log.Configure(cliCtx.flags.logLevel, io.Discard)
	}
	scr, err := gcInit()
	if err != nil {
		return err
	}
	selected, err := runView(cliCtx, scr, title, lines, mode)
	gcExit()
	if err != nil {
		return err
	}

	for _, text := range selected {
		fmt.Fprintln(cliCtx.out, text)
	}
	return nil
}

func runView(cliCtx *CliContext, scr *gc.Window, title string,
	lines []string, mode selection.Mode) ([]string, error) {

	gc.CBreak(true)
	gc.Echo(false)
	_ = gc.Cursor(0)
	_ = scr.Keypad(true)

	v := &viewUI{
		scr:  scr,
		surf: ui.NewNcursesSurface(scr),
		nui:  ui.NewNcursesUI(scr),
		keys: ui.NewKeymap(),
	}

	var registry types.ColorRegistry = noColorRegistry{}
	theme := ui.DefaultTheme()
	if ui.StartColors() {
		pairs := ui.NewNcursesRegistry()
		registry = pairs
		v.useColor = true
		theme.UseColors = true
		theme.SelectedPair = pairs.PairFor(types.ColorBlack, types.ColorCyan)
		v.statusFg = pairs.PairFor(types.ColorBlack, types.ColorCyan)
	}

	host := &ui.Host{Registry: registry, Attr: cliCtx.defaultAttr()}
	doc, err := cliCtx.newDocument(host, cliCtx.parserConfig(), title, lines)
	if err != nil {
		return nil, err
	}
	v.lv = ui.NewListView(doc, mode, theme)
	v.lv.AddSelectionListener(func(ev selection.Event) {
		log.Entry("view").WithField("event", ev.String()).Debug("selection changed")
	})
	v.bindKeys()

	if err := v.loop(); err != nil {
		return nil, err
	}
	return v.lv.SelectedText(), nil
}

func (v *viewUI) listHeight() int {
	maxY, _ := v.scr.MaxYX()
	return max(maxY-statusHeight, 0)
}

func (v *viewUI) bindKeys() {
	v.lv.BindKeys(v.keys, v.nui, v.listHeight)
	quit := func() error { v.quit = true; return nil }
	v.keys.BindKey("q", "quit", quit)
	v.keys.BindKey("esc", "quit", quit)
	v.keys.BindKey("?", "show key bindings", v.showHelp)
}

func (v *viewUI) showHelp() error {
	_, err := v.nui.Get(strings.Join(v.keys.Help(), "\n") +
		"\n\nPress enter to continue")
	return err
}

func (v *viewUI) loop() error {
	full := true
	for !v.quit {
		maxY, maxX := v.scr.MaxYX()
		if maxY <= statusHeight || maxX <= 3 {
			return fmt.Errorf("%w: %vx%v", ui.ErrTerminalTooSmall, maxX, maxY)
		}
		if full {
			v.scr.Erase()
			if err := v.lv.Draw(v.surf, 0, 0, v.listHeight(), maxX); err != nil {
				return err
			}
			full = false
		} else if _, err := v.lv.Redraw(v.surf, 0, 0, v.listHeight(), maxX); err != nil {
			return err
		}
		// the bottom right cell is left alone so ncurses never scrolls
		v.drawStatus(maxY-1, maxX-1)
		v.scr.Refresh()

		key := ui.KeyName(v.scr, v.scr.GetChar())
		v.message = ""
		if key == "resize" {
			resizeScreen(v.scr)
			v.lv.Document().OnDimensionChanged()
			full = true
			continue
		}
		err := v.keys.Dispatch(key)
		if errors.Is(err, ui.ErrUnboundKey) {
			v.message = fmt.Sprintf("%v is not bound; ? for help", key)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *viewUI) drawStatus(y, width int) {
	doc := v.lv.Document()
	status := fmt.Sprintf(" %v  %v/%v  %v selected", doc.Title(),
		min(v.lv.CurrentIndex()+1, doc.RowCount()), doc.RowCount(),
		v.lv.Selection().Len())
	if v.message != "" {
		status += "  " + v.message
	}

	v.surf.MoveTo(y, 0)
	if v.useColor {
		v.surf.SetColorPair(v.statusFg)
		v.surf.SetAttr(types.AttrNormal)
	} else {
		v.surf.SetColorPair(types.NoPair)
		v.surf.SetAttr(types.AttrReverse)
	}
	n := v.surf.WriteText(status, width)
	if n < width {
		v.surf.WriteText(strings.Repeat(" ", width-n), width-n)
	}
	v.surf.SetAttr(types.AttrNormal)
	v.surf.SetColorPair(types.NoPair)
}
