/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"context"
	"math"
	"os"

	"github.com/mikeb26/tuikit/internal/ui"
	"golang.org/x/term"
)

// ansiColors is the palette size assumed for escape sequence output.
const ansiColors = 256

// renderMain writes the input to stdout with its markup turned into ANSI
// escape sequences. Text outside any style keeps the terminal's colors
// unless --fg or --bg say otherwise.
func renderMain(ctx context.Context, cliCtx *CliContext, args []string) error {
	lines, title, err := cliCtx.readInput(args)
	if err != nil {
		return err
	}
	cliCtx.applyColorWhen()

	pairs := ui.NewPairTable(0, ansiColors, nil)
	host := &ui.Host{Registry: pairs, Attr: cliCtx.defaultAttr()}

	cfg := cliCtx.parserConfig()
	if cliCtx.flags.fg == "" {
		cfg.Color = "default"
	}
	if cliCtx.flags.bg == "" {
		cfg.BgColor = "default"
	}
	doc, err := cliCtx.newDocument(host, cfg, title, lines)
	if err != nil {
		return err
	}

	surf := ui.NewANSISurface(cliCtx.out, pairs)
	err = doc.Render(surf, 0, 0, 0, doc.RowCount(), renderWidth(cliCtx))
	surf.Finish()
	return err
}

// renderWidth clips output to the terminal width when writing to one.
func renderWidth(cliCtx *CliContext) int {
	if f, ok := cliCtx.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return math.MaxInt32
}
