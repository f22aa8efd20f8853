/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"context"
	"fmt"

	"github.com/mikeb26/tuikit/internal/log"
	"github.com/mikeb26/tuikit/internal/selection"
	"github.com/mikeb26/tuikit/internal/types"
	"github.com/mikeb26/tuikit/internal/ui"
)

// selectMain prints the rows matching --pattern, or with --invert the
// rows that do not match. Without --pattern the pattern is read from
// stdin, which then cannot also carry the rows.
func selectMain(ctx context.Context, cliCtx *CliContext, args []string) error {
	if cliCtx.flags.pattern == "" && len(args) == 0 {
		return ErrPatternRequired
	}
	lines, title, err := cliCtx.readInput(args)
	if err != nil {
		return err
	}
	mode, err := cliCtx.selectionMode()
	if err != nil {
		return err
	}
	// inverting starts from every row selected, which single mode cannot hold
	if cliCtx.flags.invert && mode == selection.ModeSingle {
		return fmt.Errorf("%w: --invert requires --mode multiple", ErrInvalidFlag)
	}

	host := &ui.Host{Registry: noColorRegistry{}, Attr: cliCtx.defaultAttr()}
	doc, err := cliCtx.newDocument(host, cliCtx.parserConfig(), title, lines)
	if err != nil {
		return err
	}
	lv := ui.NewListView(doc, mode, ui.DefaultTheme())
	lv.AddSelectionListener(func(ev selection.Event) {
		log.Entry("select").WithField("event", ev.String()).Debug("selection changed")
	})

	sel := lv.Selection()
	if cliCtx.flags.invert {
		sel.SelectAll(0)
		err = unselectMatching(sel, cliCtx)
	} else {
		err = selectMatching(sel, cliCtx)
	}
	if err != nil {
		return err
	}

	for _, text := range lv.SelectedText() {
		fmt.Fprintln(cliCtx.out, text)
	}
	return nil
}

func selectMatching(sel *selection.Model[string], cliCtx *CliContext) error {
	if cliCtx.flags.pattern != "" {
		sel.SelectByPattern(cliCtx.flags.pattern)
		return nil
	}
	return sel.SelectByPrompt(ui.NewStdioUI().WithReader(cliCtx.in).
		WithWriter(cliCtx.errOut))
}

func unselectMatching(sel *selection.Model[string], cliCtx *CliContext) error {
	if cliCtx.flags.pattern != "" {
		sel.UnselectByPattern(cliCtx.flags.pattern)
		return nil
	}
	return sel.UnselectByPrompt(ui.NewStdioUI().WithReader(cliCtx.in).
		WithWriter(cliCtx.errOut))
}

// noColorRegistry hands out the default pair for everything. It backs
// documents that are never drawn in color.
type noColorRegistry struct{}

func (noColorRegistry) PairFor(fg, bg types.Color) types.PairHandle { return types.NoPair }
