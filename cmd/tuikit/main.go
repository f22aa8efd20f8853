/* Copyright © 2023-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mikeb26/tuikit/internal/chunk"
	"github.com/mikeb26/tuikit/internal/colorparser"
	"github.com/mikeb26/tuikit/internal/config"
	"github.com/mikeb26/tuikit/internal/document"
	"github.com/mikeb26/tuikit/internal/log"
	"github.com/mikeb26/tuikit/internal/markup"
	"github.com/mikeb26/tuikit/internal/selection"
	"github.com/mikeb26/tuikit/internal/types"
	"github.com/spf13/pflag"
)

var subCommandTab = map[string]func(ctx context.Context,
	cliCtx *CliContext, args []string) error{

	"render":  renderMain,
	"view":    viewMain,
	"select":  selectMain,
	"styles":  stylesMain,
	"help":    helpMain,
	"version": versionMain,
}

// flags holds the parsed command line options shared by all subcommands.
type flags struct {
	contentType string
	style       string
	styleDir    string
	fg          string
	bg          string
	colorWhen   string
	mode        string
	pattern     string
	invert      bool
	logLevel    string
	logFile     string
}

type CliContext struct {
	prefs config.Prefs
	flags flags
	in    io.Reader
	out   io.Writer
	// errOut receives prompts so that out carries only results.
	errOut io.Writer
	// closeLog releases the log file, if any.
	closeLog func()
}

func NewCliContext() *CliContext {
	return &CliContext{
		prefs:    config.DefaultPrefs(),
		in:       os.Stdin,
		out:      os.Stdout,
		errOut:   os.Stderr,
		closeLog: func() {},
	}
}

func newFlagSet(f *flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet(config.CommandName, pflag.ContinueOnError)
	fs.SetInterspersed(true)
	fs.StringVarP(&f.contentType, "type", "t", "", "markup type of the input (tmux or ansi)")
	fs.StringVarP(&f.style, "style", "s", "", "stylesheet name or path")
	fs.StringVar(&f.styleDir, "style-dir", "", "directory searched for stylesheet names")
	fs.StringVar(&f.fg, "fg", "", "default foreground color")
	fs.StringVar(&f.bg, "bg", "", "default background color")
	fs.StringVar(&f.colorWhen, "color", "auto", "color output for render: auto, always or never")
	fs.StringVarP(&f.mode, "mode", "m", "multiple", "selection mode: single or multiple")
	fs.StringVarP(&f.pattern, "pattern", "p", "", "rows to select")
	fs.BoolVarP(&f.invert, "invert", "v", false, "select the rows not matching --pattern")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level")
	fs.StringVar(&f.logFile, "log-file", "", "log destination (default stderr)")
	return fs
}

// parseArgs fills cliCtx.flags from argv (without the program name) and
// returns the subcommand and its positional arguments. Preferences fill
// in whatever the command line leaves unset.
func (cliCtx *CliContext) parseArgs(argv []string) (string, []string, error) {
	fs := newFlagSet(&cliCtx.flags)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return "help", nil, nil
		}
		return "", nil, err
	}
	f := &cliCtx.flags
	if f.contentType == "" {
		f.contentType = cliCtx.prefs.ContentType
	}
	if f.styleDir == "" {
		dir, err := cliCtx.prefs.GetStyleDir()
		if err == nil {
			f.styleDir = dir
		}
	}
	switch f.colorWhen {
	case "auto", "always", "never":
	default:
		return "", nil, fmt.Errorf("%w: --color=%v", ErrInvalidFlag, f.colorWhen)
	}
	if _, err := cliCtx.selectionMode(); err != nil {
		return "", nil, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return "help", nil, nil
	}
	return rest[0], rest[1:], nil
}

func (cliCtx *CliContext) selectionMode() (selection.Mode, error) {
	switch strings.ToLower(cliCtx.flags.mode) {
	case "", "multiple", "multi":
		return selection.ModeMultiple, nil
	case "single":
		return selection.ModeSingle, nil
	}
	return selection.ModeMultiple,
		fmt.Errorf("%w: --mode=%v", ErrInvalidFlag, cliCtx.flags.mode)
}

func (cliCtx *CliContext) configureLog() error {
	var out io.Writer = os.Stderr
	if cliCtx.flags.logFile != "" {
		f, err := os.OpenFile(cliCtx.flags.logFile,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		out = f
		cliCtx.closeLog = func() { _ = f.Close() }
	}
	return log.Configure(cliCtx.flags.logLevel, out)
}

// applyColorWhen decides whether render emits escapes.
func (cliCtx *CliContext) applyColorWhen() {
	switch cliCtx.flags.colorWhen {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
	// "auto" keeps fatih/color's own terminal detection
}

// parserConfig is the default style documents are parsed with: the
// preferences overridden by --fg and --bg.
func (cliCtx *CliContext) parserConfig() colorparser.StyleDef {
	cfg := colorparser.StyleDef{
		Color:   cliCtx.prefs.DefaultFg,
		BgColor: cliCtx.prefs.DefaultBg,
	}
	if cliCtx.prefs.DefaultAttr != "" {
		cfg.Attr = colorparser.AttrSpec{cliCtx.prefs.DefaultAttr}
	}
	if cliCtx.flags.fg != "" {
		cfg.Color = cliCtx.flags.fg
	}
	if cliCtx.flags.bg != "" {
		cfg.BgColor = cliCtx.flags.bg
	}
	return cfg
}

// newDocument builds a document over lines parsed for host.
func (cliCtx *CliContext) newDocument(host colorparser.Host,
	cfg colorparser.StyleDef, title string,
	lines []string) (*document.TextDocument, error) {

	opts := []document.Option{
		document.WithTitle(title),
		document.WithStyleDir(cliCtx.flags.styleDir),
		document.WithConfig(cfg),
	}
	if cliCtx.flags.style != "" {
		opts = append(opts, document.WithStylesheet(cliCtx.flags.style))
	}
	doc, err := document.New(markup.ContentType(cliCtx.flags.contentType), host, opts...)
	if err != nil {
		return nil, err
	}
	doc.SetText(lines)
	return doc, nil
}

// readInput returns the lines of the named files, or of cliCtx.in when
// no files are named, along with a title for the document.
func (cliCtx *CliContext) readInput(files []string) ([]string, string, error) {
	if len(files) == 0 {
		lines, err := readLines(cliCtx.in)
		return lines, "stdin", err
	}
	var lines []string
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, "", err
		}
		fileLines, err := readLines(f)
		_ = f.Close()
		if err != nil {
			return nil, "", fmt.Errorf("%v: %w", name, err)
		}
		lines = append(lines, fileLines...)
	}
	return lines, strings.Join(files, " "), nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}

func (cliCtx *CliContext) getSubCmd(name string) func(context.Context,
	*CliContext, []string) error {

	return subCommandTab[name]
}

//go:embed help.txt
var helpText string

func helpMain(ctx context.Context, cliCtx *CliContext, args []string) error {
	fmt.Fprint(cliCtx.out, helpText)

	return nil
}

//go:embed version.txt
var versionText string

func versionMain(ctx context.Context, cliCtx *CliContext, args []string) error {
	fmt.Fprintf(cliCtx.out, "%v-%v\n", config.CommandName,
		strings.TrimSpace(versionText))

	return nil
}

// stylesMain lists the styles of the named stylesheet.
func stylesMain(ctx context.Context, cliCtx *CliContext, args []string) error {
	name := cliCtx.flags.style
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return ErrMissingStylesheet
	}
	sheet, err := colorparser.LoadStylesheet(
		colorparser.ResolveStylesheetPath(name, cliCtx.flags.styleDir))
	if err != nil {
		return err
	}
	fmt.Fprintf(cliCtx.out, "%v:\n", sheet.Path())
	for _, n := range sheet.Names() {
		st, _ := sheet.Lookup(n)
		fmt.Fprintf(cliCtx.out, "  %-16v %v\n", n, describeStyle(st))
	}

	return nil
}

func describeStyle(st markup.Style) string {
	var parts []string
	if st.Fg.IsSet() {
		parts = append(parts, "fg="+st.Fg.String())
	}
	if st.Bg.IsSet() {
		parts = append(parts, "bg="+st.Bg.String())
	}
	if st.HasAttr {
		parts = append(parts, "attr="+st.Attr.String())
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}

// applyPrefs pushes the preferred default colors into the process-wide
// chunk defaults.
func (cliCtx *CliContext) applyPrefs() {
	fg, bg, _ := cliCtx.prefs.Colors()
	chunk.Global().SetColors(fg, bg)
}

func (cliCtx *CliContext) defaultAttr() types.Attr {
	_, _, attr := cliCtx.prefs.Colors()
	return attr
}

func main() {
	ctx := context.Background()
	cliCtx := NewCliContext()

	prefs, err := config.LoadPrefs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: Failed to load preferences: %v\n",
			config.CommandName, err)
	} else {
		cliCtx.prefs = prefs
	}
	cliCtx.applyPrefs()

	cmd, args, err := cliCtx.parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v. Try 'help'.\n", config.CommandName, err)
		os.Exit(2)
	}
	if err := cliCtx.configureLog(); err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", config.CommandName, err)
		os.Exit(2)
	}
	defer cliCtx.closeLog()

	subCmdFunc := cliCtx.getSubCmd(cmd)
	if subCmdFunc == nil {
		fmt.Fprintf(os.Stderr, "%v: %v %v. Try 'help'.\n", config.CommandName,
			ErrUnknownCommand, cmd)
		os.Exit(2)
	}
	if err := subCmdFunc(ctx, cliCtx, args); err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", config.CommandName, err)
		cliCtx.closeLog()
		os.Exit(1)
	}
}
