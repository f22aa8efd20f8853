/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package chunk

import (
	"sync"

	"github.com/mikeb26/tuikit/internal/types"
)

// Defaults holds the foreground/background pair that terminates every
// parent-chain color lookup.
//
// The process-wide instance returned by Global is created at package
// init, may be read and written at any time afterwards, and is never torn
// down. Chunks never copy these values at parse time so that a change here
// is visible on the next render without reparsing.
type Defaults struct {
	mu sync.RWMutex
	fg types.Color
	bg types.Color
	// fallback supplies the sides left as types.ColorNone; nil means
	// Global().
	fallback *Defaults
}

func NewDefaults(fg, bg types.Color) *Defaults {
	return &Defaults{fg: fg, bg: bg}
}

// NewDefaultsOver returns defaults that read any side given as
// types.ColorNone from fallback (Global() when nil) on every lookup.
func NewDefaultsOver(fallback *Defaults, fg, bg types.Color) *Defaults {
	return &Defaults{fg: fg, bg: bg, fallback: fallback}
}

var global = NewDefaults(types.ColorWhite, types.ColorBlack)

// Global returns the process-wide defaults.
func Global() *Defaults { return global }

func (d *Defaults) Colors() (fg, bg types.Color) {
	d.mu.RLock()
	fg, bg = d.fg, d.bg
	next := d.fallback
	d.mu.RUnlock()
	if fg.IsSet() && bg.IsSet() {
		return fg, bg
	}
	if next == nil {
		next = global
	}
	if next == d {
		return fg, bg
	}
	nfg, nbg := next.Colors()
	if !fg.IsSet() {
		fg = nfg
	}
	if !bg.IsSet() {
		bg = nbg
	}
	return fg, bg
}

func (d *Defaults) SetColors(fg, bg types.Color) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if fg.IsSet() {
		d.fg = fg
	}
	if bg.IsSet() {
		d.bg = bg
	}
}

// Palette is the render-time context handed down to chunk resolution: the
// registry that turns (fg, bg) into pair handles and the defaults that end
// the parent chain. A nil Defaults means Global().
type Palette struct {
	Registry types.ColorRegistry
	Defaults *Defaults
}

func (p Palette) defaults() *Defaults {
	if p.Defaults == nil {
		return global
	}
	return p.Defaults
}

// DefaultPair returns the pair for the current default colors.
func (p Palette) DefaultPair() types.PairHandle {
	fg, bg := p.defaults().Colors()
	return p.Registry.PairFor(fg, bg)
}
