/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package ui

import (
	"sync"

	"github.com/mikeb26/tuikit/internal/log"
	"github.com/mikeb26/tuikit/internal/types"
)

type pairKey struct {
	fg types.Color
	bg types.Color
}

// PairInitFunc is invoked once for every newly allocated pair.
type PairInitFunc func(h types.PairHandle, fg, bg types.Color) error

// PairTable is a types.ColorRegistry that hands out sequential pair
// handles starting at 1. Handle 0 is reserved for the terminal default.
type PairTable struct {
	mu       sync.Mutex
	pairs    map[pairKey]types.PairHandle
	byHandle []pairKey
	maxPairs int
	colors   int
	initPair PairInitFunc
}

// NewPairTable creates a table holding at most maxPairs-1 pairs for a
// terminal with the given number of colors. Non-positive limits mean
// unlimited. initPair may be nil.
func NewPairTable(maxPairs, colors int, initPair PairInitFunc) *PairTable {
	return &PairTable{
		pairs:    make(map[pairKey]types.PairHandle),
		byHandle: []pairKey{{types.ColorDefault, types.ColorDefault}},
		maxPairs: maxPairs,
		colors:   colors,
		initPair: initPair,
	}
}

// fold maps colors the terminal cannot show onto ones it can.
func (pt *PairTable) fold(c types.Color) types.Color {
	if c == types.ColorNone {
		return types.ColorDefault
	}
	if pt.colors <= 0 || c < 0 || int(c) < pt.colors {
		return c
	}
	if c < 16 {
		return c - 8
	}
	return types.ColorDefault
}

func (pt *PairTable) PairFor(fg, bg types.Color) types.PairHandle {
	key := pairKey{pt.fold(fg), pt.fold(bg)}

	pt.mu.Lock()
	defer pt.mu.Unlock()
	if h, ok := pt.pairs[key]; ok {
		return h
	}
	if pt.maxPairs > 0 && len(pt.byHandle) >= pt.maxPairs {
		log.Entry("ui").WithField("fg", key.fg).WithField("bg", key.bg).
			Warn("color pairs exhausted")
		return types.NoPair
	}

	h := types.PairHandle(len(pt.byHandle))
	if pt.initPair != nil {
		if err := pt.initPair(h, key.fg, key.bg); err != nil {
			log.Entry("ui").WithError(err).Warn("failed to initialize color pair")
			return types.NoPair
		}
	}
	pt.byHandle = append(pt.byHandle, key)
	pt.pairs[key] = h
	return h
}

// Colors returns the colors registered for h; the terminal default for
// unknown handles.
func (pt *PairTable) Colors(h types.PairHandle) (fg, bg types.Color) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if h < 0 || int(h) >= len(pt.byHandle) {
		return types.ColorDefault, types.ColorDefault
	}
	k := pt.byHandle[h]
	return k.fg, k.bg
}

// Len is the number of allocated pairs, excluding the default.
func (pt *PairTable) Len() int {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return len(pt.byHandle) - 1
}
