/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package markup turns marked-up strings into token streams. Each markup
// grammar implements Parser and is selected by a ContentType through a
// Registry that creates one parser instance per content type on first use.
package markup

import (
	"fmt"
	"iter"
	"sort"
	"sync"

	"github.com/mikeb26/tuikit/internal/log"
)

type ContentType string

const (
	ContentTmux ContentType = "tmux"
	ContentANSI ContentType = "ansi"
)

// Parser tokenizes one line of markup. The returned sequence re-parses
// from the start of line each time it is ranged over; implementations
// keep no per-line state between calls.
type Parser interface {
	ParseFormat(line string) iter.Seq[Token]
}

// Factory creates a Parser.
type Factory func() Parser

// Registry maps content types to parser factories and caches the first
// instance created for each content type.
//
// Registering a factory after its content type has been looked up has no
// effect on the cached instance.
type Registry struct {
	mu        sync.Mutex
	factories map[ContentType]Factory
	instances map[ContentType]Parser
}

// NewRegistry returns a registry with the tmux and ANSI parsers
// registered.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[ContentType]Factory),
		instances: make(map[ContentType]Parser),
	}
	r.Register(ContentTmux, func() Parser { return NewTmuxParser() })
	r.Register(ContentANSI, func() Parser { return NewANSIParser() })
	return r
}

func (r *Registry) Register(ct ContentType, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[ct] = f
}

// Lookup returns the cached parser for ct, creating it on first use.
func (r *Registry) Lookup(ct ContentType) (Parser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.instances[ct]; ok {
		return p, nil
	}
	f, ok := r.factories[ct]
	if !ok || f == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContentType, ct)
	}
	p := f()
	r.instances[ct] = p
	log.Entry("markup").WithField("content_type", ct).Debug("instantiated parser")
	return p, nil
}

// ContentTypes lists the registered content types in sorted order.
func (r *Registry) ContentTypes() []ContentType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ContentType, 0, len(r.factories))
	for ct := range r.factories {
		out = append(out, ct)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var defaultRegistry = NewRegistry()

// Register adds a factory to the process-wide registry.
func Register(ct ContentType, f Factory) { defaultRegistry.Register(ct, f) }

// Lookup resolves ct against the process-wide registry.
func Lookup(ct ContentType) (Parser, error) { return defaultRegistry.Lookup(ct) }

// ContentTypes lists the content types known to the process-wide registry.
func ContentTypes() []ContentType { return defaultRegistry.ContentTypes() }
