/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package colorparser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mikeb26/tuikit/internal/markup"
	"github.com/mikeb26/tuikit/internal/types"
)

// AttrSpec accepts either a scalar ("bold,underline") or a YAML sequence
// of attribute words.
type AttrSpec []string

func (a *AttrSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*a = AttrSpec{value.Value}
		return nil
	case yaml.SequenceNode:
		var words []string
		if err := value.Decode(&words); err != nil {
			return err
		}
		*a = AttrSpec(words)
		return nil
	}
	return fmt.Errorf("attr: expected string or list at line %d", value.Line)
}

// StyleDef is one named style as written in a stylesheet file, and also
// the shape of a parser's default configuration.
type StyleDef struct {
	Color   string   `yaml:"color,omitempty" json:"color,omitempty"`
	BgColor string   `yaml:"bgcolor,omitempty" json:"bgcolor,omitempty"`
	Attr    AttrSpec `yaml:"attr,omitempty" json:"attr,omitempty"`
}

// Style converts the definition. Unparseable colors or attributes leave
// the corresponding field unset.
func (d StyleDef) Style() markup.Style {
	st := markup.EmptyStyle()
	if c, ok := types.ParseColor(d.Color); ok {
		st.Fg = c
	}
	if c, ok := types.ParseColor(d.BgColor); ok {
		st.Bg = c
	}
	if a, ok := types.ParseAttrList(strings.Join(d.Attr, ",")); ok {
		st.Attr = a
		st.HasAttr = true
	}
	return st
}

// Stylesheet maps style names to styles.
type Stylesheet struct {
	path   string
	styles map[string]markup.Style
}

// NewStylesheet builds a stylesheet in memory.
func NewStylesheet(defs map[string]StyleDef) *Stylesheet {
	s := &Stylesheet{styles: make(map[string]markup.Style, len(defs))}
	for name, def := range defs {
		s.styles[name] = def.Style()
	}
	return s
}

// ResolveStylesheetPath maps a stylesheet symbol to a file path. Anything
// that already looks like a path is returned unchanged; a bare name
// becomes <styleDir>/<name>.yml.
func ResolveStylesheetPath(nameOrPath, styleDir string) string {
	if strings.ContainsRune(nameOrPath, filepath.Separator) ||
		strings.HasSuffix(nameOrPath, ".yml") ||
		strings.HasSuffix(nameOrPath, ".yaml") {
		return nameOrPath
	}
	return filepath.Join(styleDir, nameOrPath+".yml")
}

// LoadStylesheet reads a YAML stylesheet of the form
//
//	warning:
//	  color: yellow
//	  bgcolor: default
//	  attr: [bold]
func LoadStylesheet(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrStylesheetNotFound, path)
		}
		return nil, fmt.Errorf("failed to read stylesheet %s: %w", path, err)
	}

	var defs map[string]StyleDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("failed to parse stylesheet %s: %w", path, err)
	}
	s := NewStylesheet(defs)
	s.path = path
	return s, nil
}

// Path is the file the stylesheet was loaded from, empty for in-memory
// stylesheets.
func (s *Stylesheet) Path() string { return s.path }

func (s *Stylesheet) Lookup(name string) (markup.Style, bool) {
	st, ok := s.styles[name]
	return st, ok
}

func (s *Stylesheet) Names() []string {
	names := make([]string, 0, len(s.styles))
	for n := range s.styles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
