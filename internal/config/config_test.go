/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mikeb26/tuikit/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestLoadPrefsMissingFileYieldsDefaults(t *testing.T) {
	prefs, err := LoadPrefsFrom(filepath.Join(t.TempDir(), "nope.json"))
	assert.NoError(t, err)
	assert.Equal(t, DefaultPrefs(), prefs)
}

func TestSaveAndLoadPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", PrefsFile)
	in := Prefs{DefaultFg: "green", DefaultBg: "default", DefaultAttr: "bold", ContentType: "ansi"}
	assert.NoError(t, SavePrefsTo(path, in))

	out, err := LoadPrefsFrom(path)
	assert.NoError(t, err)
	assert.Equal(t, in, out)

	fg, bg, attr := out.Colors()
	assert.Equal(t, types.ColorGreen, fg)
	assert.Equal(t, types.ColorDefault, bg)
	assert.Equal(t, types.AttrBold, attr)
}

func TestLoadPrefsPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), PrefsFile)
	assert.NoError(t, os.WriteFile(path, []byte(`{"default_fg":"yellow"}`), 0600))

	prefs, err := LoadPrefsFrom(path)
	assert.NoError(t, err)
	assert.Equal(t, "yellow", prefs.DefaultFg)
	assert.Equal(t, "black", prefs.DefaultBg)
	assert.Equal(t, "tmux", prefs.ContentType)
}

func TestLoadPrefsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), PrefsFile)
	assert.NoError(t, os.WriteFile(path, []byte(`{`), 0600))

	_, err := LoadPrefsFrom(path)
	assert.Error(t, err)
}

func TestColorsFallBackOnGarbage(t *testing.T) {
	fg, bg, attr := Prefs{DefaultFg: "mauve", DefaultAttr: "wobbly"}.Colors()
	assert.Equal(t, types.ColorWhite, fg)
	assert.Equal(t, types.ColorBlack, bg)
	assert.Equal(t, types.AttrNormal, attr)
}

func TestGetStyleDirPrecedence(t *testing.T) {
	t.Setenv(StyleDirEnv, "/from/env")
	dir, err := Prefs{StyleDir: "/from/prefs"}.GetStyleDir()
	assert.NoError(t, err)
	assert.Equal(t, "/from/prefs", dir)

	dir, err = Prefs{}.GetStyleDir()
	assert.NoError(t, err)
	assert.Equal(t, "/from/env", dir)

	t.Setenv(StyleDirEnv, "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir, err = Prefs{}.GetStyleDir()
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", CommandName, StylesDir), dir)
}
