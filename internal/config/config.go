/* Copyright © 2023-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mikeb26/tuikit/internal/types"
)

const (
	CommandName  = "tuikit"
	PrefsFile    = "prefs.json"
	StylesDir    = "styles"
	StyleDirEnv  = "TUIKIT_STYLE_DIR"
	StyleFileExt = ".yml"
)

// Prefs are the user preferences persisted in prefs.json.
type Prefs struct {
	DefaultFg   string `json:"default_fg,omitempty"`
	DefaultBg   string `json:"default_bg,omitempty"`
	DefaultAttr string `json:"default_attr,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	StyleDir    string `json:"style_dir,omitempty"`
}

func DefaultPrefs() Prefs {
	return Prefs{
		DefaultFg:   "white",
		DefaultBg:   "black",
		DefaultAttr: "normal",
		ContentType: "tmux",
	}
}

// Colors parses the default colors and attribute, substituting the
// built-in defaults for anything missing or unparseable.
func (p Prefs) Colors() (fg, bg types.Color, attr types.Attr) {
	fg, bg, attr = types.ColorWhite, types.ColorBlack, types.AttrNormal
	if c, ok := types.ParseColor(p.DefaultFg); ok {
		fg = c
	}
	if c, ok := types.ParseColor(p.DefaultBg); ok {
		bg = c
	}
	if a, ok := types.ParseAttrList(p.DefaultAttr); ok {
		attr = a
	}
	return fg, bg, attr
}

func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("Could not find user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", CommandName), nil
}

func GetPrefsPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, PrefsFile), nil
}

// GetStyleDir returns the stylesheet base directory: prefs.StyleDir, else
// $TUIKIT_STYLE_DIR, else ~/.config/tuikit/styles.
func (p Prefs) GetStyleDir() (string, error) {
	if p.StyleDir != "" {
		return p.StyleDir, nil
	}
	if dir := os.Getenv(StyleDirEnv); dir != "" {
		return dir, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, StylesDir), nil
}

// LoadPrefs reads prefs from the default location.
func LoadPrefs() (Prefs, error) {
	filePath, err := GetPrefsPath()
	if err != nil {
		return DefaultPrefs(), fmt.Errorf("Failed to get prefs path: %w", err)
	}
	return LoadPrefsFrom(filePath)
}

// LoadPrefsFrom reads prefs from filePath. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadPrefsFrom(filePath string) (Prefs, error) {
	prefs := DefaultPrefs()
	prefsFileContent, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("Failed to read prefs: %w", err)
	}
	err = json.Unmarshal(prefsFileContent, &prefs)
	if err != nil {
		return DefaultPrefs(), fmt.Errorf("Failed to parse prefs %v: %w", filePath, err)
	}

	return prefs, nil
}

// SavePrefsTo writes prefs to filePath, creating its directory.
func SavePrefsTo(filePath string, prefs Prefs) error {
	prefsFileContent, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("Failed to marshal prefs: %w", err)
	}
	err = os.MkdirAll(filepath.Dir(filePath), 0700)
	if err != nil {
		return fmt.Errorf("Could not create config directory %v: %w",
			filepath.Dir(filePath), err)
	}
	err = os.WriteFile(filePath, prefsFileContent, 0600)
	if err != nil {
		return fmt.Errorf("Failed to save prefs: %w", err)
	}

	return nil
}
