// Package config manages user preferences stored as JSON5/JSON files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDir   = "urlcoder"
	fileName = "config.json"
)

// ConfigPath returns $XDG_CONFIG_HOME/urlcoder/config.json, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func ConfigPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locating config directory: %w", err)
		}

		base = filepath.Join(home, ".config")
	}

	return filepath.Join(base, appDir, fileName), nil
}
