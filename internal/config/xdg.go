// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/pass-phrase/internal/model"
)

const appName = "pass-phrase"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// UserWordListPath returns the word list path for a role in the user
// configuration directory.
func UserWordListPath(role model.Role) string {
	return filepath.Join(XDGConfigHome(), appName, string(role)+".txt")
}

// LegacyWordListPath returns ~/.pass-phrase/<role>.txt, the location used
// by earlier releases. It is empty when the home directory is unknown.
func LegacyWordListPath(role model.Role) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, "."+appName, string(role)+".txt")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
