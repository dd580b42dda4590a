// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

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

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultDBPath returns the default path for the SQLite library database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), "readquest", "readquest.db")
}

// DefaultStateDir returns the directory for the key/value state files.
func DefaultStateDir() string {
	return filepath.Join(XDGDataHome(), "readquest", "state")
}

// DefaultBookDir returns the directory imported books are copied into.
func DefaultBookDir() string {
	return filepath.Join(XDGDataHome(), "readquest", "books")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "readquest", "config.toml")
}
