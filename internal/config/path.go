// Package config holds filesystem defaults and path helpers.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDatabasePath is where the tracker database lives unless
// database.path overrides it.
const DefaultDatabasePath = "$HOME/.local/share/pennyflow/pennyflow.db"

// ExpandPath resolves a leading ~ and any $VAR references in a path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}
