// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// UserConfigDir returns ~/.config/signup, or "" when the home directory is
// unknown.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "signup")
}

// Expand resolves a user-supplied path from the config file or a flag.
//
//   - "" -> ""
//   - "~" and "~/x" -> the home directory, and x below it
//   - "$VAR/x" and "${VAR}/x" -> environment variables substituted
//
// The result is cleaned. "~user" forms are left alone, as is "~" when the home
// directory cannot be determined.
func Expand(path string) string {
	if path == "" {
		return ""
	}
	path = os.ExpandEnv(path)

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Clean(path)
}
