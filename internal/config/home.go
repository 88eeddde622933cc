package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the gen-make home directory.
const HomeEnv = "GENMAKE_HOME"

// GetHome returns the gen-make home directory
// Priority order:
//  1. GENMAKE_HOME environment variable (if set)
//  2. gen-make under the user configuration directory
//  3. .gen-make in the current working directory (fallback)
//
// The directory is created if it doesn't exist
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create gen-make home directory: %w", err)
		}
		return home, nil
	}

	base, err := os.UserConfigDir()
	if err == nil && base != "" {
		return GetHomeWithRoot(base, "gen-make")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return GetHomeWithRoot(cwd, ".gen-make")
}

// GetHomeWithRoot creates and returns root/name.
func GetHomeWithRoot(root, name string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("gen-make home root is empty")
	}
	home := filepath.Join(root, name)
	if err := os.MkdirAll(home, 0755); err != nil {
		return "", fmt.Errorf("create gen-make home directory: %w", err)
	}
	return home, nil
}

// HistoryDBPath returns the configured history database, defaulting to
// history.db in the home directory
func (c *Config) HistoryDBPath() (string, error) {
	if c.History.DBPath != "" {
		return c.History.DBPath, nil
	}
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "history.db"), nil
}
