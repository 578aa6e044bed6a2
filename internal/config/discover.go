package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is the directory, relative to the project root, holding blaze resources.
const DefaultDir = "blaze"

// EnvConfig names the environment variable that overrides config discovery.
const EnvConfig = "BLAZE_CONFIG"

// candidateNames are checked in order inside DefaultDir.
var candidateNames = []string{
	"lint_config.json",
	"lint_config.yaml",
	"lint_config.yml",
}

// ErrNotFound is returned by Discover when no config resource exists.
var ErrNotFound = errors.New("no lint config found")

// Discover returns the config path for a project root.
// BLAZE_CONFIG wins when set; otherwise the first existing candidate under
// <root>/blaze is used.
func Discover(root string) (string, error) {
	if env := strings.TrimSpace(os.Getenv(EnvConfig)); env != "" {
		return env, nil
	}

	for _, name := range candidateNames {
		path := filepath.Join(root, DefaultDir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// DefaultPath returns the path init writes a starter config to.
func DefaultPath(root string) string {
	return filepath.Join(root, DefaultDir, "lint_config.yaml")
}
