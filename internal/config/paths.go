// Package config locates and loads rota roster files.
//
// The default root is ~/.rota/ containing roster.yaml. Both the root and the
// roster file can be overridden with environment variables or flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem paths used by rota.
type Paths struct {
	// Root is the base directory for rota data (default: ~/.rota)
	Root string

	// Roster is the default roster file
	Roster string
}

// DefaultPaths returns the default paths for rota.
// Paths can be overridden with environment variables:
// - ROTA_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("ROTA_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".rota")
	}

	return &Paths{
		Root:   root,
		Roster: filepath.Join(root, "roster.yaml"),
	}, nil
}

// ResolveRoster picks the roster file to load. Precedence: the explicit
// flag value, then ROTA_ROSTER, then the default path under the root.
func ResolveRoster(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv("ROTA_ROSTER"); env != "" {
		return env, nil
	}
	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	return paths.Roster, nil
}
