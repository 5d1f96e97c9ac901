// Package config manages packstore configuration and filesystem paths.
//
// Configuration includes the locations of packstore data directories, which
// can be customized via environment variables or .env files. The default root
// is ~/.packstore/ containing the registry index, the archive blobs, and the
// default target store.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by packstore.
type Paths struct {
	// Root is the base directory for all packstore data (default: ~/.packstore)
	Root string

	// Index is the directory holding the registry's per-package JSON records
	Index string

	// Blobs is the directory holding registered archive bytes keyed by digest
	Blobs string

	// Store is the default target store directory packages install into
	Store string
}

// PathsFor derives the full path set from a root directory.
func PathsFor(root string) *Paths {
	return &Paths{
		Root:  root,
		Index: filepath.Join(root, "index"),
		Blobs: filepath.Join(root, "blobs"),
		Store: filepath.Join(root, "store"),
	}
}

// DefaultPaths returns the default paths for packstore.
// Paths can be overridden with environment variables:
// - PACKSTORE_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("PACKSTORE_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".packstore")
	}
	return PathsFor(root), nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Index,
		p.Blobs,
		p.Store,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
