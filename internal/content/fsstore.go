package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/packstore/internal/fsops"
)

// FSStore is a content store backed by a directory tree. Store paths map
// directly below the root directory, so "/libs/foo" lands at
// <root>/libs/foo.
type FSStore struct {
	fs     fsops.FS
	root   string
	logger *slog.Logger
}

// NewFSStore creates a store rooted at the given directory.
func NewFSStore(fs fsops.FS, root string, logger *slog.Logger) *FSStore {
	return &FSStore{fs: fs, root: root, logger: logger}
}

// Resolve maps a store path to its location on disk.
func (s *FSStore) Resolve(path string) string {
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(NormalizePath(path), "/")))
}

// Exists reports whether a store path currently exists.
func (s *FSStore) Exists(path string) (bool, error) {
	return s.fs.Exists(s.Resolve(path))
}

// Install writes the package entries that pass the filter. Excluded entries
// are reported with ActionIgnored and left untouched.
func (s *FSStore) Install(ctx context.Context, pkg PackageContent, opts Options) error {
	entries, err := pkg.Entries(ctx)
	if err != nil {
		return fmt.Errorf("failed to read package content: %w", err)
	}

	listener := opts.listener()
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !opts.Filter.Covers(entry.Path) {
			listener.OnMessage(ModePaths, ActionIgnored, entry.Path)
			continue
		}

		target := s.Resolve(entry.Path)
		if entry.IsDir {
			err = s.fs.MkdirAll(target, 0755)
		} else {
			err = s.fs.AtomicWrite(target, entry.Data, 0644)
		}
		if err != nil {
			listener.OnError(ModePaths, entry.Path, err)
			return fmt.Errorf("failed to write %s: %w", entry.Path, err)
		}
		listener.OnMessage(ModePaths, ActionAdded, entry.Path)
	}

	if s.logger != nil {
		s.logger.Debug("installed package content", "package", pkg.ID(), "entries", len(entries))
	}
	return nil
}

// Uninstall removes the package entries that pass the filter. Files are
// removed individually; directories are removed only when empty.
func (s *FSStore) Uninstall(ctx context.Context, pkg PackageContent, opts Options) error {
	entries, err := pkg.Entries(ctx)
	if err != nil {
		return fmt.Errorf("failed to read package content: %w", err)
	}

	listener := opts.listener()
	// Reverse order so files go before their parent directories.
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		if err := ctx.Err(); err != nil {
			return err
		}
		if !opts.Filter.Covers(entry.Path) {
			listener.OnMessage(ModePaths, ActionIgnored, entry.Path)
			continue
		}

		target := s.Resolve(entry.Path)
		exists, err := s.fs.Exists(target)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", entry.Path, err)
		}
		if !exists {
			continue
		}

		if entry.IsDir {
			// Non-empty directories stay: another package may still own
			// content below them.
			_ = s.fs.Remove(target)
		} else if err := s.fs.Remove(target); err != nil {
			listener.OnError(ModePaths, entry.Path, err)
			return fmt.Errorf("failed to remove %s: %w", entry.Path, err)
		}
		listener.OnMessage(ModePaths, ActionDeleted, entry.Path)
	}

	if s.logger != nil {
		s.logger.Debug("uninstalled package content", "package", pkg.ID())
	}
	return nil
}
