package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/danieljhkim/packstore/internal/archive"
	"github.com/danieljhkim/packstore/internal/clock"
	"github.com/danieljhkim/packstore/internal/config"
	"github.com/danieljhkim/packstore/internal/content"
	"github.com/danieljhkim/packstore/internal/fsops"
	"github.com/danieljhkim/packstore/internal/hash"
	"github.com/danieljhkim/packstore/internal/logging"
	"github.com/danieljhkim/packstore/internal/registry"
)

// runtime bundles the wired collaborators every command works against.
type runtime struct {
	settings *config.Settings
	paths    *config.Paths
	logger   *slog.Logger
	registry *registry.FileRegistry
}

// newRuntime creates a runtime with real implementations of all dependencies.
func newRuntime() (*runtime, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	paths, err := settings.Paths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	logger := logging.NewLogger(os.Stderr, logging.ParseLevel(settings.LogLevel), settings.NoColor)

	fs := fsops.NewRealFS()
	reg, err := registry.NewFileRegistry(
		fs,
		archive.NewZipReader(),
		registry.NewFileBlobStore(fs, paths.Blobs),
		hash.NewSHA256Hasher(),
		&clock.RealClock{},
		paths.Index,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}

	return &runtime{
		settings: settings,
		paths:    paths,
		logger:   logger,
		registry: reg,
	}, nil
}

// newStore creates the target store for install operations. An empty dir
// falls back to the configured default store directory.
func (r *runtime) newStore(dir string) *content.FSStore {
	if dir == "" {
		dir = r.settings.StoreDir(r.paths)
	}
	return content.NewFSStore(fsops.NewRealFS(), dir, r.logger)
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
