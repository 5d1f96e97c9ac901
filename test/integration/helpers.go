package integration

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/danieljhkim/packstore/internal/archive"
	"github.com/danieljhkim/packstore/internal/clock"
	"github.com/danieljhkim/packstore/internal/content"
	"github.com/danieljhkim/packstore/internal/fsops"
	"github.com/danieljhkim/packstore/internal/hash"
	"github.com/danieljhkim/packstore/internal/registry"
)

// manifest mirrors the archive manifest wire form for test fixtures.
type manifest struct {
	ID           string   `json:"id"`
	Type         string   `json:"type,omitempty"`
	Filter       []string `json:"filter,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// buildArchive assembles a zip package archive in memory.
func buildArchive(t *testing.T, m manifest, entries map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	mw, err := zw.Create("meta/manifest.json")
	if err != nil {
		t.Fatalf("failed to create manifest entry: %v", err)
	}
	if err := json.NewEncoder(mw).Encode(m); err != nil {
		t.Fatalf("failed to encode manifest: %v", err)
	}
	for path, body := range entries {
		w, err := zw.Create("content" + path)
		if err != nil {
			t.Fatalf("failed to create entry %s: %v", path, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("failed to write entry %s: %v", path, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

// env bundles a real registry and store over temporary directories.
type env struct {
	registry *registry.FileRegistry
	store    *content.FSStore
}

func newEnv(t *testing.T) *env {
	t.Helper()

	fs := fsops.NewRealFS()
	reg, err := registry.NewFileRegistry(
		fs,
		archive.NewZipReader(),
		registry.NewFileBlobStore(fs, t.TempDir()),
		hash.NewSHA256Hasher(),
		clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		t.TempDir(),
		nil,
	)
	if err != nil {
		t.Fatalf("NewFileRegistry failed: %v", err)
	}
	return &env{
		registry: reg,
		store:    content.NewFSStore(fs, t.TempDir(), nil),
	}
}

func (e *env) register(t *testing.T, m manifest, entries map[string]string) {
	t.Helper()
	if _, err := e.registry.Register(bytes.NewReader(buildArchive(t, m, entries)), false); err != nil {
		t.Fatalf("Register(%s) failed: %v", m.ID, err)
	}
}

func (e *env) exists(t *testing.T, path string) bool {
	t.Helper()
	ok, err := e.store.Exists(path)
	if err != nil {
		t.Fatalf("Exists(%s) failed: %v", path, err)
	}
	return ok
}
