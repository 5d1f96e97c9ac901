package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("returns paths based on home directory", func(t *testing.T) {
		t.Setenv("PACKSTORE_ROOT", "")
		os.Unsetenv("PACKSTORE_ROOT")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root == "" {
			t.Error("Root should not be empty")
		}
		if filepath.Base(paths.Root) != ".packstore" {
			t.Errorf("Root should end with .packstore, got: %s", paths.Root)
		}
		if paths.Index != filepath.Join(paths.Root, "index") {
			t.Errorf("Index path incorrect: got %s", paths.Index)
		}
		if paths.Blobs != filepath.Join(paths.Root, "blobs") {
			t.Errorf("Blobs path incorrect: got %s", paths.Blobs)
		}
		if paths.Store != filepath.Join(paths.Root, "store") {
			t.Errorf("Store path incorrect: got %s", paths.Store)
		}
	})

	t.Run("respects PACKSTORE_ROOT environment variable", func(t *testing.T) {
		customRoot := "/custom/packstore/path"
		t.Setenv("PACKSTORE_ROOT", customRoot)

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root != customRoot {
			t.Errorf("Expected root %s, got %s", customRoot, paths.Root)
		}
		if paths.Index != filepath.Join(customRoot, "index") {
			t.Errorf("Index should be under custom root, got: %s", paths.Index)
		}
	})
}

func TestPaths_EnsureDirectories(t *testing.T) {
	t.Run("creates all necessary directories", func(t *testing.T) {
		paths := PathsFor(filepath.Join(t.TempDir(), "packstore"))

		if err := paths.EnsureDirectories(); err != nil {
			t.Fatalf("EnsureDirectories failed: %v", err)
		}

		for _, dir := range []string{paths.Root, paths.Index, paths.Blobs, paths.Store} {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				t.Errorf("Directory %s was not created", dir)
			}
		}
	})

	t.Run("succeeds if directories already exist", func(t *testing.T) {
		paths := PathsFor(filepath.Join(t.TempDir(), "packstore"))
		if err := paths.EnsureDirectories(); err != nil {
			t.Fatalf("first EnsureDirectories failed: %v", err)
		}
		if err := paths.EnsureDirectories(); err != nil {
			t.Errorf("EnsureDirectories should succeed with existing dirs: %v", err)
		}
	})

	t.Run("creates nested directories", func(t *testing.T) {
		deepRoot := filepath.Join(t.TempDir(), "a", "b", "c", "packstore")
		paths := PathsFor(deepRoot)

		if err := paths.EnsureDirectories(); err != nil {
			t.Fatalf("EnsureDirectories failed for nested path: %v", err)
		}
		if _, err := os.Stat(deepRoot); os.IsNotExist(err) {
			t.Error("Nested root directory was not created")
		}
	})
}
