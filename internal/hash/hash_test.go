package hash

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSHA256Hasher_HashBytes(t *testing.T) {
	h := NewSHA256Hasher()

	// Known SHA-256 of "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got := h.HashBytes([]byte("hello")); got != want {
		t.Errorf("HashBytes = %q, want %q", got, want)
	}

	if h.HashBytes([]byte("a")) == h.HashBytes([]byte("b")) {
		t.Error("different inputs produced the same hash")
	}
}

func TestSHA256Hasher_HashFile(t *testing.T) {
	h := NewSHA256Hasher()
	path := filepath.Join(t.TempDir(), "content.bin")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	got, err := h.HashFile(path)
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	if got != h.HashBytes([]byte("hello")) {
		t.Errorf("HashFile = %q, want same as HashBytes", got)
	}

	if _, err := h.HashFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("HashFile on missing file succeeded, want error")
	}
}

func TestFakeHasher(t *testing.T) {
	h := NewFakeHasher()
	h.SetHash("/some/path", "abc")

	got, err := h.HashFile("/some/path")
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	if got != "abc" {
		t.Errorf("HashFile = %q, want %q", got, "abc")
	}

	got, _ = h.HashFile("/other")
	if got != "fakehash" {
		t.Errorf("default hash = %q", got)
	}
}
