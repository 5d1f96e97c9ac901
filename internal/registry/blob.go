package registry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/packstore/internal/fsops"
)

// BlobStore persists raw archive bytes keyed by content digest.
type BlobStore interface {
	// Put stores the bytes under the given key. Overwriting an existing
	// key with identical content is a no-op.
	Put(key string, data []byte) error

	// Get returns the bytes stored under the key.
	Get(key string) ([]byte, error)

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error
}

// FileBlobStore implements BlobStore using one file per blob.
type FileBlobStore struct {
	fs  fsops.FS
	dir string
}

// NewFileBlobStore creates a blob store rooted at the given directory.
func NewFileBlobStore(fs fsops.FS, dir string) *FileBlobStore {
	return &FileBlobStore{fs: fs, dir: dir}
}

// Put stores the bytes under the given key.
func (s *FileBlobStore) Put(key string, data []byte) error {
	if err := s.fs.ValidateIdentifier(key); err != nil {
		return fmt.Errorf("invalid blob key: %w", err)
	}
	if err := s.fs.AtomicWrite(filepath.Join(s.dir, key), data, 0644); err != nil {
		return fmt.Errorf("failed to write blob: %w", err)
	}
	return nil
}

// Get returns the bytes stored under the key.
func (s *FileBlobStore) Get(key string) ([]byte, error) {
	if err := s.fs.ValidateIdentifier(key); err != nil {
		return nil, fmt.Errorf("invalid blob key: %w", err)
	}
	data, err := s.fs.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, nil
}

// Delete removes the key.
func (s *FileBlobStore) Delete(key string) error {
	if err := s.fs.ValidateIdentifier(key); err != nil {
		return fmt.Errorf("invalid blob key: %w", err)
	}
	if err := s.fs.Remove(filepath.Join(s.dir, key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}

// MemBlobStore implements BlobStore in memory, for tests.
type MemBlobStore struct {
	blobs map[string][]byte
}

// NewMemBlobStore creates an empty in-memory blob store.
func NewMemBlobStore() *MemBlobStore {
	return &MemBlobStore{blobs: make(map[string][]byte)}
}

// Put stores the bytes under the given key.
func (s *MemBlobStore) Put(key string, data []byte) error {
	s.blobs[key] = append([]byte(nil), data...)
	return nil
}

// Get returns the bytes stored under the key.
func (s *MemBlobStore) Get(key string) ([]byte, error) {
	data, ok := s.blobs[key]
	if !ok {
		return nil, fmt.Errorf("blob not found: %s", key)
	}
	return data, nil
}

// Delete removes the key.
func (s *MemBlobStore) Delete(key string) error {
	delete(s.blobs, key)
	return nil
}

// Len returns the number of stored blobs.
func (s *MemBlobStore) Len() int {
	return len(s.blobs)
}
