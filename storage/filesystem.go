package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore maps buckets to directories under a root path and keys to file
// paths inside them
type FileStore struct {
	root string
}

// NewFileStore creates a store rooted at the given directory
func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

// Get reads the object file or returns ErrNotFound
func (s *FileStore) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	data, err := os.ReadFile(s.objectPath(bucket, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read object %s/%s: %w", bucket, key, err)
	}
	return data, nil
}

// Put writes the object file, creating parent directories as needed
func (s *FileStore) Put(ctx context.Context, bucket, key string, data []byte) error {
	path := s.objectPath(bucket, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create object directory for %s/%s: %w", bucket, key, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write object %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (s *FileStore) objectPath(bucket, key string) string {
	return filepath.Join(s.root, bucket, filepath.FromSlash(key))
}
