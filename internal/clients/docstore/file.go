package docstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileBlob persists the document blob as a single file on disk.
// Writes go through a temp file plus rename so a crash mid-write never
// leaves a truncated document behind.
type FileBlob struct {
	path string
}

// NewFileBlob creates a file-backed blob at the given path.
func NewFileBlob(path string) *FileBlob {
	return &FileBlob{path: path}
}

// Load reads the blob from disk.
func (f *FileBlob) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return data, nil
}

// Save atomically replaces the blob on disk.
func (f *FileBlob) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
