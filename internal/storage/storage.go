// Package storage provides local filesystem storage for uploaded media files
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// localStorage implements the upload store using the local filesystem.
// Files live under {root}/{category}/{filename}; the category directory
// is created on demand.
type localStorage struct {
	root string
}

// NewLocalStorage creates a new localStorage instance rooted at root
func NewLocalStorage(root string) *localStorage {
	return &localStorage{
		root: root,
	}
}

// Root returns the upload root directory
func (s *localStorage) Root() string {
	return s.root
}

// Save writes the file contents to {root}/{category}/{filename} and returns
// the absolute path of the written file together with the number of bytes written
func (s *localStorage) Save(category, filename string, src io.Reader) (string, int64, error) {
	dir := filepath.Join(s.root, category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create category directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	dst, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		// Remove the partial file, a half-written upload is never usable
		os.Remove(path)
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		// The file is written, fall back to the joined path
		absPath = path
	}

	return absPath, written, nil
}

// Open opens a stored file for reading
func (s *localStorage) Open(category, filename string) (*os.File, error) {
	return os.Open(filepath.Join(s.root, category, filename))
}

// Remove deletes a stored file
func (s *localStorage) Remove(category, filename string) error {
	return os.Remove(filepath.Join(s.root, category, filename))
}
