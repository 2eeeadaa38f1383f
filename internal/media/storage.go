// Package media stores uploaded files on local disk and hands back stable
// reference paths. The file itself is opaque to the rest of the system.
package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Storage writes uploads under a single directory.
type Storage struct {
	dir string
}

// NewStorage creates the upload directory if needed.
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// Save writes src to disk under a collision-free name derived from the
// original filename and returns the public reference path.
func (s *Storage) Save(src io.Reader, originalName string) (string, error) {
	name := uuid.NewString() + "-" + filepath.Base(originalName)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return "/uploads/" + name, nil
}

// Dir returns the storage directory, for serving files statically.
func (s *Storage) Dir() string {
	return s.dir
}
