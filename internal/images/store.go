// Package images stores uploaded post images on the local filesystem.
package images

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedTypes are the accepted upload MIME types.
var allowedTypes = map[string]bool{
	"image/png":  true,
	"image/jpg":  true,
	"image/jpeg": true,
}

// Store saves and removes image files under a single directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the storage directory.
func (s *Store) Dir() string { return s.dir }

// Allowed reports whether the MIME type is an accepted image type.
func (s *Store) Allowed(contentType string) bool {
	return allowedTypes[strings.ToLower(strings.TrimSpace(contentType))]
}

// Save writes the uploaded file under a unique name and returns its path
// relative to the storage root, e.g. "images/<uuid>-cat.png".
func (s *Store) Save(file io.Reader, originalName string) (string, error) {
	name := uuid.NewString() + "-" + filepath.Base(originalName)
	full := filepath.Join(s.dir, name)

	dst, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("write image file: %w", err)
	}
	return filepath.ToSlash(full), nil
}

// Remove deletes a previously stored image. Paths outside the storage
// directory are refused.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	clean := filepath.Clean(filepath.FromSlash(path))
	root := filepath.Clean(s.dir)
	if clean != root && !strings.HasPrefix(clean, root+string(filepath.Separator)) {
		return fmt.Errorf("path %q is outside the images dir", path)
	}
	if err := os.Remove(clean); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
