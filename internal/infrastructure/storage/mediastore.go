// Package storage persists uploaded files under the configured media root.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/giftex-inc/giftex/internal/shared/config"
	"github.com/giftex-inc/giftex/internal/shared/id"
)

// MediaStore writes uploads to disk and hands back the relative path stored
// on the owning record.
type MediaStore struct {
	root string
}

func NewMediaStore(cfg *config.MediaConfig) (*MediaStore, error) {
	if cfg.Root == "" {
		return nil, fmt.Errorf("media root is required")
	}
	if err := os.MkdirAll(cfg.Root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &MediaStore{root: cfg.Root}, nil
}

// Save writes the reader under subdir with a generated name, keeping the
// original extension. Returns the path relative to the media root.
func (s *MediaStore) Save(subdir, prefix, originalName string, r io.Reader) (string, error) {
	name, err := id.GenerateWithPrefix(prefix, id.DefaultLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	relPath := filepath.Join(subdir, name+ext)
	absPath := filepath.Join(s.root, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media subdirectory: %w", err)
	}

	f, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(absPath)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return relPath, nil
}

// Open returns a reader for a previously saved file. The relative path is
// cleaned and confined to the media root.
func (s *MediaStore) Open(relPath string) (*os.File, error) {
	cleaned := filepath.Clean(relPath)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return nil, fmt.Errorf("invalid media path: %s", relPath)
	}

	f, err := os.Open(filepath.Join(s.root, cleaned))
	if err != nil {
		return nil, fmt.Errorf("failed to open media file: %w", err)
	}
	return f, nil
}

// Remove deletes a previously saved file. Missing files are not an error.
func (s *MediaStore) Remove(relPath string) error {
	cleaned := filepath.Clean(relPath)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return fmt.Errorf("invalid media path: %s", relPath)
	}

	if err := os.Remove(filepath.Join(s.root, cleaned)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove media file: %w", err)
	}
	return nil
}
