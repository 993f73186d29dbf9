package sprite

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore stores sprites under a root directory on the local filesystem.
type LocalStore struct {
	root string
}

// NewLocalStore creates a local sprite store rooted at root.
func NewLocalStore(root string) (*LocalStore, error) {
	if root == "" {
		return nil, fmt.Errorf("sprite root directory not configured")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create sprite root %s: %w", root, err)
	}
	return &LocalStore{root: root}, nil
}

// Put copies srcPath to the content-addressed destination. An existing
// destination is assumed to hold identical content (the hash is in the
// key) and the copy is skipped.
func (s *LocalStore) Put(ctx context.Context, srcPath, key string) error {
	dest := s.destPath(key)

	if _, err := os.Stat(dest); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat sprite %s: %w", dest, err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create sprite directory: %w", err)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source sprite %s: %w", srcPath, err)
	}
	defer src.Close()

	// Write through a temp file and rename, so a concurrent reader never
	// sees a half-written sprite.
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".sprite-*")
	if err != nil {
		return fmt.Errorf("failed to create temp sprite file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to copy sprite: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to flush sprite: %w", err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("failed to place sprite %s: %w", dest, err)
	}
	return nil
}

// Exists reports whether the sprite is present.
func (s *LocalStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(s.destPath(key))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Remove deletes the sprite if present.
func (s *LocalStore) Remove(ctx context.Context, key string) error {
	err := os.Remove(s.destPath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove sprite %s: %w", key, err)
	}
	return nil
}

func (s *LocalStore) destPath(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}
