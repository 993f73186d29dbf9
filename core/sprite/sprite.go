package sprite

import (
	"context"
	"fmt"
	"path"
)

// Store is the content-addressed sprite storage. Keys are relative paths
// of the form {mod_code}/{category}/{file_hash}.png, so equal content
// always lands on the same key and a put can be skipped when the
// destination already exists.
type Store interface {
	// Put copies the local file at srcPath to key. The operation is
	// idempotent: if the destination exists it is left untouched.
	Put(ctx context.Context, srcPath, key string) error
	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// Key builds the storage key for a sprite.
func Key(modCode, category, fileHash string) string {
	return path.Join(modCode, category, fileHash+".png")
}

// NewStore creates a sprite store for the configured driver.
func NewStore(cfg Config) (Store, error) {
	switch cfg.Driver {
	case "local", "":
		return NewLocalStore(cfg.Root)
	case "s3":
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unknown sprite store driver %q", cfg.Driver)
	}
}
