package ingest

import (
	"context"
	"fmt"

	"modhangar/core/hash"
	"modhangar/core/sprite"
	"modhangar/core/store"
	"modhangar/feature/catalog/models"

	"gorm.io/gorm"
)

// instanceHash builds the content address of an instance from its source
// artifacts, chained left-to-right: tabular row, then structured sidecar,
// then description. The chaining order is part of the content-addressing
// scheme; changing it orphans every previously stored instance.
func instanceHash(flatRow map[string]string, flatOrder []string, spec any, description string) (string, error) {
	digest := hash.Flat(flatRow, flatOrder)

	if spec != nil {
		specDigest, err := hash.Structured(spec)
		if err != nil {
			return "", err
		}
		digest = hash.Combine(digest, specDigest)
	}

	if description != "" {
		descDigest := hash.Flat(map[string]string{"description": description}, []string{"description"})
		digest = hash.Combine(digest, descDigest)
	}

	return digest, nil
}

// resolveImage fingerprints the sprite, copies it to its content-addressed
// destination (skipping the copy when it already exists), and resolves the
// Image row. Returns nil when the record carries no sprite.
//
// The copy happens before the row insert and outside any rollback scope on
// purpose: a leftover file from an aborted import sits at a hash-derived
// path and is reclaimed by the cleanup sweep.
func (s *Service) resolveImage(ctx context.Context, tx *gorm.DB, modCode, category string, img *PreparedImage) (*uint, error) {
	if img == nil {
		return nil, nil
	}

	digest, err := hash.ImageFile(img.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint sprite: %w", err)
	}

	key := sprite.Key(modCode, category, digest)
	if err := s.sprites.Put(ctx, img.SourcePath, key); err != nil {
		return nil, fmt.Errorf("failed to store sprite %s: %w", key, err)
	}

	row := models.Image{FilePath: key, FileHash: digest}
	if _, err := store.FindOrCreate(tx, &row, map[string]any{"file_hash": digest}); err != nil {
		return nil, fmt.Errorf("failed to resolve image row for %s: %w", key, err)
	}

	return &row.ID, nil
}

// resolveTag resolves a shared tag lookup row by code.
func resolveTag(tx *gorm.DB, code string) (uint, error) {
	row := models.Tag{Code: code}
	if _, err := store.FindOrCreate(tx, &row, map[string]any{"code": code}); err != nil {
		return 0, fmt.Errorf("failed to resolve tag %q: %w", code, err)
	}
	return row.ID, nil
}

// resolveHint resolves a shared hint lookup row by code.
func resolveHint(tx *gorm.DB, code string) (uint, error) {
	row := models.Hint{Code: code}
	if _, err := store.FindOrCreate(tx, &row, map[string]any{"code": code}); err != nil {
		return 0, fmt.Errorf("failed to resolve hint %q: %w", code, err)
	}
	return row.ID, nil
}

// resolveGroup resolves a shared group lookup row by code.
func resolveGroup(tx *gorm.DB, code string) (uint, error) {
	row := models.Group{Code: code}
	if _, err := store.FindOrCreate(tx, &row, map[string]any{"code": code}); err != nil {
		return 0, fmt.Errorf("failed to resolve group %q: %w", code, err)
	}
	return row.ID, nil
}
