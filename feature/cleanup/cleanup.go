package cleanup

import (
	"context"
	"errors"
	"fmt"

	"modhangar/core/sprite"
	"modhangar/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrModNotFound is returned when the mod or mod version targeted for
// deletion does not exist.
var ErrModNotFound = errors.New("mod not found")

// Service deletes mods and mod versions and sweeps the shared rows left
// unreferenced afterwards. Each operation is one transaction; sprite
// files of swept images are removed best-effort after commit.
type Service struct {
	db      *gorm.DB
	sprites sprite.Store
	logger  *zap.Logger
}

// NewService creates the cleanup service.
func NewService(db *gorm.DB, sprites sprite.Store, log *zap.Logger) *Service {
	return &Service{db: db, sprites: sprites, logger: log}
}

// DeleteMod removes a mod and everything that hangs off it. Foreign-key
// cascades take the versions, identities, instances, details and
// junctions; the sweep then reclaims shared rows nothing references
// anymore.
func (s *Service) DeleteMod(ctx context.Context, code string) error {
	var orphanedSprites []string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mod models.Mod
		if err := tx.Where("code = ?", code).First(&mod).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("mod %s: %w", code, ErrModNotFound)
			}
			return fmt.Errorf("mod %s: %w", code, err)
		}

		if err := tx.Delete(&models.Mod{}, mod.ID).Error; err != nil {
			return fmt.Errorf("failed to delete mod %s: %w", code, err)
		}

		paths, err := s.sweep(tx)
		if err != nil {
			return err
		}
		orphanedSprites = paths
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Mod deleted", zap.String("mod", code))
	s.removeSprites(ctx, orphanedSprites)
	return nil
}

// DeleteModVersion removes one release of a mod. Cascades take that
// version's append-only links; instances shared with other versions
// survive, instances referenced by no remaining version are swept along
// with the shared rows.
func (s *Service) DeleteModVersion(ctx context.Context, code string, major, minor, patch int) error {
	var orphanedSprites []string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mod models.Mod
		if err := tx.Where("code = ?", code).First(&mod).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("mod %s: %w", code, ErrModNotFound)
			}
			return fmt.Errorf("mod %s: %w", code, err)
		}

		res := tx.Where("mod_id = ? AND major = ? AND minor = ? AND patch = ?", mod.ID, major, minor, patch).
			Delete(&models.ModVersion{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete mod %s v%d.%d.%d: %w", code, major, minor, patch, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("mod %s v%d.%d.%d: %w", code, major, minor, patch, ErrModNotFound)
		}

		paths, err := s.sweep(tx)
		if err != nil {
			return err
		}
		orphanedSprites = paths
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Mod version deleted",
		zap.String("mod", code),
		zap.Int("major", major), zap.Int("minor", minor), zap.Int("patch", patch))
	s.removeSprites(ctx, orphanedSprites)
	return nil
}

// Cleanup runs the orphan sweep on its own, without deleting anything
// first. Useful after a crashed import left content-addressed sprite
// files behind.
func (s *Service) Cleanup(ctx context.Context) error {
	var orphanedSprites []string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		paths, err := s.sweep(tx)
		if err != nil {
			return err
		}
		orphanedSprites = paths
		return nil
	})
	if err != nil {
		return err
	}

	s.removeSprites(ctx, orphanedSprites)
	return nil
}

// sweep deletes shared rows left without references, in dependency
// order: orphaned instances first (their junctions cascade away), then
// the tag/hint/group lookups, then images. Returns the sprite keys of
// the deleted image rows.
func (s *Service) sweep(tx *gorm.DB) ([]string, error) {
	if err := s.sweepInstances(tx); err != nil {
		return nil, err
	}
	if err := s.sweepLookups(tx); err != nil {
		return nil, err
	}
	return s.sweepImages(tx)
}

// sweepInstances removes content instances referenced by no remaining
// version row. Ship instances go first so their built-in rows no longer
// pin weapon, hullmod and wing instances.
func (s *Service) sweepInstances(tx *gorm.DB) error {
	steps := []struct {
		model any
		cond  string
	}{
		{&models.ShipInstance{},
			"NOT EXISTS (SELECT 1 FROM ship_versions sv WHERE sv.ship_instance_id = ship_instances.id)"},
		{&models.WeaponInstance{},
			"NOT EXISTS (SELECT 1 FROM weapon_versions wv WHERE wv.weapon_instance_id = weapon_instances.id)"},
		{&models.HullmodInstance{},
			"NOT EXISTS (SELECT 1 FROM hullmod_versions hv WHERE hv.hullmod_instance_id = hullmod_instances.id)"},
		{&models.ShipSystemInstance{},
			"NOT EXISTS (SELECT 1 FROM ship_system_versions ssv WHERE ssv.ship_system_instance_id = ship_system_instances.id)"},
		{&models.WingInstance{},
			"NOT EXISTS (SELECT 1 FROM wing_versions wgv WHERE wgv.wing_instance_id = wing_instances.id)"},
	}

	for _, step := range steps {
		res := tx.Where(step.cond).Delete(step.model)
		if res.Error != nil {
			return fmt.Errorf("failed to sweep orphaned instances: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			s.logger.Debug("Swept orphaned instances",
				zap.String("table", fmt.Sprintf("%T", step.model)),
				zap.Int64("rows", res.RowsAffected))
		}
	}

	return nil
}

// sweepLookups removes tag, hint and group rows no junction references.
// The junctions themselves are already gone, cascaded by the instance
// deletions.
func (s *Service) sweepLookups(tx *gorm.DB) error {
	steps := []struct {
		model any
		cond  string
	}{
		{&models.Tag{}, "NOT EXISTS (SELECT 1 FROM weapon_instance_tags t1 WHERE t1.tag_id = tags.id)" +
			" AND NOT EXISTS (SELECT 1 FROM hullmod_instance_tags t2 WHERE t2.tag_id = tags.id)" +
			" AND NOT EXISTS (SELECT 1 FROM ship_system_instance_tags t3 WHERE t3.tag_id = tags.id)" +
			" AND NOT EXISTS (SELECT 1 FROM wing_instance_tags t4 WHERE t4.tag_id = tags.id)" +
			" AND NOT EXISTS (SELECT 1 FROM ship_instance_tags t5 WHERE t5.tag_id = tags.id)"},
		{&models.Hint{}, "NOT EXISTS (SELECT 1 FROM ship_instance_hints h1 WHERE h1.hint_id = hints.id)"},
		{&models.Group{}, "NOT EXISTS (SELECT 1 FROM weapon_instance_groups g1 WHERE g1.group_id = groups.id)"},
	}

	for _, step := range steps {
		res := tx.Where(step.cond).Delete(step.model)
		if res.Error != nil {
			return fmt.Errorf("failed to sweep lookup rows: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			s.logger.Debug("Swept lookup rows",
				zap.String("table", fmt.Sprintf("%T", step.model)),
				zap.Int64("rows", res.RowsAffected))
		}
	}

	return nil
}

const orphanedImagesCond = "NOT EXISTS (SELECT 1 FROM weapon_versions wv WHERE wv.image_id = images.id OR wv.turret_image_id = images.id)" +
	" AND NOT EXISTS (SELECT 1 FROM hullmod_versions hv WHERE hv.image_id = images.id)" +
	" AND NOT EXISTS (SELECT 1 FROM ship_system_versions ssv WHERE ssv.image_id = images.id)" +
	" AND NOT EXISTS (SELECT 1 FROM ship_versions sv WHERE sv.image_id = images.id)"

// sweepImages removes image rows no version references and returns
// their storage keys so the files can be removed after commit.
func (s *Service) sweepImages(tx *gorm.DB) ([]string, error) {
	var orphans []models.Image
	if err := tx.Where(orphanedImagesCond).Find(&orphans).Error; err != nil {
		return nil, fmt.Errorf("failed to find orphaned images: %w", err)
	}
	if len(orphans) == 0 {
		return nil, nil
	}

	ids := make([]uint, len(orphans))
	paths := make([]string, len(orphans))
	for i, img := range orphans {
		ids[i] = img.ID
		paths[i] = img.FilePath
	}

	if err := tx.Delete(&models.Image{}, ids).Error; err != nil {
		return nil, fmt.Errorf("failed to sweep orphaned images: %w", err)
	}

	s.logger.Debug("Swept orphaned images", zap.Int("rows", len(ids)))
	return paths, nil
}

// removeSprites deletes swept sprite files from the store. Failures are
// logged and skipped: the rows are already gone and a leftover file at a
// content-addressed path is harmless.
func (s *Service) removeSprites(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.sprites.Remove(ctx, key); err != nil {
			s.logger.Warn("Failed to remove sprite file", zap.String("key", key), zap.Error(err))
		}
	}
}
