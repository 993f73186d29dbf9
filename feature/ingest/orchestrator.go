package ingest

import (
	"context"
	"errors"
	"fmt"

	"modhangar/core/logger"
	"modhangar/core/sprite"
	"modhangar/core/store"
	"modhangar/feature/catalog/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrVersionExists is returned when the mod version being imported is
// already present and update mode was not requested. Re-importing an
// unchanged version silently is disallowed by default.
var ErrVersionExists = errors.New("mod version already exists")

// Service orchestrates mod imports: one import is a single all-or-nothing
// transaction performed by a single writer.
type Service struct {
	db      *gorm.DB
	sprites sprite.Store
	logger  *zap.Logger
}

// NewService creates the import orchestrator.
func NewService(db *gorm.DB, sprites sprite.Store, log *zap.Logger) *Service {
	return &Service{db: db, sprites: sprites, logger: log}
}

// Fixed identity of the base-game content package. Vanilla imports carry
// no mod_info descriptor, so the version comes from the caller.
const (
	VanillaModCode = "vanilla"
	VanillaModName = "Vanilla"
)

// ImportVanilla ingests the base-game content package. Identical to
// Import except that the mod code, name and version are fixed by the
// caller instead of parsed from the package.
func (s *Service) ImportVanilla(ctx context.Context, content *Content, major, minor, patch int, update bool) (*Result, error) {
	content.ModCode = VanillaModCode
	content.ModName = VanillaModName
	content.Major = major
	content.Minor = minor
	content.Patch = patch
	return s.Import(ctx, content, update)
}

// Result summarizes one completed import run.
type Result struct {
	Mod         models.Mod
	ModVersion  models.ModVersion
	DataChanged bool
}

// Import ingests one parsed mod package. The whole run — mod resolution,
// version resolution, every entity importer, the data-changed mark — is
// one transaction: any failure rolls everything back and no rows from
// this run persist. Sprite files already copied to content-addressed
// paths survive a rollback; they are harmless and reclaimed by cleanup.
//
// With update true, re-importing an existing version is permitted and
// data_changed is recomputed; otherwise an existing version aborts the
// run with ErrVersionExists before any importer touches the store.
func (s *Service) Import(ctx context.Context, content *Content, update bool) (*Result, error) {
	runID := uuid.NewString()
	log := logger.WithRun(s.logger, runID).With(zap.String("mod", content.ModCode))

	log.Info("Starting import",
		zap.Int("major", content.Major), zap.Int("minor", content.Minor), zap.Int("patch", content.Patch),
		zap.Bool("update", update))

	result := &Result{}
	run := &Service{db: s.db, sprites: s.sprites, logger: log}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		mod := models.Mod{Code: content.ModCode, DisplayName: content.ModName}
		if _, err := store.FindOrCreate(tx, &mod, map[string]any{"code": content.ModCode}); err != nil {
			return fmt.Errorf("mod %s: %w", content.ModCode, err)
		}

		mv := models.ModVersion{
			ModID: mod.ID,
			Major: content.Major,
			Minor: content.Minor,
			Patch: content.Patch,
		}
		versionInserted, err := store.FindOrCreate(tx, &mv, map[string]any{
			"mod_id": mod.ID,
			"major":  content.Major,
			"minor":  content.Minor,
			"patch":  content.Patch,
		})
		if err != nil {
			return fmt.Errorf("mod %s version: %w", content.ModCode, err)
		}
		if !versionInserted && !update {
			return fmt.Errorf("mod %s v%d.%d.%d: %w",
				content.ModCode, content.Major, content.Minor, content.Patch, ErrVersionExists)
		}

		lk, err := loadLookups(tx)
		if err != nil {
			return err
		}

		weaponsChanged, err := run.importWeapons(ctx, tx, &mod, &mv, content.Weapons, lk)
		if err != nil {
			return fmt.Errorf("mod %s: %w", content.ModCode, err)
		}
		hullmodsChanged, err := run.importHullmods(ctx, tx, &mod, &mv, content.Hullmods)
		if err != nil {
			return fmt.Errorf("mod %s: %w", content.ModCode, err)
		}
		systemsChanged, err := run.importShipSystems(ctx, tx, &mod, &mv, content.ShipSystems)
		if err != nil {
			return fmt.Errorf("mod %s: %w", content.ModCode, err)
		}
		wingsChanged, err := run.importWings(ctx, tx, &mod, &mv, content.Wings, lk)
		if err != nil {
			return fmt.Errorf("mod %s: %w", content.ModCode, err)
		}

		// Ship import needs the identities persisted by the importers above.
		ids, err := loadIdentityMaps(tx, mod.ID)
		if err != nil {
			return fmt.Errorf("mod %s: %w", content.ModCode, err)
		}
		shipsChanged, err := run.importShips(ctx, tx, &mod, &mv, content.Ships, lk, ids)
		if err != nil {
			return fmt.Errorf("mod %s: %w", content.ModCode, err)
		}

		// Wings are not part of the data-changed contract; log them anyway.
		changed := weaponsChanged || hullmodsChanged || systemsChanged || shipsChanged
		if mv.DataChanged != changed {
			if err := tx.Model(&models.ModVersion{}).Where("id = ?", mv.ID).
				Update("data_changed", changed).Error; err != nil {
				return fmt.Errorf("mod %s: failed to mark data_changed: %w", content.ModCode, err)
			}
			mv.DataChanged = changed
		}

		log.Info("Import finished",
			zap.Bool("data_changed", changed),
			zap.Bool("weapons_changed", weaponsChanged),
			zap.Bool("hullmods_changed", hullmodsChanged),
			zap.Bool("systems_changed", systemsChanged),
			zap.Bool("wings_changed", wingsChanged),
			zap.Bool("ships_changed", shipsChanged))

		result.Mod = mod
		result.ModVersion = mv
		result.DataChanged = changed
		return nil
	})
	if err != nil {
		log.Error("Import rolled back", zap.Error(err))
		return nil, err
	}

	return result, nil
}
