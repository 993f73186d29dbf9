package catalog

import (
	"context"
	"errors"
	"fmt"

	"modhangar/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound is returned when the requested mod or version is absent.
var ErrNotFound = errors.New("not found")

// Service answers read-only catalog queries. It never writes; ingestion
// and cleanup own all mutation.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Entry is one entity of a mod version as listed by the catalog.
type Entry struct {
	Code     string `json:"code"`
	Name     string `json:"name,omitempty"`
	DataHash string `json:"data_hash"`
}

// VersionContent is the full content listing of one mod version.
type VersionContent struct {
	Mod         models.Mod        `json:"mod"`
	Version     models.ModVersion `json:"version"`
	Ships       []Entry           `json:"ships"`
	Weapons     []Entry           `json:"weapons"`
	Hullmods    []Entry           `json:"hullmods"`
	ShipSystems []Entry           `json:"ship_systems"`
	Wings       []Entry           `json:"wings"`
}

// ListMods returns every known mod.
func (s *Service) ListMods(ctx context.Context) ([]models.Mod, error) {
	var mods []models.Mod
	if err := s.db.WithContext(ctx).Order("code").Find(&mods).Error; err != nil {
		return nil, fmt.Errorf("failed to list mods: %w", err)
	}
	return mods, nil
}

// ListVersions returns every imported version of one mod.
func (s *Service) ListVersions(ctx context.Context, code string) ([]models.ModVersion, error) {
	mod, err := s.findMod(ctx, code)
	if err != nil {
		return nil, err
	}

	var versions []models.ModVersion
	if err := s.db.WithContext(ctx).
		Where("mod_id = ?", mod.ID).
		Order("major, minor, patch").
		Find(&versions).Error; err != nil {
		return nil, fmt.Errorf("failed to list versions of mod %s: %w", code, err)
	}
	return versions, nil
}

// GetVersionContent returns the entity listing of one mod version.
func (s *Service) GetVersionContent(ctx context.Context, code string, major, minor, patch int) (*VersionContent, error) {
	mod, err := s.findMod(ctx, code)
	if err != nil {
		return nil, err
	}

	var mv models.ModVersion
	err = s.db.WithContext(ctx).
		Where("mod_id = ? AND major = ? AND minor = ? AND patch = ?", mod.ID, major, minor, patch).
		First(&mv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("mod %s v%d.%d.%d: %w", code, major, minor, patch, ErrNotFound)
		}
		return nil, fmt.Errorf("mod %s v%d.%d.%d: %w", code, major, minor, patch, err)
	}

	content := &VersionContent{Mod: *mod, Version: mv}

	kinds := []struct {
		dest  *[]Entry
		query string
	}{
		{&content.Ships, "SELECT s.code, si.name, si.data_hash FROM ship_versions v " +
			"JOIN ships s ON s.id = v.ship_id " +
			"JOIN ship_instances si ON si.id = v.ship_instance_id " +
			"WHERE v.mod_version_id = ? ORDER BY s.code"},
		{&content.Weapons, "SELECT w.code, wi.name, wi.data_hash FROM weapon_versions v " +
			"JOIN weapons w ON w.id = v.weapon_id " +
			"JOIN weapon_instances wi ON wi.id = v.weapon_instance_id " +
			"WHERE v.mod_version_id = ? ORDER BY w.code"},
		{&content.Hullmods, "SELECT h.code, hi.name, hi.data_hash FROM hullmod_versions v " +
			"JOIN hullmods h ON h.id = v.hullmod_id " +
			"JOIN hullmod_instances hi ON hi.id = v.hullmod_instance_id " +
			"WHERE v.mod_version_id = ? ORDER BY h.code"},
		{&content.ShipSystems, "SELECT ss.code, ssi.name, ssi.data_hash FROM ship_system_versions v " +
			"JOIN ship_systems ss ON ss.id = v.ship_system_id " +
			"JOIN ship_system_instances ssi ON ssi.id = v.ship_system_instance_id " +
			"WHERE v.mod_version_id = ? ORDER BY ss.code"},
		{&content.Wings, "SELECT wg.code, '' AS name, wgi.data_hash FROM wing_versions v " +
			"JOIN wings wg ON wg.id = v.wing_id " +
			"JOIN wing_instances wgi ON wgi.id = v.wing_instance_id " +
			"WHERE v.mod_version_id = ? ORDER BY wg.code"},
	}
	for _, kind := range kinds {
		if err := s.db.WithContext(ctx).Raw(kind.query, mv.ID).Scan(kind.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to list content of mod %s v%d.%d.%d: %w", code, major, minor, patch, err)
		}
	}

	return content, nil
}

func (s *Service) findMod(ctx context.Context, code string) (*models.Mod, error) {
	var mod models.Mod
	if err := s.db.WithContext(ctx).Where("code = ?", code).First(&mod).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("mod %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("mod %s: %w", code, err)
	}
	return &mod, nil
}
