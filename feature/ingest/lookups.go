package ingest

import (
	"errors"
	"fmt"
	"sort"

	"modhangar/feature/catalog/models"

	"gorm.io/gorm"
)

// ErrUnknownCode marks a code-based reference with no matching row.
// Fatal for the entity being processed; built-in association resolution
// is the one documented exception (see resolveBuiltins).
var ErrUnknownCode = errors.New("unknown code")

// Lookups holds the category code→id maps, fetched once per import run
// so per-entity category resolution never hits the database.
type Lookups struct {
	WeaponTypes    map[string]uint
	WeaponSizes    map[string]uint
	DamageTypes    map[string]uint
	ShipSizes      map[string]uint
	ShieldTypes    map[string]uint
	MountTypes     map[string]uint
	WingFormations map[string]uint
	WingRoles      map[string]uint
}

func loadLookups(tx *gorm.DB) (*Lookups, error) {
	lk := &Lookups{}
	var err error

	if lk.WeaponTypes, err = codeMap(tx, func(r models.WeaponType) (string, uint) { return r.Code, r.ID }); err != nil {
		return nil, fmt.Errorf("failed to load weapon types: %w", err)
	}
	if lk.WeaponSizes, err = codeMap(tx, func(r models.WeaponSize) (string, uint) { return r.Code, r.ID }); err != nil {
		return nil, fmt.Errorf("failed to load weapon sizes: %w", err)
	}
	if lk.DamageTypes, err = codeMap(tx, func(r models.DamageType) (string, uint) { return r.Code, r.ID }); err != nil {
		return nil, fmt.Errorf("failed to load damage types: %w", err)
	}
	if lk.ShipSizes, err = codeMap(tx, func(r models.ShipSize) (string, uint) { return r.Code, r.ID }); err != nil {
		return nil, fmt.Errorf("failed to load ship sizes: %w", err)
	}
	if lk.ShieldTypes, err = codeMap(tx, func(r models.ShieldType) (string, uint) { return r.Code, r.ID }); err != nil {
		return nil, fmt.Errorf("failed to load shield types: %w", err)
	}
	if lk.MountTypes, err = codeMap(tx, func(r models.MountType) (string, uint) { return r.Code, r.ID }); err != nil {
		return nil, fmt.Errorf("failed to load mount types: %w", err)
	}
	if lk.WingFormations, err = codeMap(tx, func(r models.WingFormation) (string, uint) { return r.Code, r.ID }); err != nil {
		return nil, fmt.Errorf("failed to load wing formations: %w", err)
	}
	if lk.WingRoles, err = codeMap(tx, func(r models.WingRole) (string, uint) { return r.Code, r.ID }); err != nil {
		return nil, fmt.Errorf("failed to load wing roles: %w", err)
	}

	return lk, nil
}

// codeMap loads a whole lookup table into a code→id map.
func codeMap[T any](tx *gorm.DB, key func(T) (string, uint)) (map[string]uint, error) {
	var rows []T
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	m := make(map[string]uint, len(rows))
	for _, r := range rows {
		code, id := key(r)
		m[code] = id
	}
	return m, nil
}

// resolve returns the id for code in the given category map.
func resolve(category string, m map[string]uint, code string) (uint, error) {
	id, ok := m[code]
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownCode, category, code)
	}
	return id, nil
}

// sortedCodes returns the map keys in a fixed order so per-run processing
// and logging are deterministic.
func sortedCodes[T any](m map[string]T) []string {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
