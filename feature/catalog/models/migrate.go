package models

import (
	"fmt"

	"modhangar/core/store"

	"gorm.io/gorm"
)

// Migrate creates or updates every table, parents before children so the
// cascading foreign keys can be declared.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		// Vocabularies
		&WeaponType{}, &WeaponSize{}, &DamageType{},
		&ShipSize{}, &ShieldType{}, &MountType{},
		&WingFormation{}, &WingRole{},
		// Shared
		&Mod{}, &ModVersion{}, &Image{}, &Tag{}, &Hint{}, &Group{},
		// Weapons
		&Weapon{}, &WeaponInstance{}, &WeaponStats{}, &WeaponText{},
		&WeaponInstanceTag{}, &WeaponInstanceGroup{}, &WeaponVersion{},
		// Hullmods
		&Hullmod{}, &HullmodInstance{}, &HullmodText{},
		&HullmodInstanceTag{}, &HullmodVersion{},
		// Ship systems
		&ShipSystem{}, &ShipSystemInstance{}, &ShipSystemText{},
		&ShipSystemInstanceTag{}, &ShipSystemVersion{},
		// Wings
		&Wing{}, &WingInstance{}, &WingInstanceTag{}, &WingVersion{},
		// Ships
		&Ship{}, &ShipInstance{}, &ShipStats{}, &ShipSpec{}, &ShipText{},
		&ShipWeaponSlot{}, &ShipInstanceTag{}, &ShipInstanceHint{},
		&ShipBuiltinWeapon{}, &ShipBuiltinHullmod{}, &ShipBuiltinWing{},
		&ShipVersion{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SeedVocabularies fills the category tables with the fixed code lists.
// Seeding is idempotent: existing codes are left untouched.
func SeedVocabularies(db *gorm.DB) error {
	if err := seedCodes(db, WeaponTypeCodes, func(code string) WeaponType { return WeaponType{Code: code} }); err != nil {
		return err
	}
	if err := seedCodes(db, WeaponSizeCodes, func(code string) WeaponSize { return WeaponSize{Code: code} }); err != nil {
		return err
	}
	if err := seedCodes(db, DamageTypeCodes, func(code string) DamageType { return DamageType{Code: code} }); err != nil {
		return err
	}
	if err := seedCodes(db, ShipSizeCodes, func(code string) ShipSize { return ShipSize{Code: code} }); err != nil {
		return err
	}
	if err := seedCodes(db, ShieldTypeCodes, func(code string) ShieldType { return ShieldType{Code: code} }); err != nil {
		return err
	}
	if err := seedCodes(db, MountTypeCodes, func(code string) MountType { return MountType{Code: code} }); err != nil {
		return err
	}
	if err := seedCodes(db, WingFormationCodes, func(code string) WingFormation { return WingFormation{Code: code} }); err != nil {
		return err
	}
	return seedCodes(db, WingRoleCodes, func(code string) WingRole { return WingRole{Code: code} })
}

func seedCodes[T any](db *gorm.DB, codes []string, build func(code string) T) error {
	for _, code := range codes {
		row := build(code)
		if _, err := store.FindOrCreate(db, &row, map[string]any{"code": code}); err != nil {
			return fmt.Errorf("failed to seed vocabulary code %s: %w", code, err)
		}
	}
	return nil
}
