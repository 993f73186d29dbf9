package ingest

import (
	"context"
	"fmt"

	"modhangar/core/store"
	"modhangar/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// weaponPlan is the precomputed set of rows one weapon record produces.
// Building it is pure; applying it is the only part that touches the store.
type weaponPlan struct {
	code     string
	dataHash string
	instance models.WeaponInstance
	stats    models.WeaponStats
	text     models.WeaponText
	tags     []string
	groups   []string
}

func buildWeaponPlan(rec *PreparedWeapon, lk *Lookups) (*weaponPlan, error) {
	typeID, err := resolve("weapon type", lk.WeaponTypes, rec.Type)
	if err != nil {
		return nil, err
	}
	sizeID, err := resolve("weapon size", lk.WeaponSizes, rec.Size)
	if err != nil {
		return nil, err
	}
	damageID, err := resolve("damage type", lk.DamageTypes, rec.Damage)
	if err != nil {
		return nil, err
	}

	dataHash, err := instanceHash(rec.FlatRow, rec.FlatOrder, rec.Spec, rec.Description)
	if err != nil {
		return nil, err
	}

	return &weaponPlan{
		code:     rec.Code,
		dataHash: dataHash,
		instance: models.WeaponInstance{
			DataHash:     dataHash,
			Name:         rec.Name,
			WeaponTypeID: typeID,
			WeaponSizeID: sizeID,
			DamageTypeID: damageID,
		},
		stats: models.WeaponStats{
			Range:          rec.Stats.Range,
			DamagePerShot:  rec.Stats.DamagePerShot,
			EnergyPerShot:  rec.Stats.EnergyPerShot,
			EmpDamage:      rec.Stats.EmpDamage,
			TurnRate:       rec.Stats.TurnRate,
			Ammo:           rec.Stats.Ammo,
			AmmoPerSecond:  rec.Stats.AmmoPerSecond,
			RefireDelay:    rec.Stats.RefireDelay,
			OrdnancePoints: rec.Stats.OrdnancePoints,
		},
		text: models.WeaponText{
			Description:   rec.Description,
			PrimaryRole:   rec.PrimaryRole,
			AncillaryRole: rec.AncillaryRole,
		},
		tags:   rec.Tags,
		groups: rec.Groups,
	}, nil
}

// importWeapons runs the identity → instance → version sequence for every
// weapon of the mod. It reports whether any instance was newly created.
func (s *Service) importWeapons(ctx context.Context, tx *gorm.DB, mod *models.Mod, mv *models.ModVersion, recs map[string]*PreparedWeapon, lk *Lookups) (bool, error) {
	changed := false

	for _, code := range sortedCodes(recs) {
		rec := recs[code]

		plan, err := buildWeaponPlan(rec, lk)
		if err != nil {
			return false, fmt.Errorf("weapon %s: %w", code, err)
		}

		imageID, err := s.resolveImage(ctx, tx, mod.Code, "weapons", rec.Sprite)
		if err != nil {
			return false, fmt.Errorf("weapon %s: %w", code, err)
		}
		turretImageID, err := s.resolveImage(ctx, tx, mod.Code, "weapons", rec.TurretSprite)
		if err != nil {
			return false, fmt.Errorf("weapon %s: %w", code, err)
		}

		identity := models.Weapon{ModID: mod.ID, Code: code}
		if _, err := store.FindOrCreate(tx, &identity, map[string]any{"mod_id": mod.ID, "code": code}); err != nil {
			return false, fmt.Errorf("weapon %s: %w", code, err)
		}

		instance := plan.instance
		instance.WeaponID = identity.ID
		inserted, err := store.FindOrCreate(tx, &instance, map[string]any{"data_hash": plan.dataHash})
		if err != nil {
			return false, fmt.Errorf("weapon %s: %w", code, err)
		}

		version := models.WeaponVersion{
			ModVersionID:     mv.ID,
			WeaponID:         identity.ID,
			WeaponInstanceID: instance.ID,
			ImageID:          imageID,
			TurretImageID:    turretImageID,
		}
		if err := tx.Create(&version).Error; err != nil {
			return false, fmt.Errorf("weapon %s: failed to create version row: %w", code, err)
		}

		if inserted {
			changed = true
			if err := applyWeaponDetails(tx, instance.ID, plan); err != nil {
				return false, fmt.Errorf("weapon %s: %w", code, err)
			}
			s.logger.Debug("New weapon instance", zap.String("code", code), zap.String("data_hash", plan.dataHash))
		}
	}

	return changed, nil
}

// applyWeaponDetails writes the detail and junction rows of a freshly
// created instance. Never called for a re-seen instance.
func applyWeaponDetails(tx *gorm.DB, instanceID uint, plan *weaponPlan) error {
	stats := plan.stats
	stats.WeaponInstanceID = instanceID
	if err := tx.Create(&stats).Error; err != nil {
		return fmt.Errorf("failed to create stats: %w", err)
	}

	text := plan.text
	text.WeaponInstanceID = instanceID
	if err := tx.Create(&text).Error; err != nil {
		return fmt.Errorf("failed to create texts: %w", err)
	}

	for _, tag := range plan.tags {
		tagID, err := resolveTag(tx, tag)
		if err != nil {
			return err
		}
		junction := models.WeaponInstanceTag{WeaponInstanceID: instanceID, TagID: tagID}
		if err := tx.Create(&junction).Error; err != nil {
			return fmt.Errorf("failed to link tag %q: %w", tag, err)
		}
	}

	for _, group := range plan.groups {
		groupID, err := resolveGroup(tx, group)
		if err != nil {
			return err
		}
		junction := models.WeaponInstanceGroup{WeaponInstanceID: instanceID, GroupID: groupID}
		if err := tx.Create(&junction).Error; err != nil {
			return fmt.Errorf("failed to link group %q: %w", group, err)
		}
	}

	return nil
}
