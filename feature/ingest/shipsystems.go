package ingest

import (
	"context"
	"fmt"

	"modhangar/core/store"
	"modhangar/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type shipSystemPlan struct {
	code     string
	dataHash string
	instance models.ShipSystemInstance
	text     models.ShipSystemText
	tags     []string
}

func buildShipSystemPlan(rec *PreparedShipSystem) (*shipSystemPlan, error) {
	dataHash, err := instanceHash(rec.FlatRow, rec.FlatOrder, rec.Spec, rec.Description)
	if err != nil {
		return nil, err
	}

	return &shipSystemPlan{
		code:     rec.Code,
		dataHash: dataHash,
		instance: models.ShipSystemInstance{
			DataHash:      dataHash,
			Name:          rec.Name,
			FluxPerUse:    rec.Data.FluxPerUse,
			FluxPerSecond: rec.Data.FluxPerSecond,
			Cooldown:      rec.Data.Cooldown,
			Charges:       rec.Data.Charges,
		},
		text: models.ShipSystemText{Description: rec.Description},
		tags: rec.Tags,
	}, nil
}

// importShipSystems runs the identity → instance → version sequence for
// every ship system of the mod. Ship import later resolves system codes
// against the identities persisted here.
func (s *Service) importShipSystems(ctx context.Context, tx *gorm.DB, mod *models.Mod, mv *models.ModVersion, recs map[string]*PreparedShipSystem) (bool, error) {
	changed := false

	for _, code := range sortedCodes(recs) {
		rec := recs[code]

		plan, err := buildShipSystemPlan(rec)
		if err != nil {
			return false, fmt.Errorf("ship system %s: %w", code, err)
		}

		imageID, err := s.resolveImage(ctx, tx, mod.Code, "shipsystems", rec.Sprite)
		if err != nil {
			return false, fmt.Errorf("ship system %s: %w", code, err)
		}

		identity := models.ShipSystem{ModID: mod.ID, Code: code}
		if _, err := store.FindOrCreate(tx, &identity, map[string]any{"mod_id": mod.ID, "code": code}); err != nil {
			return false, fmt.Errorf("ship system %s: %w", code, err)
		}

		instance := plan.instance
		instance.ShipSystemID = identity.ID
		inserted, err := store.FindOrCreate(tx, &instance, map[string]any{"data_hash": plan.dataHash})
		if err != nil {
			return false, fmt.Errorf("ship system %s: %w", code, err)
		}

		version := models.ShipSystemVersion{
			ModVersionID:         mv.ID,
			ShipSystemID:         identity.ID,
			ShipSystemInstanceID: instance.ID,
			ImageID:              imageID,
		}
		if err := tx.Create(&version).Error; err != nil {
			return false, fmt.Errorf("ship system %s: failed to create version row: %w", code, err)
		}

		if inserted {
			changed = true
			if err := applyShipSystemDetails(tx, instance.ID, plan); err != nil {
				return false, fmt.Errorf("ship system %s: %w", code, err)
			}
			s.logger.Debug("New ship system instance", zap.String("code", code), zap.String("data_hash", plan.dataHash))
		}
	}

	return changed, nil
}

func applyShipSystemDetails(tx *gorm.DB, instanceID uint, plan *shipSystemPlan) error {
	text := plan.text
	text.ShipSystemInstanceID = instanceID
	if err := tx.Create(&text).Error; err != nil {
		return fmt.Errorf("failed to create texts: %w", err)
	}

	for _, tag := range plan.tags {
		tagID, err := resolveTag(tx, tag)
		if err != nil {
			return err
		}
		junction := models.ShipSystemInstanceTag{ShipSystemInstanceID: instanceID, TagID: tagID}
		if err := tx.Create(&junction).Error; err != nil {
			return fmt.Errorf("failed to link tag %q: %w", tag, err)
		}
	}

	return nil
}
