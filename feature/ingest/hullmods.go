package ingest

import (
	"context"
	"fmt"

	"modhangar/core/store"
	"modhangar/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type hullmodPlan struct {
	code     string
	dataHash string
	instance models.HullmodInstance
	text     models.HullmodText
	tags     []string
}

func buildHullmodPlan(rec *PreparedHullmod) (*hullmodPlan, error) {
	dataHash, err := instanceHash(rec.FlatRow, rec.FlatOrder, nil, rec.Description)
	if err != nil {
		return nil, err
	}

	return &hullmodPlan{
		code:     rec.Code,
		dataHash: dataHash,
		instance: models.HullmodInstance{
			DataHash:      dataHash,
			Name:          rec.Name,
			CostFrigate:   rec.Costs.Frigate,
			CostDestroyer: rec.Costs.Destroyer,
			CostCruiser:   rec.Costs.Cruiser,
			CostCapital:   rec.Costs.Capital,
		},
		text: models.HullmodText{
			Description:      rec.Description,
			ShortDescription: rec.ShortDescription,
		},
		tags: rec.Tags,
	}, nil
}

// importHullmods runs the identity → instance → version sequence for every
// hullmod of the mod. It reports whether any instance was newly created.
func (s *Service) importHullmods(ctx context.Context, tx *gorm.DB, mod *models.Mod, mv *models.ModVersion, recs map[string]*PreparedHullmod) (bool, error) {
	changed := false

	for _, code := range sortedCodes(recs) {
		rec := recs[code]

		plan, err := buildHullmodPlan(rec)
		if err != nil {
			return false, fmt.Errorf("hullmod %s: %w", code, err)
		}

		imageID, err := s.resolveImage(ctx, tx, mod.Code, "hullmods", rec.Sprite)
		if err != nil {
			return false, fmt.Errorf("hullmod %s: %w", code, err)
		}

		identity := models.Hullmod{ModID: mod.ID, Code: code}
		if _, err := store.FindOrCreate(tx, &identity, map[string]any{"mod_id": mod.ID, "code": code}); err != nil {
			return false, fmt.Errorf("hullmod %s: %w", code, err)
		}

		instance := plan.instance
		instance.HullmodID = identity.ID
		inserted, err := store.FindOrCreate(tx, &instance, map[string]any{"data_hash": plan.dataHash})
		if err != nil {
			return false, fmt.Errorf("hullmod %s: %w", code, err)
		}

		version := models.HullmodVersion{
			ModVersionID:      mv.ID,
			HullmodID:         identity.ID,
			HullmodInstanceID: instance.ID,
			ImageID:           imageID,
		}
		if err := tx.Create(&version).Error; err != nil {
			return false, fmt.Errorf("hullmod %s: failed to create version row: %w", code, err)
		}

		if inserted {
			changed = true
			if err := applyHullmodDetails(tx, instance.ID, plan); err != nil {
				return false, fmt.Errorf("hullmod %s: %w", code, err)
			}
			s.logger.Debug("New hullmod instance", zap.String("code", code), zap.String("data_hash", plan.dataHash))
		}
	}

	return changed, nil
}

func applyHullmodDetails(tx *gorm.DB, instanceID uint, plan *hullmodPlan) error {
	text := plan.text
	text.HullmodInstanceID = instanceID
	if err := tx.Create(&text).Error; err != nil {
		return fmt.Errorf("failed to create texts: %w", err)
	}

	for _, tag := range plan.tags {
		tagID, err := resolveTag(tx, tag)
		if err != nil {
			return err
		}
		junction := models.HullmodInstanceTag{HullmodInstanceID: instanceID, TagID: tagID}
		if err := tx.Create(&junction).Error; err != nil {
			return fmt.Errorf("failed to link tag %q: %w", tag, err)
		}
	}

	return nil
}
