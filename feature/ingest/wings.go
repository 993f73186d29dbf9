package ingest

import (
	"context"
	"fmt"

	"modhangar/core/store"
	"modhangar/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type wingPlan struct {
	code     string
	dataHash string
	instance models.WingInstance
	tags     []string
}

func buildWingPlan(rec *PreparedWing, lk *Lookups) (*wingPlan, error) {
	formationID, err := resolve("wing formation", lk.WingFormations, rec.Formation)
	if err != nil {
		return nil, err
	}
	roleID, err := resolve("wing role", lk.WingRoles, rec.Role)
	if err != nil {
		return nil, err
	}

	dataHash, err := instanceHash(rec.FlatRow, rec.FlatOrder, nil, "")
	if err != nil {
		return nil, err
	}

	return &wingPlan{
		code:     rec.Code,
		dataHash: dataHash,
		instance: models.WingInstance{
			DataHash:        dataHash,
			WingFormationID: formationID,
			WingRoleID:      roleID,
			VariantCode:     rec.VariantCode,
			NumShips:        rec.NumShips,
			OrdnancePoints:  rec.OrdnancePoints,
			RefitTime:       rec.RefitTime,
		},
		tags: rec.Tags,
	}, nil
}

// importWings runs the identity → instance → version sequence for every
// fighter wing of the mod. Wings run before ships so built-in wing
// associations can resolve against persisted wing identities. The changed
// flag is reported for logging but does not feed data_changed, which
// tracks ships, weapons, hullmods and ship systems only.
func (s *Service) importWings(ctx context.Context, tx *gorm.DB, mod *models.Mod, mv *models.ModVersion, recs map[string]*PreparedWing, lk *Lookups) (bool, error) {
	changed := false

	for _, code := range sortedCodes(recs) {
		rec := recs[code]

		plan, err := buildWingPlan(rec, lk)
		if err != nil {
			return false, fmt.Errorf("wing %s: %w", code, err)
		}

		identity := models.Wing{ModID: mod.ID, Code: code}
		if _, err := store.FindOrCreate(tx, &identity, map[string]any{"mod_id": mod.ID, "code": code}); err != nil {
			return false, fmt.Errorf("wing %s: %w", code, err)
		}

		instance := plan.instance
		instance.WingID = identity.ID
		inserted, err := store.FindOrCreate(tx, &instance, map[string]any{"data_hash": plan.dataHash})
		if err != nil {
			return false, fmt.Errorf("wing %s: %w", code, err)
		}

		version := models.WingVersion{
			ModVersionID:   mv.ID,
			WingID:         identity.ID,
			WingInstanceID: instance.ID,
		}
		if err := tx.Create(&version).Error; err != nil {
			return false, fmt.Errorf("wing %s: failed to create version row: %w", code, err)
		}

		if inserted {
			changed = true
			for _, tag := range plan.tags {
				tagID, err := resolveTag(tx, tag)
				if err != nil {
					return false, fmt.Errorf("wing %s: %w", code, err)
				}
				junction := models.WingInstanceTag{WingInstanceID: instance.ID, TagID: tagID}
				if err := tx.Create(&junction).Error; err != nil {
					return false, fmt.Errorf("wing %s: failed to link tag %q: %w", code, tag, err)
				}
			}
			s.logger.Debug("New wing instance", zap.String("code", code), zap.String("data_hash", plan.dataHash))
		}
	}

	return changed, nil
}
