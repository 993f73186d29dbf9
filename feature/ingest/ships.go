package ingest

import (
	"context"
	"fmt"

	"modhangar/core/store"
	"modhangar/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// identityMaps holds the mod's own entity identities, fetched once per
// import run after the owning importers have persisted them. Ship import
// resolves system references and built-in associations against these.
type identityMaps struct {
	weapons     map[string]uint
	hullmods    map[string]uint
	wings       map[string]uint
	shipSystems map[string]uint
}

func loadIdentityMaps(tx *gorm.DB, modID uint) (*identityMaps, error) {
	weapons, err := codeMap(tx.Where("mod_id = ?", modID), func(r models.Weapon) (string, uint) { return r.Code, r.ID })
	if err != nil {
		return nil, fmt.Errorf("failed to load weapon identities: %w", err)
	}
	hullmods, err := codeMap(tx.Where("mod_id = ?", modID), func(r models.Hullmod) (string, uint) { return r.Code, r.ID })
	if err != nil {
		return nil, fmt.Errorf("failed to load hullmod identities: %w", err)
	}
	wings, err := codeMap(tx.Where("mod_id = ?", modID), func(r models.Wing) (string, uint) { return r.Code, r.ID })
	if err != nil {
		return nil, fmt.Errorf("failed to load wing identities: %w", err)
	}
	shipSystems, err := codeMap(tx.Where("mod_id = ?", modID), func(r models.ShipSystem) (string, uint) { return r.Code, r.ID })
	if err != nil {
		return nil, fmt.Errorf("failed to load ship system identities: %w", err)
	}

	return &identityMaps{
		weapons:     weapons,
		hullmods:    hullmods,
		wings:       wings,
		shipSystems: shipSystems,
	}, nil
}

type shipPlan struct {
	code     string
	dataHash string
	instance models.ShipInstance
	stats    models.ShipStats
	spec     models.ShipSpec
	text     models.ShipText
	slots    []models.ShipWeaponSlot
	tags     []string
	hints    []string
	builtins BuiltinsData
}

func buildShipPlan(rec *PreparedShip, lk *Lookups) (*shipPlan, error) {
	sizeID, err := resolve("ship size", lk.ShipSizes, rec.Size)
	if err != nil {
		return nil, err
	}
	shieldID, err := resolve("shield type", lk.ShieldTypes, rec.ShieldType)
	if err != nil {
		return nil, err
	}

	slots := make([]models.ShipWeaponSlot, 0, len(rec.WeaponSlots))
	for _, slot := range rec.WeaponSlots {
		mountID, err := resolve("mount type", lk.MountTypes, slot.Mount)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", slot.SlotCode, err)
		}
		slotSizeID, err := resolve("weapon size", lk.WeaponSizes, slot.Size)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", slot.SlotCode, err)
		}
		slotTypeID, err := resolve("weapon type", lk.WeaponTypes, slot.Type)
		if err != nil {
			return nil, fmt.Errorf("slot %s: %w", slot.SlotCode, err)
		}
		slots = append(slots, models.ShipWeaponSlot{
			SlotCode:     slot.SlotCode,
			MountTypeID:  mountID,
			WeaponSizeID: slotSizeID,
			WeaponTypeID: slotTypeID,
			Angle:        slot.Angle,
			Arc:          slot.Arc,
			PosX:         slot.PosX,
			PosY:         slot.PosY,
		})
	}

	dataHash, err := instanceHash(rec.FlatRow, rec.FlatOrder, rec.Spec, rec.Description)
	if err != nil {
		return nil, err
	}

	return &shipPlan{
		code:     rec.Code,
		dataHash: dataHash,
		instance: models.ShipInstance{
			DataHash:     dataHash,
			Name:         rec.Name,
			ShipSizeID:   sizeID,
			ShieldTypeID: shieldID,
		},
		stats: models.ShipStats{
			Hull:            rec.Stats.Hull,
			Armor:           rec.Stats.Armor,
			FluxCapacity:    rec.Stats.FluxCapacity,
			FluxDissipation: rec.Stats.FluxDissipation,
			OrdnancePoints:  rec.Stats.OrdnancePoints,
			MaxSpeed:        rec.Stats.MaxSpeed,
			Acceleration:    rec.Stats.Acceleration,
			MaxTurnRate:     rec.Stats.MaxTurnRate,
			Mass:            rec.Stats.Mass,
			CargoCapacity:   rec.Stats.CargoCapacity,
			FuelCapacity:    rec.Stats.FuelCapacity,
			CrewMax:         rec.Stats.CrewMax,
		},
		spec: models.ShipSpec{
			CenterX:          rec.SpecData.CenterX,
			CenterY:          rec.SpecData.CenterY,
			Width:            rec.SpecData.Width,
			Height:           rec.SpecData.Height,
			ShieldArc:        rec.SpecData.ShieldArc,
			ShieldRadius:     rec.SpecData.ShieldRadius,
			ShieldEfficiency: rec.SpecData.ShieldEfficiency,
			PhaseCost:        rec.SpecData.PhaseCost,
			PhaseUpkeep:      rec.SpecData.PhaseUpkeep,
		},
		text:     models.ShipText{Description: rec.Description},
		slots:    slots,
		tags:     rec.Tags,
		hints:    rec.Hints,
		builtins: rec.Builtins,
	}, nil
}

// importShips runs the identity → instance → version sequence for every
// hull of the mod. It reports whether any instance was newly created.
func (s *Service) importShips(ctx context.Context, tx *gorm.DB, mod *models.Mod, mv *models.ModVersion, recs map[string]*PreparedShip, lk *Lookups, ids *identityMaps) (bool, error) {
	changed := false

	for _, code := range sortedCodes(recs) {
		rec := recs[code]

		plan, err := buildShipPlan(rec, lk)
		if err != nil {
			return false, fmt.Errorf("ship %s: %w", code, err)
		}

		imageID, err := s.resolveImage(ctx, tx, mod.Code, "ships", rec.Sprite)
		if err != nil {
			return false, fmt.Errorf("ship %s: %w", code, err)
		}

		identity := models.Ship{ModID: mod.ID, Code: code}
		if _, err := store.FindOrCreate(tx, &identity, map[string]any{"mod_id": mod.ID, "code": code}); err != nil {
			return false, fmt.Errorf("ship %s: %w", code, err)
		}

		instance := plan.instance
		instance.ShipID = identity.ID
		if rec.SystemCode != "" {
			systemID, ok := ids.shipSystems[rec.SystemCode]
			if !ok {
				return false, fmt.Errorf("ship %s: %w: ship system %q", code, ErrUnknownCode, rec.SystemCode)
			}
			instance.ShipSystemID = &systemID
		}

		inserted, err := store.FindOrCreate(tx, &instance, map[string]any{"data_hash": plan.dataHash})
		if err != nil {
			return false, fmt.Errorf("ship %s: %w", code, err)
		}

		version := models.ShipVersion{
			ModVersionID:   mv.ID,
			ShipID:         identity.ID,
			ShipInstanceID: instance.ID,
			ImageID:        imageID,
		}
		if err := tx.Create(&version).Error; err != nil {
			return false, fmt.Errorf("ship %s: failed to create version row: %w", code, err)
		}

		if inserted {
			changed = true
			if err := applyShipDetails(tx, instance.ID, plan); err != nil {
				return false, fmt.Errorf("ship %s: %w", code, err)
			}
			if err := s.resolveBuiltins(tx, code, instance.ID, plan.builtins, ids); err != nil {
				return false, fmt.Errorf("ship %s: %w", code, err)
			}
			s.logger.Debug("New ship instance", zap.String("code", code), zap.String("data_hash", plan.dataHash))
		}
	}

	return changed, nil
}

func applyShipDetails(tx *gorm.DB, instanceID uint, plan *shipPlan) error {
	stats := plan.stats
	stats.ShipInstanceID = instanceID
	if err := tx.Create(&stats).Error; err != nil {
		return fmt.Errorf("failed to create stats: %w", err)
	}

	spec := plan.spec
	spec.ShipInstanceID = instanceID
	if err := tx.Create(&spec).Error; err != nil {
		return fmt.Errorf("failed to create specs: %w", err)
	}

	text := plan.text
	text.ShipInstanceID = instanceID
	if err := tx.Create(&text).Error; err != nil {
		return fmt.Errorf("failed to create texts: %w", err)
	}

	for _, slot := range plan.slots {
		slot.ShipInstanceID = instanceID
		if err := tx.Create(&slot).Error; err != nil {
			return fmt.Errorf("failed to create weapon slot %s: %w", slot.SlotCode, err)
		}
	}

	for _, tag := range plan.tags {
		tagID, err := resolveTag(tx, tag)
		if err != nil {
			return err
		}
		junction := models.ShipInstanceTag{ShipInstanceID: instanceID, TagID: tagID}
		if err := tx.Create(&junction).Error; err != nil {
			return fmt.Errorf("failed to link tag %q: %w", tag, err)
		}
	}

	for _, hint := range plan.hints {
		hintID, err := resolveHint(tx, hint)
		if err != nil {
			return err
		}
		junction := models.ShipInstanceHint{ShipInstanceID: instanceID, HintID: hintID}
		if err := tx.Create(&junction).Error; err != nil {
			return fmt.Errorf("failed to link hint %q: %w", hint, err)
		}
	}

	return nil
}

// resolveBuiltins records the weapons, hullmods and wings a hull carries
// by default. Unlike every other lookup in the pipeline, a code with no
// matching identity is not fatal: the miss is logged with its context and
// the remaining built-ins are still processed. This best-effort policy is
// deliberate — a hull referencing content from another mod should not
// abort the whole import — and is exercised by tests.
func (s *Service) resolveBuiltins(tx *gorm.DB, shipCode string, instanceID uint, builtins BuiltinsData, ids *identityMaps) error {
	for _, slot := range sortedCodes(builtins.Weapons) {
		weaponCode := builtins.Weapons[slot]
		weaponID, ok := ids.weapons[weaponCode]
		if !ok {
			s.logger.Warn("Skipping unresolved built-in weapon",
				zap.String("ship", shipCode),
				zap.String("slot", slot),
				zap.String("weapon", weaponCode))
			continue
		}
		row := models.ShipBuiltinWeapon{ShipInstanceID: instanceID, SlotCode: slot, WeaponID: weaponID}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create built-in weapon %s: %w", weaponCode, err)
		}
	}

	for _, code := range builtins.Hullmods {
		hullmodID, ok := ids.hullmods[code]
		if !ok {
			s.logger.Warn("Skipping unresolved built-in hullmod",
				zap.String("ship", shipCode),
				zap.String("hullmod", code))
			continue
		}
		row := models.ShipBuiltinHullmod{ShipInstanceID: instanceID, HullmodID: hullmodID}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create built-in hullmod %s: %w", code, err)
		}
	}

	for _, code := range builtins.Wings {
		wingID, ok := ids.wings[code]
		if !ok {
			s.logger.Warn("Skipping unresolved built-in wing",
				zap.String("ship", shipCode),
				zap.String("wing", code))
			continue
		}
		row := models.ShipBuiltinWing{ShipInstanceID: instanceID, WingID: wingID}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create built-in wing %s: %w", code, err)
		}
	}

	return nil
}
