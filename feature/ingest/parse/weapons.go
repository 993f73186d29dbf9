package parse

import (
	"fmt"

	"modhangar/feature/catalog/models"
	"modhangar/feature/ingest"
)

// weaponFlatOrder fixes the field order of the weapon hash input. The
// order is part of the content-addressing scheme: reordering it changes
// every weapon hash and orphans previously stored instances.
var weaponFlatOrder = []string{
	"id", "name", "type", "size", "damage_type",
	"range", "damage_per_shot", "energy_per_shot", "emp", "turn_rate",
	"ammo", "ammo_per_sec", "refire_delay", "ops",
	"primary_role", "ancillary_role", "tags", "groups", "sprite",
}

func parseWeapons(root string, desc descriptions) (map[string]*ingest.PreparedWeapon, error) {
	rows, err := optionalCSV(root, weaponDataFile)
	if err != nil {
		return nil, err
	}

	weapons := make(map[string]*ingest.PreparedWeapon, len(rows))
	for _, row := range rows {
		rec, err := prepareWeapon(root, row, desc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", weaponDataFile, err)
		}
		if _, dup := weapons[rec.Code]; dup {
			return nil, fmt.Errorf("%s: duplicate weapon id %s", weaponDataFile, rec.Code)
		}
		weapons[rec.Code] = rec
	}

	return weapons, nil
}

func prepareWeapon(root string, row map[string]string, desc descriptions) (*ingest.PreparedWeapon, error) {
	id := row["id"]
	if id == "" {
		return nil, fmt.Errorf("weapon row missing id")
	}

	if !validEnum(row["type"], models.WeaponTypeCodes) {
		return nil, fmt.Errorf("weapon %s: unknown weapon type %q", id, row["type"])
	}
	if !validEnum(row["size"], models.WeaponSizeCodes) {
		return nil, fmt.Errorf("weapon %s: unknown weapon size %q", id, row["size"])
	}
	if !validEnum(row["damage_type"], models.DamageTypeCodes) {
		return nil, fmt.Errorf("weapon %s: unknown damage type %q", id, row["damage_type"])
	}

	stats, err := weaponStats(row)
	if err != nil {
		return nil, fmt.Errorf("weapon %s: %w", id, err)
	}

	// Optional .wpn sidecar: structured spec data plus the turret sprite.
	spec, err := sidecar(root, "data/weapons/"+id+".wpn")
	if err != nil {
		return nil, fmt.Errorf("weapon %s: %w", id, err)
	}

	rec := &ingest.PreparedWeapon{
		Code:          id,
		Name:          row["name"],
		Type:          row["type"],
		Size:          row["size"],
		Damage:        row["damage_type"],
		FlatRow:       row,
		FlatOrder:     weaponFlatOrder,
		Description:   desc.lookup(descWeapon, id),
		Stats:         stats,
		PrimaryRole:   row["primary_role"],
		AncillaryRole: row["ancillary_role"],
		Tags:          cellList(row, "tags"),
		Groups:        cellList(row, "groups"),
		Sprite:        spritePath(root, row["sprite"]),
	}
	if spec != nil {
		rec.Spec = spec
		if turret, ok := spec["turretSprite"].(string); ok {
			rec.TurretSprite = spritePath(root, turret)
		}
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func weaponStats(row map[string]string) (ingest.WeaponStatsData, error) {
	var stats ingest.WeaponStatsData
	var err error

	if stats.Range, err = cellFloat(row, "range"); err != nil {
		return stats, err
	}
	if stats.DamagePerShot, err = cellFloat(row, "damage_per_shot"); err != nil {
		return stats, err
	}
	if stats.EnergyPerShot, err = cellFloat(row, "energy_per_shot"); err != nil {
		return stats, err
	}
	if stats.EmpDamage, err = cellFloat(row, "emp"); err != nil {
		return stats, err
	}
	if stats.TurnRate, err = cellFloat(row, "turn_rate"); err != nil {
		return stats, err
	}
	if stats.Ammo, err = cellIntPtr(row, "ammo"); err != nil {
		return stats, err
	}
	if stats.AmmoPerSecond, err = cellFloatPtr(row, "ammo_per_sec"); err != nil {
		return stats, err
	}
	if stats.RefireDelay, err = cellFloatPtr(row, "refire_delay"); err != nil {
		return stats, err
	}
	if stats.OrdnancePoints, err = cellInt(row, "ops"); err != nil {
		return stats, err
	}

	return stats, nil
}
