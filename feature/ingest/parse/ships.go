package parse

import (
	"fmt"

	"modhangar/feature/catalog/models"
	"modhangar/feature/ingest"
)

var shipFlatOrder = []string{
	"id", "name", "hull_size", "shield_type", "system",
	"hitpoints", "armor", "flux_capacity", "flux_dissipation", "ordnance_points",
	"max_speed", "acceleration", "max_turn_rate", "mass",
	"cargo", "fuel", "max_crew", "tags", "hints",
}

func parseShips(root string, desc descriptions) (map[string]*ingest.PreparedShip, error) {
	rows, err := optionalCSV(root, shipDataFile)
	if err != nil {
		return nil, err
	}

	ships := make(map[string]*ingest.PreparedShip, len(rows))
	for _, row := range rows {
		rec, err := prepareShip(root, row, desc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", shipDataFile, err)
		}
		if _, dup := ships[rec.Code]; dup {
			return nil, fmt.Errorf("%s: duplicate ship id %s", shipDataFile, rec.Code)
		}
		ships[rec.Code] = rec
	}

	return ships, nil
}

func prepareShip(root string, row map[string]string, desc descriptions) (*ingest.PreparedShip, error) {
	id := row["id"]
	if id == "" {
		return nil, fmt.Errorf("ship row missing id")
	}

	if !validEnum(row["hull_size"], models.ShipSizeCodes) {
		return nil, fmt.Errorf("ship %s: unknown hull size %q", id, row["hull_size"])
	}
	if !validEnum(row["shield_type"], models.ShieldTypeCodes) {
		return nil, fmt.Errorf("ship %s: unknown shield type %q", id, row["shield_type"])
	}

	stats, err := shipStats(row)
	if err != nil {
		return nil, fmt.Errorf("ship %s: %w", id, err)
	}

	// The .ship sidecar carries the hull geometry, the weapon mounts and
	// the built-in references; hulls without one cannot be imported.
	spec, err := sidecar(root, "data/hulls/"+id+".ship")
	if err != nil {
		return nil, fmt.Errorf("ship %s: %w", id, err)
	}
	if spec == nil {
		return nil, fmt.Errorf("ship %s: missing hull file data/hulls/%s.ship", id, id)
	}

	specData, err := shipSpecData(spec)
	if err != nil {
		return nil, fmt.Errorf("ship %s: %w", id, err)
	}
	slots, err := shipWeaponSlots(spec)
	if err != nil {
		return nil, fmt.Errorf("ship %s: %w", id, err)
	}
	builtins, err := shipBuiltins(spec)
	if err != nil {
		return nil, fmt.Errorf("ship %s: %w", id, err)
	}

	rec := &ingest.PreparedShip{
		Code:        id,
		Name:        row["name"],
		Size:        row["hull_size"],
		ShieldType:  row["shield_type"],
		SystemCode:  row["system"],
		FlatRow:     row,
		FlatOrder:   shipFlatOrder,
		Spec:        spec,
		Description: desc.lookup(descShip, id),
		Stats:       stats,
		SpecData:    specData,
		WeaponSlots: slots,
		Builtins:    builtins,
		Tags:        cellList(row, "tags"),
		Hints:       cellList(row, "hints"),
	}
	if sprite, ok := spec["spriteName"].(string); ok {
		rec.Sprite = spritePath(root, sprite)
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func shipStats(row map[string]string) (ingest.ShipStatsData, error) {
	var stats ingest.ShipStatsData
	var err error

	if stats.Hull, err = cellInt(row, "hitpoints"); err != nil {
		return stats, err
	}
	if stats.Armor, err = cellInt(row, "armor"); err != nil {
		return stats, err
	}
	if stats.FluxCapacity, err = cellInt(row, "flux_capacity"); err != nil {
		return stats, err
	}
	if stats.FluxDissipation, err = cellInt(row, "flux_dissipation"); err != nil {
		return stats, err
	}
	if stats.OrdnancePoints, err = cellInt(row, "ordnance_points"); err != nil {
		return stats, err
	}
	if stats.MaxSpeed, err = cellFloat(row, "max_speed"); err != nil {
		return stats, err
	}
	if stats.Acceleration, err = cellFloat(row, "acceleration"); err != nil {
		return stats, err
	}
	if stats.MaxTurnRate, err = cellFloat(row, "max_turn_rate"); err != nil {
		return stats, err
	}
	if stats.Mass, err = cellFloat(row, "mass"); err != nil {
		return stats, err
	}
	if stats.CargoCapacity, err = cellInt(row, "cargo"); err != nil {
		return stats, err
	}
	if stats.FuelCapacity, err = cellInt(row, "fuel"); err != nil {
		return stats, err
	}
	if stats.CrewMax, err = cellInt(row, "max_crew"); err != nil {
		return stats, err
	}

	return stats, nil
}

func shipSpecData(spec map[string]any) (ingest.ShipSpecData, error) {
	var data ingest.ShipSpecData

	center, ok := jsonFloatPair(spec["center"])
	if !ok {
		return data, fmt.Errorf("hull file missing center")
	}
	data.CenterX, data.CenterY = center[0], center[1]

	width, ok := jsonInt(spec["width"])
	if !ok {
		return data, fmt.Errorf("hull file missing width")
	}
	height, ok := jsonInt(spec["height"])
	if !ok {
		return data, fmt.Errorf("hull file missing height")
	}
	data.Width, data.Height = width, height

	if shield, ok := spec["shield"].(map[string]any); ok {
		data.ShieldArc = jsonFloatPtr(shield["arc"])
		data.ShieldRadius = jsonFloatPtr(shield["radius"])
		data.ShieldEfficiency = jsonFloatPtr(shield["efficiency"])
	}
	if phase, ok := spec["phase"].(map[string]any); ok {
		data.PhaseCost = jsonFloatPtr(phase["cost"])
		data.PhaseUpkeep = jsonFloatPtr(phase["upkeep"])
	}

	return data, nil
}

func shipWeaponSlots(spec map[string]any) ([]ingest.WeaponSlotData, error) {
	raw, ok := spec["weaponSlots"].([]any)
	if !ok {
		return nil, nil
	}

	slots := make([]ingest.WeaponSlotData, 0, len(raw))
	seen := map[string]bool{}
	for i, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("weapon slot %d: not an object", i)
		}

		var slot ingest.WeaponSlotData
		slot.SlotCode, _ = m["id"].(string)
		if slot.SlotCode == "" {
			return nil, fmt.Errorf("weapon slot %d: missing id", i)
		}
		if seen[slot.SlotCode] {
			return nil, fmt.Errorf("weapon slot %s: duplicate slot id", slot.SlotCode)
		}
		seen[slot.SlotCode] = true

		slot.Mount, _ = m["mount"].(string)
		slot.Size, _ = m["size"].(string)
		slot.Type, _ = m["type"].(string)
		if !validEnum(slot.Mount, models.MountTypeCodes) {
			return nil, fmt.Errorf("weapon slot %s: unknown mount %q", slot.SlotCode, slot.Mount)
		}
		if !validEnum(slot.Size, models.WeaponSizeCodes) {
			return nil, fmt.Errorf("weapon slot %s: unknown size %q", slot.SlotCode, slot.Size)
		}
		if !validEnum(slot.Type, models.WeaponTypeCodes) {
			return nil, fmt.Errorf("weapon slot %s: unknown type %q", slot.SlotCode, slot.Type)
		}

		if v, ok := jsonFloat(m["angle"]); ok {
			slot.Angle = v
		}
		if v, ok := jsonFloat(m["arc"]); ok {
			slot.Arc = v
		}
		if pos, ok := jsonFloatPair(m["position"]); ok {
			slot.PosX, slot.PosY = pos[0], pos[1]
		}

		slots = append(slots, slot)
	}

	return slots, nil
}

func shipBuiltins(spec map[string]any) (ingest.BuiltinsData, error) {
	var b ingest.BuiltinsData

	if raw, ok := spec["builtInWeapons"].(map[string]any); ok {
		b.Weapons = make(map[string]string, len(raw))
		for slot, v := range raw {
			code, ok := v.(string)
			if !ok || code == "" {
				return b, fmt.Errorf("built-in weapon for slot %s: invalid code", slot)
			}
			b.Weapons[slot] = code
		}
	}

	var err error
	if b.Hullmods, err = jsonStringList(spec["builtInMods"]); err != nil {
		return b, fmt.Errorf("builtInMods: %w", err)
	}
	if b.Wings, err = jsonStringList(spec["builtInWings"]); err != nil {
		return b, fmt.Errorf("builtInWings: %w", err)
	}

	return b, nil
}

// JSON extraction helpers. encoding/json decodes every number as
// float64; these narrow the generic sidecar values to what the records
// expect.

func jsonFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func jsonFloatPtr(v any) *float64 {
	if f, ok := v.(float64); ok {
		return &f
	}
	return nil
}

func jsonInt(v any) (int, bool) {
	f, ok := v.(float64)
	return int(f), ok
}

func jsonFloatPair(v any) ([2]float64, bool) {
	raw, ok := v.([]any)
	if !ok || len(raw) != 2 {
		return [2]float64{}, false
	}
	x, okX := raw[0].(float64)
	y, okY := raw[1].(float64)
	if !okX || !okY {
		return [2]float64{}, false
	}
	return [2]float64{x, y}, true
}

func jsonStringList(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("not a list")
	}
	out := make([]string, 0, len(raw))
	for i, entry := range raw {
		s, ok := entry.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("entry %d: not a code", i)
		}
		out = append(out, s)
	}
	return out, nil
}
