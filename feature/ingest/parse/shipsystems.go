package parse

import (
	"fmt"

	"modhangar/feature/ingest"
)

var shipSystemFlatOrder = []string{
	"id", "name",
	"flux_per_use", "flux_per_second", "cooldown", "charges",
	"tags", "icon",
}

func parseShipSystems(root string, desc descriptions) (map[string]*ingest.PreparedShipSystem, error) {
	rows, err := optionalCSV(root, systemDataFile)
	if err != nil {
		return nil, err
	}

	systems := make(map[string]*ingest.PreparedShipSystem, len(rows))
	for _, row := range rows {
		rec, err := prepareShipSystem(root, row, desc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", systemDataFile, err)
		}
		if _, dup := systems[rec.Code]; dup {
			return nil, fmt.Errorf("%s: duplicate ship system id %s", systemDataFile, rec.Code)
		}
		systems[rec.Code] = rec
	}

	return systems, nil
}

func prepareShipSystem(root string, row map[string]string, desc descriptions) (*ingest.PreparedShipSystem, error) {
	id := row["id"]
	if id == "" {
		return nil, fmt.Errorf("ship system row missing id")
	}

	data, err := shipSystemData(row)
	if err != nil {
		return nil, fmt.Errorf("ship system %s: %w", id, err)
	}

	spec, err := sidecar(root, "data/shipsystems/"+id+".system")
	if err != nil {
		return nil, fmt.Errorf("ship system %s: %w", id, err)
	}

	rec := &ingest.PreparedShipSystem{
		Code:        id,
		Name:        row["name"],
		FlatRow:     row,
		FlatOrder:   shipSystemFlatOrder,
		Description: desc.lookup(descShipSystem, id),
		Data:        data,
		Tags:        cellList(row, "tags"),
		Sprite:      spritePath(root, row["icon"]),
	}
	if spec != nil {
		rec.Spec = spec
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func shipSystemData(row map[string]string) (ingest.ShipSystemData, error) {
	var data ingest.ShipSystemData
	var err error

	if data.FluxPerUse, err = cellFloatPtr(row, "flux_per_use"); err != nil {
		return data, err
	}
	if data.FluxPerSecond, err = cellFloatPtr(row, "flux_per_second"); err != nil {
		return data, err
	}
	if data.Cooldown, err = cellFloatPtr(row, "cooldown"); err != nil {
		return data, err
	}
	if data.Charges, err = cellIntPtr(row, "charges"); err != nil {
		return data, err
	}

	return data, nil
}
