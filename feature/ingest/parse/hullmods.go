package parse

import (
	"fmt"

	"modhangar/feature/ingest"
)

var hullmodFlatOrder = []string{
	"id", "name",
	"cost_frigate", "cost_destroyer", "cost_cruiser", "cost_capital",
	"short_description", "tags", "icon",
}

func parseHullmods(root string, desc descriptions) (map[string]*ingest.PreparedHullmod, error) {
	rows, err := optionalCSV(root, hullmodDataFile)
	if err != nil {
		return nil, err
	}

	hullmods := make(map[string]*ingest.PreparedHullmod, len(rows))
	for _, row := range rows {
		rec, err := prepareHullmod(root, row, desc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", hullmodDataFile, err)
		}
		if _, dup := hullmods[rec.Code]; dup {
			return nil, fmt.Errorf("%s: duplicate hullmod id %s", hullmodDataFile, rec.Code)
		}
		hullmods[rec.Code] = rec
	}

	return hullmods, nil
}

func prepareHullmod(root string, row map[string]string, desc descriptions) (*ingest.PreparedHullmod, error) {
	id := row["id"]
	if id == "" {
		return nil, fmt.Errorf("hullmod row missing id")
	}

	costs, err := hullmodCosts(row)
	if err != nil {
		return nil, fmt.Errorf("hullmod %s: %w", id, err)
	}

	rec := &ingest.PreparedHullmod{
		Code:             id,
		Name:             row["name"],
		FlatRow:          row,
		FlatOrder:        hullmodFlatOrder,
		Description:      desc.lookup(descHullmod, id),
		ShortDescription: row["short_description"],
		Costs:            costs,
		Tags:             cellList(row, "tags"),
		Sprite:           spritePath(root, row["icon"]),
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func hullmodCosts(row map[string]string) (ingest.HullmodCosts, error) {
	var costs ingest.HullmodCosts
	var err error

	if costs.Frigate, err = cellInt(row, "cost_frigate"); err != nil {
		return costs, err
	}
	if costs.Destroyer, err = cellInt(row, "cost_destroyer"); err != nil {
		return costs, err
	}
	if costs.Cruiser, err = cellInt(row, "cost_cruiser"); err != nil {
		return costs, err
	}
	if costs.Capital, err = cellInt(row, "cost_capital"); err != nil {
		return costs, err
	}

	return costs, nil
}
