package parse

import (
	"fmt"
)

// Description entity types in descriptions.csv.
const (
	descShip       = "SHIP"
	descWeapon     = "WEAPON"
	descHullmod    = "HULLMOD"
	descShipSystem = "SHIP_SYSTEM"
)

// descriptions indexes description text by (type, id).
type descriptions map[string]map[string]string

func (d descriptions) lookup(entityType, id string) string {
	return d[entityType][id]
}

func parseDescriptions(root string) (descriptions, error) {
	rows, err := optionalCSV(root, descriptionsFile)
	if err != nil {
		return nil, err
	}

	d := descriptions{}
	for _, row := range rows {
		id := row["id"]
		entityType := row["type"]
		if id == "" || entityType == "" {
			continue
		}
		switch entityType {
		case descShip, descWeapon, descHullmod, descShipSystem:
		default:
			return nil, fmt.Errorf("%s: unknown description type %q for id %s", descriptionsFile, entityType, id)
		}

		if d[entityType] == nil {
			d[entityType] = map[string]string{}
		}
		d[entityType][id] = row["text"]
	}

	return d, nil
}
