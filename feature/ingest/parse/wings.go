package parse

import (
	"fmt"

	"modhangar/feature/catalog/models"
	"modhangar/feature/ingest"
)

var wingFlatOrder = []string{
	"id", "variant", "num_ships", "role", "formation",
	"refit_time", "ops", "tags",
}

func parseWings(root string) (map[string]*ingest.PreparedWing, error) {
	rows, err := optionalCSV(root, wingDataFile)
	if err != nil {
		return nil, err
	}

	wings := make(map[string]*ingest.PreparedWing, len(rows))
	for _, row := range rows {
		rec, err := prepareWing(row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", wingDataFile, err)
		}
		if _, dup := wings[rec.Code]; dup {
			return nil, fmt.Errorf("%s: duplicate wing id %s", wingDataFile, rec.Code)
		}
		wings[rec.Code] = rec
	}

	return wings, nil
}

func prepareWing(row map[string]string) (*ingest.PreparedWing, error) {
	id := row["id"]
	if id == "" {
		return nil, fmt.Errorf("wing row missing id")
	}

	if !validEnum(row["role"], models.WingRoleCodes) {
		return nil, fmt.Errorf("wing %s: unknown role %q", id, row["role"])
	}
	if !validEnum(row["formation"], models.WingFormationCodes) {
		return nil, fmt.Errorf("wing %s: unknown formation %q", id, row["formation"])
	}

	numShips, err := cellInt(row, "num_ships")
	if err != nil {
		return nil, fmt.Errorf("wing %s: %w", id, err)
	}
	refitTime, err := cellFloat(row, "refit_time")
	if err != nil {
		return nil, fmt.Errorf("wing %s: %w", id, err)
	}
	ops, err := cellInt(row, "ops")
	if err != nil {
		return nil, fmt.Errorf("wing %s: %w", id, err)
	}

	rec := &ingest.PreparedWing{
		Code:           id,
		Formation:      row["formation"],
		Role:           row["role"],
		VariantCode:    row["variant"],
		NumShips:       numShips,
		OrdnancePoints: ops,
		RefitTime:      refitTime,
		FlatRow:        row,
		FlatOrder:      wingFlatOrder,
		Tags:           cellList(row, "tags"),
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}
