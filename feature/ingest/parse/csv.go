package parse

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readCSV reads a tabular data file into one map per row, keyed by the
// header row. Mod authors habitually leave comment rows (leading #) and
// blank separator rows in these files; both are skipped. Values are
// trimmed, so a cell of spaces counts as absent.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}

	var rows []map[string]string
	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		first := strings.TrimSpace(record[0])
		if first == "" || strings.HasPrefix(first, "#") {
			continue
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Cell conversion helpers. Blank source cells become explicit absent
// values (nil pointers / zero values) here, never inside the pipeline.

func cellInt(row map[string]string, col string) (int, error) {
	v := row[col]
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid integer %q", col, v)
	}
	return n, nil
}

func cellFloat(row map[string]string, col string) (float64, error) {
	v := row[col]
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid number %q", col, v)
	}
	return f, nil
}

func cellIntPtr(row map[string]string, col string) (*int, error) {
	if row[col] == "" {
		return nil, nil
	}
	n, err := cellInt(row, col)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func cellFloatPtr(row map[string]string, col string) (*float64, error) {
	if row[col] == "" {
		return nil, nil
	}
	f, err := cellFloat(row, col)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// cellList splits a comma-separated cell into trimmed codes.
func cellList(row map[string]string, col string) []string {
	v := row[col]
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validEnum checks a source value against a fixed vocabulary.
func validEnum(value string, vocabulary []string) bool {
	for _, v := range vocabulary {
		if v == value {
			return true
		}
	}
	return false
}
