package parse

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"modhangar/feature/ingest"
)

// Source file layout inside a mod package.
const (
	modInfoFile      = "mod_info.json"
	weaponDataFile   = "data/weapons/weapon_data.csv"
	hullmodDataFile  = "data/hullmods/hull_mods.csv"
	systemDataFile   = "data/shipsystems/ship_systems.csv"
	shipDataFile     = "data/hulls/ship_data.csv"
	wingDataFile     = "data/hulls/wing_data.csv"
	descriptionsFile = "data/strings/descriptions.csv"
)

// modInfo mirrors mod_info.json.
type modInfo struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Version versionSpec `json:"version"`
}

// versionSpec accepts both forms mod authors use: an object with
// major/minor/patch fields and a plain "1.2.3" string.
type versionSpec struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

func (v *versionSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parts := strings.Split(s, ".")
		if len(parts) != 3 {
			return fmt.Errorf("invalid version string %q", s)
		}
		nums := make([]int, 3)
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return fmt.Errorf("invalid version string %q", s)
			}
			nums[i] = n
		}
		v.Major, v.Minor, v.Patch = nums[0], nums[1], nums[2]
		return nil
	}

	type plain versionSpec
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("invalid version value: %w", err)
	}
	*v = versionSpec(p)
	return nil
}

// ModDir parses a mod package directory into prepared records, reading
// the mod identity from mod_info.json.
func ModDir(root string) (*ingest.Content, error) {
	raw, err := os.ReadFile(filepath.Join(root, modInfoFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read mod descriptor: %w", err)
	}

	var info modInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", modInfoFile, err)
	}
	if info.ID == "" {
		return nil, fmt.Errorf("%s: missing mod id", modInfoFile)
	}
	if info.Name == "" {
		info.Name = info.ID
	}

	content, err := contentDir(root)
	if err != nil {
		return nil, err
	}

	content.ModCode = info.ID
	content.ModName = info.Name
	content.Major = info.Version.Major
	content.Minor = info.Version.Minor
	content.Patch = info.Version.Patch
	return content, nil
}

// VanillaDir parses the base-game content directory. There is no
// mod_info.json; identity and version are fixed by the orchestrator.
func VanillaDir(root string) (*ingest.Content, error) {
	return contentDir(root)
}

func contentDir(root string) (*ingest.Content, error) {
	descriptions, err := parseDescriptions(root)
	if err != nil {
		return nil, err
	}

	weapons, err := parseWeapons(root, descriptions)
	if err != nil {
		return nil, err
	}
	hullmods, err := parseHullmods(root, descriptions)
	if err != nil {
		return nil, err
	}
	systems, err := parseShipSystems(root, descriptions)
	if err != nil {
		return nil, err
	}
	wings, err := parseWings(root)
	if err != nil {
		return nil, err
	}
	ships, err := parseShips(root, descriptions)
	if err != nil {
		return nil, err
	}

	return &ingest.Content{
		Weapons:     weapons,
		Hullmods:    hullmods,
		ShipSystems: systems,
		Wings:       wings,
		Ships:       ships,
	}, nil
}

// spritePath resolves a sprite reference from a data file to a prepared
// image descriptor. References are relative to the mod root.
func spritePath(root, ref string) *ingest.PreparedImage {
	if ref == "" {
		return nil
	}
	return &ingest.PreparedImage{SourcePath: filepath.Join(root, filepath.FromSlash(ref))}
}

// optionalCSV reads a data file that may legitimately be absent (a
// weapons-only mod has no ship_data.csv).
func optionalCSV(root, rel string) ([]map[string]string, error) {
	path := filepath.Join(root, filepath.FromSlash(rel))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return readCSV(path)
}

// sidecar reads an optional per-entity JSON file into a generic value
// for structured hashing and typed extraction.
func sidecar(root, rel string) (map[string]any, error) {
	path := filepath.Join(root, filepath.FromSlash(rel))
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", rel, err)
	}

	var v map[string]any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", rel, err)
	}
	return v, nil
}
