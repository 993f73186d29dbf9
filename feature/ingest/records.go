package ingest

import (
	"fmt"
)

// Prepared records are the boundary between the file-format parsers and
// the pipeline. Parsers normalize every source value (typed fields,
// explicit nil for blank optionals) and validate enumerated codes against
// the fixed vocabularies before a record is handed over; the pipeline
// never re-validates. Each record also carries its own hash inputs: the
// normalized tabular row with its field order, an optional structured
// sidecar value, and an optional description.

// PreparedImage describes a sprite referenced by a record, prior to
// hashing and copying.
type PreparedImage struct {
	SourcePath string
}

// WeaponStatsData is the typed detail payload for a weapon.
type WeaponStatsData struct {
	Range          float64
	DamagePerShot  float64
	EnergyPerShot  float64
	EmpDamage      float64
	TurnRate       float64
	Ammo           *int
	AmmoPerSecond  *float64
	RefireDelay    *float64
	OrdnancePoints int
}

// PreparedWeapon is one weapon ready for import.
type PreparedWeapon struct {
	Code          string
	Name          string
	Type          string // WeaponTypeCodes
	Size          string // WeaponSizeCodes
	Damage        string // DamageTypeCodes
	FlatRow       map[string]string
	FlatOrder     []string
	Spec          any // parsed .wpn sidecar, nil if absent
	Description   string
	Stats         WeaponStatsData
	PrimaryRole   string
	AncillaryRole string
	Tags          []string
	Groups        []string
	Sprite        *PreparedImage
	TurretSprite  *PreparedImage
}

// Validate fails fast on missing required fields. Parsers call it before
// handing the record to the pipeline.
func (w *PreparedWeapon) Validate() error {
	switch {
	case w.Code == "":
		return fmt.Errorf("weapon record missing code")
	case w.Name == "":
		return fmt.Errorf("weapon %s missing name", w.Code)
	case w.Type == "" || w.Size == "" || w.Damage == "":
		return fmt.Errorf("weapon %s missing category codes", w.Code)
	case len(w.FlatOrder) == 0:
		return fmt.Errorf("weapon %s missing hash input", w.Code)
	}
	return nil
}

// HullmodCosts is the per-hull-size ordnance cost of a hullmod.
type HullmodCosts struct {
	Frigate   int
	Destroyer int
	Cruiser   int
	Capital   int
}

// PreparedHullmod is one hull modification ready for import.
type PreparedHullmod struct {
	Code             string
	Name             string
	FlatRow          map[string]string
	FlatOrder        []string
	Description      string
	ShortDescription string
	Costs            HullmodCosts
	Tags             []string
	Sprite           *PreparedImage
}

// Validate fails fast on missing required fields.
func (h *PreparedHullmod) Validate() error {
	switch {
	case h.Code == "":
		return fmt.Errorf("hullmod record missing code")
	case h.Name == "":
		return fmt.Errorf("hullmod %s missing name", h.Code)
	case len(h.FlatOrder) == 0:
		return fmt.Errorf("hullmod %s missing hash input", h.Code)
	}
	return nil
}

// ShipSystemData is the typed detail payload for a ship system.
type ShipSystemData struct {
	FluxPerUse    *float64
	FluxPerSecond *float64
	Cooldown      *float64
	Charges       *int
}

// PreparedShipSystem is one ship system ready for import.
type PreparedShipSystem struct {
	Code        string
	Name        string
	FlatRow     map[string]string
	FlatOrder   []string
	Spec        any // parsed .system sidecar, nil if absent
	Description string
	Data        ShipSystemData
	Tags        []string
	Sprite      *PreparedImage
}

// Validate fails fast on missing required fields.
func (s *PreparedShipSystem) Validate() error {
	switch {
	case s.Code == "":
		return fmt.Errorf("ship system record missing code")
	case s.Name == "":
		return fmt.Errorf("ship system %s missing name", s.Code)
	case len(s.FlatOrder) == 0:
		return fmt.Errorf("ship system %s missing hash input", s.Code)
	}
	return nil
}

// PreparedWing is one fighter wing ready for import.
type PreparedWing struct {
	Code           string
	Formation      string // WingFormationCodes
	Role           string // WingRoleCodes
	VariantCode    string
	NumShips       int
	OrdnancePoints int
	RefitTime      float64
	FlatRow        map[string]string
	FlatOrder      []string
	Tags           []string
}

// Validate fails fast on missing required fields.
func (w *PreparedWing) Validate() error {
	switch {
	case w.Code == "":
		return fmt.Errorf("wing record missing code")
	case w.VariantCode == "":
		return fmt.Errorf("wing %s missing variant", w.Code)
	case w.Formation == "" || w.Role == "":
		return fmt.Errorf("wing %s missing category codes", w.Code)
	case len(w.FlatOrder) == 0:
		return fmt.Errorf("wing %s missing hash input", w.Code)
	}
	return nil
}

// ShipStatsData is the typed tabular detail payload for a hull.
type ShipStatsData struct {
	Hull            int
	Armor           int
	FluxCapacity    int
	FluxDissipation int
	OrdnancePoints  int
	MaxSpeed        float64
	Acceleration    float64
	MaxTurnRate     float64
	Mass            float64
	CargoCapacity   int
	FuelCapacity    int
	CrewMax         int
}

// ShipSpecData is the typed structured detail payload for a hull:
// geometry plus shield/phase stats.
type ShipSpecData struct {
	CenterX          float64
	CenterY          float64
	Width            int
	Height           int
	ShieldArc        *float64
	ShieldRadius     *float64
	ShieldEfficiency *float64
	PhaseCost        *float64
	PhaseUpkeep      *float64
}

// WeaponSlotData is one weapon mount parsed from the hull file.
type WeaponSlotData struct {
	SlotCode string
	Mount    string // MountTypeCodes
	Size     string // WeaponSizeCodes
	Type     string // WeaponTypeCodes
	Angle    float64
	Arc      float64
	PosX     float64
	PosY     float64
}

// BuiltinsData lists the entities a hull carries by default, as codes to
// be resolved within the same mod at import time.
type BuiltinsData struct {
	Weapons  map[string]string // slot code -> weapon code
	Hullmods []string
	Wings    []string
}

// PreparedShip is one hull ready for import.
type PreparedShip struct {
	Code        string
	Name        string
	Size        string // ShipSizeCodes
	ShieldType  string // ShieldTypeCodes
	SystemCode  string // ship system code within the same mod, "" if none
	FlatRow     map[string]string
	FlatOrder   []string
	Spec        any // parsed .ship sidecar
	Description string
	Stats       ShipStatsData
	SpecData    ShipSpecData
	WeaponSlots []WeaponSlotData
	Builtins    BuiltinsData
	Tags        []string
	Hints       []string
	Sprite      *PreparedImage
}

// Validate fails fast on missing required fields.
func (s *PreparedShip) Validate() error {
	switch {
	case s.Code == "":
		return fmt.Errorf("ship record missing code")
	case s.Name == "":
		return fmt.Errorf("ship %s missing name", s.Code)
	case s.Size == "" || s.ShieldType == "":
		return fmt.Errorf("ship %s missing category codes", s.Code)
	case len(s.FlatOrder) == 0:
		return fmt.Errorf("ship %s missing hash input", s.Code)
	}
	return nil
}

// Content is one fully-parsed mod package, the unit of import.
type Content struct {
	ModCode     string
	ModName     string
	Major       int
	Minor       int
	Patch       int
	Weapons     map[string]*PreparedWeapon
	Hullmods    map[string]*PreparedHullmod
	ShipSystems map[string]*PreparedShipSystem
	Wings       map[string]*PreparedWing
	Ships       map[string]*PreparedShip
}
