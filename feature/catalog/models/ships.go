package models

// Ship is the stable identity of a hull within a mod.
type Ship struct {
	ID    uint   `gorm:"column:id;primaryKey" json:"id"`
	ModID uint   `gorm:"column:mod_id;uniqueIndex:uq_ship_code" json:"mod_id"`
	Mod   Mod    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Code  string `gorm:"column:code;size:120;uniqueIndex:uq_ship_code" json:"code"`
}

// ShipInstance is one distinct version of a hull's content.
// ShipSystemID references the identity row of the hull's system, resolved
// by code at import time; nil when the hull carries no system.
type ShipInstance struct {
	ID           uint        `gorm:"column:id;primaryKey" json:"id"`
	ShipID       uint        `gorm:"column:ship_id;index" json:"ship_id"`
	Ship         Ship        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DataHash     string      `gorm:"column:data_hash;size:64;uniqueIndex" json:"data_hash"`
	Name         string      `gorm:"column:name;size:255" json:"name"`
	ShipSizeID   uint        `gorm:"column:ship_size_id" json:"ship_size_id"`
	ShieldTypeID uint        `gorm:"column:shield_type_id" json:"shield_type_id"`
	ShipSystemID *uint       `gorm:"column:ship_system_id" json:"ship_system_id,omitempty"`
	ShipSystem   *ShipSystem `json:"-"`
}

// ShipStats holds the tabular combat numbers of one hull instance.
type ShipStats struct {
	ID              uint         `gorm:"column:id;primaryKey" json:"id"`
	ShipInstanceID  uint         `gorm:"column:ship_instance_id;uniqueIndex" json:"ship_instance_id"`
	ShipInstance    ShipInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Hull            int          `gorm:"column:hull" json:"hull"`
	Armor           int          `gorm:"column:armor" json:"armor"`
	FluxCapacity    int          `gorm:"column:flux_capacity" json:"flux_capacity"`
	FluxDissipation int          `gorm:"column:flux_dissipation" json:"flux_dissipation"`
	OrdnancePoints  int          `gorm:"column:ordnance_points" json:"ordnance_points"`
	MaxSpeed        float64      `gorm:"column:max_speed" json:"max_speed"`
	Acceleration    float64      `gorm:"column:acceleration" json:"acceleration"`
	MaxTurnRate     float64      `gorm:"column:max_turn_rate" json:"max_turn_rate"`
	Mass            float64      `gorm:"column:mass" json:"mass"`
	CargoCapacity   int          `gorm:"column:cargo_capacity" json:"cargo_capacity"`
	FuelCapacity    int          `gorm:"column:fuel_capacity" json:"fuel_capacity"`
	CrewMax         int          `gorm:"column:crew_max" json:"crew_max"`
}

// ShipSpec holds the structured sidecar data of one hull instance:
// geometry from the hull file plus shield/phase stats.
type ShipSpec struct {
	ID               uint         `gorm:"column:id;primaryKey" json:"id"`
	ShipInstanceID   uint         `gorm:"column:ship_instance_id;uniqueIndex" json:"ship_instance_id"`
	ShipInstance     ShipInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CenterX          float64      `gorm:"column:center_x" json:"center_x"`
	CenterY          float64      `gorm:"column:center_y" json:"center_y"`
	Width            int          `gorm:"column:width" json:"width"`
	Height           int          `gorm:"column:height" json:"height"`
	ShieldArc        *float64     `gorm:"column:shield_arc" json:"shield_arc,omitempty"`
	ShieldRadius     *float64     `gorm:"column:shield_radius" json:"shield_radius,omitempty"`
	ShieldEfficiency *float64     `gorm:"column:shield_efficiency" json:"shield_efficiency,omitempty"`
	PhaseCost        *float64     `gorm:"column:phase_cost" json:"phase_cost,omitempty"`
	PhaseUpkeep      *float64     `gorm:"column:phase_upkeep" json:"phase_upkeep,omitempty"`
}

// ShipText holds the prose of one hull instance.
type ShipText struct {
	ID             uint         `gorm:"column:id;primaryKey" json:"id"`
	ShipInstanceID uint         `gorm:"column:ship_instance_id;uniqueIndex" json:"ship_instance_id"`
	ShipInstance   ShipInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Description    string       `gorm:"column:description;type:text" json:"description"`
}

// ShipWeaponSlot is one weapon mount of a hull instance.
type ShipWeaponSlot struct {
	ID             uint         `gorm:"column:id;primaryKey" json:"id"`
	ShipInstanceID uint         `gorm:"column:ship_instance_id;index" json:"ship_instance_id"`
	ShipInstance   ShipInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SlotCode       string       `gorm:"column:slot_code;size:60" json:"slot_code"`
	MountTypeID    uint         `gorm:"column:mount_type_id" json:"mount_type_id"`
	WeaponSizeID   uint         `gorm:"column:weapon_size_id" json:"weapon_size_id"`
	WeaponTypeID   uint         `gorm:"column:weapon_type_id" json:"weapon_type_id"`
	Angle          float64      `gorm:"column:angle" json:"angle"`
	Arc            float64      `gorm:"column:arc" json:"arc"`
	PosX           float64      `gorm:"column:pos_x" json:"pos_x"`
	PosY           float64      `gorm:"column:pos_y" json:"pos_y"`
}

// ShipInstanceTag links a hull instance to a shared tag.
type ShipInstanceTag struct {
	ID             uint         `gorm:"column:id;primaryKey" json:"id"`
	ShipInstanceID uint         `gorm:"column:ship_instance_id;index" json:"ship_instance_id"`
	ShipInstance   ShipInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TagID          uint         `gorm:"column:tag_id;index" json:"tag_id"`
	Tag            Tag          `json:"-"`
}

// ShipInstanceHint links a hull instance to a shared UI hint.
type ShipInstanceHint struct {
	ID             uint         `gorm:"column:id;primaryKey" json:"id"`
	ShipInstanceID uint         `gorm:"column:ship_instance_id;index" json:"ship_instance_id"`
	ShipInstance   ShipInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	HintID         uint         `gorm:"column:hint_id;index" json:"hint_id"`
	Hint           Hint         `json:"-"`
}

// ShipBuiltinWeapon records a weapon a hull carries by default, resolved
// by code within the same mod at import time.
type ShipBuiltinWeapon struct {
	ID             uint         `gorm:"column:id;primaryKey" json:"id"`
	ShipInstanceID uint         `gorm:"column:ship_instance_id;index" json:"ship_instance_id"`
	ShipInstance   ShipInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SlotCode       string       `gorm:"column:slot_code;size:60" json:"slot_code"`
	WeaponID       uint         `gorm:"column:weapon_id" json:"weapon_id"`
	Weapon         Weapon       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// ShipBuiltinHullmod records a hullmod a hull carries by default.
type ShipBuiltinHullmod struct {
	ID             uint         `gorm:"column:id;primaryKey" json:"id"`
	ShipInstanceID uint         `gorm:"column:ship_instance_id;index" json:"ship_instance_id"`
	ShipInstance   ShipInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	HullmodID      uint         `gorm:"column:hullmod_id" json:"hullmod_id"`
	Hullmod        Hullmod      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// ShipBuiltinWing records a fighter wing a hull carries by default.
type ShipBuiltinWing struct {
	ID             uint         `gorm:"column:id;primaryKey" json:"id"`
	ShipInstanceID uint         `gorm:"column:ship_instance_id;index" json:"ship_instance_id"`
	ShipInstance   ShipInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	WingID         uint         `gorm:"column:wing_id" json:"wing_id"`
	Wing           Wing         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// ShipVersion links one mod version to the hull content it shipped.
type ShipVersion struct {
	ID             uint         `gorm:"column:id;primaryKey" json:"id"`
	ModVersionID   uint         `gorm:"column:mod_version_id;index" json:"mod_version_id"`
	ModVersion     ModVersion   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ShipID         uint         `gorm:"column:ship_id;index" json:"ship_id"`
	Ship           Ship         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ShipInstanceID uint         `gorm:"column:ship_instance_id" json:"ship_instance_id"`
	ShipInstance   ShipInstance `json:"-"`
	ImageID        *uint        `gorm:"column:image_id" json:"image_id,omitempty"`
}
