package models

// Weapon is the stable identity of a weapon within a mod, keyed by
// (mod_id, code). It survives across versions; content lives on instances.
type Weapon struct {
	ID    uint   `gorm:"column:id;primaryKey" json:"id"`
	ModID uint   `gorm:"column:mod_id;uniqueIndex:uq_weapon_code" json:"mod_id"`
	Mod   Mod    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Code  string `gorm:"column:code;size:120;uniqueIndex:uq_weapon_code" json:"code"`
}

// WeaponInstance is one distinct version of a weapon's content,
// addressed by DataHash. Immutable once created.
type WeaponInstance struct {
	ID           uint   `gorm:"column:id;primaryKey" json:"id"`
	WeaponID     uint   `gorm:"column:weapon_id;index" json:"weapon_id"`
	Weapon       Weapon `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DataHash     string `gorm:"column:data_hash;size:64;uniqueIndex" json:"data_hash"`
	Name         string `gorm:"column:name;size:255" json:"name"`
	WeaponTypeID uint   `gorm:"column:weapon_type_id" json:"weapon_type_id"`
	WeaponSizeID uint   `gorm:"column:weapon_size_id" json:"weapon_size_id"`
	DamageTypeID uint   `gorm:"column:damage_type_id" json:"damage_type_id"`
}

// WeaponStats holds the combat numbers of one weapon instance.
// Inserted exactly once, when the instance is first created.
type WeaponStats struct {
	ID               uint           `gorm:"column:id;primaryKey" json:"id"`
	WeaponInstanceID uint           `gorm:"column:weapon_instance_id;uniqueIndex" json:"weapon_instance_id"`
	WeaponInstance   WeaponInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Range            float64        `gorm:"column:range" json:"range"`
	DamagePerShot    float64        `gorm:"column:damage_per_shot" json:"damage_per_shot"`
	EnergyPerShot    float64        `gorm:"column:energy_per_shot" json:"energy_per_shot"`
	EmpDamage        float64        `gorm:"column:emp_damage" json:"emp_damage"`
	TurnRate         float64        `gorm:"column:turn_rate" json:"turn_rate"`
	Ammo             *int           `gorm:"column:ammo" json:"ammo,omitempty"`
	AmmoPerSecond    *float64       `gorm:"column:ammo_per_second" json:"ammo_per_second,omitempty"`
	RefireDelay      *float64       `gorm:"column:refire_delay" json:"refire_delay,omitempty"`
	OrdnancePoints   int            `gorm:"column:ordnance_points" json:"ordnance_points"`
}

// WeaponText holds the prose of one weapon instance.
type WeaponText struct {
	ID               uint           `gorm:"column:id;primaryKey" json:"id"`
	WeaponInstanceID uint           `gorm:"column:weapon_instance_id;uniqueIndex" json:"weapon_instance_id"`
	WeaponInstance   WeaponInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Description      string         `gorm:"column:description;type:text" json:"description"`
	PrimaryRole      string         `gorm:"column:primary_role;size:255" json:"primary_role"`
	AncillaryRole    string         `gorm:"column:ancillary_role;size:255" json:"ancillary_role"`
}

// WeaponInstanceTag links a weapon instance to a shared tag.
type WeaponInstanceTag struct {
	ID               uint           `gorm:"column:id;primaryKey" json:"id"`
	WeaponInstanceID uint           `gorm:"column:weapon_instance_id;index" json:"weapon_instance_id"`
	WeaponInstance   WeaponInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TagID            uint           `gorm:"column:tag_id;index" json:"tag_id"`
	Tag              Tag            `json:"-"`
}

// WeaponInstanceGroup links a weapon instance to a shared weapon group.
type WeaponInstanceGroup struct {
	ID               uint           `gorm:"column:id;primaryKey" json:"id"`
	WeaponInstanceID uint           `gorm:"column:weapon_instance_id;index" json:"weapon_instance_id"`
	WeaponInstance   WeaponInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	GroupID          uint           `gorm:"column:group_id;index" json:"group_id"`
	Group            Group          `json:"-"`
}

// WeaponVersion links one mod version to the weapon content it shipped.
// Created fresh on every import run, whether or not the instance is new.
type WeaponVersion struct {
	ID               uint           `gorm:"column:id;primaryKey" json:"id"`
	ModVersionID     uint           `gorm:"column:mod_version_id;index" json:"mod_version_id"`
	ModVersion       ModVersion     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	WeaponID         uint           `gorm:"column:weapon_id;index" json:"weapon_id"`
	Weapon           Weapon         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	WeaponInstanceID uint           `gorm:"column:weapon_instance_id" json:"weapon_instance_id"`
	WeaponInstance   WeaponInstance `json:"-"`
	ImageID          *uint          `gorm:"column:image_id" json:"image_id,omitempty"`
	TurretImageID    *uint          `gorm:"column:turret_image_id" json:"turret_image_id,omitempty"`
}
