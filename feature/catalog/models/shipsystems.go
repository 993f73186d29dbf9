package models

// ShipSystem is the stable identity of a ship system within a mod.
type ShipSystem struct {
	ID    uint   `gorm:"column:id;primaryKey" json:"id"`
	ModID uint   `gorm:"column:mod_id;uniqueIndex:uq_ship_system_code" json:"mod_id"`
	Mod   Mod    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Code  string `gorm:"column:code;size:120;uniqueIndex:uq_ship_system_code" json:"code"`
}

// ShipSystemInstance is one distinct version of a ship system's content.
type ShipSystemInstance struct {
	ID           uint       `gorm:"column:id;primaryKey" json:"id"`
	ShipSystemID uint       `gorm:"column:ship_system_id;index" json:"ship_system_id"`
	ShipSystem   ShipSystem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DataHash     string     `gorm:"column:data_hash;size:64;uniqueIndex" json:"data_hash"`
	Name         string     `gorm:"column:name;size:255" json:"name"`
	FluxPerUse   *float64   `gorm:"column:flux_per_use" json:"flux_per_use,omitempty"`
	FluxPerSecond *float64  `gorm:"column:flux_per_second" json:"flux_per_second,omitempty"`
	Cooldown     *float64   `gorm:"column:cooldown" json:"cooldown,omitempty"`
	Charges      *int       `gorm:"column:charges" json:"charges,omitempty"`
}

// ShipSystemText holds the prose of one ship system instance.
type ShipSystemText struct {
	ID                   uint               `gorm:"column:id;primaryKey" json:"id"`
	ShipSystemInstanceID uint               `gorm:"column:ship_system_instance_id;uniqueIndex" json:"ship_system_instance_id"`
	ShipSystemInstance   ShipSystemInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Description          string             `gorm:"column:description;type:text" json:"description"`
}

// ShipSystemInstanceTag links a ship system instance to a shared tag.
type ShipSystemInstanceTag struct {
	ID                   uint               `gorm:"column:id;primaryKey" json:"id"`
	ShipSystemInstanceID uint               `gorm:"column:ship_system_instance_id;index" json:"ship_system_instance_id"`
	ShipSystemInstance   ShipSystemInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TagID                uint               `gorm:"column:tag_id;index" json:"tag_id"`
	Tag                  Tag                `json:"-"`
}

// ShipSystemVersion links one mod version to the system content it shipped.
type ShipSystemVersion struct {
	ID                   uint               `gorm:"column:id;primaryKey" json:"id"`
	ModVersionID         uint               `gorm:"column:mod_version_id;index" json:"mod_version_id"`
	ModVersion           ModVersion         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ShipSystemID         uint               `gorm:"column:ship_system_id;index" json:"ship_system_id"`
	ShipSystem           ShipSystem         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ShipSystemInstanceID uint               `gorm:"column:ship_system_instance_id" json:"ship_system_instance_id"`
	ShipSystemInstance   ShipSystemInstance `json:"-"`
	ImageID              *uint              `gorm:"column:image_id" json:"image_id,omitempty"`
}
