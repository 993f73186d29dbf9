package models

// Wing is the stable identity of a fighter wing within a mod.
type Wing struct {
	ID    uint   `gorm:"column:id;primaryKey" json:"id"`
	ModID uint   `gorm:"column:mod_id;uniqueIndex:uq_wing_code" json:"mod_id"`
	Mod   Mod    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Code  string `gorm:"column:code;size:120;uniqueIndex:uq_wing_code" json:"code"`
}

// WingInstance is one distinct version of a wing's content. VariantCode
// names the ship variant the wing flies; it stays a plain code because
// variants are not ingested entities.
type WingInstance struct {
	ID              uint          `gorm:"column:id;primaryKey" json:"id"`
	WingID          uint          `gorm:"column:wing_id;index" json:"wing_id"`
	Wing            Wing          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DataHash        string        `gorm:"column:data_hash;size:64;uniqueIndex" json:"data_hash"`
	WingFormationID uint          `gorm:"column:wing_formation_id" json:"wing_formation_id"`
	WingRoleID      uint          `gorm:"column:wing_role_id" json:"wing_role_id"`
	VariantCode     string        `gorm:"column:variant_code;size:120" json:"variant_code"`
	NumShips        int           `gorm:"column:num_ships" json:"num_ships"`
	OrdnancePoints  int           `gorm:"column:ordnance_points" json:"ordnance_points"`
	RefitTime       float64       `gorm:"column:refit_time" json:"refit_time"`
}

// WingInstanceTag links a wing instance to a shared tag.
type WingInstanceTag struct {
	ID             uint         `gorm:"column:id;primaryKey" json:"id"`
	WingInstanceID uint         `gorm:"column:wing_instance_id;index" json:"wing_instance_id"`
	WingInstance   WingInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TagID          uint         `gorm:"column:tag_id;index" json:"tag_id"`
	Tag            Tag          `json:"-"`
}

// WingVersion links one mod version to the wing content it shipped.
// Wings have no sprite of their own; their look comes from the variant's hull.
type WingVersion struct {
	ID             uint         `gorm:"column:id;primaryKey" json:"id"`
	ModVersionID   uint         `gorm:"column:mod_version_id;index" json:"mod_version_id"`
	ModVersion     ModVersion   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	WingID         uint         `gorm:"column:wing_id;index" json:"wing_id"`
	Wing           Wing         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	WingInstanceID uint         `gorm:"column:wing_instance_id" json:"wing_instance_id"`
	WingInstance   WingInstance `json:"-"`
}
