package models

// Hullmod is the stable identity of a hull modification within a mod.
type Hullmod struct {
	ID    uint   `gorm:"column:id;primaryKey" json:"id"`
	ModID uint   `gorm:"column:mod_id;uniqueIndex:uq_hullmod_code" json:"mod_id"`
	Mod   Mod    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Code  string `gorm:"column:code;size:120;uniqueIndex:uq_hullmod_code" json:"code"`
}

// HullmodInstance is one distinct version of a hullmod's content.
type HullmodInstance struct {
	ID           uint    `gorm:"column:id;primaryKey" json:"id"`
	HullmodID    uint    `gorm:"column:hullmod_id;index" json:"hullmod_id"`
	Hullmod      Hullmod `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DataHash     string  `gorm:"column:data_hash;size:64;uniqueIndex" json:"data_hash"`
	Name         string  `gorm:"column:name;size:255" json:"name"`
	CostFrigate  int     `gorm:"column:cost_frigate" json:"cost_frigate"`
	CostDestroyer int    `gorm:"column:cost_destroyer" json:"cost_destroyer"`
	CostCruiser  int     `gorm:"column:cost_cruiser" json:"cost_cruiser"`
	CostCapital  int     `gorm:"column:cost_capital" json:"cost_capital"`
}

// HullmodText holds the prose of one hullmod instance.
type HullmodText struct {
	ID                uint            `gorm:"column:id;primaryKey" json:"id"`
	HullmodInstanceID uint            `gorm:"column:hullmod_instance_id;uniqueIndex" json:"hullmod_instance_id"`
	HullmodInstance   HullmodInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Description       string          `gorm:"column:description;type:text" json:"description"`
	ShortDescription  string          `gorm:"column:short_description;size:500" json:"short_description"`
}

// HullmodInstanceTag links a hullmod instance to a shared tag.
type HullmodInstanceTag struct {
	ID                uint            `gorm:"column:id;primaryKey" json:"id"`
	HullmodInstanceID uint            `gorm:"column:hullmod_instance_id;index" json:"hullmod_instance_id"`
	HullmodInstance   HullmodInstance `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TagID             uint            `gorm:"column:tag_id;index" json:"tag_id"`
	Tag               Tag             `json:"-"`
}

// HullmodVersion links one mod version to the hullmod content it shipped.
type HullmodVersion struct {
	ID                uint            `gorm:"column:id;primaryKey" json:"id"`
	ModVersionID      uint            `gorm:"column:mod_version_id;index" json:"mod_version_id"`
	ModVersion        ModVersion      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	HullmodID         uint            `gorm:"column:hullmod_id;index" json:"hullmod_id"`
	Hullmod           Hullmod         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	HullmodInstanceID uint            `gorm:"column:hullmod_instance_id" json:"hullmod_instance_id"`
	HullmodInstance   HullmodInstance `json:"-"`
	ImageID           *uint           `gorm:"column:image_id" json:"image_id,omitempty"`
}
