package models

// Mod identifies a distinct content package. Created once per distinct
// mod code and never mutated by ingestion.
type Mod struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	Code        string `gorm:"column:code;size:120;uniqueIndex" json:"code"`
	DisplayName string `gorm:"column:display_name;size:255" json:"display_name"`
}

// ModVersion is one release of a mod. DataChanged records whether the
// import of this version created at least one new content instance among
// ships, weapons, hullmods and ship systems.
type ModVersion struct {
	ID          uint `gorm:"column:id;primaryKey" json:"id"`
	ModID       uint `gorm:"column:mod_id;uniqueIndex:uq_mod_version" json:"mod_id"`
	Mod         Mod  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Major       int  `gorm:"column:major;uniqueIndex:uq_mod_version" json:"major"`
	Minor       int  `gorm:"column:minor;uniqueIndex:uq_mod_version" json:"minor"`
	Patch       int  `gorm:"column:patch;uniqueIndex:uq_mod_version" json:"patch"`
	DataChanged bool `gorm:"column:data_changed" json:"data_changed"`
}

// Image is a deduplicated sprite. FileHash fingerprints the decoded
// pixel data, FilePath is the content-addressed key in the sprite store.
type Image struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	FilePath string `gorm:"column:file_path;size:500" json:"file_path"`
	FileHash string `gorm:"column:file_hash;size:64;uniqueIndex" json:"file_hash"`
}

// Tag is a shared lookup row for entity tags.
type Tag struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Code string `gorm:"column:code;size:120;uniqueIndex" json:"code"`
}

// Hint is a shared lookup row for UI hints.
type Hint struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Code string `gorm:"column:code;size:120;uniqueIndex" json:"code"`
}

// Group is a shared lookup row for weapon groups.
type Group struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Code string `gorm:"column:code;size:120;uniqueIndex" json:"code"`
}
