package models

// Category vocabulary tables. These are seeded once by `modhangar migrate`
// and fetched as code→id maps once per import run; parsers validate
// enumerated source fields against the same code lists before any record
// reaches the pipeline.

// WeaponType is the weapon mount/technology category.
type WeaponType struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Code string `gorm:"column:code;size:60;uniqueIndex" json:"code"`
}

// WeaponSize is the weapon slot size category.
type WeaponSize struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Code string `gorm:"column:code;size:60;uniqueIndex" json:"code"`
}

// DamageType is the weapon damage category.
type DamageType struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Code string `gorm:"column:code;size:60;uniqueIndex" json:"code"`
}

// ShipSize is the hull size category.
type ShipSize struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Code string `gorm:"column:code;size:60;uniqueIndex" json:"code"`
}

// ShieldType is the ship defense category.
type ShieldType struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Code string `gorm:"column:code;size:60;uniqueIndex" json:"code"`
}

// MountType is the weapon slot mount category.
type MountType struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Code string `gorm:"column:code;size:60;uniqueIndex" json:"code"`
}

// WingFormation is the fighter wing flight formation.
type WingFormation struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Code string `gorm:"column:code;size:60;uniqueIndex" json:"code"`
}

// WingRole is the fighter wing combat role.
type WingRole struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Code string `gorm:"column:code;size:60;uniqueIndex" json:"code"`
}

// Fixed vocabularies. Parsers reject source records whose enumerated
// fields are not in these lists.
var (
	WeaponTypeCodes    = []string{"BALLISTIC", "ENERGY", "MISSILE", "LAUNCHER", "DECORATIVE", "SYSTEM"}
	WeaponSizeCodes    = []string{"SMALL", "MEDIUM", "LARGE"}
	DamageTypeCodes    = []string{"KINETIC", "HIGH_EXPLOSIVE", "FRAGMENTATION", "ENERGY", "OTHER"}
	ShipSizeCodes      = []string{"FIGHTER", "FRIGATE", "DESTROYER", "CRUISER", "CAPITAL_SHIP"}
	ShieldTypeCodes    = []string{"FRONT", "OMNI", "PHASE", "NONE"}
	MountTypeCodes     = []string{"TURRET", "HARDPOINT", "HIDDEN"}
	WingFormationCodes = []string{"V", "CLAW", "BOX", "DIAMOND"}
	WingRoleCodes      = []string{"FIGHTER", "INTERCEPTOR", "BOMBER", "SUPPORT", "ASSAULT"}
)
