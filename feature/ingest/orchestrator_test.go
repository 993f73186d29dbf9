package ingest

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type noopSprites struct{}

func (noopSprites) Put(ctx context.Context, srcPath, key string) error   { return nil }
func (noopSprites) Exists(ctx context.Context, key string) (bool, error) { return false, nil }
func (noopSprites) Remove(ctx context.Context, key string) error         { return nil }

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewService(db, noopSprites{}, zap.NewNop()), mock
}

func vocabRows(codes ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "code"})
	for i, code := range codes {
		rows.AddRow(i+1, code)
	}
	return rows
}

// expectLookups registers the once-per-run category map loads.
func expectLookups(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT \\* FROM `weapon_types`").
		WillReturnRows(vocabRows("BALLISTIC", "ENERGY", "MISSILE", "LAUNCHER", "DECORATIVE", "SYSTEM"))
	mock.ExpectQuery("SELECT \\* FROM `weapon_sizes`").
		WillReturnRows(vocabRows("SMALL", "MEDIUM", "LARGE"))
	mock.ExpectQuery("SELECT \\* FROM `damage_types`").
		WillReturnRows(vocabRows("KINETIC", "HIGH_EXPLOSIVE", "FRAGMENTATION", "ENERGY", "OTHER"))
	mock.ExpectQuery("SELECT \\* FROM `ship_sizes`").
		WillReturnRows(vocabRows("FIGHTER", "FRIGATE", "DESTROYER", "CRUISER", "CAPITAL_SHIP"))
	mock.ExpectQuery("SELECT \\* FROM `shield_types`").
		WillReturnRows(vocabRows("FRONT", "OMNI", "PHASE", "NONE"))
	mock.ExpectQuery("SELECT \\* FROM `mount_types`").
		WillReturnRows(vocabRows("TURRET", "HARDPOINT", "HIDDEN"))
	mock.ExpectQuery("SELECT \\* FROM `wing_formations`").
		WillReturnRows(vocabRows("V", "CLAW", "BOX", "DIAMOND"))
	mock.ExpectQuery("SELECT \\* FROM `wing_roles`").
		WillReturnRows(vocabRows("FIGHTER", "INTERCEPTOR", "BOMBER", "SUPPORT", "ASSAULT"))
}

// expectIdentityMaps registers the same-mod identity loads done before
// ship import.
func expectIdentityMaps(mock sqlmock.Sqlmock, weapons *sqlmock.Rows) {
	if weapons == nil {
		weapons = sqlmock.NewRows([]string{"id", "mod_id", "code"})
	}
	mock.ExpectQuery("SELECT \\* FROM `weapons`").WillReturnRows(weapons)
	mock.ExpectQuery("SELECT \\* FROM `hullmods`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mod_id", "code"}))
	mock.ExpectQuery("SELECT \\* FROM `wings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mod_id", "code"}))
	mock.ExpectQuery("SELECT \\* FROM `ship_systems`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mod_id", "code"}))
}

func emptyContent() *Content {
	return &Content{
		ModCode:     "tinymod",
		ModName:     "Tiny Mod",
		Major:       1,
		Minor:       0,
		Patch:       0,
		Weapons:     map[string]*PreparedWeapon{},
		Hullmods:    map[string]*PreparedHullmod{},
		ShipSystems: map[string]*PreparedShipSystem{},
		Wings:       map[string]*PreparedWing{},
		Ships:       map[string]*PreparedShip{},
	}
}

func TestImportEmptyContent(t *testing.T) {
	svc, mock := setupService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `mods`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "display_name"}))
	mock.ExpectExec("INSERT INTO `mods`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT \\* FROM `mod_versions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mod_id", "major", "minor", "patch", "data_changed"}))
	mock.ExpectExec("INSERT INTO `mod_versions`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	expectLookups(mock)
	expectIdentityMaps(mock, nil)
	mock.ExpectCommit()

	result, err := svc.Import(context.Background(), emptyContent(), false)
	require.NoError(t, err)
	assert.Equal(t, "tinymod", result.Mod.Code)
	assert.False(t, result.DataChanged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportVersionExistsWithoutUpdate(t *testing.T) {
	svc, mock := setupService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `mods`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "display_name"}).
			AddRow(1, "tinymod", "Tiny Mod"))
	mock.ExpectQuery("SELECT \\* FROM `mod_versions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mod_id", "major", "minor", "patch", "data_changed"}).
			AddRow(10, 1, 1, 0, 0, true))
	mock.ExpectRollback()

	_, err := svc.Import(context.Background(), emptyContent(), false)
	assert.ErrorIs(t, err, ErrVersionExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportNewWeaponSetsDataChanged(t *testing.T) {
	svc, mock := setupService(t)

	content := emptyContent()
	content.Weapons["pulse_mk1"] = testWeapon()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `mods`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "display_name"}))
	mock.ExpectExec("INSERT INTO `mods`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT \\* FROM `mod_versions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mod_id", "major", "minor", "patch", "data_changed"}))
	mock.ExpectExec("INSERT INTO `mod_versions`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	expectLookups(mock)

	// Weapon: identity, instance, version row, then details since the
	// instance is new.
	mock.ExpectQuery("SELECT \\* FROM `weapons`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mod_id", "code"}))
	mock.ExpectExec("INSERT INTO `weapons`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("SELECT \\* FROM `weapon_instances`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "weapon_id", "data_hash"}))
	mock.ExpectExec("INSERT INTO `weapon_instances`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `weapon_versions`").
		WillReturnResult(sqlmock.NewResult(20, 1))
	mock.ExpectExec("INSERT INTO `weapon_stats`").
		WillReturnResult(sqlmock.NewResult(30, 1))
	mock.ExpectExec("INSERT INTO `weapon_texts`").
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectQuery("SELECT \\* FROM `tags`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code"}))
	mock.ExpectExec("INSERT INTO `tags`").
		WillReturnResult(sqlmock.NewResult(40, 1))
	mock.ExpectExec("INSERT INTO `weapon_instance_tags`").
		WillReturnResult(sqlmock.NewResult(41, 1))

	expectIdentityMaps(mock, sqlmock.NewRows([]string{"id", "mod_id", "code"}).
		AddRow(5, 1, "pulse_mk1"))
	mock.ExpectExec("UPDATE `mod_versions`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := svc.Import(context.Background(), content, false)
	require.NoError(t, err)
	assert.True(t, result.DataChanged)
	assert.True(t, result.ModVersion.DataChanged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportReseenWeaponSkipsDetails(t *testing.T) {
	svc, mock := setupService(t)

	content := emptyContent()
	content.Weapons["pulse_mk1"] = testWeapon()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `mods`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "display_name"}).
			AddRow(1, "tinymod", "Tiny Mod"))
	mock.ExpectQuery("SELECT \\* FROM `mod_versions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mod_id", "major", "minor", "patch", "data_changed"}).
			AddRow(10, 1, 1, 0, 0, true))
	expectLookups(mock)

	// Identity and instance both pre-exist: only the append-only version
	// row is written, no detail or junction rows.
	mock.ExpectQuery("SELECT \\* FROM `weapons`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mod_id", "code"}).
			AddRow(5, 1, "pulse_mk1"))
	mock.ExpectQuery("SELECT \\* FROM `weapon_instances`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "weapon_id", "data_hash"}).
			AddRow(7, 5, "prior"))
	mock.ExpectExec("INSERT INTO `weapon_versions`").
		WillReturnResult(sqlmock.NewResult(21, 1))

	expectIdentityMaps(mock, sqlmock.NewRows([]string{"id", "mod_id", "code"}).
		AddRow(5, 1, "pulse_mk1"))

	// Nothing new this run, so data_changed is recomputed down to false.
	mock.ExpectExec("UPDATE `mod_versions`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := svc.Import(context.Background(), content, true)
	require.NoError(t, err)
	assert.False(t, result.DataChanged)
	assert.False(t, result.ModVersion.DataChanged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportRollsBackOnStoreFailure(t *testing.T) {
	svc, mock := setupService(t)

	content := emptyContent()
	content.Weapons["pulse_mk1"] = testWeapon()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `mods`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "display_name"}))
	mock.ExpectExec("INSERT INTO `mods`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT \\* FROM `mod_versions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mod_id", "major", "minor", "patch", "data_changed"}))
	mock.ExpectExec("INSERT INTO `mod_versions`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	expectLookups(mock)

	mock.ExpectQuery("SELECT \\* FROM `weapons`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mod_id", "code"}))
	mock.ExpectExec("INSERT INTO `weapons`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := svc.Import(context.Background(), content, false)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportVanillaFixedIdentity(t *testing.T) {
	svc, mock := setupService(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `mods`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "display_name"}))
	mock.ExpectExec("INSERT INTO `mods`").
		WithArgs(VanillaModCode, VanillaModName).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT \\* FROM `mod_versions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "mod_id", "major", "minor", "patch", "data_changed"}))
	mock.ExpectExec("INSERT INTO `mod_versions`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	expectLookups(mock)
	expectIdentityMaps(mock, nil)
	mock.ExpectCommit()

	content := emptyContent()
	result, err := svc.ImportVanilla(context.Background(), content, 0, 98, 2, false)
	require.NoError(t, err)
	assert.Equal(t, VanillaModCode, result.Mod.Code)
	assert.Equal(t, 98, result.ModVersion.Minor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveBuiltinsSkipsUnknownCodes(t *testing.T) {
	svc, mock := setupService(t)

	ids := &identityMaps{
		weapons:  map[string]uint{"pulse_mk1": 5},
		hullmods: map[string]uint{},
		wings:    map[string]uint{"gnat_wing": 9},
	}
	builtins := BuiltinsData{
		Weapons:  map[string]string{"WS0001": "pulse_mk1", "WS0002": "other_mod_gun"},
		Hullmods: []string{"other_mod_plating"},
		Wings:    []string{"gnat_wing"},
	}

	// Only the resolvable references produce rows; the two misses are
	// logged and skipped without failing the ship.
	mock.ExpectExec("INSERT INTO `ship_builtin_weapons`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `ship_builtin_wings`").
		WillReturnResult(sqlmock.NewResult(2, 1))

	err := svc.resolveBuiltins(svc.db, "skiff", 77, builtins, ids)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
