package parse

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModDirFixture(t *testing.T) {
	content, err := ModDir(filepath.Join("testdata", "tinymod"))
	require.NoError(t, err)

	assert.Equal(t, "tinymod", content.ModCode)
	assert.Equal(t, "Tiny Mod", content.ModName)
	assert.Equal(t, 1, content.Major)
	assert.Equal(t, 2, content.Minor)
	assert.Equal(t, 0, content.Patch)

	assert.Len(t, content.Weapons, 2)
	assert.Len(t, content.Hullmods, 1)
	assert.Len(t, content.ShipSystems, 1)
	assert.Len(t, content.Wings, 1)
	assert.Len(t, content.Ships, 1)
}

func TestModDirWeapons(t *testing.T) {
	content, err := ModDir(filepath.Join("testdata", "tinymod"))
	require.NoError(t, err)

	pulse := content.Weapons["pulse_mk1"]
	require.NotNil(t, pulse)
	assert.Equal(t, "Pulse Cannon Mk.1", pulse.Name)
	assert.Equal(t, "ENERGY", pulse.Type)
	assert.Equal(t, "SMALL", pulse.Size)
	assert.Equal(t, "ENERGY", pulse.Damage)
	assert.Equal(t, 600.0, pulse.Stats.Range)
	assert.Equal(t, 50.0, pulse.Stats.DamagePerShot)
	assert.Nil(t, pulse.Stats.Ammo)
	require.NotNil(t, pulse.Stats.RefireDelay)
	assert.Equal(t, 0.3, *pulse.Stats.RefireDelay)
	assert.Equal(t, "A reliable pulse cannon.", pulse.Description)
	assert.Equal(t, []string{"energy", "reliable"}, pulse.Tags)
	assert.Equal(t, []string{"base"}, pulse.Groups)
	require.NotNil(t, pulse.Sprite)
	assert.Equal(t, filepath.Join("testdata", "tinymod", "graphics", "weapons", "pulse_mk1.png"), pulse.Sprite.SourcePath)

	// Sidecar is attached and its turret sprite resolved.
	require.NotNil(t, pulse.Spec)
	require.NotNil(t, pulse.TurretSprite)
	assert.Equal(t, filepath.Join("testdata", "tinymod", "graphics", "weapons", "pulse_mk1_turret.png"), pulse.TurretSprite.SourcePath)

	stinger := content.Weapons["stinger"]
	require.NotNil(t, stinger)
	require.NotNil(t, stinger.Stats.Ammo)
	assert.Equal(t, 5, *stinger.Stats.Ammo)
	assert.Nil(t, stinger.Spec)
	assert.Nil(t, stinger.TurretSprite)
	assert.Empty(t, stinger.AncillaryRole)
}

func TestModDirHullmodsAndSystems(t *testing.T) {
	content, err := ModDir(filepath.Join("testdata", "tinymod"))
	require.NoError(t, err)

	hm := content.Hullmods["reinforced_bulkheads"]
	require.NotNil(t, hm)
	assert.Equal(t, "Reinforced Bulkheads", hm.Name)
	assert.Equal(t, 5, hm.Costs.Frigate)
	assert.Equal(t, 25, hm.Costs.Capital)
	assert.Equal(t, "Increases hull integrity.", hm.ShortDescription)
	assert.Equal(t, "Thicker internal plating.", hm.Description)

	sys := content.ShipSystems["burn_drive"]
	require.NotNil(t, sys)
	assert.Equal(t, "Burn Drive", sys.Name)
	require.NotNil(t, sys.Data.FluxPerUse)
	assert.Equal(t, 100.0, *sys.Data.FluxPerUse)
	assert.Nil(t, sys.Data.FluxPerSecond)
	require.NotNil(t, sys.Data.Cooldown)
	assert.Equal(t, 8.0, *sys.Data.Cooldown)
	assert.Nil(t, sys.Data.Charges)
	require.NotNil(t, sys.Spec)
	assert.Equal(t, "Short forward burst of speed.", sys.Description)
}

func TestModDirWingsAndShips(t *testing.T) {
	content, err := ModDir(filepath.Join("testdata", "tinymod"))
	require.NoError(t, err)

	wing := content.Wings["gnat_wing"]
	require.NotNil(t, wing)
	assert.Equal(t, "gnat_attack", wing.VariantCode)
	assert.Equal(t, 4, wing.NumShips)
	assert.Equal(t, "INTERCEPTOR", wing.Role)
	assert.Equal(t, "V", wing.Formation)
	assert.Equal(t, 10.0, wing.RefitTime)
	assert.Equal(t, 4, wing.OrdnancePoints)

	ship := content.Ships["skiff"]
	require.NotNil(t, ship)
	assert.Equal(t, "Skiff", ship.Name)
	assert.Equal(t, "FRIGATE", ship.Size)
	assert.Equal(t, "FRONT", ship.ShieldType)
	assert.Equal(t, "burn_drive", ship.SystemCode)
	assert.Equal(t, 1500, ship.Stats.Hull)
	assert.Equal(t, 120.0, ship.Stats.MaxSpeed)
	assert.Equal(t, "A light patrol frigate.", ship.Description)
	assert.Equal(t, []string{"COMBAT"}, ship.Hints)

	assert.Equal(t, 20.0, ship.SpecData.CenterX)
	assert.Equal(t, 38.5, ship.SpecData.CenterY)
	assert.Equal(t, 40, ship.SpecData.Width)
	assert.Equal(t, 78, ship.SpecData.Height)
	require.NotNil(t, ship.SpecData.ShieldArc)
	assert.Equal(t, 120.0, *ship.SpecData.ShieldArc)
	assert.Nil(t, ship.SpecData.PhaseCost)

	require.Len(t, ship.WeaponSlots, 2)
	assert.Equal(t, "WS0001", ship.WeaponSlots[0].SlotCode)
	assert.Equal(t, "TURRET", ship.WeaponSlots[0].Mount)
	assert.Equal(t, 210.0, ship.WeaponSlots[0].Arc)
	assert.Equal(t, 22.0, ship.WeaponSlots[0].PosY)

	assert.Equal(t, map[string]string{"WS0001": "pulse_mk1"}, ship.Builtins.Weapons)
	assert.Equal(t, []string{"reinforced_bulkheads"}, ship.Builtins.Hullmods)
	assert.Equal(t, []string{"gnat_wing"}, ship.Builtins.Wings)

	require.NotNil(t, ship.Sprite)
	assert.Equal(t, filepath.Join("testdata", "tinymod", "graphics", "ships", "skiff.png"), ship.Sprite.SourcePath)
}

func TestModDirMissingDescriptor(t *testing.T) {
	_, err := ModDir(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mod descriptor")
}

func TestVanillaDirEmpty(t *testing.T) {
	content, err := VanillaDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, content.Weapons)
	assert.Empty(t, content.Ships)
}

func TestVersionSpecString(t *testing.T) {
	var info modInfo
	require.NoError(t, json.Unmarshal([]byte(`{"id":"m","name":"M","version":"0.9.1"}`), &info))
	assert.Equal(t, 0, info.Version.Major)
	assert.Equal(t, 9, info.Version.Minor)
	assert.Equal(t, 1, info.Version.Patch)

	require.Error(t, json.Unmarshal([]byte(`{"version":"0.9"}`), &info))
}

func TestParseWeaponsRejectsUnknownEnum(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "data", "weapons")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	csv := "id,name,type,size,damage_type,range,damage_per_shot,energy_per_shot,emp,turn_rate,ammo,ammo_per_sec,refire_delay,ops,tags,groups,primary_role,ancillary_role,sprite\n" +
		"bad,Bad Gun,PLASMA,SMALL,ENERGY,100,1,1,0,0,,,,1,,,,,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weapon_data.csv"), []byte(csv), 0o644))

	_, err := parseWeapons(root, descriptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown weapon type")
}

func TestParseShipsRequiresHullFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "data", "hulls")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	csv := "id,name,hull_size,shield_type,system,hitpoints,armor,flux_capacity,flux_dissipation,ordnance_points,max_speed,acceleration,max_turn_rate,mass,cargo,fuel,max_crew,tags,hints\n" +
		"ghost,Ghost,FRIGATE,NONE,,100,10,100,10,5,100,50,40,200,0,0,0,,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ship_data.csv"), []byte(csv), 0o644))

	_, err := parseShips(root, descriptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing hull file")
}

func TestReadCSVSkipsCommentsAndBlankCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,value\n# comment row\nalpha, 7 \n,ignored\n"), 0o644))

	rows, err := readCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alpha", rows[0]["id"])
	assert.Equal(t, "7", rows[0]["value"])
}
