package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLookups() *Lookups {
	return &Lookups{
		WeaponTypes:    map[string]uint{"BALLISTIC": 1, "ENERGY": 2, "MISSILE": 3},
		WeaponSizes:    map[string]uint{"SMALL": 1, "MEDIUM": 2, "LARGE": 3},
		DamageTypes:    map[string]uint{"KINETIC": 1, "ENERGY": 4},
		ShipSizes:      map[string]uint{"FRIGATE": 2, "DESTROYER": 3},
		ShieldTypes:    map[string]uint{"FRONT": 1, "NONE": 4},
		MountTypes:     map[string]uint{"TURRET": 1, "HARDPOINT": 2},
		WingFormations: map[string]uint{"V": 1},
		WingRoles:      map[string]uint{"INTERCEPTOR": 2},
	}
}

func testWeapon() *PreparedWeapon {
	ammo := 5
	return &PreparedWeapon{
		Code:   "pulse_mk1",
		Name:   "Pulse Cannon Mk.1",
		Type:   "ENERGY",
		Size:   "SMALL",
		Damage: "ENERGY",
		FlatRow: map[string]string{
			"id": "pulse_mk1", "name": "Pulse Cannon Mk.1", "range": "600",
		},
		FlatOrder:   []string{"id", "name", "range"},
		Description: "A reliable pulse cannon.",
		Stats:       WeaponStatsData{Range: 600, DamagePerShot: 50, Ammo: &ammo},
		Tags:        []string{"energy"},
	}
}

func TestBuildWeaponPlan(t *testing.T) {
	plan, err := buildWeaponPlan(testWeapon(), testLookups())
	require.NoError(t, err)

	assert.Equal(t, "pulse_mk1", plan.code)
	assert.NotEmpty(t, plan.dataHash)
	assert.Equal(t, plan.dataHash, plan.instance.DataHash)
	assert.Equal(t, uint(2), plan.instance.WeaponTypeID)
	assert.Equal(t, uint(1), plan.instance.WeaponSizeID)
	assert.Equal(t, uint(4), plan.instance.DamageTypeID)
	assert.Equal(t, 600.0, plan.stats.Range)
	require.NotNil(t, plan.stats.Ammo)
	assert.Equal(t, 5, *plan.stats.Ammo)
	assert.Equal(t, "A reliable pulse cannon.", plan.text.Description)
}

func TestBuildWeaponPlanDeterministic(t *testing.T) {
	a, err := buildWeaponPlan(testWeapon(), testLookups())
	require.NoError(t, err)
	b, err := buildWeaponPlan(testWeapon(), testLookups())
	require.NoError(t, err)

	// Same logical input always maps to the same content address.
	assert.Equal(t, a.dataHash, b.dataHash)
}

func TestBuildWeaponPlanHashCoversAllArtifacts(t *testing.T) {
	base, err := buildWeaponPlan(testWeapon(), testLookups())
	require.NoError(t, err)

	changedRow := testWeapon()
	changedRow.FlatRow["range"] = "650"
	withRow, err := buildWeaponPlan(changedRow, testLookups())
	require.NoError(t, err)
	assert.NotEqual(t, base.dataHash, withRow.dataHash)

	withSpec := testWeapon()
	withSpec.Spec = map[string]any{"specClass": "projectile"}
	specPlan, err := buildWeaponPlan(withSpec, testLookups())
	require.NoError(t, err)
	assert.NotEqual(t, base.dataHash, specPlan.dataHash)

	withDesc := testWeapon()
	withDesc.Description = "A different description."
	descPlan, err := buildWeaponPlan(withDesc, testLookups())
	require.NoError(t, err)
	assert.NotEqual(t, base.dataHash, descPlan.dataHash)
}

func TestBuildWeaponPlanUnknownCategory(t *testing.T) {
	rec := testWeapon()
	rec.Damage = "FRAGMENTATION"

	_, err := buildWeaponPlan(rec, testLookups())
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestBuildShipPlan(t *testing.T) {
	arc := 120.0
	rec := &PreparedShip{
		Code:       "skiff",
		Name:       "Skiff",
		Size:       "FRIGATE",
		ShieldType: "FRONT",
		FlatRow:    map[string]string{"id": "skiff", "name": "Skiff"},
		FlatOrder:  []string{"id", "name"},
		Spec:       map[string]any{"width": 40.0},
		Stats:      ShipStatsData{Hull: 1500, MaxSpeed: 120},
		SpecData:   ShipSpecData{CenterX: 20, CenterY: 38.5, Width: 40, Height: 78, ShieldArc: &arc},
		WeaponSlots: []WeaponSlotData{
			{SlotCode: "WS0001", Mount: "TURRET", Size: "SMALL", Type: "ENERGY", Arc: 210, PosY: 22},
		},
		Tags:  []string{"patrol"},
		Hints: []string{"COMBAT"},
	}

	plan, err := buildShipPlan(rec, testLookups())
	require.NoError(t, err)

	assert.Equal(t, uint(2), plan.instance.ShipSizeID)
	assert.Equal(t, uint(1), plan.instance.ShieldTypeID)
	assert.Equal(t, 1500, plan.stats.Hull)
	require.NotNil(t, plan.spec.ShieldArc)
	assert.Equal(t, 120.0, *plan.spec.ShieldArc)
	require.Len(t, plan.slots, 1)
	assert.Equal(t, uint(1), plan.slots[0].MountTypeID)
	assert.Equal(t, uint(1), plan.slots[0].WeaponSizeID)
	assert.Equal(t, uint(2), plan.slots[0].WeaponTypeID)
}

func TestBuildShipPlanUnknownSlotMount(t *testing.T) {
	rec := &PreparedShip{
		Code:       "skiff",
		Name:       "Skiff",
		Size:       "FRIGATE",
		ShieldType: "FRONT",
		FlatRow:    map[string]string{"id": "skiff"},
		FlatOrder:  []string{"id"},
		WeaponSlots: []WeaponSlotData{
			{SlotCode: "WS0001", Mount: "HIDDEN", Size: "SMALL", Type: "ENERGY"},
		},
	}

	_, err := buildShipPlan(rec, testLookups())
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestInstanceHashFlatOrderSensitive(t *testing.T) {
	row := map[string]string{"id": "x", "name": "y"}

	a, err := instanceHash(row, []string{"id", "name"}, nil, "")
	require.NoError(t, err)
	b, err := instanceHash(row, []string{"name", "id"}, nil, "")
	require.NoError(t, err)

	// Field order is part of the content address by contract.
	assert.NotEqual(t, a, b)
}
