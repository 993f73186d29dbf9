package hash

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlat_Deterministic(t *testing.T) {
	record := map[string]string{"name": "Light Mortar", "range": "600", "ops": "4"}
	order := []string{"name", "range", "ops"}

	assert.Equal(t, Flat(record, order), Flat(record, order))
}

func TestFlat_OrderSensitive(t *testing.T) {
	// The field ordering is part of the caller contract: reordering it
	// must change the digest even for identical data.
	record := map[string]string{"name": "Light Mortar", "range": "600"}

	a := Flat(record, []string{"name", "range"})
	b := Flat(record, []string{"range", "name"})
	assert.NotEqual(t, a, b)
}

func TestFlat_MissingFieldsAreEmpty(t *testing.T) {
	withEmpty := map[string]string{"name": "x", "range": ""}
	withMissing := map[string]string{"name": "x"}
	order := []string{"name", "range"}

	assert.Equal(t, Flat(withEmpty, order), Flat(withMissing, order))
}

func TestFlat_AdjacentValuesDoNotRunTogether(t *testing.T) {
	order := []string{"a", "b"}
	x := Flat(map[string]string{"a": "ab", "b": "c"}, order)
	y := Flat(map[string]string{"a": "a", "b": "bc"}, order)
	assert.NotEqual(t, x, y)
}

func TestStructured_KeyOrderInvariant(t *testing.T) {
	// Two logically-equal nested objects built in different key orders.
	a := map[string]any{
		"weaponSlots": []any{map[string]any{"id": "WS01", "angle": 90.0}},
		"hullName":    "Falcon",
	}
	b := map[string]any{
		"hullName":    "Falcon",
		"weaponSlots": []any{map[string]any{"angle": 90.0, "id": "WS01"}},
	}

	da, err := Structured(a)
	require.NoError(t, err)
	db, err := Structured(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestStructured_DifferentContent(t *testing.T) {
	da, err := Structured(map[string]any{"hullName": "Falcon"})
	require.NoError(t, err)
	db, err := Structured(map[string]any{"hullName": "Eagle"})
	require.NoError(t, err)
	assert.NotEqual(t, da, db)
}

func TestImage_ReencodeInvariant(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}

	// Same pixels, two different PNG encodings.
	var fast, best bytes.Buffer
	require.NoError(t, (&png.Encoder{CompressionLevel: png.NoCompression}).Encode(&fast, img))
	require.NoError(t, (&png.Encoder{CompressionLevel: png.BestCompression}).Encode(&best, img))
	require.NotEqual(t, fast.Bytes(), best.Bytes())

	da, err := Image(&fast)
	require.NoError(t, err)
	db, err := Image(&best)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestImage_DifferentPixels(t *testing.T) {
	encode := func(c color.RGBA) *bytes.Buffer {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		img.Set(0, 0, c)
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, img))
		return &buf
	}

	da, err := Image(encode(color.RGBA{R: 255, A: 255}))
	require.NoError(t, err)
	db, err := Image(encode(color.RGBA{G: 255, A: 255}))
	require.NoError(t, err)
	assert.NotEqual(t, da, db)
}

func TestImage_InvalidData(t *testing.T) {
	_, err := Image(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestCombine_OrderSensitive(t *testing.T) {
	a := Flat(map[string]string{"k": "1"}, []string{"k"})
	b := Flat(map[string]string{"k": "2"}, []string{"k"})

	assert.Equal(t, Combine(a, b), Combine(a, b))
	assert.NotEqual(t, Combine(a, b), Combine(b, a))
}
