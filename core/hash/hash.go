package hash

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"

	// Sprite sheets are PNG in practice, but some packs ship JPEG portraits.
	_ "image/jpeg"
	_ "image/png"
)

// fieldSep separates field values in flat hashing so that adjacent values
// cannot run together ("ab","c" vs "a","bc").
const fieldSep = "\x1f"

// Flat hashes a flat record by concatenating its values in the supplied
// field order. Fields absent from the record contribute an empty value.
//
// The field order is part of the contract: callers must pass the same
// ordering for any two records they intend to compare, since no
// canonicalization happens here.
func Flat(record map[string]string, fieldOrder []string) string {
	h := sha256.New()
	for _, name := range fieldOrder {
		io.WriteString(h, record[name])
		io.WriteString(h, fieldSep)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Structured hashes nested data in a canonical form: the value is
// serialized to JSON, re-read into generic maps and serialized again, so
// object key order never affects the digest.
func Structured(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to serialize value: %w", err)
	}

	// Round-trip through any: encoding/json writes map keys sorted,
	// which gives us the canonical form.
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", fmt.Errorf("failed to canonicalize value: %w", err)
	}
	canonical, err := json.Marshal(generic)
	if err != nil {
		return "", fmt.Errorf("failed to serialize canonical form: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Image hashes the decoded pixel data of an image, so a losslessly
// re-encoded sprite (different compression level, different container)
// maps to the same digest as the original.
func Image(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	// Normalize to RGBA so the digest does not depend on the source color model.
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	h := sha256.New()
	var dims [8]byte
	binary.BigEndian.PutUint32(dims[0:4], uint32(bounds.Dx()))
	binary.BigEndian.PutUint32(dims[4:8], uint32(bounds.Dy()))
	h.Write(dims[:])
	h.Write(rgba.Pix)

	return hex.EncodeToString(h.Sum(nil)), nil
}

// ImageFile hashes the decoded pixel data of the image at path.
func ImageFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	digest, err := Image(f)
	if err != nil {
		return "", fmt.Errorf("image %s: %w", path, err)
	}
	return digest, nil
}

// Combine chains two digests into one. The operation is deterministic and
// order-sensitive; call sites fix a left-to-right order (tabular row,
// then structured sidecar, then description).
func Combine(a, b string) string {
	h := sha256.New()
	io.WriteString(h, a)
	io.WriteString(h, b)
	return hex.EncodeToString(h.Sum(nil))
}
