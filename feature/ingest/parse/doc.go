// Package parse reads mod content packages from disk into prepared
// records. It owns the source file layout (mod_info.json, the data/
// CSV tables, the per-entity JSON sidecars) and all source-format
// validation; downstream the pipeline only sees typed, validated
// records together with their hash inputs.
package parse
