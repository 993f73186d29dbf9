// Package models defines the relational schema of the catalog.
//
// Every ingested content kind (weapon, hullmod, ship system, wing, ship)
// follows the same four-layer pattern:
//
//   - Identity: (mod_id, code), stable across versions of a mod.
//   - Instance: content-addressed by data_hash, immutable, shared by every
//     mod version whose normalized source content is byte-for-byte equal.
//   - Version: append-only join row created on every import run, linking a
//     mod version to the instance it shipped (plus sprite image FKs).
//   - Details and junctions: children of an instance, written exactly once
//     when the instance is first created.
//
// Foreign keys are declared with OnDelete:CASCADE so deleting a mod or a
// mod version removes its dependent rows; shared lookup rows (tags,
// hints, groups, images) are left behind deliberately and reclaimed by
// the cleanup sweep when nothing references them anymore.
package models
