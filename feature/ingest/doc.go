// Package ingest implements the content-addressed mod import pipeline.
//
// Parsers (see the parse subpackage) hand over prepared records: typed,
// validated structures carrying their own hash inputs. For each entity
// the importer runs a fixed sequence: resolve the sprite image, resolve
// the identity row (mod_id, code), resolve the content instance by its
// data hash, always append a version row for this mod version, and —
// only when the instance is genuinely new — write its detail and
// junction rows. The inserted flag of the instance step is the single
// signal deciding that cascade, which is what makes repeated imports of
// the same content idempotent.
//
// The orchestrator wraps one import in one transaction; the documented
// exception to strict failure is built-in association resolution, which
// logs and skips unresolvable codes instead of aborting the run.
package ingest
