// Package store implements the insert-or-find persistence primitive the
// ingestion pipeline is built on: create a row unless an equivalent one
// already exists, and report which of the two happened.
//
// Mods are re-submitted constantly, so almost every write in an import is
// conditional on whether equivalent content was already persisted by an
// earlier run. Entity importers compose this primitive into their
// identity, instance and version steps and cascade detail writes only
// when the instance call reports an actual insert.
package store
