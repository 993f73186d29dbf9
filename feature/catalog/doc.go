// Package catalog exposes the read-only HTTP surface over the imported
// content: mods, their versions, and the entity listing each version
// shipped. All writes go through the ingest and cleanup features.
package catalog
