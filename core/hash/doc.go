// Package hash provides the content fingerprinting used to deduplicate
// ingested mod data.
//
// Every entity instance is addressed by a SHA-256 digest built from its
// normalized source artifacts: the tabular row (Flat), an optional nested
// sidecar file (Structured), and optional description rows, chained
// left-to-right with Combine. Sprite images are fingerprinted by decoded
// pixel data (Image), not file bytes, so re-encoded but visually identical
// sprites collapse to one stored copy.
//
// The package is pure: it never touches the database and takes no handles.
package hash
