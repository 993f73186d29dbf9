// Package sprite provides content-addressed storage for entity sprites.
//
// Imports copy each referenced image to {mod_code}/{category}/{file_hash}.png,
// where file_hash fingerprints the decoded pixel data (see core/hash).
// Because the key encodes the content, puts are idempotent: an existing
// destination is never rewritten, which also makes the existence check a
// benign race under concurrent imports (worst case a redundant copy).
//
// Two drivers are provided: local filesystem (default) and S3-compatible
// object storage via MinIO.
package sprite
