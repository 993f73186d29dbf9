// Package cleanup removes mods and mod versions from the catalog and
// garbage-collects the shared rows (instances, tags, hints, groups,
// images) left without references afterwards. Deletion and sweep run in
// one transaction; sprite file removal happens after commit and is
// best-effort.
package cleanup
