// Package sqlite provides a SQLite reference catalogue.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. A single database implements both
// driven.ReferenceStore and driven.ReferenceImporter.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.helix/data/references.db
//
// # Snapshots
//
// Snapshot reads the catalogue once and caches the set; ReplaceAll swaps the
// rows in one transaction and drops the cache, so readers see either the old
// or the new catalogue and never a mix.
package sqlite
