// Package fasta provides a FASTA-file implementation of the reference
// store ports.
//
// Files are parsed with github.com/shenwei356/bio, so plain and
// gzip-compressed inputs are both accepted. Each record header is split
// into ID, organism and gene name by domain.ParseHeader, and bases are
// upper-cased with whitespace removed.
//
// # Lifecycle
//
// A Store is created with NewStore and filled once by Load during startup.
// After that the reference set never changes. A store whose Load failed
// stays usable for Status, which reports Exists and zero records, while
// Snapshot returns domain.ErrStoreUnavailable.
package fasta
