// Package domain defines the core business entities for Helix.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ReferenceSequence: A named DNA record with header metadata
//   - ReferenceSet: An immutable snapshot of the reference collection
//   - WindowMatch: The best fixed-length window of one reference
//   - RankedHit: A window match enriched with metadata and a preview
//   - Alignment: A pairwise global or local alignment
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
