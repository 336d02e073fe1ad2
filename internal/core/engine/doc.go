// Package engine implements the sequence matching and alignment core.
//
// Every function in this package is pure: it reads its arguments, never
// mutates them and keeps no state between calls, so the functions are safe
// to call from any number of goroutines.
//
//   - MatchBestWindow: position-wise window scoring of a query against one reference
//   - RankHits: similarity ranking with bounded top-K and previews
//   - AlignGlobal: no-penalty Needleman-Wunsch alignment
//   - AlignLocal: affine-gap Smith-Waterman alignment
//   - Render: three-line text rendering of an alignment
//
// Sequences are compared byte by byte with exact equality; no alphabet is
// enforced.
package engine
