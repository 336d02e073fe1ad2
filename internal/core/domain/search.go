package domain

// Query defaults and bounds.
const (
	// DefaultPreviewLen is the preview length used when none is given.
	DefaultPreviewLen = 50

	// DefaultTopK is the number of hits returned when none is given.
	DefaultTopK = 5

	// MinTopK and MaxTopK bound the effective number of returned hits.
	MinTopK = 1
	MaxTopK = 50

	// PreviewMarker is appended to a preview that was truncated.
	PreviewMarker = "…"
)

// Query is a window search request.
type Query struct {
	// Bases is the query sequence.
	Bases string

	// PreviewLen is the number of matched bases shown in each preview.
	PreviewLen int

	// TopK is the requested number of hits; it is clamped to [MinTopK, MaxTopK].
	TopK int
}

// DefaultQuery returns a query for bases with default preview and top-K.
func DefaultQuery(bases string) Query {
	return Query{
		Bases:      bases,
		PreviewLen: DefaultPreviewLen,
		TopK:       DefaultTopK,
	}
}

// WindowMatch is the best-scoring window of one reference.
// The window is the half-open range [Start, End) of the reference.
type WindowMatch struct {
	Start        int
	End          int
	Score        int
	WindowLen    int
	Similarity   float64
	MatchedBases string
}

// Candidate pairs a reference with its window match.
// A nil Match means the reference produced no match.
type Candidate struct {
	Reference ReferenceSequence
	Match     *WindowMatch
}

// RankedHit is a window match enriched with reference metadata.
type RankedHit struct {
	WindowMatch

	RecordID    string
	Organism    string
	GeneName    string
	Description string

	// Preview is MatchedBases truncated to the query's preview length.
	Preview string
}

// SearchResult is the ranked outcome of a window search.
type SearchResult struct {
	// Found is false when no reference produced a match.
	Found bool

	// Results holds at most the effective top-K hits, best first.
	Results []RankedHit
}
