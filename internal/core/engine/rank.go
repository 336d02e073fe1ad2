package engine

import (
	"sort"

	"github.com/custodia-labs/helix/internal/core/domain"
)

// ClampTopK bounds k to [domain.MinTopK, domain.MaxTopK].
func ClampTopK(k int) int {
	return max(domain.MinTopK, min(k, domain.MaxTopK))
}

// Preview returns the first n bytes of bases (n is raised to at least 1),
// followed by domain.PreviewMarker when bases was truncated.
func Preview(bases string, n int) string {
	n = max(n, 1)
	if len(bases) <= n {
		return bases
	}
	return bases[:n] + domain.PreviewMarker
}

// RankHits orders matched candidates by similarity and keeps the top K.
//
// Candidates without a match are dropped. The sort is stable, so hits with
// equal similarity keep their input order. topK is clamped with ClampTopK.
func RankHits(candidates []domain.Candidate, topK, previewLen int) domain.SearchResult {
	hits := make([]domain.RankedHit, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		if c.Match == nil {
			continue
		}
		hits = append(hits, domain.RankedHit{
			WindowMatch: *c.Match,
			RecordID:    c.Reference.ID,
			Organism:    c.Reference.Organism,
			GeneName:    c.Reference.GeneName,
			Description: c.Reference.Description,
			Preview:     Preview(c.Match.MatchedBases, previewLen),
		})
	}

	if len(hits) == 0 {
		return domain.SearchResult{Found: false, Results: []domain.RankedHit{}}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})

	if k := ClampTopK(topK); len(hits) > k {
		hits = hits[:k]
	}
	return domain.SearchResult{Found: true, Results: hits}
}
