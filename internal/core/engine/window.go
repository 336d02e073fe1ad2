package engine

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/helix/internal/core/domain"
)

// Normalize uppercases s and removes all whitespace, including newlines.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}

// MatchBestWindow finds the window of reference that best matches query.
//
// Both inputs are normalised first; ok is false if either is then empty.
// The window length is min(len(reference), len(query)) and the score of
// offset i counts positions j where reference[i+j] == query[j]. The highest
// score wins and ties go to the smallest offset.
func MatchBestWindow(reference, query string) (match domain.WindowMatch, ok bool) {
	ref := Normalize(reference)
	q := Normalize(query)
	if ref == "" || q == "" {
		return domain.WindowMatch{}, false
	}

	windowLen := min(len(ref), len(q))
	bestScore, bestStart := -1, 0

	for i := 0; i+windowLen <= len(ref); i++ {
		score := 0
		for j := 0; j < windowLen; j++ {
			if ref[i+j] == q[j] {
				score++
			}
		}
		if score > bestScore {
			bestScore, bestStart = score, i
			// A perfect window cannot be beaten by a later offset.
			if score == windowLen {
				break
			}
		}
	}

	return domain.WindowMatch{
		Start:        bestStart,
		End:          bestStart + windowLen,
		Score:        bestScore,
		WindowLen:    windowLen,
		Similarity:   float64(bestScore) / float64(windowLen),
		MatchedBases: ref[bestStart : bestStart+windowLen],
	}, true
}
