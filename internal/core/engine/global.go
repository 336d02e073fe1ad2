package engine

import (
	"fmt"

	"github.com/custodia-labs/helix/internal/core/domain"
)

// Global alignment scores: only matches count.
const (
	globalMatch    = 1
	globalMismatch = 0
	globalGap      = 0
)

func globalScore(x, y byte) int {
	if x == y {
		return globalMatch
	}
	return globalMismatch
}

// AlignGlobal computes an optimal global alignment of a and b where a match
// scores 1 and mismatches and gaps score 0.
//
// Several alignments are usually optimal; traceback from the bottom-right
// cell prefers the diagonal move, then up (a gap in b), then left (a gap
// in a), so one canonical alignment is returned.
func AlignGlobal(a, b string) (domain.Alignment, error) {
	if a == "" || b == "" {
		return domain.Alignment{}, fmt.Errorf("global alignment: %w", domain.ErrEmptyInput)
	}

	n, m := len(a), len(b)
	cols := m + 1
	cell := make([]int, (n+1)*cols)

	for i := 1; i <= n; i++ {
		row, prev := i*cols, (i-1)*cols
		for j := 1; j <= m; j++ {
			cell[row+j] = max(
				cell[prev+j-1]+globalScore(a[i-1], b[j-1]),
				cell[prev+j]+globalGap,
				cell[row+j-1]+globalGap,
			)
		}
	}

	outA := make([]byte, 0, n+m)
	outB := make([]byte, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		here := cell[i*cols+j]
		switch {
		case i > 0 && j > 0 && here == cell[(i-1)*cols+j-1]+globalScore(a[i-1], b[j-1]):
			outA = append(outA, a[i-1])
			outB = append(outB, b[j-1])
			i--
			j--
		case i > 0 && here == cell[(i-1)*cols+j]+globalGap:
			outA = append(outA, a[i-1])
			outB = append(outB, domain.GapChar)
			i--
		default:
			outA = append(outA, domain.GapChar)
			outB = append(outB, b[j-1])
			j--
		}
	}
	reverse(outA)
	reverse(outB)

	return domain.Alignment{
		AlignedA: string(outA),
		AlignedB: string(outB),
		Score:    float64(cell[n*cols+m]),
		Mode:     domain.AlignGlobal,
		StartA:   0,
		EndA:     n,
		StartB:   0,
		EndB:     m,
	}, nil
}

func reverse(s []byte) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
