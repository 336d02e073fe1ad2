package engine

import (
	"fmt"
	"math"

	"github.com/custodia-labs/helix/internal/core/domain"
)

// Local alignment scores in half points, so the 0.5 gap extension stays an
// integer: match +2, mismatch -1, gap open -2, gap extend -0.5.
const (
	localMatch     = 4
	localMismatch  = -2
	localGapOpen   = -4
	localGapExtend = -1
	halfPoints     = 2

	// Far below any reachable score, with room to add penalties.
	negInf = math.MinInt32 / 2
)

// Public local scoring parameters in score units.
const (
	LocalMatchScore    = float64(localMatch) / halfPoints
	LocalMismatchScore = float64(localMismatch) / halfPoints
	LocalGapOpen       = float64(localGapOpen) / halfPoints
	LocalGapExtend     = float64(localGapExtend) / halfPoints
)

func localScore(x, y byte) int {
	if x == y {
		return localMatch
	}
	return localMismatch
}

type traceState uint8

const (
	stateH traceState = iota // best score ending at the cell
	stateF                   // ends with a[i-1] against a gap in b
	stateE                   // ends with b[j-1] against a gap in a
)

// AlignLocal computes the best local alignment of a and b under an affine
// gap model: a gap run of length k scores -2 - 0.5*(k-1).
//
// ok is false when no pair of substrings scores above zero. The maximum
// cell is the first one found in row-major order. Traceback from it
// prefers diagonal, then up, then left, closes a gap run as early as
// possible, and stops at the first cell whose score is 0.
func AlignLocal(a, b string) (aln domain.Alignment, ok bool, err error) {
	if a == "" || b == "" {
		return domain.Alignment{}, false, fmt.Errorf("local alignment: %w", domain.ErrEmptyInput)
	}

	n, m := len(a), len(b)
	cols := m + 1
	size := (n + 1) * cols
	h := make([]int, size)
	e := make([]int, size)
	f := make([]int, size)
	for k := range e {
		e[k] = negInf
		f[k] = negInf
	}

	best, bi, bj := 0, 0, 0
	for i := 1; i <= n; i++ {
		row, prev := i*cols, (i-1)*cols
		for j := 1; j <= m; j++ {
			e[row+j] = max(h[row+j-1]+localGapOpen, e[row+j-1]+localGapExtend)
			f[row+j] = max(h[prev+j]+localGapOpen, f[prev+j]+localGapExtend)
			diag := h[prev+j-1] + localScore(a[i-1], b[j-1])

			v := max(0, diag, f[row+j], e[row+j])
			h[row+j] = v
			if v > best {
				best, bi, bj = v, i, j
			}
		}
	}

	if best <= 0 {
		return domain.Alignment{}, false, nil
	}

	outA := make([]byte, 0, bi+bj)
	outB := make([]byte, 0, bi+bj)
	i, j, state := bi, bj, stateH

trace:
	for {
		at := i*cols + j
		switch state {
		case stateH:
			if i == 0 || j == 0 || h[at] == 0 {
				break trace
			}
			switch h[at] {
			case h[(i-1)*cols+j-1] + localScore(a[i-1], b[j-1]):
				outA = append(outA, a[i-1])
				outB = append(outB, b[j-1])
				i--
				j--
			case f[at]:
				state = stateF
			default:
				state = stateE
			}
		case stateF:
			outA = append(outA, a[i-1])
			outB = append(outB, domain.GapChar)
			if f[at] == h[(i-1)*cols+j]+localGapOpen {
				state = stateH
			}
			i--
		case stateE:
			outA = append(outA, domain.GapChar)
			outB = append(outB, b[j-1])
			if e[at] == h[at-1]+localGapOpen {
				state = stateH
			}
			j--
		}
	}
	reverse(outA)
	reverse(outB)

	return domain.Alignment{
		AlignedA: string(outA),
		AlignedB: string(outB),
		Score:    float64(best) / halfPoints,
		Mode:     domain.AlignLocal,
		StartA:   i,
		EndA:     bi,
		StartB:   j,
		EndB:     bj,
	}, true, nil
}
