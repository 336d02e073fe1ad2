package engine

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/helix/internal/core/domain"
)

// MatchSymbol marks identical, non-gap columns in a rendered alignment.
const MatchSymbol = '|'

// Render formats an alignment as the aligned A line, a marker line, the
// aligned B line and a score line, each terminated by a newline:
//
//	G-ATTACA
//	| | | |
//	GCA-TGCU
//	  Score=4
func Render(aln domain.Alignment) string {
	var sb strings.Builder
	sb.Grow(3*(aln.Len()+1) + 16)

	sb.WriteString(aln.AlignedA)
	sb.WriteByte('\n')
	for i := 0; i < len(aln.AlignedA); i++ {
		c := aln.AlignedA[i]
		if i < len(aln.AlignedB) && c == aln.AlignedB[i] && c != domain.GapChar {
			sb.WriteByte(MatchSymbol)
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('\n')
	sb.WriteString(aln.AlignedB)
	sb.WriteByte('\n')
	sb.WriteString("  Score=")
	sb.WriteString(strconv.FormatFloat(aln.Score, 'g', -1, 64))
	sb.WriteByte('\n')

	return sb.String()
}
