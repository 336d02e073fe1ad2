package domain

// GapChar marks a gap in an aligned sequence.
const GapChar = '-'

// AlignMode selects the alignment algorithm.
type AlignMode string

// Available alignment modes.
const (
	// AlignGlobal aligns both sequences end to end.
	AlignGlobal AlignMode = "global"

	// AlignLocal aligns the best-scoring pair of substrings.
	AlignLocal AlignMode = "local"
)

// IsValid returns true if the align mode is recognised.
func (m AlignMode) IsValid() bool {
	return m == AlignGlobal || m == AlignLocal
}

// String returns the string representation.
func (m AlignMode) String() string {
	return string(m)
}

// Alignment is a pairwise alignment of sequences A and B.
// AlignedA and AlignedB always have equal length. The Start/End fields
// give the half-open range of each input covered by the alignment; for
// global alignments they span the whole inputs.
type Alignment struct {
	AlignedA string
	AlignedB string
	Score    float64
	Mode     AlignMode

	StartA int
	EndA   int
	StartB int
	EndB   int
}

// Len returns the number of alignment columns.
func (a Alignment) Len() int {
	return len(a.AlignedA)
}

// Matches counts columns where both characters are equal and not gaps.
func (a Alignment) Matches() int {
	n := 0
	for i := 0; i < len(a.AlignedA) && i < len(a.AlignedB); i++ {
		if a.AlignedA[i] == a.AlignedB[i] && a.AlignedA[i] != GapChar {
			n++
		}
	}
	return n
}

// Gaps counts gap characters across both aligned sequences.
func (a Alignment) Gaps() int {
	n := 0
	for i := 0; i < len(a.AlignedA); i++ {
		if a.AlignedA[i] == GapChar {
			n++
		}
	}
	for i := 0; i < len(a.AlignedB); i++ {
		if a.AlignedB[i] == GapChar {
			n++
		}
	}
	return n
}
