package domain

import (
	"regexp"
	"strings"
)

var (
	organismPattern = regexp.MustCompile(`(Homo sapiens|Mus musculus|Rattus norvegicus)`)
	genePattern     = regexp.MustCompile(`\(([^)]+)\)`)
)

// ParseHeader extracts record metadata from a FASTA header line.
// For example ">XM_1 Homo sapiens SPATA31 (SPATA31A1), mRNA" yields
// ID "XM_1", organism "Homo sapiens" and gene "SPATA31A1".
func ParseHeader(header string) ReferenceSequence {
	desc := strings.TrimSpace(strings.ReplaceAll(header, ">", ""))

	var ref ReferenceSequence
	ref.Description = desc
	if fields := strings.Fields(desc); len(fields) > 0 {
		ref.ID = fields[0]
	}
	if m := organismPattern.FindStringSubmatch(header); m != nil {
		ref.Organism = m[1]
	}
	if m := genePattern.FindStringSubmatch(header); m != nil {
		ref.GeneName = m[1]
	}
	return ref
}
