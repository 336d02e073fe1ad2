package fasta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"

	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/engine"
	"github.com/custodia-labs/helix/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.ReferenceReader = (*Reader)(nil)

// ctxCheckEvery is how many records are parsed between context checks.
const ctxCheckEvery = 256

func init() {
	// Ambiguity codes and soft-masked bases are kept as-is.
	seq.ValidateSeq = false
}

// Reader parses FASTA files into reference sequences.
type Reader struct{}

// NewReader creates a new FASTA reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile parses every record of the FASTA file at path in file order.
func (r *Reader) ReadFile(ctx context.Context, path string) ([]domain.ReferenceSequence, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("fasta file: %w", err)
	}

	reader, err := fastx.NewReader(seq.Unlimit, path, "")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer reader.Close()

	var refs []domain.ReferenceSequence
	for {
		if len(refs)%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		// Record buffers are reused by the reader, so copy out.
		ref := domain.ParseHeader(string(record.Name))
		ref.Bases = engine.Normalize(string(record.Seq.Seq))
		refs = append(refs, ref)
	}

	return refs, nil
}
