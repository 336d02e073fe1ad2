package driven

import (
	"context"

	"github.com/custodia-labs/helix/internal/core/domain"
)

// ReferenceStore supplies the reference sequences searched by the core.
// Backed by a FASTA file or the SQLite catalogue.
type ReferenceStore interface {
	// Snapshot returns the loaded references in store order.
	// The returned set is immutable and may be shared between goroutines.
	Snapshot(ctx context.Context) (domain.ReferenceSet, error)

	// Status describes where the references were loaded from.
	Status(ctx context.Context) (domain.StoreStatus, error)
}

// ReferenceImporter replaces the contents of a writable reference catalogue.
type ReferenceImporter interface {
	// ReplaceAll atomically replaces every stored reference with refs.
	ReplaceAll(ctx context.Context, refs []domain.ReferenceSequence) error
}

// ReferenceReader parses reference sequences from a file.
type ReferenceReader interface {
	// ReadFile returns every record of the file at path in file order.
	ReadFile(ctx context.Context, path string) ([]domain.ReferenceSequence, error)
}
