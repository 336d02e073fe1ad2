package driving

import (
	"context"

	"github.com/custodia-labs/helix/internal/core/domain"
)

// ReferenceService exposes the loaded reference collection.
type ReferenceService interface {
	// Status reports the store backend, path and record count.
	Status(ctx context.Context) (domain.StoreStatus, error)

	// List returns up to limit record IDs in store order.
	List(ctx context.Context, limit int) ([]string, error)

	// Get returns a single reference by record ID.
	Get(ctx context.Context, id string) (*domain.ReferenceSequence, error)

	// Import parses a FASTA file into the writable catalogue and
	// returns the number of records stored.
	Import(ctx context.Context, path string) (int, error)
}
