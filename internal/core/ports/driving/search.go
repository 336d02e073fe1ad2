package driving

import (
	"context"

	"github.com/custodia-labs/helix/internal/core/domain"
)

// SearchService provides window search to external actors.
type SearchService interface {
	// Search scans every reference for the best window matching the query
	// and returns the top-K hits by similarity.
	Search(ctx context.Context, query domain.Query) (domain.SearchResult, error)
}
