package driving

import (
	"context"

	"github.com/custodia-labs/helix/internal/core/domain"
)

// AlignService provides pairwise alignment to external actors.
type AlignService interface {
	// Global aligns a and b end to end.
	Global(ctx context.Context, a, b string) (domain.Alignment, error)

	// Local returns the best local alignment of a and b,
	// or nil when no pair of substrings scores above zero.
	Local(ctx context.Context, a, b string) (*domain.Alignment, error)

	// Render formats an alignment as text.
	Render(aln domain.Alignment) string
}
