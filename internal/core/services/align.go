package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/engine"
	"github.com/custodia-labs/helix/internal/core/ports/driving"
	"github.com/custodia-labs/helix/internal/logger"
)

// Ensure AlignService implements the interface.
var _ driving.AlignService = (*AlignService)(nil)

// AlignService runs pairwise alignments.
type AlignService struct{}

// NewAlignService creates a new align service.
func NewAlignService() *AlignService {
	return &AlignService{}
}

// Global aligns a and b end to end.
func (s *AlignService) Global(ctx context.Context, a, b string) (domain.Alignment, error) {
	if err := validatePair(ctx, a, b); err != nil {
		return domain.Alignment{}, err
	}

	logger.Debug("Global alignment: %d x %d", len(a), len(b))
	aln, err := engine.AlignGlobal(a, b)
	if err != nil {
		return domain.Alignment{}, err
	}
	logger.Debug("Global alignment score=%g columns=%d", aln.Score, aln.Len())
	return aln, nil
}

// Local returns the best local alignment, or nil if none scores above zero.
func (s *AlignService) Local(ctx context.Context, a, b string) (*domain.Alignment, error) {
	if err := validatePair(ctx, a, b); err != nil {
		return nil, err
	}

	logger.Debug("Local alignment: %d x %d", len(a), len(b))
	aln, ok, err := engine.AlignLocal(a, b)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Debug("Local alignment: no positive-scoring region")
		return nil, nil
	}
	logger.Debug("Local alignment score=%g a[%d:%d] b[%d:%d]", aln.Score, aln.StartA, aln.EndA, aln.StartB, aln.EndB)
	return &aln, nil
}

// Render formats an alignment as text.
func (s *AlignService) Render(aln domain.Alignment) string {
	return engine.Render(aln)
}

func validatePair(ctx context.Context, a, b string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(a) == "" {
		return fmt.Errorf("seq1: %w", domain.ErrEmptyInput)
	}
	if strings.TrimSpace(b) == "" {
		return fmt.Errorf("seq2: %w", domain.ErrEmptyInput)
	}
	return nil
}
