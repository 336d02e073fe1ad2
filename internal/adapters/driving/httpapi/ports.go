package httpapi

import (
	"errors"

	"github.com/custodia-labs/helix/internal/core/ports/driving"
)

// Ports errors.
var (
	ErrMissingSearchService    = errors.New("search service is required")
	ErrMissingAlignService     = errors.New("align service is required")
	ErrMissingReferenceService = errors.New("reference service is required")
)

// Ports holds the driving services the HTTP server calls into.
type Ports struct {
	Search     driving.SearchService
	Align      driving.AlignService
	References driving.ReferenceService
}

// Validate checks that every required port is set.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Align == nil {
		return ErrMissingAlignService
	}
	if p.References == nil {
		return ErrMissingReferenceService
	}
	return nil
}
