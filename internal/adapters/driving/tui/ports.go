// Package tui provides an interactive terminal user interface for helix.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/helix/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Search runs window searches against the reference store.
	Search driving.SearchService

	// Align runs pairwise global and local alignments.
	Align driving.AlignService

	// References reports on the loaded store. Optional; the status
	// view shows a placeholder without it.
	References driving.ReferenceService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchService,
	align driving.AlignService,
	references driving.ReferenceService,
) *Ports {
	return &Ports{
		Search:     search,
		Align:      align,
		References: references,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Align == nil {
		return ErrMissingAlignService
	}
	return nil
}
