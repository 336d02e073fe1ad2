package mcp

import (
	"github.com/custodia-labs/helix/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Search runs best-window searches.
	Search driving.SearchService

	// Align runs pairwise alignments.
	Align driving.AlignService

	// References exposes the reference store. Optional.
	References driving.ReferenceService
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
