package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/helix/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for helix resources.
	uriScheme = "helix://"

	// fastaLineWidth is the base count per sequence line in FASTA output.
	fastaLineWidth = 60

	// maxListedReferences bounds the helix://references listing.
	maxListedReferences = 1000
)

// referenceIndex is the body of the helix://references resource.
type referenceIndex struct {
	Backend string   `json:"backend"`
	Path    string   `json:"path"`
	Records int      `json:"records"`
	IDs     []string `json:"ids"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "references",
		Name:        "references",
		Description: "Reference store status and record IDs",
		MIMEType:    "application/json",
	}, s.handleReferencesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "references/{recordId}",
		Name:        "reference-sequence",
		Description: "A single reference sequence in FASTA format",
		MIMEType:    "text/x-fasta",
	}, s.handleReferenceResource)
}

// handleReferencesResource lists the loaded reference IDs.
func (s *Server) handleReferencesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	index := referenceIndex{IDs: []string{}}

	if s.ports.References != nil {
		status, err := s.ports.References.Status(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading store status: %w", err)
		}
		index.Backend = status.Backend.String()
		index.Path = status.Path
		index.Records = status.Records

		ids, err := s.ports.References.List(ctx, maxListedReferences)
		if err != nil && !errors.Is(err, domain.ErrStoreUnavailable) {
			return nil, fmt.Errorf("listing references: %w", err)
		}
		if ids != nil {
			index.IDs = ids
		}
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling references: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleReferenceResource returns one reference as a FASTA record.
func (s *Server) handleReferenceResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.References == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	id := extractRecordID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	ref, err := s.ports.References.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting reference: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/x-fasta",
			Text:     formatFASTA(*ref),
		}},
	}, nil
}

// extractRecordID extracts the record ID from a URI like helix://references/{recordId}.
func extractRecordID(uri string) string {
	const prefix = uriScheme + "references/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}

// formatFASTA renders ref as a FASTA record wrapped at fastaLineWidth.
func formatFASTA(ref domain.ReferenceSequence) string {
	var b strings.Builder
	header := ref.Description
	if header == "" {
		header = ref.ID
	}
	b.WriteString(">")
	b.WriteString(header)
	b.WriteByte('\n')
	for i := 0; i < len(ref.Bases); i += fastaLineWidth {
		end := min(i+fastaLineWidth, len(ref.Bases))
		b.WriteString(ref.Bases[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}
