package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/helix/internal/core/domain"
)

// SearchSequenceInput is the input schema for the search_sequence tool.
type SearchSequenceInput struct {
	Sequence   string `json:"sequence" jsonschema:"the DNA query sequence"`
	TopK       int    `json:"top_k,omitempty" jsonschema:"maximum number of hits, clamped to 1..50 (default 5)"`
	PreviewLen int    `json:"preview_len,omitempty" jsonschema:"characters of the matched window to preview (default 50)"`
}

// SearchSequenceOutput is the output schema for the search_sequence tool.
type SearchSequenceOutput struct {
	Found   bool        `json:"found"`
	Results []HitOutput `json:"results"`
}

// HitOutput is a single ranked hit.
type HitOutput struct {
	RecordID    string  `json:"record_id"`
	Organism    string  `json:"organism,omitempty"`
	GeneName    string  `json:"gene_name,omitempty"`
	Description string  `json:"description"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
	Score       int     `json:"score"`
	Similarity  float64 `json:"similarity"`
	Preview     string  `json:"preview"`
}

// AlignInput is the input schema for the alignment tools.
type AlignInput struct {
	Seq1 string `json:"seq1" jsonschema:"first sequence"`
	Seq2 string `json:"seq2" jsonschema:"second sequence"`
}

// AlignOutput is the output schema for the alignment tools.
// Found is false when a local alignment has no positive-scoring region.
type AlignOutput struct {
	Found     bool    `json:"found"`
	AlignedA  string  `json:"aligned_a,omitempty"`
	AlignedB  string  `json:"aligned_b,omitempty"`
	Score     float64 `json:"score"`
	Alignment string  `json:"alignment,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_sequence",
		Description: "Find the reference sequences whose best fixed-length window matches the query most closely",
	}, s.handleSearchSequence)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "align_global",
		Description: "Global alignment of two sequences (match 1, mismatch 0, gap 0)",
	}, s.handleAlignGlobal)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "align_local",
		Description: "Local alignment of two sequences with affine gaps (match 2, mismatch -1, open -2, extend -0.5)",
	}, s.handleAlignLocal)
}

// handleSearchSequence handles the search_sequence tool invocation.
func (s *Server) handleSearchSequence(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchSequenceInput,
) (*mcp.CallToolResult, SearchSequenceOutput, error) {
	query := domain.DefaultQuery(input.Sequence)
	if input.TopK != 0 {
		query.TopK = input.TopK
	}
	if input.PreviewLen > 0 {
		query.PreviewLen = input.PreviewLen
	}

	result, err := s.ports.Search.Search(ctx, query)
	if err != nil {
		return nil, SearchSequenceOutput{}, err
	}

	output := SearchSequenceOutput{
		Found:   result.Found,
		Results: make([]HitOutput, len(result.Results)),
	}
	for i := range result.Results {
		hit := &result.Results[i]
		output.Results[i] = HitOutput{
			RecordID:    hit.RecordID,
			Organism:    hit.Organism,
			GeneName:    hit.GeneName,
			Description: hit.Description,
			Start:       hit.Start,
			End:         hit.End,
			Score:       hit.Score,
			Similarity:  hit.Similarity,
			Preview:     hit.Preview,
		}
	}

	return nil, output, nil
}

// handleAlignGlobal handles the align_global tool invocation.
func (s *Server) handleAlignGlobal(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AlignInput,
) (*mcp.CallToolResult, AlignOutput, error) {
	aln, err := s.ports.Align.Global(ctx, input.Seq1, input.Seq2)
	if err != nil {
		return nil, AlignOutput{}, err
	}
	return nil, s.alignOutput(aln), nil
}

// handleAlignLocal handles the align_local tool invocation.
func (s *Server) handleAlignLocal(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AlignInput,
) (*mcp.CallToolResult, AlignOutput, error) {
	aln, err := s.ports.Align.Local(ctx, input.Seq1, input.Seq2)
	if err != nil {
		return nil, AlignOutput{}, err
	}
	if aln == nil {
		return nil, AlignOutput{}, nil
	}
	return nil, s.alignOutput(*aln), nil
}

func (s *Server) alignOutput(aln domain.Alignment) AlignOutput {
	return AlignOutput{
		Found:     true,
		AlignedA:  aln.AlignedA,
		AlignedB:  aln.AlignedB,
		Score:     aln.Score,
		Alignment: s.ports.Align.Render(aln),
	}
}
