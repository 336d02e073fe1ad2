package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/custodia-labs/helix/internal/core/domain"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 8 << 20

// defaultRecordLimit is the /db/records page size when ?limit is absent.
const defaultRecordLimit = 10

type searchRequest struct {
	Sequence   string `json:"sequence"`
	PreviewLen *int   `json:"preview_len"`
	TopK       *int   `json:"top_k"`
}

type searchHit struct {
	MatchedRecordID string  `json:"matched_record_id"`
	Organism        *string `json:"organism"`
	GeneName        *string `json:"gene_name"`
	Description     string  `json:"description"`
	Start           int     `json:"start"`
	End             int     `json:"end"`
	Similarity      float64 `json:"similarity"`
	MatchPreview    string  `json:"match_preview"`
	MatchFull       string  `json:"match_full"`
}

type searchResponse struct {
	Found   bool        `json:"found"`
	Results []searchHit `json:"results"`
}

type alignRequest struct {
	Seq1 string `json:"seq1"`
	Seq2 string `json:"seq2"`
}

type alignResponse struct {
	Alignment *string `json:"alignment"`
}

type statusResponse struct {
	Backend   string `json:"backend"`
	FASTAPath string `json:"fasta_path"`
	Exists    bool   `json:"exists"`
	Records   int    `json:"records"`
}

type recordsResponse struct {
	Keys []string `json:"keys"`
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "DNA Similarity API is running"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	query := domain.DefaultQuery(req.Sequence)
	if req.PreviewLen != nil {
		query.PreviewLen = *req.PreviewLen
	}
	if req.TopK != nil {
		query.TopK = *req.TopK
	}

	result, err := s.ports.Search.Search(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := searchResponse{
		Found:   result.Found,
		Results: make([]searchHit, 0, len(result.Results)),
	}
	for _, hit := range result.Results {
		resp.Results = append(resp.Results, searchHit{
			MatchedRecordID: hit.RecordID,
			Organism:        optional(hit.Organism),
			GeneName:        optional(hit.GeneName),
			Description:     hit.Description,
			Start:           hit.Start,
			End:             hit.End,
			Similarity:      hit.Similarity,
			MatchPreview:    hit.Preview,
			MatchFull:       hit.MatchedBases,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAlignGlobal(w http.ResponseWriter, r *http.Request) {
	var req alignRequest
	if !decodeBody(w, r, &req) {
		return
	}

	aln, err := s.ports.Align.Global(r.Context(), req.Seq1, req.Seq2)
	if err != nil {
		writeError(w, r, err)
		return
	}
	text := s.ports.Align.Render(aln)
	writeJSON(w, http.StatusOK, alignResponse{Alignment: &text})
}

func (s *Server) handleAlignLocal(w http.ResponseWriter, r *http.Request) {
	var req alignRequest
	if !decodeBody(w, r, &req) {
		return
	}

	aln, err := s.ports.Align.Local(r.Context(), req.Seq1, req.Seq2)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var resp alignResponse
	if aln != nil {
		text := s.ports.Align.Render(*aln)
		resp.Alignment = &text
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDBStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.ports.References.Status(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Backend:   status.Backend.String(),
		FASTAPath: status.Path,
		Exists:    status.Exists,
		Records:   status.Records,
	})
}

func (s *Server) handleDBRecords(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecordLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeDetail(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	keys := []string{}
	if limit > 0 {
		ids, err := s.ports.References.List(r.Context(), limit)
		if err != nil {
			writeError(w, r, err)
			return
		}
		keys = ids
	}
	writeJSON(w, http.StatusOK, recordsResponse{Keys: keys})
}

// decodeBody reads a JSON body into v, writing a 422 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// optional maps an empty string to JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
