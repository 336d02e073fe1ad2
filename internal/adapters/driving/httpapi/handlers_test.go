package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/helix/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/services"
)

// do sends a request through the full middleware stack.
func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func newTestServer(t *testing.T, ports *Ports) *Server {
	t.Helper()
	s, err := NewServer(ports, Options{AllowOrigins: []string{"*"}})
	require.NoError(t, err)
	return s
}

func TestHandleHome(t *testing.T) {
	ports, _, _, _ := testPorts()
	s := newTestServer(t, ports)

	rec := do(t, s, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"DNA Similarity API is running"}`, rec.Body.String())

	rec = do(t, s, http.MethodGet, "/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleSearch(t *testing.T) {
	ports, search, _, _ := testPorts()
	search.result = domain.SearchResult{
		Found: true,
		Results: []domain.RankedHit{{
			WindowMatch: domain.WindowMatch{Start: 2, End: 6, Score: 4, WindowLen: 4, Similarity: 1, MatchedBases: "ACGT"},
			RecordID:    "XM_1",
			Organism:    "Homo sapiens",
			Description: "XM_1 Homo sapiens",
			Preview:     "AC…",
		}},
	}
	s := newTestServer(t, ports)

	rec := do(t, s, http.MethodPost, "/search", `{"sequence":"acgt","preview_len":2,"top_k":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acgt", search.lastQuery.Bases)
	assert.Equal(t, 2, search.lastQuery.PreviewLen)
	assert.Equal(t, 3, search.lastQuery.TopK)

	assert.JSONEq(t, `{
		"found": true,
		"results": [{
			"matched_record_id": "XM_1",
			"organism": "Homo sapiens",
			"gene_name": null,
			"description": "XM_1 Homo sapiens",
			"start": 2,
			"end": 6,
			"similarity": 1,
			"match_preview": "AC…",
			"match_full": "ACGT"
		}]
	}`, rec.Body.String())
}

func TestHandleSearch_Defaults(t *testing.T) {
	ports, search, _, _ := testPorts()
	search.result = domain.SearchResult{Results: []domain.RankedHit{}}
	s := newTestServer(t, ports)

	rec := do(t, s, http.MethodPost, "/search", `{"sequence":"ACGT"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DefaultPreviewLen, search.lastQuery.PreviewLen)
	assert.Equal(t, domain.DefaultTopK, search.lastQuery.TopK)
	assert.JSONEq(t, `{"found":false,"results":[]}`, rec.Body.String())
}

func TestHandleSearch_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"empty sequence", `{"sequence":""}`, domain.ErrEmptyInput, http.StatusBadRequest, "empty sequence"},
		{"store missing", `{"sequence":"A"}`, domain.ErrStoreUnavailable, http.StatusInternalServerError, "reference store not loaded"},
		{"unexpected", `{"sequence":"A"}`, errors.New("boom"), http.StatusInternalServerError, "internal server error"},
		{"malformed body", `{"sequence":`, nil, http.StatusUnprocessableEntity, "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports, search, _, _ := testPorts()
			search.err = tt.err
			s := newTestServer(t, ports)

			rec := do(t, s, http.MethodPost, "/search", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, decode[errorResponse](t, rec).Detail, tt.wantDetail)
		})
	}
}

func TestHandleAlignGlobal(t *testing.T) {
	ports, _, align, _ := testPorts()
	align.global = domain.Alignment{AlignedA: "ACGT", AlignedB: "ACGT", Score: 4, Mode: domain.AlignGlobal}
	s := newTestServer(t, ports)

	rec := do(t, s, http.MethodPost, "/align-global", `{"seq1":"ACGT","seq2":"ACGT"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"alignment":"ACGT\n||||\nACGT\n  Score=4\n"}`, rec.Body.String())
}

func TestHandleAlignLocal_None(t *testing.T) {
	ports, _, _, _ := testPorts()
	s := newTestServer(t, ports)

	rec := do(t, s, http.MethodPost, "/align-local", `{"seq1":"AAAA","seq2":"CCCC"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"alignment":null}`, rec.Body.String())
}

func TestHandleAlign_EmptyInput(t *testing.T) {
	ports, _, align, _ := testPorts()
	align.err = domain.ErrEmptyInput
	s := newTestServer(t, ports)

	for _, path := range []string{"/align-global", "/align-local"} {
		rec := do(t, s, http.MethodPost, path, `{"seq1":"","seq2":"A"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestHandleDBStatus(t *testing.T) {
	ports, _, _, refs := testPorts()
	refs.status = domain.StoreStatus{Backend: domain.StoreBackendFASTA, Path: "data/references.fasta", Exists: true, Records: 12}
	s := newTestServer(t, ports)

	rec := do(t, s, http.MethodGet, "/db/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"backend":"fasta","fasta_path":"data/references.fasta","exists":true,"records":12}`, rec.Body.String())
}

func TestHandleDBRecords(t *testing.T) {
	ids := make([]string, 15)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantKeys   int
	}{
		{"default limit", "/db/records", http.StatusOK, 10},
		{"explicit limit", "/db/records?limit=3", http.StatusOK, 3},
		{"zero", "/db/records?limit=0", http.StatusOK, 0},
		{"negative", "/db/records?limit=-1", http.StatusBadRequest, 0},
		{"not a number", "/db/records?limit=ten", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ports, _, _, refs := testPorts()
			refs.ids = ids
			s := newTestServer(t, ports)

			rec := do(t, s, http.MethodGet, tt.target, "")
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Len(t, decode[recordsResponse](t, rec).Keys, tt.wantKeys)
			}
		})
	}
}

func TestHandleDBRecords_StoreUnavailable(t *testing.T) {
	ports, _, _, refs := testPorts()
	refs.err = domain.ErrStoreUnavailable
	s := newTestServer(t, ports)

	rec := do(t, s, http.MethodGet, "/db/records", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_EndToEnd(t *testing.T) {
	store := memory.NewReferenceStore(
		domain.ReferenceSequence{ID: "r1", Organism: "Homo sapiens", GeneName: "BRCA1", Description: "r1 Homo sapiens (BRCA1)", Bases: "TTTTACGTTTTT"},
		domain.ReferenceSequence{ID: "r2", Description: "r2", Bases: "GGGG"},
	)
	s := newTestServer(t, &Ports{
		Search:     services.NewSearchService(store, 2),
		Align:      services.NewAlignService(),
		References: services.NewReferenceService(store),
	})

	rec := do(t, s, http.MethodPost, "/search", `{"sequence":"ACGT","top_k":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[searchResponse](t, rec)
	require.True(t, resp.Found)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "r1", resp.Results[0].MatchedRecordID)
	assert.Equal(t, 4, resp.Results[0].Start)
	require.NotNil(t, resp.Results[0].GeneName)
	assert.Equal(t, "BRCA1", *resp.Results[0].GeneName)

	rec = do(t, s, http.MethodPost, "/align-local", `{"seq1":"GATTACA","seq2":"GCATGCU"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"alignment":"AT\n||\nAT\n  Score=4\n"}`, rec.Body.String())

	rec = do(t, s, http.MethodPost, "/align-global", `{"seq1":"","seq2":"A"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodGet, "/db/records?limit=5", "")
	assert.JSONEq(t, `{"keys":["r1","r2"]}`, rec.Body.String())
}
