package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	ports, _, _, _ := testPorts()
	s := newTestServer(t, ports)

	rec := do(t, s, http.MethodGet, "/", "")
	id := rec.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "client-42")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "client-42", rec.Header().Get(HeaderRequestID))
}

func TestRequestIDFrom_Context(t *testing.T) {
	var seen string
	h := requestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, rec.Header().Get(HeaderRequestID), seen)
	assert.NotEmpty(t, seen)
}

func TestCORS(t *testing.T) {
	ports, _, _, _ := testPorts()
	s, err := NewServer(ports, Options{AllowOrigins: []string{"https://app.example/"}})
	require.NoError(t, err)

	t.Run("allowed simple request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://app.example")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("allowed preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/search", nil)
		req.Header.Set("Origin", "https://app.example")
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "content-type")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Equal(t, "content-type", rec.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("disallowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/search", nil)
		req.Header.Set("Origin", "https://evil.example")
		req.Header.Set("Access-Control-Request-Method", "POST")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCORS_Wildcard(t *testing.T) {
	ports, _, _, _ := testPorts()
	s := newTestServer(t, ports)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	ports, _, _, _ := testPorts()
	s, err := NewServer(ports, Options{RateLimit: 1})
	require.NoError(t, err)

	first := do(t, s, http.MethodGet, "/", "")
	second := do(t, s, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	assert.NotEmpty(t, second.Header().Get(HeaderRequestID))
}

func TestRateLimit_Disabled(t *testing.T) {
	ports, _, _, _ := testPorts()
	s := newTestServer(t, ports)

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/", "").Code)
	}
}

func TestRecoverPanics(t *testing.T) {
	ports, _, align, _ := testPorts()
	align.panicMsg = "kaboom"
	s := newTestServer(t, ports)

	rec := do(t, s, http.MethodPost, "/align-global", `{"seq1":"A","seq2":"A"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"https://a.example", "*"}, splitOrigins([]string{" https://a.example/ ", "", "*"}))
}
