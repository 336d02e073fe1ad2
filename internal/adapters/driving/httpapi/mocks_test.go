package httpapi

import (
	"context"

	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/engine"
)

// mockSearchService implements driving.SearchService for testing.
type mockSearchService struct {
	result    domain.SearchResult
	err       error
	lastQuery domain.Query
}

func (m *mockSearchService) Search(_ context.Context, query domain.Query) (domain.SearchResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

// mockAlignService implements driving.AlignService for testing.
type mockAlignService struct {
	global   domain.Alignment
	local    *domain.Alignment
	err      error
	panicMsg string
}

func (m *mockAlignService) Global(_ context.Context, _, _ string) (domain.Alignment, error) {
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	return m.global, m.err
}

func (m *mockAlignService) Local(_ context.Context, _, _ string) (*domain.Alignment, error) {
	return m.local, m.err
}

func (m *mockAlignService) Render(aln domain.Alignment) string {
	return engine.Render(aln)
}

// mockReferenceService implements driving.ReferenceService for testing.
type mockReferenceService struct {
	status    domain.StoreStatus
	ids       []string
	err       error
	lastLimit int
}

func (m *mockReferenceService) Status(_ context.Context) (domain.StoreStatus, error) {
	return m.status, m.err
}

func (m *mockReferenceService) List(_ context.Context, limit int) ([]string, error) {
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	if limit < len(m.ids) {
		return m.ids[:limit], nil
	}
	return m.ids, nil
}

func (m *mockReferenceService) Get(_ context.Context, _ string) (*domain.ReferenceSequence, error) {
	return nil, domain.ErrNotFound
}

func (m *mockReferenceService) Import(_ context.Context, _ string) (int, error) {
	return 0, nil
}

// testPorts returns ports backed by fresh mocks.
func testPorts() (*Ports, *mockSearchService, *mockAlignService, *mockReferenceService) {
	search := &mockSearchService{}
	align := &mockAlignService{}
	refs := &mockReferenceService{}
	return &Ports{Search: search, Align: align, References: refs}, search, align, refs
}
