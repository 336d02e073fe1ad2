package mcp

import (
	"context"

	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/engine"
	"github.com/custodia-labs/helix/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	result    domain.SearchResult
	err       error
	lastQuery domain.Query
}

func (m *mockSearchService) Search(_ context.Context, query domain.Query) (domain.SearchResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

// mockAlignService is a mock implementation of driving.AlignService.
type mockAlignService struct {
	global domain.Alignment
	local  *domain.Alignment
	err    error
}

func (m *mockAlignService) Global(_ context.Context, _, _ string) (domain.Alignment, error) {
	return m.global, m.err
}

func (m *mockAlignService) Local(_ context.Context, _, _ string) (*domain.Alignment, error) {
	return m.local, m.err
}

func (m *mockAlignService) Render(aln domain.Alignment) string {
	return engine.Render(aln)
}

// mockReferenceService is a mock implementation of driving.ReferenceService.
type mockReferenceService struct {
	status    domain.StoreStatus
	refs      []domain.ReferenceSequence
	statusErr error
	listErr   error
	getErr    error
}

func (m *mockReferenceService) Status(_ context.Context) (domain.StoreStatus, error) {
	return m.status, m.statusErr
}

func (m *mockReferenceService) List(_ context.Context, limit int) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return domain.NewReferenceSet(m.refs).IDs(limit), nil
}

func (m *mockReferenceService) Get(_ context.Context, id string) (*domain.ReferenceSequence, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	ref, ok := domain.NewReferenceSet(m.refs).Find(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ref, nil
}

func (m *mockReferenceService) Import(_ context.Context, _ string) (int, error) {
	return 0, nil
}

// Ensure mocks implement interfaces.
var (
	_ driving.SearchService    = (*mockSearchService)(nil)
	_ driving.AlignService     = (*mockAlignService)(nil)
	_ driving.ReferenceService = (*mockReferenceService)(nil)
)
