package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/helix/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/helix/internal/core/domain"
)

func TestNewSearchService(t *testing.T) {
	service := NewSearchService(&mockReferenceStore{}, 0)
	require.NotNil(t, service)
	assert.Positive(t, service.workers)

	service = NewSearchService(&mockReferenceStore{}, 3)
	assert.Equal(t, 3, service.workers)
}

func TestSearchService_Search_EmptyQuery(t *testing.T) {
	service := NewSearchService(&mockReferenceStore{refs: testReferences()}, 2)

	for _, q := range []string{"", "   ", "\n\t"} {
		_, err := service.Search(context.Background(), domain.Query{Bases: q, TopK: 5, PreviewLen: 50})
		assert.ErrorIs(t, err, domain.ErrEmptyInput, "query %q", q)
	}
}

func TestSearchService_Search_NoStore(t *testing.T) {
	service := NewSearchService(nil, 1)

	_, err := service.Search(context.Background(), domain.DefaultQuery("ACGT"))
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestSearchService_Search_RanksBySimilarity(t *testing.T) {
	service := NewSearchService(&mockReferenceStore{refs: testReferences()}, 2)

	result, err := service.Search(context.Background(), domain.Query{Bases: "acg t", TopK: 5, PreviewLen: 50})
	require.NoError(t, err)
	require.True(t, result.Found)
	require.Len(t, result.Results, 3)

	first := result.Results[0]
	assert.Equal(t, "r1", first.RecordID)
	assert.Equal(t, "Homo sapiens", first.Organism)
	assert.Equal(t, "BRCA1", first.GeneName)
	assert.Equal(t, 4, first.Start)
	assert.Equal(t, 8, first.End)
	assert.InDelta(t, 1.0, first.Similarity, 1e-9)
	assert.Equal(t, "ACGT", first.MatchedBases)
	assert.Equal(t, "ACGT", first.Preview)

	assert.Equal(t, "r2", result.Results[1].RecordID)
	assert.InDelta(t, 0.75, result.Results[1].Similarity, 1e-9)
	assert.Equal(t, "r3", result.Results[2].RecordID)
	assert.InDelta(t, 0.25, result.Results[2].Similarity, 1e-9)
}

func TestSearchService_Search_TopKAndPreview(t *testing.T) {
	service := NewSearchService(&mockReferenceStore{refs: testReferences()}, 4)

	result, err := service.Search(context.Background(), domain.Query{Bases: "ACGT", TopK: 1, PreviewLen: 2})
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "r1", result.Results[0].RecordID)
	assert.Equal(t, "AC"+domain.PreviewMarker, result.Results[0].Preview)
	assert.Equal(t, "ACGT", result.Results[0].MatchedBases)
}

func TestSearchService_Search_TopKClamped(t *testing.T) {
	service := NewSearchService(&mockReferenceStore{refs: testReferences()}, 1)

	result, err := service.Search(context.Background(), domain.Query{Bases: "ACGT", TopK: 0, PreviewLen: 50})
	require.NoError(t, err)
	assert.Len(t, result.Results, 1)

	result, err = service.Search(context.Background(), domain.Query{Bases: "ACGT", TopK: 500, PreviewLen: 50})
	require.NoError(t, err)
	assert.Len(t, result.Results, 3)
}

func TestSearchService_Search_EmptyStore(t *testing.T) {
	service := NewSearchService(memory.NewReferenceStore(), 2)

	result, err := service.Search(context.Background(), domain.DefaultQuery("ACGT"))
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.NotNil(t, result.Results)
	assert.Empty(t, result.Results)
}

func TestSearchService_Search_SkipsEmptyReferences(t *testing.T) {
	store := memory.NewReferenceStore(
		domain.ReferenceSequence{ID: "empty", Bases: ""},
		domain.ReferenceSequence{ID: "short", Bases: "AC"},
	)
	service := NewSearchService(store, 2)

	result, err := service.Search(context.Background(), domain.DefaultQuery("ACGT"))
	require.NoError(t, err)
	require.True(t, result.Found)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "short", result.Results[0].RecordID)
	assert.Equal(t, 2, result.Results[0].WindowLen)
	assert.InDelta(t, 1.0, result.Results[0].Similarity, 1e-9)
}

func TestSearchService_Search_TiesKeepStoreOrder(t *testing.T) {
	refs := make([]domain.ReferenceSequence, 0, 40)
	for i := 0; i < 40; i++ {
		refs = append(refs, domain.ReferenceSequence{ID: fmt.Sprintf("ref-%02d", i), Bases: "ACGTACGT"})
	}
	service := NewSearchService(memory.NewReferenceStore(refs...), 8)

	result, err := service.Search(context.Background(), domain.Query{Bases: "ACGT", TopK: 50, PreviewLen: 50})
	require.NoError(t, err)
	require.Len(t, result.Results, 40)
	for i, hit := range result.Results {
		assert.Equal(t, fmt.Sprintf("ref-%02d", i), hit.RecordID)
		assert.Equal(t, 0, hit.Start)
	}
}

func TestSearchService_Search_SnapshotError(t *testing.T) {
	storeErr := errors.New("disk gone")
	service := NewSearchService(&mockReferenceStore{snapshotErr: storeErr}, 1)

	_, err := service.Search(context.Background(), domain.DefaultQuery("ACGT"))
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestSearchService_Search_Cancelled(t *testing.T) {
	service := NewSearchService(&mockReferenceStore{refs: testReferences()}, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Search(ctx, domain.DefaultQuery("ACGT"))
	assert.ErrorIs(t, err, context.Canceled)
}
