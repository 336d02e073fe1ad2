package services

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/engine"
	"github.com/custodia-labs/helix/internal/core/ports/driven"
	"github.com/custodia-labs/helix/internal/core/ports/driving"
	"github.com/custodia-labs/helix/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService scans the reference store for the best window of a query.
type SearchService struct {
	store   driven.ReferenceStore
	workers int
}

// NewSearchService creates a new search service.
// A non-positive workers value uses one worker per CPU.
func NewSearchService(store driven.ReferenceStore, workers int) *SearchService {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &SearchService{
		store:   store,
		workers: workers,
	}
}

// Search matches the query against every reference and ranks the hits.
func (s *SearchService) Search(ctx context.Context, query domain.Query) (domain.SearchResult, error) {
	logger.Section("Window Search")
	defer logger.Elapsed("search", time.Now())

	if s.store == nil {
		return domain.SearchResult{}, domain.ErrStoreUnavailable
	}

	bases := engine.Normalize(query.Bases)
	if bases == "" {
		logger.Debug("Empty query, rejecting")
		return domain.SearchResult{}, fmt.Errorf("query: %w", domain.ErrEmptyInput)
	}
	logger.Debug("Query: %d bases, top_k=%d, preview_len=%d", len(bases), query.TopK, query.PreviewLen)

	refs, err := s.store.Snapshot(ctx)
	if err != nil {
		logger.Warn("Snapshot failed: %v", err)
		return domain.SearchResult{}, fmt.Errorf("load references: %w", err)
	}
	logger.Debug("References: %d, workers: %d", refs.Len(), s.workers)

	candidates, err := s.scan(ctx, refs, bases)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("scan references: %w", err)
	}

	result := engine.RankHits(candidates, query.TopK, query.PreviewLen)
	logger.Info("Search found=%t results=%d", result.Found, len(result.Results))

	return result, nil
}

// scan runs the window matcher over every reference on a pool of workers.
// Each result lands in the slot of its reference, so the candidate order
// is the store order no matter which worker finishes first.
func (s *SearchService) scan(
	ctx context.Context, refs domain.ReferenceSet, query string,
) ([]domain.Candidate, error) {
	candidates := make([]domain.Candidate, refs.Len())
	if refs.Len() == 0 {
		return candidates, nil
	}

	workers := min(s.workers, refs.Len())
	jobs := make(chan int, workers*2)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					continue
				}
				ref := refs.At(idx)
				candidates[idx].Reference = ref
				if m, ok := engine.MatchBestWindow(ref.Bases, query); ok {
					candidates[idx].Match = &m
				}
			}
		}()
	}

feed:
	for i := 0; i < refs.Len(); i++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		logger.Warn("Scan cancelled: %v", err)
		return nil, err
	}
	return candidates, nil
}
