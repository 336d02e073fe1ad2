package fasta

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ReferenceStore = (*Store)(nil)

// Store serves the references of a single FASTA file.
type Store struct {
	path   string
	reader *Reader

	mu     sync.RWMutex
	refs   domain.ReferenceSet
	loaded bool
}

// NewStore creates a store for the FASTA file at path.
// Nothing is read until Load is called.
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		reader: NewReader(),
	}
}

// Open creates a store and loads it in one step.
func Open(ctx context.Context, path string) (*Store, error) {
	s := NewStore(path)
	if err := s.Load(ctx); err != nil {
		return s, err
	}
	return s, nil
}

// Load parses the file and publishes its records as the store snapshot.
func (s *Store) Load(ctx context.Context) error {
	refs, err := s.reader.ReadFile(ctx, s.path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.refs = domain.NewReferenceSet(refs)
	s.loaded = true
	return nil
}

// Path returns the FASTA file path.
func (s *Store) Path() string {
	return s.path
}

// Snapshot returns the loaded references.
func (s *Store) Snapshot(ctx context.Context) (domain.ReferenceSet, error) {
	if err := ctx.Err(); err != nil {
		return domain.ReferenceSet{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return domain.ReferenceSet{}, domain.ErrStoreUnavailable
	}
	return s.refs, nil
}

// Status reports whether the file exists and how many records are loaded.
func (s *Store) Status(_ context.Context) (domain.StoreStatus, error) {
	_, err := os.Stat(s.path)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.StoreStatus{
		Backend: domain.StoreBackendFASTA,
		Path:    s.path,
		Exists:  err == nil,
		Records: s.refs.Len(),
	}, nil
}
