package memory

import (
	"context"

	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/ports/driven"
)

// Ensure ReferenceStore implements the interface.
var _ driven.ReferenceStore = (*ReferenceStore)(nil)

// ReferenceStore serves a fixed set of references held in memory.
// The set is built once at construction and never changes.
type ReferenceStore struct {
	refs domain.ReferenceSet
	path string
}

// NewReferenceStore creates a store over a copy of refs.
func NewReferenceStore(refs ...domain.ReferenceSequence) *ReferenceStore {
	return &ReferenceStore{refs: domain.NewReferenceSet(refs)}
}

// WithPath records the origin reported by Status.
func (s *ReferenceStore) WithPath(path string) *ReferenceStore {
	s.path = path
	return s
}

// Snapshot returns the stored references.
func (s *ReferenceStore) Snapshot(ctx context.Context) (domain.ReferenceSet, error) {
	if err := ctx.Err(); err != nil {
		return domain.ReferenceSet{}, err
	}
	return s.refs, nil
}

// Status reports the in-memory set; Exists is always true.
func (s *ReferenceStore) Status(_ context.Context) (domain.StoreStatus, error) {
	path := s.path
	if path == "" {
		path = ":memory:"
	}
	return domain.StoreStatus{
		Backend: "memory",
		Path:    path,
		Exists:  true,
		Records: s.refs.Len(),
	}, nil
}
