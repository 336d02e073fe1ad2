package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/ports/driven"
	"github.com/custodia-labs/helix/internal/core/ports/driving"
	"github.com/custodia-labs/helix/internal/logger"
)

// Ensure ReferenceService implements the interface.
var _ driving.ReferenceService = (*ReferenceService)(nil)

// ReferenceService exposes the reference store to the driving adapters.
type ReferenceService struct {
	store    driven.ReferenceStore
	reader   driven.ReferenceReader
	importer driven.ReferenceImporter
}

// NewReferenceService creates a new reference service.
// The store may be nil when only importing.
func NewReferenceService(store driven.ReferenceStore) *ReferenceService {
	return &ReferenceService{store: store}
}

// SetImporter enables Import with the given reader and catalogue.
func (s *ReferenceService) SetImporter(reader driven.ReferenceReader, importer driven.ReferenceImporter) {
	s.reader = reader
	s.importer = importer
}

// Status reports the store backend, path and record count.
func (s *ReferenceService) Status(ctx context.Context) (domain.StoreStatus, error) {
	if s.store == nil {
		return domain.StoreStatus{}, domain.ErrStoreUnavailable
	}
	return s.store.Status(ctx)
}

// List returns up to limit record IDs in store order.
func (s *ReferenceService) List(ctx context.Context, limit int) ([]string, error) {
	refs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return refs.IDs(limit), nil
}

// Get returns a single reference by record ID.
func (s *ReferenceService) Get(ctx context.Context, id string) (*domain.ReferenceSequence, error) {
	refs, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	ref, ok := refs.Find(id)
	if !ok {
		return nil, fmt.Errorf("reference %s: %w", id, domain.ErrNotFound)
	}
	return &ref, nil
}

// Import parses the FASTA file at path and replaces the catalogue with it.
func (s *ReferenceService) Import(ctx context.Context, path string) (int, error) {
	if s.reader == nil || s.importer == nil {
		return 0, errors.New("reference import not configured")
	}

	logger.Section("Reference Import")
	logger.Debug("Reading %s", path)

	refs, err := s.reader.ReadFile(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	logger.Debug("Parsed %d records", len(refs))

	if err := s.importer.ReplaceAll(ctx, refs); err != nil {
		return 0, fmt.Errorf("store references: %w", err)
	}
	logger.Info("Imported %d references", len(refs))

	return len(refs), nil
}

func (s *ReferenceService) snapshot(ctx context.Context) (domain.ReferenceSet, error) {
	if s.store == nil {
		return domain.ReferenceSet{}, domain.ErrStoreUnavailable
	}
	refs, err := s.store.Snapshot(ctx)
	if err != nil {
		return domain.ReferenceSet{}, fmt.Errorf("load references: %w", err)
	}
	return refs, nil
}
