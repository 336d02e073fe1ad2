package services

import (
	"context"

	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/ports/driven"
)

// mockReferenceStore implements driven.ReferenceStore for testing.
type mockReferenceStore struct {
	refs        []domain.ReferenceSequence
	snapshotErr error
	statusErr   error
	calls       int
}

var _ driven.ReferenceStore = (*mockReferenceStore)(nil)

func (m *mockReferenceStore) Snapshot(ctx context.Context) (domain.ReferenceSet, error) {
	m.calls++
	if m.snapshotErr != nil {
		return domain.ReferenceSet{}, m.snapshotErr
	}
	if err := ctx.Err(); err != nil {
		return domain.ReferenceSet{}, err
	}
	return domain.NewReferenceSet(m.refs), nil
}

func (m *mockReferenceStore) Status(_ context.Context) (domain.StoreStatus, error) {
	if m.statusErr != nil {
		return domain.StoreStatus{}, m.statusErr
	}
	return domain.StoreStatus{
		Backend: domain.StoreBackendFASTA,
		Path:    "refs.fasta",
		Exists:  true,
		Records: len(m.refs),
	}, nil
}

// mockReferenceReader implements driven.ReferenceReader for testing.
type mockReferenceReader struct {
	refs    []domain.ReferenceSequence
	readErr error
	path    string
}

func (m *mockReferenceReader) ReadFile(_ context.Context, path string) ([]domain.ReferenceSequence, error) {
	m.path = path
	if m.readErr != nil {
		return nil, m.readErr
	}
	return m.refs, nil
}

// mockReferenceImporter implements driven.ReferenceImporter for testing.
type mockReferenceImporter struct {
	stored     []domain.ReferenceSequence
	replaceErr error
}

func (m *mockReferenceImporter) ReplaceAll(_ context.Context, refs []domain.ReferenceSequence) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.stored = append([]domain.ReferenceSequence(nil), refs...)
	return nil
}

func testReferences() []domain.ReferenceSequence {
	return []domain.ReferenceSequence{
		{ID: "r1", Organism: "Homo sapiens", GeneName: "BRCA1", Description: "r1 Homo sapiens (BRCA1)", Bases: "TTTTACGTTTTT"},
		{ID: "r2", Organism: "Mus musculus", Description: "r2 Mus musculus", Bases: "ACGAAAAA"},
		{ID: "r3", Description: "r3", Bases: "GGGG"},
	}
}
