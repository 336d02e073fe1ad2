package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/helix/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func testReferences() []domain.ReferenceSequence {
	return []domain.ReferenceSequence{
		{ID: "XM_001", Organism: "Homo sapiens", GeneName: "BRCA1", Description: "XM_001 Homo sapiens (BRCA1)", Bases: "ACGTACGT"},
		{ID: "NM_002", Organism: "Mus musculus", Description: "NM_002 Mus musculus", Bases: "TTTTGGGG"},
		{ID: "XR_003", Description: "XR_003", Bases: "CCCC"},
	}
}

func TestNewStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, DatabaseFile), store.Path())
}

func TestNewStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.ReplaceAll(ctx, testReferences()))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	set, err := reopened.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
}

func TestStore_EmptyCatalogue(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	set, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Zero(t, set.Len())

	status, err := store.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StoreBackendSQLite, status.Backend)
	assert.True(t, status.Exists)
	assert.Zero(t, status.Records)
}

func TestStore_ReplaceAll(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceAll(ctx, testReferences()))

	set, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())
	assert.Equal(t, testReferences()[0], set.At(0))
	assert.Equal(t, []string{"XM_001", "NM_002", "XR_003"}, set.IDs(0))

	status, err := store.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, status.Records)
}

func TestStore_ReplaceAll_Overwrites(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceAll(ctx, testReferences()))
	_, err := store.Snapshot(ctx)
	require.NoError(t, err)

	replacement := []domain.ReferenceSequence{{ID: "NEW_1", Description: "NEW_1", Bases: "GATTACA"}}
	require.NoError(t, store.ReplaceAll(ctx, replacement))

	set, err := store.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	assert.Equal(t, "GATTACA", set.At(0).Bases)
}

func TestStore_ReplaceAll_DuplicateRollsBack(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.ReplaceAll(ctx, testReferences()))

	dupes := []domain.ReferenceSequence{
		{ID: "DUP", Bases: "A"},
		{ID: "DUP", Bases: "C"},
	}
	require.Error(t, store.ReplaceAll(ctx, dupes))

	set, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
}

func TestStore_ReplaceAll_MissingID(t *testing.T) {
	store := setupTestStore(t)

	err := store.ReplaceAll(context.Background(), []domain.ReferenceSequence{{Bases: "ACGT"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
