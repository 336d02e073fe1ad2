package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/helix/internal/adapters/driving/cli"
	"github.com/custodia-labs/helix/internal/core/domain"
)

const testFASTA = `>r1 Homo sapiens (BRCA1)
TTTTACGTTTTT
>r2 Mus musculus
ACGAAAAA
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestBootstrap_FASTAFlag(t *testing.T) {
	dir := t.TempDir()
	fastaPath := writeFile(t, dir, "refs.fa", testFASTA)

	svc, err := bootstrap(context.Background(), cli.GlobalOptions{
		ConfigPath: filepath.Join(dir, "config.toml"),
		FASTAPath:  fastaPath,
	})
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()

	result, err := svc.Search.Search(context.Background(), domain.Query{Bases: "ACGT", TopK: 5, PreviewLen: 50})
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, "r1", result.Results[0].RecordID)

	status, err := svc.References.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StoreBackendFASTA, status.Backend)
	assert.True(t, status.Exists)
	assert.Equal(t, 2, status.Records)
}

func TestBootstrap_MissingFASTAStillBuilds(t *testing.T) {
	dir := t.TempDir()

	svc, err := bootstrap(context.Background(), cli.GlobalOptions{
		ConfigPath: filepath.Join(dir, "config.toml"),
		FASTAPath:  filepath.Join(dir, "absent.fa"),
	})
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()

	status, err := svc.References.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Exists)

	_, err = svc.Search.Search(context.Background(), domain.Query{Bases: "ACGT", TopK: 5, PreviewLen: 50})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestBootstrap_ImportThenSQLite(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	fastaPath := writeFile(t, dir, "refs.fa", testFASTA)
	dataDir := filepath.Join(dir, "data")

	svc, err := bootstrap(context.Background(), cli.GlobalOptions{ConfigPath: configPath, FASTAPath: fastaPath})
	require.NoError(t, err)
	require.NoError(t, svc.Settings.Set("store.data_dir", dataDir))

	// Settings are read once per bootstrap.
	require.NoError(t, svc.Close())

	svc, err = bootstrap(context.Background(), cli.GlobalOptions{ConfigPath: configPath, FASTAPath: fastaPath})
	require.NoError(t, err)
	n, err := svc.References.Import(context.Background(), fastaPath)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, svc.Settings.Set("store.backend", "sqlite"))
	require.NoError(t, svc.Close())

	svc, err = bootstrap(context.Background(), cli.GlobalOptions{ConfigPath: configPath})
	require.NoError(t, err)
	defer func() { assert.NoError(t, svc.Close()) }()

	status, err := svc.References.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StoreBackendSQLite, status.Backend)
	assert.Equal(t, 2, status.Records)

	ids, err := svc.References.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"r1", "r2"}, ids)
}

func TestLazyCatalogue_CloseWithoutOpen(t *testing.T) {
	c := &lazyCatalogue{dataDir: t.TempDir()}
	assert.NoError(t, c.Close())
}
