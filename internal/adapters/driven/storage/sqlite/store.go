package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/helix/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/ports/driven"
)

// DatabaseFile is the catalogue file name inside the data directory.
const DatabaseFile = "references.db"

// Ensure Store implements the interfaces.
var (
	_ driven.ReferenceStore    = (*Store)(nil)
	_ driven.ReferenceImporter = (*Store)(nil)
)

// Store is a SQLite-backed reference catalogue.
type Store struct {
	db   *sql.DB
	path string

	mu    sync.RWMutex
	cache *domain.ReferenceSet
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.helix/data/references.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".helix", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_references.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// Snapshot returns the catalogue in import order.
func (s *Store) Snapshot(ctx context.Context) (domain.ReferenceSet, error) {
	s.mu.RLock()
	cached := s.cache
	s.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT record_id, organism, gene_name, description, bases
		FROM reference_sequences
		ORDER BY position
	`)
	if err != nil {
		return domain.ReferenceSet{}, fmt.Errorf("querying references: %w", err)
	}
	defer rows.Close()

	var refs []domain.ReferenceSequence
	for rows.Next() {
		var ref domain.ReferenceSequence
		if err := rows.Scan(&ref.ID, &ref.Organism, &ref.GeneName, &ref.Description, &ref.Bases); err != nil {
			return domain.ReferenceSet{}, fmt.Errorf("scanning reference: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return domain.ReferenceSet{}, fmt.Errorf("iterating references: %w", err)
	}

	set := domain.NewReferenceSet(refs)
	s.mu.Lock()
	s.cache = &set
	s.mu.Unlock()
	return set, nil
}

// Status reports the database path and row count.
func (s *Store) Status(ctx context.Context) (domain.StoreStatus, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reference_sequences").Scan(&count)
	if err != nil {
		return domain.StoreStatus{}, fmt.Errorf("counting references: %w", err)
	}

	_, statErr := os.Stat(s.path)
	return domain.StoreStatus{
		Backend: domain.StoreBackendSQLite,
		Path:    s.path,
		Exists:  statErr == nil,
		Records: count,
	}, nil
}

// ReplaceAll swaps the whole catalogue for refs in a single transaction.
// Records keep the order of refs; a duplicate record ID aborts the import.
func (s *Store) ReplaceAll(ctx context.Context, refs []domain.ReferenceSequence) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM reference_sequences"); err != nil {
		return fmt.Errorf("clearing references: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO reference_sequences (position, record_id, organism, gene_name, description, bases)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, ref := range refs {
		if ref.ID == "" {
			return fmt.Errorf("reference %d: missing record id: %w", i, domain.ErrInvalidInput)
		}
		_, err := stmt.ExecContext(ctx, i, ref.ID, ref.Organism, ref.GeneName, ref.Description, ref.Bases)
		if err != nil {
			return fmt.Errorf("inserting %s: %w", ref.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing references: %w", err)
	}

	s.mu.Lock()
	s.cache = nil
	s.mu.Unlock()
	return nil
}
