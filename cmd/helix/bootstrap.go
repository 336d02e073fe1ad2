package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/helix/internal/adapters/driven/config/file"
	"github.com/custodia-labs/helix/internal/adapters/driven/storage/fasta"
	"github.com/custodia-labs/helix/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/helix/internal/adapters/driving/cli"
	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/ports/driven"
	"github.com/custodia-labs/helix/internal/core/services"
	"github.com/custodia-labs/helix/internal/logger"
)

// bootstrap wires the driven adapters into core services for one command run.
func bootstrap(ctx context.Context, opts cli.GlobalOptions) (*cli.Services, error) {
	configStore, err := openConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}
	if opts.FASTAPath != "" {
		settings.Store.Backend = domain.StoreBackendFASTA
		settings.Store.FASTAPath = opts.FASTAPath
	}
	logger.Debug("config %s, backend %s", configStore.Path(), settings.Store.Backend)

	var (
		store    driven.ReferenceStore
		importer driven.ReferenceImporter
		closers  []func() error
	)

	switch settings.Store.Backend {
	case domain.StoreBackendSQLite:
		db, err := sqlite.NewStore(settings.Store.DataDir)
		if err != nil {
			return nil, fmt.Errorf("opening catalogue: %w", err)
		}
		store, importer = db, db
		closers = append(closers, db.Close)
	default:
		fs, err := fasta.Open(ctx, settings.Store.FASTAPath)
		if err != nil {
			// The store stays in place and reports itself unloaded.
			logger.Warn("reference FASTA not loaded: %v", err)
		}
		store = fs
		catalogue := &lazyCatalogue{dataDir: settings.Store.DataDir}
		importer = catalogue
		closers = append(closers, catalogue.Close)
	}

	references := services.NewReferenceService(store)
	references.SetImporter(fasta.NewReader(), importer)

	return &cli.Services{
		Search:     services.NewSearchService(store, settings.Search.Workers),
		Align:      services.NewAlignService(),
		References: references,
		Settings:   settingsService,
		Close: func() error {
			var firstErr error
			for _, c := range closers {
				if err := c(); err != nil && firstErr == nil {
					firstErr = err
				}
			}
			return firstErr
		},
	}, nil
}

func openConfig(path string) (*file.ConfigStore, error) {
	if path != "" {
		return file.OpenConfigFile(path)
	}
	return file.NewConfigStore("")
}

// lazyCatalogue opens the SQLite catalogue only when an import writes to it.
type lazyCatalogue struct {
	dataDir string

	mu    sync.Mutex
	store *sqlite.Store
}

// ReplaceAll opens the catalogue on first use and replaces its contents.
func (c *lazyCatalogue) ReplaceAll(ctx context.Context, refs []domain.ReferenceSequence) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		db, err := sqlite.NewStore(c.dataDir)
		if err != nil {
			return fmt.Errorf("opening catalogue: %w", err)
		}
		c.store = db
		logger.Debug("catalogue opened at %s", db.Path())
	}
	return c.store.ReplaceAll(ctx, refs)
}

// Close closes the catalogue if it was opened.
func (c *lazyCatalogue) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil
	return err
}
