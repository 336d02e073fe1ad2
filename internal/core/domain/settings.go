package domain

import "runtime"

const unknownDescription = "Unknown"

// StoreBackend identifies where reference sequences are loaded from.
type StoreBackend string

// Available store backends.
const (
	// StoreBackendFASTA reads references straight from a FASTA file.
	StoreBackendFASTA StoreBackend = "fasta"

	// StoreBackendSQLite reads references from the imported SQLite catalogue.
	StoreBackendSQLite StoreBackend = "sqlite"
)

// IsValid returns true if the store backend is recognised.
func (b StoreBackend) IsValid() bool {
	switch b {
	case StoreBackendFASTA, StoreBackendSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StoreBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StoreBackend) Description() string {
	switch b {
	case StoreBackendFASTA:
		return "FASTA file"
	case StoreBackendSQLite:
		return "SQLite catalogue"
	default:
		return unknownDescription
	}
}

// StoreSettings configures the reference store.
type StoreSettings struct {
	// Backend selects the store implementation.
	Backend StoreBackend

	// FASTAPath is the reference FASTA file (fasta backend and imports).
	FASTAPath string

	// DataDir holds the SQLite catalogue (sqlite backend).
	DataDir string
}

// SearchSettings holds window search configuration.
type SearchSettings struct {
	// Workers is the number of goroutines scanning references.
	Workers int

	// PreviewLen is the default preview length for queries.
	PreviewLen int

	// TopK is the default number of hits for queries.
	TopK int
}

// HTTPSettings configures the HTTP service.
type HTTPSettings struct {
	// Addr is the listen address.
	Addr string

	// RateLimit is the sustained requests per second; 0 disables limiting.
	RateLimit float64

	// AllowOrigins lists CORS origins; "*" allows any.
	AllowOrigins []string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Store  StoreSettings
	Search SearchSettings
	HTTP   HTTPSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Store: StoreSettings{
			Backend:   StoreBackendFASTA,
			FASTAPath: "data/references.fasta",
		},
		Search: SearchSettings{
			Workers:    runtime.NumCPU(),
			PreviewLen: DefaultPreviewLen,
			TopK:       DefaultTopK,
		},
		HTTP: HTTPSettings{
			Addr:         ":8000",
			RateLimit:    0,
			AllowOrigins: []string{"*"},
		},
	}
}

// AllStoreBackends returns all available store backends.
func AllStoreBackends() []StoreBackend {
	return []StoreBackend{StoreBackendFASTA, StoreBackendSQLite}
}
