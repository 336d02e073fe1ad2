package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/helix/internal/core/domain"
	"github.com/custodia-labs/helix/internal/core/ports/driven"
	"github.com/custodia-labs/helix/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyStoreBackend     = "store.backend"
	KeyStoreFASTAPath   = "store.fasta_path"
	KeyStoreDataDir     = "store.data_dir"
	KeySearchWorkers    = "search.workers"
	KeySearchPreviewLen = "search.preview_len"
	KeySearchTopK       = "search.top_k"
	KeyHTTPAddr         = "http.addr"
	KeyHTTPRateLimit    = "http.rate_limit"
	KeyHTTPAllowOrigins = "http.allow_origins"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Store: domain.StoreSettings{
			Backend:   s.getBackend(defaults.Store.Backend),
			FASTAPath: s.getString(KeyStoreFASTAPath, defaults.Store.FASTAPath),
			DataDir:   s.configStore.GetString(KeyStoreDataDir), // Empty selects ~/.helix/data
		},
		Search: domain.SearchSettings{
			Workers:    s.getInt(KeySearchWorkers, defaults.Search.Workers),
			PreviewLen: s.getInt(KeySearchPreviewLen, defaults.Search.PreviewLen),
			TopK:       s.getInt(KeySearchTopK, defaults.Search.TopK),
		},
		HTTP: domain.HTTPSettings{
			Addr:         s.getString(KeyHTTPAddr, defaults.HTTP.Addr),
			RateLimit:    s.getFloat(KeyHTTPRateLimit, defaults.HTTP.RateLimit),
			AllowOrigins: s.getStringSlice(KeyHTTPAllowOrigins, defaults.HTTP.AllowOrigins),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{KeyStoreBackend, settings.Store.Backend.String()},
		{KeyStoreFASTAPath, settings.Store.FASTAPath},
		{KeyStoreDataDir, settings.Store.DataDir},
		{KeySearchWorkers, settings.Search.Workers},
		{KeySearchPreviewLen, settings.Search.PreviewLen},
		{KeySearchTopK, settings.Search.TopK},
		{KeyHTTPAddr, settings.HTTP.Addr},
		{KeyHTTPRateLimit, settings.HTTP.RateLimit},
		{KeyHTTPAllowOrigins, settings.HTTP.AllowOrigins},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set stores a single setting, converting value to the key's type.
func (s *SettingsService) Set(key, value string) error {
	var typed any
	switch key {
	case KeyStoreBackend:
		backend := domain.StoreBackend(value)
		if !backend.IsValid() {
			return fmt.Errorf("store backend %q: %w", value, domain.ErrUnsupportedType)
		}
		typed = value
	case KeyStoreFASTAPath, KeyStoreDataDir, KeyHTTPAddr:
		typed = value
	case KeySearchWorkers, KeySearchPreviewLen, KeySearchTopK:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%s must be a positive integer: %w", key, domain.ErrInvalidInput)
		}
		typed = n
	case KeyHTTPRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("%s must be a non-negative number: %w", key, domain.ErrInvalidInput)
		}
		typed = f
	case KeyHTTPAllowOrigins:
		typed = splitList(value)
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	if err := s.configStore.Set(key, typed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Validate checks that the current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Store.Backend.IsValid() {
		return fmt.Errorf("invalid store backend: %s", settings.Store.Backend)
	}
	if settings.Store.Backend == domain.StoreBackendFASTA && settings.Store.FASTAPath == "" {
		return fmt.Errorf("fasta backend requires %s", KeyStoreFASTAPath)
	}
	if settings.Search.Workers < 1 {
		return fmt.Errorf("%s must be at least 1", KeySearchWorkers)
	}
	if settings.HTTP.RateLimit < 0 {
		return fmt.Errorf("%s must not be negative", KeyHTTPRateLimit)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBackend(defaultVal domain.StoreBackend) domain.StoreBackend {
	val := s.configStore.GetString(KeyStoreBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.StoreBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
