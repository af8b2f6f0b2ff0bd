package services

import (
	"fmt"

	"github.com/custodia-labs/aufbau/internal/core/domain"
	"github.com/custodia-labs/aufbau/internal/core/ports/driven"
	"github.com/custodia-labs/aufbau/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyNotation  = "render.notation"
	keyFormat    = "render.format"
	keyAnomalies = "compute.anomalies"
	keyWorkers   = "compute.workers"
)

// MaxWorkers bounds compute.workers.
const MaxWorkers = 64

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Render: domain.RenderSettings{
			Notation: s.getNotation(defaults.Render.Notation),
			Format:   s.getFormat(defaults.Render.Format),
		},
		Compute: domain.ComputeSettings{
			Anomalies: s.getBool(keyAnomalies, defaults.Compute.Anomalies),
			Workers:   s.getWorkers(defaults.Compute.Workers),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyNotation, settings.Render.Notation.String()); err != nil {
		return fmt.Errorf("save notation: %w", err)
	}
	if err := s.configStore.Set(keyFormat, settings.Render.Format.String()); err != nil {
		return fmt.Errorf("save format: %w", err)
	}
	if err := s.configStore.Set(keyAnomalies, settings.Compute.Anomalies); err != nil {
		return fmt.Errorf("save anomalies: %w", err)
	}
	if err := s.configStore.Set(keyWorkers, settings.Compute.Workers); err != nil {
		return fmt.Errorf("save workers: %w", err)
	}
	return nil
}

// SetNotation updates the default notation.
func (s *SettingsService) SetNotation(notation domain.Notation) error {
	if !notation.IsValid() {
		return fmt.Errorf("%w: notation %q", domain.ErrInvalidInput, notation)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.Render.Notation = notation
	})
}

// SetFormat updates the default output format.
func (s *SettingsService) SetFormat(format domain.OutputFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("%w: output format %q", domain.ErrInvalidInput, format)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.Render.Format = format
	})
}

// SetWorkers updates the range concurrency.
func (s *SettingsService) SetWorkers(workers int) error {
	if workers < 1 || workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 1 and %d, got %d", domain.ErrInvalidInput, MaxWorkers, workers)
	}
	return s.update(func(settings *domain.AppSettings) {
		settings.Compute.Workers = workers
	})
}

// SetAnomalies enables or disables the anomaly correction.
func (s *SettingsService) SetAnomalies(enabled bool) error {
	return s.update(func(settings *domain.AppSettings) {
		settings.Compute.Anomalies = enabled
	})
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the location of the backing config store.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) update(apply func(*domain.AppSettings)) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	apply(settings)
	return s.Save(settings)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getWorkers(defaultVal int) int {
	val := s.configStore.GetInt(keyWorkers)
	if val < 1 || val > MaxWorkers {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getNotation(defaultVal domain.Notation) domain.Notation {
	val := s.configStore.GetString(keyNotation)
	if val == "" {
		return defaultVal
	}
	notation := domain.Notation(val)
	if !notation.IsValid() {
		return defaultVal
	}
	return notation
}

func (s *SettingsService) getFormat(defaultVal domain.OutputFormat) domain.OutputFormat {
	val := s.configStore.GetString(keyFormat)
	if val == "" {
		return defaultVal
	}
	format := domain.OutputFormat(val)
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
