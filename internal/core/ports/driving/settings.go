package driving

import "github.com/custodia-labs/aufbau/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetNotation updates the default notation.
	SetNotation(notation domain.Notation) error

	// SetFormat updates the default output format.
	SetFormat(format domain.OutputFormat) error

	// SetWorkers updates the range concurrency.
	SetWorkers(workers int) error

	// SetAnomalies enables or disables the anomaly correction.
	SetAnomalies(enabled bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns where settings are stored.
	Path() string
}
