// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/aufbau/internal/core/domain"
)

// ConfigurationComputed carries a computed configuration back to the model.
type ConfigurationComputed struct {
	Electrons     int
	Configuration *domain.Configuration
	Err           error
}

// SettingsLoaded carries the current settings back to the model.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsChanged is sent when the settings file changed on disk.
type SettingsChanged struct{}
