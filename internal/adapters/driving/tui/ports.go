// Package tui provides an interactive terminal user interface for aufbau.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/aufbau/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Configuration computes electron configurations.
	Configuration driving.ConfigurationService

	// Settings supplies the initial notation. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Configuration == nil {
		return ErrMissingConfigurationService
	}
	return nil
}
