package mcp

import (
	"github.com/custodia-labs/aufbau/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the MCP server.
type Ports struct {
	// Configuration computes configurations and atoms.
	Configuration driving.ConfigurationService

	// Settings supplies the default notation. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Configuration == nil {
		return ErrMissingConfigurationService
	}
	return nil
}
