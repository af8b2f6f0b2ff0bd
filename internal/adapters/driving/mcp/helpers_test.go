package mcp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aufbau/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/aufbau/internal/core/services"
)

// newTestServer builds a server over real services and an in-memory store.
func newTestServer(t *testing.T) (*Server, *services.SettingsService) {
	t.Helper()

	settings := services.NewSettingsService(memory.NewConfigStore())
	server, err := NewServer(&Ports{
		Configuration: services.NewConfigurationService(settings),
		Settings:      settings,
	})
	require.NoError(t, err)
	return server, settings
}

func intPtr(v int) *int {
	return &v
}
