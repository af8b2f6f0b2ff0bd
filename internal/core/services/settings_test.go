package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/aufbau/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/aufbau/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
	assert.Equal(t, ":memory:", service.Path())
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults, *settings)
	assert.Equal(t, defaults, service.GetDefaults())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("render.notation", "noble_gas")
	_ = store.Set("render.format", "yaml")
	_ = store.Set("compute.anomalies", false)
	_ = store.Set("compute.workers", int64(8))

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.NotationNobleGas, settings.Render.Notation)
	assert.Equal(t, domain.OutputFormatYAML, settings.Render.Format)
	assert.False(t, settings.Compute.Anomalies)
	assert.Equal(t, 8, settings.Compute.Workers)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("render.notation", "invalid_notation")
	_ = store.Set("render.format", "xml")
	_ = store.Set("compute.workers", 1000)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Render.Notation, settings.Render.Notation)
	assert.Equal(t, defaults.Render.Format, settings.Render.Format)
	assert.Equal(t, defaults.Compute.Workers, settings.Compute.Workers)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := &domain.AppSettings{
		Render: domain.RenderSettings{
			Notation: domain.NotationNobleGas,
			Format:   domain.OutputFormatJSON,
		},
		Compute: domain.ComputeSettings{
			Anomalies: false,
			Workers:   2,
		},
	}

	err := service.Save(settings)
	require.NoError(t, err)

	retrieved, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, *settings, *retrieved)
}

func TestSettingsService_SetNotation(t *testing.T) {
	tests := []struct {
		name     string
		notation domain.Notation
	}{
		{"full", domain.NotationFull},
		{"noble_gas", domain.NotationNobleGas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			err := service.SetNotation(tt.notation)
			require.NoError(t, err)

			settings, err := service.Get()
			require.NoError(t, err)
			assert.Equal(t, tt.notation, settings.Render.Notation)
		})
	}
}

func TestSettingsService_SetNotation_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.SetNotation("short")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "notation")
}

func TestSettingsService_SetFormat(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetFormat(domain.OutputFormatYAML))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.OutputFormatYAML, settings.Render.Format)

	assert.ErrorIs(t, service.SetFormat("csv"), domain.ErrInvalidInput)
}

func TestSettingsService_SetWorkers(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetWorkers(MaxWorkers))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, MaxWorkers, settings.Compute.Workers)
}

func TestSettingsService_SetWorkers_OutOfBounds(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	for _, workers := range []int{0, -1, MaxWorkers + 1} {
		err := service.SetWorkers(workers)
		require.Error(t, err, "workers=%d", workers)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestSettingsService_SetAnomalies_PreservesOtherSettings(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NoError(t, service.SetNotation(domain.NotationNobleGas))

	require.NoError(t, service.SetAnomalies(false))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.False(t, settings.Compute.Anomalies)
	assert.Equal(t, domain.NotationNobleGas, settings.Render.Notation)
}
