package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/custodia-labs/aufbau/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/aufbau/internal/core/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// failingSettings is a SettingsService whose Get always fails.
type failingSettings struct {
	*SettingsService
}

func (failingSettings) Get() (*domain.AppSettings, error) {
	return nil, errors.New("config unreadable")
}

func newTestConfigurationService(t *testing.T) (*ConfigurationService, *SettingsService) {
	t.Helper()
	settings := NewSettingsService(memory.NewConfigStore())
	return NewConfigurationService(settings), settings
}

func TestConfigurationService_Compute(t *testing.T) {
	service, _ := newTestConfigurationService(t)

	c, err := service.Compute(context.Background(), 24)
	require.NoError(t, err)

	assert.Equal(t, "1s2 2s2 2p6 3s2 3p6 3d5 4s1", c.String())
	kind, ok := c.Anomaly()
	assert.True(t, ok)
	assert.Equal(t, domain.AnomalyPromote, kind)
}

func TestConfigurationService_Compute_AnomaliesDisabled(t *testing.T) {
	service, settings := newTestConfigurationService(t)
	require.NoError(t, settings.SetAnomalies(false))

	c, err := service.Compute(context.Background(), 24)
	require.NoError(t, err)

	assert.Equal(t, "1s2 2s2 2p6 3s2 3p6 3d4 4s2", c.String())
	_, ok := c.Anomaly()
	assert.False(t, ok)
}

func TestConfigurationService_Compute_OutOfRange(t *testing.T) {
	service, _ := newTestConfigurationService(t)

	for _, n := range []int{-1, domain.MaxElectrons + 1} {
		c, err := service.Compute(context.Background(), n)
		require.Error(t, err)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, domain.ErrElectronsOutOfRange)
	}
}

func TestConfigurationService_Compute_Cancelled(t *testing.T) {
	service, _ := newTestConfigurationService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Compute(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfigurationService_Compute_NilSettings(t *testing.T) {
	service := NewConfigurationService(nil)

	c, err := service.Compute(context.Background(), 29)
	require.NoError(t, err)
	assert.Equal(t, "1s2 2s2 2p6 3s2 3p6 3d10 4s1", c.String())
}

func TestConfigurationService_Compute_SettingsErrorUsesDefaults(t *testing.T) {
	service := NewConfigurationService(failingSettings{})

	c, err := service.Compute(context.Background(), 46)
	require.NoError(t, err)
	assert.Equal(t, "1s2 2s2 2p6 3s2 3p6 3d10 4s2 4p6 4d10", c.String())
}

func TestConfigurationService_ComputeAtom(t *testing.T) {
	service, _ := newTestConfigurationService(t)

	atom, err := service.ComputeAtom(context.Background(), 11, 10, 12)
	require.NoError(t, err)

	assert.Equal(t, 1, atom.IonCharge())
	assert.InDelta(t, 23.0, atom.AtomicMass(), 0)
	assert.Equal(t, "1s2 2s2 2p6", atom.Configuration().String())
}

func TestConfigurationService_ComputeAtom_Invalid(t *testing.T) {
	service, _ := newTestConfigurationService(t)

	_, err := service.ComputeAtom(context.Background(), -1, 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAtom)

	_, err = service.ComputeAtom(context.Background(), 1, domain.MaxElectrons+1, 0)
	assert.ErrorIs(t, err, domain.ErrElectronsOutOfRange)
}

func TestConfigurationService_Range(t *testing.T) {
	service, _ := newTestConfigurationService(t)

	results, err := service.Range(context.Background(), 54, 70)
	require.NoError(t, err)
	require.Len(t, results, 17)

	for i, c := range results {
		assert.Equal(t, 54+i, c.TotalElectrons())
	}
	assert.Equal(t, "[Xe] 6s1", results[1].NobleGasNotation())
}

func TestConfigurationService_Range_SingleWorker(t *testing.T) {
	service, settings := newTestConfigurationService(t)
	require.NoError(t, settings.SetWorkers(1))

	results, err := service.Range(context.Background(), 0, 30)
	require.NoError(t, err)
	require.Len(t, results, 31)
	assert.Equal(t, "1s2 2s2 2p6 3s2 3p6 3d10 4s1", results[29].String())
}

func TestConfigurationService_Range_Invalid(t *testing.T) {
	service, _ := newTestConfigurationService(t)

	tests := []struct {
		name     string
		from, to int
		wantErr  error
	}{
		{"reversed", 10, 5, domain.ErrInvalidRange},
		{"negative start", -1, 5, domain.ErrElectronsOutOfRange},
		{"end too large", 1, domain.MaxElectrons + 1, domain.ErrElectronsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := service.Range(context.Background(), tt.from, tt.to)
			require.Error(t, err)
			assert.Nil(t, results)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestConfigurationService_Range_Cancelled(t *testing.T) {
	service, _ := newTestConfigurationService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := service.Range(ctx, 1, 100)
	require.Error(t, err)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, context.Canceled)
}
