package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/aufbau/internal/core/domain"
	"github.com/custodia-labs/aufbau/internal/core/ports/driving"
	"github.com/custodia-labs/aufbau/internal/logger"
)

// Ensure ConfigurationService implements the interface.
var _ driving.ConfigurationService = (*ConfigurationService)(nil)

// ConfigurationService computes electron configurations.
type ConfigurationService struct {
	settings driving.SettingsService
}

// NewConfigurationService creates a new configuration service.
// If settings is nil, default settings are used.
func NewConfigurationService(settings driving.SettingsService) *ConfigurationService {
	return &ConfigurationService{
		settings: settings,
	}
}

// Compute returns the configuration for an electron count.
func (s *ConfigurationService) Compute(ctx context.Context, electrons int) (*domain.Configuration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := domain.ValidateElectrons(electrons); err != nil {
		return nil, err
	}

	return build(electrons, s.currentSettings().Compute.Anomalies), nil
}

// ComputeAtom builds an atom from proton, electron and neutron counts.
func (s *ConfigurationService) ComputeAtom(
	ctx context.Context, protons, electrons, neutrons int,
) (*domain.Atom, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := domain.ValidateElectrons(electrons); err != nil {
		return nil, err
	}

	c := build(electrons, s.currentSettings().Compute.Anomalies)
	atom, err := domain.NewAtomWithConfiguration(protons, neutrons, c)
	if err != nil {
		return nil, fmt.Errorf("build atom: %w", err)
	}

	logger.Debug("atom p=%d e=%d n=%d charge=%d", protons, electrons, neutrons, atom.IonCharge())
	return atom, nil
}

// Range computes configurations for every count in [from, to], in order.
// Computations run concurrently, bounded by the configured worker count.
func (s *ConfigurationService) Range(ctx context.Context, from, to int) ([]*domain.Configuration, error) {
	if err := domain.ValidateElectrons(from); err != nil {
		return nil, err
	}
	if err := domain.ValidateElectrons(to); err != nil {
		return nil, err
	}
	if from > to {
		return nil, fmt.Errorf("%w: %d > %d", domain.ErrInvalidRange, from, to)
	}

	settings := s.currentSettings()
	logger.Section(fmt.Sprintf("Range %d..%d", from, to))
	logger.Debug("workers=%d anomalies=%t", settings.Compute.Workers, settings.Compute.Anomalies)

	results := make([]*domain.Configuration, to-from+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(settings.Compute.Workers)

	for i := range results {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = build(from+i, settings.Compute.Anomalies)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compute range: %w", err)
	}
	return results, nil
}

// currentSettings returns stored settings, or defaults if none are available.
func (s *ConfigurationService) currentSettings() domain.AppSettings {
	if s.settings == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := s.settings.Get()
	if err != nil {
		logger.Warn("using default settings: %v", err)
		return domain.DefaultAppSettings()
	}
	if settings.Compute.Workers < 1 {
		settings.Compute.Workers = domain.DefaultWorkers
	}
	return *settings
}

// build fills a configuration and optionally corrects it. The count must
// already be validated.
func build(electrons int, anomalies bool) *domain.Configuration {
	c := domain.Fill(electrons)
	logger.Debug("fill %d: last shell %d, aphelion %d", electrons, c.LastShell(), c.Aphelion())

	if anomalies && c.Correct() {
		kind, _ := c.Anomaly()
		logger.Debug("fill %d: %s anomaly applied", electrons, kind)
	}
	return c
}
