package driving

import (
	"context"

	"github.com/custodia-labs/aufbau/internal/core/domain"
)

// ConfigurationService computes electron configurations.
type ConfigurationService interface {
	// Compute returns the configuration for an electron count.
	// Counts outside [0, domain.MaxElectrons] return domain.ErrElectronsOutOfRange.
	Compute(ctx context.Context, electrons int) (*domain.Configuration, error)

	// ComputeAtom builds an atom from proton, electron and neutron counts.
	ComputeAtom(ctx context.Context, protons, electrons, neutrons int) (*domain.Atom, error)

	// Range computes configurations for every count in [from, to], in order.
	Range(ctx context.Context, from, to int) ([]*domain.Configuration, error)
}
