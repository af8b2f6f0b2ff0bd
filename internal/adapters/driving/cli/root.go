// Package cli provides the cobra command tree for the aufbau binary.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aufbau/internal/core/ports/driving"
	"github.com/custodia-labs/aufbau/internal/logger"
)

// SettingsWatcher starts watching persisted settings and calls onChange
// after they were modified, until ctx is done.
type SettingsWatcher func(ctx context.Context, onChange func()) error

var (
	version = "dev"
	verbose bool

	configurationService driving.ConfigurationService
	settingsService      driving.SettingsService
	settingsWatcher      SettingsWatcher
)

var rootCmd = &cobra.Command{
	Use:   "aufbau",
	Short: "Electron configurations by the Aufbau principle",
	Long: `Aufbau computes ground-state electron configurations.

Subshells are filled in Madelung order, then the known d-block exceptions
(Cr, Cu, Nb, Mo, Ru, Rh, Pd, Ag, Pt, Au, Lr) are corrected.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show filling and correction steps")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices wires the services used by the commands.
func SetServices(configuration driving.ConfigurationService, settings driving.SettingsService) {
	configurationService = configuration
	settingsService = settings
}

// SetSettingsWatcher wires settings change notifications for the TUI.
func SetSettingsWatcher(w SettingsWatcher) {
	settingsWatcher = w
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
