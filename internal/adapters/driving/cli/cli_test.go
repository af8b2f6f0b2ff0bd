package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/aufbau/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/aufbau/internal/core/services"
)

// setupServices wires real services over an in-memory store.
func setupServices(t *testing.T) *services.SettingsService {
	t.Helper()

	settings := services.NewSettingsService(memory.NewConfigStore())
	SetServices(services.NewConfigurationService(settings), settings)
	t.Cleanup(func() { SetServices(nil, nil) })
	return settings
}

// execute runs the root command with fresh flag values and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores flag defaults, since cobra keeps values between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
