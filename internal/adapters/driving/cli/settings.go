package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aufbau/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure rendering and computation settings.

Settings are stored in ~/.aufbau/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsNotationCmd = &cobra.Command{
	Use:   "notation <full|noble_gas>",
	Short: "Set the default notation",
	Long: `Set the notation used when --notation is not given.

Available notations:
  full       - Every subshell (1s2 2s2 2p6 3s1)
  noble_gas  - Noble gas core abbreviation ([Ne] 3s1)`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsNotation,
}

var settingsFormatCmd = &cobra.Command{
	Use:   "format <text|json|yaml>",
	Short: "Set the default output format",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsFormat,
}

var settingsWorkersCmd = &cobra.Command{
	Use:   "workers <n>",
	Short: "Set the number of concurrent range workers",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsWorkers,
}

var settingsAnomaliesCmd = &cobra.Command{
	Use:   "anomalies <on|off>",
	Short: "Enable or disable d-block anomaly correction",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsAnomalies,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsNotationCmd)
	settingsCmd.AddCommand(settingsFormatCmd)
	settingsCmd.AddCommand(settingsWorkersCmd)
	settingsCmd.AddCommand(settingsAnomaliesCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Render]")
	cmd.Printf("  Notation: %s\n", settings.Render.Notation.Description())
	cmd.Printf("  Format: %s\n", settings.Render.Format)
	cmd.Println()

	cmd.Println("[Compute]")
	cmd.Printf("  Anomalies: %s\n", onOff(settings.Compute.Anomalies))
	cmd.Printf("  Workers: %d\n", settings.Compute.Workers)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runSettingsNotation(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	notation := domain.Notation(strings.ToLower(args[0]))
	if err := settingsService.SetNotation(notation); err != nil {
		return fmt.Errorf("failed to set notation: %w", err)
	}

	cmd.Printf("Notation set to: %s\n", notation.Description())
	return nil
}

func runSettingsFormat(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	format := domain.OutputFormat(strings.ToLower(args[0]))
	if err := settingsService.SetFormat(format); err != nil {
		return fmt.Errorf("failed to set format: %w", err)
	}

	cmd.Printf("Format set to: %s\n", format)
	return nil
}

func runSettingsWorkers(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	workers, err := parseCount("worker count", args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetWorkers(workers); err != nil {
		return fmt.Errorf("failed to set workers: %w", err)
	}

	cmd.Printf("Workers set to: %d\n", workers)
	return nil
}

func runSettingsAnomalies(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	enabled, err := parseSwitch(args[0])
	if err != nil {
		return err
	}
	if err := settingsService.SetAnomalies(enabled); err != nil {
		return fmt.Errorf("failed to set anomalies: %w", err)
	}

	cmd.Printf("Anomaly correction: %s\n", onOff(enabled))
	return nil
}

// parseSwitch accepts on/off in addition to strconv.ParseBool values.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not on or off", domain.ErrInvalidInput, s)
	}
	return b, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
