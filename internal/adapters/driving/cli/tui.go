package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/aufbau/internal/adapters/driving/tui"
	"github.com/custodia-labs/aufbau/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/aufbau/internal/logger"
)

// tuiStart is the first electron count shown.
var tuiStart int

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch an interactive browser that steps through electron counts.

Controls:
  ↑/k, ↓/j - One electron more / less
  →/l, ←/h - Ten electrons more / less
  n        - Toggle notation
  ?        - Toggle help
  q        - Quit

Changes to the settings file are picked up while the browser runs.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().IntVarP(&tuiStart, "start", "s", 1, "initial electron count")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Configuration: configurationService,
		Settings:      settingsService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())
	app.SetElectrons(tuiStart)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if settingsWatcher != nil {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		err := settingsWatcher(ctx, func() {
			p.Send(messages.SettingsChanged{})
		})
		if err != nil {
			// The browser still works without live reload.
			logger.Warn("settings watcher: %v", err)
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
