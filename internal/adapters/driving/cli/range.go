package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aufbau/internal/core/domain"
)

var (
	rangeFormat   string
	rangeNotation string
)

var rangeCmd = &cobra.Command{
	Use:   "range <from> <to>",
	Short: "Compute configurations for a range of electron counts",
	Long: `Computes configurations for every electron count from <from> to <to>
inclusive. Counts are computed concurrently by compute.workers workers and
printed in order.`,
	Example: `  aufbau range 1 36
  aufbau range 54 86 --notation noble_gas --format yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runRange,
}

func init() {
	rangeCmd.Flags().StringVarP(&rangeFormat, "format", "f", "", "output format: text, json or yaml (default from settings)")
	rangeCmd.Flags().StringVarP(&rangeNotation, "notation", "n", "", "notation: full or noble_gas (default from settings)")
	rootCmd.AddCommand(rangeCmd)
}

func runRange(cmd *cobra.Command, args []string) error {
	if configurationService == nil {
		return errors.New("configuration service not configured")
	}

	from, err := parseCount("start", args[0])
	if err != nil {
		return err
	}
	to, err := parseCount("end", args[1])
	if err != nil {
		return err
	}

	format, notation, err := renderOptions(rangeFormat, rangeNotation)
	if err != nil {
		return err
	}

	configs, err := configurationService.Range(cmd.Context(), from, to)
	if err != nil {
		return fmt.Errorf("compute range: %w", err)
	}

	views := make([]configurationView, 0, len(configs))
	for _, c := range configs {
		views = append(views, newConfigurationView(c, notation, false))
	}

	return writeOutput(cmd.OutOrStdout(), format, views, func(w io.Writer) error {
		writeRangeText(w, newPainter(cmd), configs, notation)
		return nil
	})
}

func writeRangeText(w io.Writer, p painter, configs []*domain.Configuration, notation domain.Notation) {
	for _, c := range configs {
		line := fmt.Sprintf("%4d  %s", c.TotalElectrons(), p.configuration(c, notation))
		if kind, ok := c.Anomaly(); ok {
			line += "  " + p.note("*"+kind.String())
		}
		fmt.Fprintln(w, line)
	}
}
