package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aufbau/internal/core/domain"
)

var (
	configFormat    string
	configNotation  string
	configFillOrder bool
)

var configCmd = &cobra.Command{
	Use:   "config <electrons>",
	Short: "Compute the electron configuration for an electron count",
	Long: `Computes the ground-state electron configuration for 0 to 5000 electrons.

Subshells are listed by principal level. Use --fill-order to also show the
order in which the Madelung rule filled them.`,
	Example: `  aufbau config 24
  aufbau config 46 --notation noble_gas
  aufbau config 79 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVarP(&configFormat, "format", "f", "", "output format: text, json or yaml (default from settings)")
	configCmd.Flags().StringVarP(&configNotation, "notation", "n", "", "notation: full or noble_gas (default from settings)")
	configCmd.Flags().BoolVar(&configFillOrder, "fill-order", false, "also show the Madelung fill order")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configurationService == nil {
		return errors.New("configuration service not configured")
	}

	electrons, err := parseCount("electron count", args[0])
	if err != nil {
		return err
	}

	format, notation, err := renderOptions(configFormat, configNotation)
	if err != nil {
		return err
	}

	c, err := configurationService.Compute(cmd.Context(), electrons)
	if err != nil {
		return fmt.Errorf("compute configuration: %w", err)
	}

	view := newConfigurationView(c, notation, configFillOrder)
	return writeOutput(cmd.OutOrStdout(), format, view, func(w io.Writer) error {
		writeConfigurationText(w, newPainter(cmd), c, view)
		return nil
	})
}

func writeConfigurationText(w io.Writer, p painter, c *domain.Configuration, view configurationView) {
	p.field(w, "Electrons", fmt.Sprint(view.Electrons))
	p.field(w, "Configuration", p.configuration(c, domain.Notation(view.Notation)))
	if view.Block != "" {
		p.field(w, "Block", view.Block)
	}
	p.field(w, "Shells", joinInts(view.Shells))
	if kind, ok := c.Anomaly(); ok {
		p.field(w, "Anomaly", kind.Description()+" "+p.note("(Madelung: "+joinNames(c.FillOrder())+")"))
	}
	if view.FillOrder != nil {
		p.field(w, "Fill order", joinNames(c.FillOrder()))
	}
}
