package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/aufbau/internal/core/domain"
)

var (
	atomElectrons int
	atomNeutrons  int
	atomFormat    string
	atomNotation  string
)

var atomCmd = &cobra.Command{
	Use:   "atom <protons>",
	Short: "Describe an atom or ion",
	Long: `Describes an atom from its proton, electron and neutron counts.

Electrons default to the proton count (a neutral atom). Neutrons default to
the proton count as well.`,
	Example: `  aufbau atom 26 --neutrons 30
  aufbau atom 11 --electrons 10`,
	Args: cobra.ExactArgs(1),
	RunE: runAtom,
}

func init() {
	atomCmd.Flags().IntVarP(&atomElectrons, "electrons", "e", 0, "electron count (default: protons)")
	atomCmd.Flags().IntVarP(&atomNeutrons, "neutrons", "N", 0, "neutron count (default: protons)")
	atomCmd.Flags().StringVarP(&atomFormat, "format", "f", "", "output format: text, json or yaml (default from settings)")
	atomCmd.Flags().StringVarP(&atomNotation, "notation", "n", "", "notation: full or noble_gas (default from settings)")
	rootCmd.AddCommand(atomCmd)
}

func runAtom(cmd *cobra.Command, args []string) error {
	if configurationService == nil {
		return errors.New("configuration service not configured")
	}

	protons, err := parseCount("proton count", args[0])
	if err != nil {
		return err
	}

	electrons, neutrons := protons, protons
	if cmd.Flags().Changed("electrons") {
		electrons = atomElectrons
	}
	if cmd.Flags().Changed("neutrons") {
		neutrons = atomNeutrons
	}

	format, notation, err := renderOptions(atomFormat, atomNotation)
	if err != nil {
		return err
	}

	atom, err := configurationService.ComputeAtom(cmd.Context(), protons, electrons, neutrons)
	if err != nil {
		return fmt.Errorf("compute atom: %w", err)
	}

	view := newAtomView(atom, notation)
	return writeOutput(cmd.OutOrStdout(), format, view, func(w io.Writer) error {
		writeAtomText(w, newPainter(cmd), atom, view)
		return nil
	})
}

func writeAtomText(w io.Writer, p painter, atom *domain.Atom, view atomView) {
	p.field(w, "Protons", fmt.Sprint(view.Protons))
	p.field(w, "Electrons", fmt.Sprint(view.Electrons))
	p.field(w, "Neutrons", fmt.Sprint(view.Neutrons))
	p.field(w, "Atomic mass", fmt.Sprintf("%g", view.AtomicMass))
	if atom.IsIon() {
		p.field(w, "Charge", fmt.Sprintf("%+d", view.Charge))
	} else {
		p.field(w, "Charge", "0 "+p.note("(neutral)"))
	}

	sets := make([]string, 0, len(atom.ChemicalSets()))
	for _, set := range atom.ChemicalSets() {
		sets = append(sets, set.Description())
	}
	if len(sets) > 0 {
		p.field(w, "Chemical sets", strings.Join(sets, ", "))
	}

	writeConfigurationText(w, p, atom.Configuration(), view.Configuration)
}
