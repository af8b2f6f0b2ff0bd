package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/aufbau/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/aufbau/internal/core/domain"
)

// subshellView is the serialised form of a subshell.
type subshellView struct {
	Name      string `json:"name" yaml:"name"`
	Level     int    `json:"level" yaml:"level"`
	Azimuthal int    `json:"azimuthal" yaml:"azimuthal"`
	Electrons int    `json:"electrons" yaml:"electrons"`
	Capacity  int    `json:"capacity" yaml:"capacity"`
}

// configurationView is the serialised form of a configuration.
type configurationView struct {
	Electrons     int            `json:"electrons" yaml:"electrons"`
	Configuration string         `json:"configuration" yaml:"configuration"`
	Notation      string         `json:"notation" yaml:"notation"`
	Block         string         `json:"block,omitempty" yaml:"block,omitempty"`
	LastShell     int            `json:"last_shell" yaml:"last_shell"`
	MaxAzimuthal  string         `json:"max_azimuthal" yaml:"max_azimuthal"`
	Aphelion      int            `json:"aphelion" yaml:"aphelion"`
	Shells        []int          `json:"shells" yaml:"shells"`
	Anomaly       string         `json:"anomaly,omitempty" yaml:"anomaly,omitempty"`
	Subshells     []subshellView `json:"subshells" yaml:"subshells"`
	FillOrder     []subshellView `json:"fill_order,omitempty" yaml:"fill_order,omitempty"`
}

// atomView is the serialised form of an atom.
type atomView struct {
	Protons       int               `json:"protons" yaml:"protons"`
	Electrons     int               `json:"electrons" yaml:"electrons"`
	Neutrons      int               `json:"neutrons" yaml:"neutrons"`
	AtomicMass    float64           `json:"atomic_mass" yaml:"atomic_mass"`
	Charge        int               `json:"charge" yaml:"charge"`
	ChemicalSets  []string          `json:"chemical_sets" yaml:"chemical_sets"`
	Configuration configurationView `json:"configuration" yaml:"configuration"`
}

func newSubshellViews(subshells []domain.Subshell) []subshellView {
	views := make([]subshellView, 0, len(subshells))
	for _, s := range subshells {
		views = append(views, subshellView{
			Name:      s.Name(),
			Level:     s.Level,
			Azimuthal: int(s.Azimuthal),
			Electrons: s.Electrons,
			Capacity:  s.Capacity(),
		})
	}
	return views
}

func newConfigurationView(c *domain.Configuration, notation domain.Notation, fillOrder bool) configurationView {
	view := configurationView{
		Electrons:     c.TotalElectrons(),
		Configuration: c.Render(notation),
		Notation:      notation.String(),
		Block:         c.Block(),
		LastShell:     c.LastShell(),
		MaxAzimuthal:  c.MaxAzimuthal().Label(),
		Aphelion:      c.Aphelion(),
		Shells:        c.ShellOccupancy(),
		Subshells:     newSubshellViews(c.Subshells()),
	}
	if kind, ok := c.Anomaly(); ok {
		view.Anomaly = kind.String()
	}
	if fillOrder {
		view.FillOrder = newSubshellViews(c.FillOrder())
	}
	return view
}

func newAtomView(a *domain.Atom, notation domain.Notation) atomView {
	sets := make([]string, 0)
	for _, set := range a.ChemicalSets() {
		sets = append(sets, set.String())
	}
	return atomView{
		Protons:       a.Protons(),
		Electrons:     a.Electrons(),
		Neutrons:      a.Neutrons(),
		AtomicMass:    a.AtomicMass(),
		Charge:        a.IonCharge(),
		ChemicalSets:  sets,
		Configuration: newConfigurationView(a.Configuration(), notation, false),
	}
}

// writeOutput encodes v in the requested format. Text output is delegated
// to text.
func writeOutput(w io.Writer, format domain.OutputFormat, v any, text func(io.Writer) error) error {
	switch format {
	case domain.OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case domain.OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// renderOptions resolves the --format and --notation flags against the
// stored settings. Empty flags fall back to the settings.
func renderOptions(format, notation string) (domain.OutputFormat, domain.Notation, error) {
	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		if stored, err := settingsService.Get(); err == nil {
			settings = *stored
		}
	}

	f := settings.Render.Format
	if format != "" {
		f = domain.OutputFormat(strings.ToLower(format))
		if !f.IsValid() {
			return "", "", fmt.Errorf("%w: format %q (use text, json or yaml)", domain.ErrInvalidInput, format)
		}
	}

	n := settings.Render.Notation
	if notation != "" {
		n = domain.Notation(strings.ToLower(notation))
		if !n.IsValid() {
			return "", "", fmt.Errorf("%w: notation %q (use full or noble_gas)", domain.ErrInvalidInput, notation)
		}
	}
	return f, n, nil
}

// parseCount parses a non-negative integer argument.
func parseCount(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", domain.ErrInvalidInput, name, arg)
	}
	return n, nil
}

// painter styles text output when writing to a terminal, using the
// same palette as the TUI.
type painter struct {
	enabled bool
	styles  *styles.Styles
}

func newPainter(cmd *cobra.Command) painter {
	return painter{
		enabled: isTerminal(cmd.OutOrStdout()),
		styles:  styles.DefaultStyles(),
	}
}

func (p painter) field(w io.Writer, name, value string) {
	label := fmt.Sprintf("%-15s", name+":")
	if p.enabled {
		label = p.styles.Title.Render(label)
		value = p.styles.Normal.Render(value)
	}
	fmt.Fprintf(w, "%s%s\n", label, value)
}

func (p painter) note(s string) string {
	if !p.enabled {
		return s
	}
	return p.styles.Muted.Render(s)
}

// configuration renders c in the given notation. Terminals get
// superscript electron counts.
func (p painter) configuration(c *domain.Configuration, notation domain.Notation) string {
	if p.enabled {
		return c.Superscript(notation)
	}
	return c.Render(notation)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, " ")
}

func joinNames(subshells []domain.Subshell) string {
	parts := make([]string, 0, len(subshells))
	for _, s := range subshells {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " ")
}
