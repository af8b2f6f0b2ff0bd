package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/aufbau/internal/core/domain"
)

// ConfigurationInput is the input schema for the electron_configuration tool.
type ConfigurationInput struct {
	Electrons int    `json:"electrons" jsonschema:"number of electrons, 0 to 5000"`
	Notation  string `json:"notation,omitempty" jsonschema:"full or noble_gas (default from settings)"`
	FillOrder bool   `json:"fill_order,omitempty" jsonschema:"also return the Madelung fill order before correction"`
}

// SubshellOutput represents a single occupied subshell.
type SubshellOutput struct {
	Name      string `json:"name"`
	Electrons int    `json:"electrons"`
	Capacity  int    `json:"capacity"`
}

// ConfigurationOutput is the output schema for the electron_configuration tool.
type ConfigurationOutput struct {
	Electrons     int              `json:"electrons"`
	Configuration string           `json:"configuration"`
	Notation      string           `json:"notation"`
	Block         string           `json:"block,omitempty"`
	LastShell     int              `json:"last_shell"`
	Aphelion      int              `json:"aphelion"`
	Shells        []int            `json:"shells"`
	Anomaly       string           `json:"anomaly,omitempty"`
	Subshells     []SubshellOutput `json:"subshells"`
	FillOrder     []SubshellOutput `json:"fill_order,omitempty"`
}

// AtomInput is the input schema for the atom tool.
type AtomInput struct {
	Protons   int    `json:"protons" jsonschema:"number of protons"`
	Electrons *int   `json:"electrons,omitempty" jsonschema:"number of electrons (default: protons)"`
	Neutrons  *int   `json:"neutrons,omitempty" jsonschema:"number of neutrons (default: protons)"`
	Notation  string `json:"notation,omitempty" jsonschema:"full or noble_gas (default from settings)"`
}

// AtomOutput is the output schema for the atom tool.
type AtomOutput struct {
	Protons       int                 `json:"protons"`
	Electrons     int                 `json:"electrons"`
	Neutrons      int                 `json:"neutrons"`
	AtomicMass    float64             `json:"atomic_mass"`
	Charge        int                 `json:"charge"`
	ChemicalSets  []string            `json:"chemical_sets"`
	Configuration ConfigurationOutput `json:"configuration"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "electron_configuration",
		Description: "Compute the ground-state electron configuration for an electron count",
	}, s.handleConfiguration)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "atom",
		Description: "Describe an atom or ion: mass, charge, chemical sets and configuration",
	}, s.handleAtom)
}

// handleConfiguration handles the electron_configuration tool invocation.
func (s *Server) handleConfiguration(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConfigurationInput,
) (*mcp.CallToolResult, ConfigurationOutput, error) {
	notation, err := s.notation(input.Notation)
	if err != nil {
		return nil, ConfigurationOutput{}, err
	}

	c, err := s.ports.Configuration.Compute(ctx, input.Electrons)
	if err != nil {
		return nil, ConfigurationOutput{}, err
	}

	return nil, newConfigurationOutput(c, notation, input.FillOrder), nil
}

// handleAtom handles the atom tool invocation.
func (s *Server) handleAtom(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AtomInput,
) (*mcp.CallToolResult, AtomOutput, error) {
	notation, err := s.notation(input.Notation)
	if err != nil {
		return nil, AtomOutput{}, err
	}

	electrons, neutrons := input.Protons, input.Protons
	if input.Electrons != nil {
		electrons = *input.Electrons
	}
	if input.Neutrons != nil {
		neutrons = *input.Neutrons
	}

	atom, err := s.ports.Configuration.ComputeAtom(ctx, input.Protons, electrons, neutrons)
	if err != nil {
		return nil, AtomOutput{}, err
	}

	sets := make([]string, 0)
	for _, set := range atom.ChemicalSets() {
		sets = append(sets, set.String())
	}

	return nil, AtomOutput{
		Protons:       atom.Protons(),
		Electrons:     atom.Electrons(),
		Neutrons:      atom.Neutrons(),
		AtomicMass:    atom.AtomicMass(),
		Charge:        atom.IonCharge(),
		ChemicalSets:  sets,
		Configuration: newConfigurationOutput(atom.Configuration(), notation, false),
	}, nil
}

// notation resolves a requested notation, falling back to settings.
func (s *Server) notation(requested string) (domain.Notation, error) {
	if requested != "" {
		n := domain.Notation(strings.ToLower(requested))
		if !n.IsValid() {
			return "", fmt.Errorf("%w: notation %q", domain.ErrInvalidInput, requested)
		}
		return n, nil
	}

	if s.ports.Settings != nil {
		if settings, err := s.ports.Settings.Get(); err == nil {
			return settings.Render.Notation, nil
		}
	}
	return domain.NotationFull, nil
}

func newSubshellOutputs(subshells []domain.Subshell) []SubshellOutput {
	out := make([]SubshellOutput, len(subshells))
	for i, sub := range subshells {
		out[i] = SubshellOutput{
			Name:      sub.Name(),
			Electrons: sub.Electrons,
			Capacity:  sub.Capacity(),
		}
	}
	return out
}

func newConfigurationOutput(c *domain.Configuration, notation domain.Notation, fillOrder bool) ConfigurationOutput {
	out := ConfigurationOutput{
		Electrons:     c.TotalElectrons(),
		Configuration: c.Render(notation),
		Notation:      notation.String(),
		Block:         c.Block(),
		LastShell:     c.LastShell(),
		Aphelion:      c.Aphelion(),
		Shells:        c.ShellOccupancy(),
		Subshells:     newSubshellOutputs(c.Subshells()),
	}
	if kind, ok := c.Anomaly(); ok {
		out.Anomaly = kind.String()
	}
	if fillOrder {
		out.FillOrder = newSubshellOutputs(c.FillOrder())
	}
	return out
}
