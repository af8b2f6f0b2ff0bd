package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/aufbau/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/aufbau/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/aufbau/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/aufbau/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/aufbau/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It steps through electron counts and shows each configuration.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model
	bar    *status.Bar

	// electrons is the count being shown.
	electrons int

	// notation is the active notation, toggled with n.
	notation domain.Notation

	// configuration is the last computed configuration for electrons.
	configuration *domain.Configuration

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingConfigurationService)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	bar := status.NewBar(s, km)
	bar.SetNotation(domain.NotationFull.Description())

	return &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		keymap:    km,
		help:      help.New(),
		bar:       bar,
		electrons: 1,
		notation:  domain.NotationFull,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// SetElectrons sets the count shown first, clamped to the valid range.
func (a *App) SetElectrons(n int) {
	a.electrons = clamp(n)
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("aufbau"),
		a.loadSettings(),
		a.compute(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case messages.ConfigurationComputed:
		if msg.Electrons != a.electrons {
			// A later step superseded this result.
			return a, nil
		}
		a.configuration = msg.Configuration
		a.err = msg.Err
		if msg.Err != nil {
			a.bar.SetState(status.StateError)
			a.bar.SetMessage(msg.Err.Error())
		} else if a.bar.State() != status.StateInfo {
			a.bar.Clear()
		}
		return a, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			a.bar.SetState(status.StateError)
			a.bar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.setNotation(msg.Settings.Render.Notation)
		return a, nil

	case messages.SettingsChanged:
		a.bar.SetState(status.StateInfo)
		a.bar.SetMessage("Settings reloaded")
		// compute.anomalies may have changed, so recompute too.
		return a, tea.Batch(a.loadSettings(), a.compute())
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, a.keymap.Help):
		a.help.ShowAll = !a.help.ShowAll
		return nil
	case key.Matches(msg, a.keymap.Up):
		return a.step(1)
	case key.Matches(msg, a.keymap.Down):
		return a.step(-1)
	case key.Matches(msg, a.keymap.Right):
		return a.step(10)
	case key.Matches(msg, a.keymap.Left):
		return a.step(-10)
	case key.Matches(msg, a.keymap.Notation):
		if a.notation == domain.NotationFull {
			a.setNotation(domain.NotationNobleGas)
		} else {
			a.setNotation(domain.NotationFull)
		}
		return nil
	}
	return nil
}

// step moves by delta electrons and recomputes. Steps past the range
// stop at its bounds.
func (a *App) step(delta int) tea.Cmd {
	n := clamp(a.electrons + delta)
	if n == a.electrons {
		return nil
	}
	a.electrons = n
	if a.bar.State() == status.StateInfo {
		a.bar.Clear()
	}
	a.bar.SetState(status.StateComputing)
	return a.compute()
}

func (a *App) setNotation(n domain.Notation) {
	a.notation = n
	a.bar.SetNotation(n.Description())
}

// compute returns a command computing the configuration for the current count.
func (a *App) compute() tea.Cmd {
	ctx := a.ctx
	n := a.electrons
	svc := a.ports.Configuration
	return func() tea.Msg {
		c, err := svc.Compute(ctx, n)
		return messages.ConfigurationComputed{Electrons: n, Configuration: c, Err: err}
	}
}

// loadSettings returns a command reading settings, or nil without a settings port.
func (a *App) loadSettings() tea.Cmd {
	svc := a.ports.Settings
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		settings, err := svc.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(a.styles.Title.Render("aufbau"))
	b.WriteString("  ")
	b.WriteString(a.styles.Subtitle.Render(fmt.Sprintf("%d electrons", a.electrons)))
	b.WriteString("\n\n")

	switch {
	case a.err != nil:
		b.WriteString(a.styles.Error.Render(a.err.Error()))
		b.WriteString("\n")
	case a.configuration != nil:
		b.WriteString(a.viewConfiguration())
	default:
		b.WriteString(a.styles.Muted.Render("Computing..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.help.View(a.keymap))
	b.WriteString("\n")

	content := b.String()
	if gap := a.height - lipgloss.Height(content) - 1; gap > 0 {
		content += strings.Repeat("\n", gap)
	}
	return content + a.bar.View()
}

func (a *App) viewConfiguration() string {
	c := a.configuration
	var b strings.Builder

	b.WriteString(a.renderSubshells())
	b.WriteString("\n\n")

	field := func(name, value string) {
		b.WriteString(a.styles.Muted.Render(fmt.Sprintf("%-12s", name)))
		b.WriteString(a.styles.Normal.Render(value))
		b.WriteString("\n")
	}

	if block := c.Block(); block != "" {
		field("Block", block)
	}
	field("Shells", joinInts(c.ShellOccupancy()))
	field("Aphelion", fmt.Sprint(c.Aphelion()))
	if kind, ok := c.Anomaly(); ok {
		b.WriteString(a.styles.Muted.Render(fmt.Sprintf("%-12s", "Anomaly")))
		b.WriteString(a.styles.Warning.Render(kind.Description()))
		b.WriteString("\n")
	}

	return b.String()
}

// renderSubshells colours each subshell by block. The noble gas form
// keeps the core unstyled.
func (a *App) renderSubshells() string {
	c := a.configuration
	if c.TotalElectrons() == 0 {
		return a.styles.Muted.Render("(no electrons)")
	}

	text := c.Render(a.notation)
	parts := strings.Fields(text)
	byName := make(map[string]domain.Subshell, len(parts))
	for _, s := range c.Subshells() {
		byName[s.String()] = s
	}

	rendered := make([]string, 0, len(parts))
	for _, part := range parts {
		if s, ok := byName[part]; ok {
			rendered = append(rendered, a.styles.Block(s.Azimuthal.Label()).Render(part))
		} else {
			rendered = append(rendered, a.styles.Normal.Render(part))
		}
	}
	return strings.Join(rendered, " ")
}

// Electrons returns the count being shown.
func (a *App) Electrons() int {
	return a.electrons
}

// Notation returns the active notation.
func (a *App) Notation() domain.Notation {
	return a.notation
}

// Configuration returns the configuration shown, if computed.
func (a *App) Configuration() *domain.Configuration {
	return a.configuration
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// ShowAllHelp reports whether the full help is shown.
func (a *App) ShowAllHelp() bool {
	return a.help.ShowAll
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.bar.SetWidth(width)
}

func clamp(n int) int {
	switch {
	case n < 0:
		return 0
	case n > domain.MaxElectrons:
		return domain.MaxElectrons
	default:
		return n
	}
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, " ")
}
