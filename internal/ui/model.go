package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dogyears/internal/domain"
)

// Model is the interactive calculator.
type Model struct {
	input       textinput.Model
	result      string
	theme       domain.Theme
	toggleOn    bool
	toggleLabel string
	styles      Styles
	width       int

	calc     domain.Calculator
	themes   domain.ThemeService
	restorer domain.Restorer
}

// NewModel builds the calculator around the given services.
func NewModel(calc domain.Calculator, themes domain.ThemeService, restorer domain.Restorer) *Model {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 14
	ti.Focus()

	return &Model{
		input:    ti,
		theme:    domain.ThemeLight,
		styles:   NewStyles(domain.ThemeLight),
		calc:     calc,
		themes:   themes,
		restorer: restorer,
	}
}

// Init restores the persisted session; the surface is ready once the
// program starts delivering messages.
func (m *Model) Init() tea.Cmd {
	m.restorer.Restore(m)
	return textinput.Blink
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.calc.RememberBirthDate(m.input.Value())
			m.result = m.calc.Calculate(m.input.Value())
			return m, nil
		case "tab":
			next := domain.ThemeDark
			if m.toggleOn {
				next = domain.ThemeLight
			}
			m.themes.Apply(m, string(next))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the calculator with the active theme's styles.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("dogyears"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Label.Render("Birth date: "))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.result != "" {
		b.WriteString(m.styles.Result.Render(m.result))
		b.WriteString("\n\n")
	}

	check := " "
	if m.toggleOn {
		check = "x"
	}
	b.WriteString(m.styles.Toggle.Render(fmt.Sprintf("[%s] %s", check, m.toggleLabel)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("enter calculate · tab theme · esc quit"))

	return m.styles.Frame.Render(b.String())
}

// The model is the surface the services write to.

func (m *Model) DateInput() string { return m.input.Value() }
func (m *Model) SetDateInput(v string) { m.input.SetValue(v) }
func (m *Model) SetResultText(v string) { m.result = v }

func (m *Model) SetTheme(t domain.Theme) {
	m.theme = t
	m.styles = NewStyles(t)
}

func (m *Model) SetToggle(on bool) { m.toggleOn = on }
func (m *Model) SetToggleLabel(v string) { m.toggleLabel = v }

// Compile-time assertion that Model implements domain.Surface.
var _ domain.Surface = (*Model)(nil)

// Run starts the interactive calculator on the terminal.
func Run(calc domain.Calculator, themes domain.ThemeService, restorer domain.Restorer) error {
	p := tea.NewProgram(NewModel(calc, themes, restorer), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
