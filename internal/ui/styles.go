package ui

import (
	"github.com/charmbracelet/lipgloss"

	"dogyears/internal/domain"
)

// Palette is the color set for one theme, trimmed to what the calculator
// renders.
type Palette struct {
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
}

func lightPalette() Palette {
	return Palette{
		Foreground: lipgloss.Color("#101F38"),
		Accent:     lipgloss.Color("#2e7d32"),
		Muted:      lipgloss.Color("#6b7280"),
		Border:     lipgloss.Color("#dce0e5"),
	}
}

func darkPalette() Palette {
	return Palette{
		Foreground: lipgloss.Color("#f2f2f2"),
		Accent:     lipgloss.Color("#8BC34A"),
		Muted:      lipgloss.Color("#8a93a5"),
		Border:     lipgloss.Color("#2a3850"),
	}
}

// Styles are the rendered lipgloss styles for the active theme.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Result lipgloss.Style
	Toggle lipgloss.Style
	Help   lipgloss.Style
	Frame  lipgloss.Style
}

// NewStyles builds the style set for t.
func NewStyles(t domain.Theme) Styles {
	p := lightPalette()
	if t == domain.ThemeDark {
		p = darkPalette()
	}

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(p.Foreground),

		Result: lipgloss.NewStyle().
			Foreground(p.Foreground).
			Bold(true),

		Toggle: lipgloss.NewStyle().
			Foreground(p.Muted),

		Help: lipgloss.NewStyle().
			Foreground(p.Muted),

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),
	}
}
