package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"dogyears/internal/domain"
)

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Set the preferred theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s headlessSurface
			t := wire.Themes.Apply(&s, args[0])
			fmt.Printf("Theme set to %s (toggle: %s)\n", t, s.label)
			return nil
		},
	}
}

// headlessSurface satisfies domain.Surface for one-shot commands that
// have no interactive widgets to update.
type headlessSurface struct {
	date   string
	result string
	theme  domain.Theme
	on     bool
	label  string
}

func (s *headlessSurface) DateInput() string { return s.date }
func (s *headlessSurface) SetDateInput(v string) { s.date = v }
func (s *headlessSurface) SetResultText(v string) { s.result = v }
func (s *headlessSurface) SetTheme(t domain.Theme) { s.theme = t }
func (s *headlessSurface) SetToggle(on bool) { s.on = on }
func (s *headlessSurface) SetToggleLabel(v string) { s.label = v }
