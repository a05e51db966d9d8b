package theme

import (
	"go.uber.org/zap"

	"dogyears/internal/domain"
)

// Toggle labels. Each names the action the toggle offers, not the state
// it is in.
const (
	LabelLightActive = "turn on light"
	LabelDarkActive  = "turn off light"
)

// Service normalizes a theme choice, restyles the surface, and persists
// the result.
type Service struct {
	store domain.PreferenceStore
	log   *zap.Logger
}

// New returns a theme service backed by the given store.
func New(store domain.PreferenceStore, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// Apply normalizes choice, sets the surface theme, persists the normalized
// value, and refreshes the toggle state and its action label. It returns
// the theme that ended up active.
func (s *Service) Apply(surface domain.Surface, choice string) domain.Theme {
	t := domain.NormalizeTheme(choice)

	surface.SetTheme(t)
	if err := s.store.Save(domain.KeyTheme, string(t)); err != nil {
		s.log.Warn("persist theme", zap.Error(err))
	}
	surface.SetToggle(t == domain.ThemeDark)
	surface.SetToggleLabel(Label(t))
	return t
}

// Label returns the toggle's action label under the given theme.
func Label(t domain.Theme) string {
	if t == domain.ThemeDark {
		return LabelDarkActive
	}
	return LabelLightActive
}

// Compile-time assertion that Service implements domain.ThemeService.
var _ domain.ThemeService = (*Service)(nil)
