package restore

import (
	"go.uber.org/zap"

	"dogyears/internal/domain"
)

// Service restores the persisted session into a surface.
type Service struct {
	store    domain.PreferenceStore
	themes   domain.ThemeService
	log      *zap.Logger
	fallback domain.Theme
}

// New returns a restorer. fallback is the theme used when none is
// persisted yet.
func New(store domain.PreferenceStore, themes domain.ThemeService, log *zap.Logger, fallback domain.Theme) *Service {
	return &Service{store: store, themes: themes, log: log, fallback: fallback}
}

// Restore runs once when the surface is ready. The stored birth date and
// result text are written back verbatim; a stored date is not re-validated
// here, an invalid one simply fails on the next calculation. The theme
// always gets applied, defaulting when absent.
func (s *Service) Restore(surface domain.Surface) {
	if v, ok := s.load(domain.KeyBirthDate); ok {
		surface.SetDateInput(v)
	}
	if v, ok := s.load(domain.KeyResultText); ok {
		surface.SetResultText(v)
	}

	choice := string(s.fallback)
	if v, ok := s.load(domain.KeyTheme); ok {
		choice = v
	}
	s.themes.Apply(surface, choice)
}

// load treats store failures as absent, with a warning.
func (s *Service) load(key string) (string, bool) {
	v, ok, err := s.store.Load(key)
	if err != nil {
		s.log.Warn("load preference", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return v, ok
}

// Compile-time assertion that Service implements domain.Restorer.
var _ domain.Restorer = (*Service)(nil)
