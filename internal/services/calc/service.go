package calc

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"dogyears/internal/dogage"
	"dogyears/internal/domain"
)

const dateLayout = "2006-01-02"

// Seconds in an average year of 365.25 days.
const secondsPerYear = 86400 * 365.25

// Messages shown (and persisted) for each calculation outcome.
const (
	MsgEnterValidDate = "please enter a valid birth date"
	MsgDateNotPast    = "birth date must be earlier than now"
	MsgUnreasonable   = "calculation failed: input may be unreasonable"
)

// Service computes the human-equivalent age for a birth date and persists
// the outcome of every attempt.
type Service struct {
	store domain.PreferenceStore
	log   *zap.Logger
	now   func() time.Time
}

// New returns a calculation service backed by the given store.
func New(store domain.PreferenceStore, log *zap.Logger) *Service {
	return &Service{store: store, log: log, now: time.Now}
}

// NewWithClock is New with an injected clock, for tests.
func NewWithClock(store domain.PreferenceStore, log *zap.Logger, now func() time.Time) *Service {
	return &Service{store: store, log: log, now: now}
}

// Calculate runs one attempt against raw and returns the display text.
// The text, error or success, becomes the persisted result; a failed
// write is logged and otherwise ignored.
func (s *Service) Calculate(raw string) string {
	text := s.compute(raw)
	if err := s.store.Save(domain.KeyResultText, text); err != nil {
		s.log.Warn("persist result text", zap.Error(err))
	}
	return text
}

func (s *Service) compute(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return MsgEnterValidDate
	}

	// Local midnight anchors the date, so the day boundary follows the
	// user's zone rather than UTC.
	birth, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return MsgEnterValidDate
	}

	elapsed := s.now().Sub(birth).Seconds() / secondsPerYear
	if elapsed <= 0 {
		return MsgDateNotPast
	}

	age, ok := dogage.Convert(elapsed)
	if !ok || math.IsNaN(age) || math.IsInf(age, 0) {
		return MsgUnreasonable
	}

	return fmt.Sprintf("You are %.2f dog years old.\nThat is about %.1f in human years.", elapsed, age)
}

// RememberBirthDate persists the raw date field so the next run can
// repopulate it. Empty input leaves the stored value untouched.
func (s *Service) RememberBirthDate(raw string) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	if err := s.store.Save(domain.KeyBirthDate, raw); err != nil {
		s.log.Warn("persist birth date", zap.Error(err))
	}
}

// Compile-time assertion that Service implements domain.Calculator.
var _ domain.Calculator = (*Service)(nil)
