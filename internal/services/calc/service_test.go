package calc_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dogyears/internal/domain"
	"dogyears/internal/services/calc"
)

type fakeStore struct {
	m       map[string]string
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{m: make(map[string]string)}
}

func (f *fakeStore) Save(key, value string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.m[key] = value
	return nil
}

func (f *fakeStore) Load(key string) (string, bool, error) {
	v, ok := f.m[key]
	return v, ok, nil
}

// now is fixed at noon so "today at midnight" is always in the past and
// "tomorrow" always in the future, regardless of when the tests run.
var now = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.Local)

func newService(store domain.PreferenceStore) *calc.Service {
	return calc.NewWithClock(store, zap.NewNop(), func() time.Time { return now })
}

func TestCalculate_EmptyInput(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)

	got := svc.Calculate("")
	assert.Equal(t, calc.MsgEnterValidDate, got)
	assert.Equal(t, got, store.m[domain.KeyResultText])
}

func TestCalculate_UnparsableInput(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)

	got := svc.Calculate("not-a-date")
	assert.Equal(t, calc.MsgEnterValidDate, got)
	assert.Equal(t, got, store.m[domain.KeyResultText])
}

func TestCalculate_FutureDate(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)

	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	got := svc.Calculate(tomorrow)
	assert.Equal(t, calc.MsgDateNotPast, got)
	assert.Equal(t, got, store.m[domain.KeyResultText])
}

func TestCalculate_OneYearAgo(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)

	oneYearAgo := now.AddDate(-1, 0, 0).Format("2006-01-02")
	got := svc.Calculate(oneYearAgo)

	// Roughly one elapsed year maps to roughly 31 human years.
	assert.Contains(t, got, "1.00")
	assert.Contains(t, got, "31.0")
	assert.Equal(t, got, store.m[domain.KeyResultText])
}

func TestCalculate_SuccessIsTwoLines(t *testing.T) {
	svc := newService(newFakeStore())

	got := svc.Calculate("2019-05-04")
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "dog years")
	assert.Contains(t, lines[1], "human years")
}

func TestCalculate_StoreFailureDoesNotBlock(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("disk full")
	svc := newService(store)

	got := svc.Calculate("2019-05-04")
	assert.Contains(t, got, "dog years")
	assert.Empty(t, store.m[domain.KeyResultText])
}

func TestRememberBirthDate(t *testing.T) {
	store := newFakeStore()
	svc := newService(store)

	svc.RememberBirthDate("")
	_, ok := store.m[domain.KeyBirthDate]
	assert.False(t, ok, "empty input must not be persisted")

	svc.RememberBirthDate("2019-05-04")
	assert.Equal(t, "2019-05-04", store.m[domain.KeyBirthDate])
}
