package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"dogyears/internal/domain"
	"dogyears/internal/services/calc"
	"dogyears/internal/services/restore"
	"dogyears/internal/services/theme"
)

type fakeStore struct {
	m map[string]string
}

func (f *fakeStore) Save(key, value string) error {
	f.m[key] = value
	return nil
}

func (f *fakeStore) Load(key string) (string, bool, error) {
	v, ok := f.m[key]
	return v, ok, nil
}

func newTestModel(store domain.PreferenceStore) *Model {
	log := zap.NewNop()
	now := func() time.Time {
		return time.Date(2026, time.August, 31, 12, 0, 0, 0, time.Local)
	}
	themes := theme.New(store, log)
	return NewModel(
		calc.NewWithClock(store, log, now),
		themes,
		restore.New(store, themes, log, domain.ThemeLight),
	)
}

func TestModel_EnterCalculatesAndPersists(t *testing.T) {
	store := &fakeStore{m: make(map[string]string)}
	m := newTestModel(store)
	m.Init()

	m.SetDateInput("2019-05-04")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, m.result, "dog years")
	assert.Equal(t, m.result, store.m[domain.KeyResultText])
	assert.Equal(t, "2019-05-04", store.m[domain.KeyBirthDate])
}

func TestModel_EnterWithEmptyInput(t *testing.T) {
	store := &fakeStore{m: make(map[string]string)}
	m := newTestModel(store)
	m.Init()

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, calc.MsgEnterValidDate, m.result)
	assert.Equal(t, calc.MsgEnterValidDate, store.m[domain.KeyResultText])
	_, ok := store.m[domain.KeyBirthDate]
	assert.False(t, ok, "empty date must not be persisted")
}

func TestModel_TabTogglesTheme(t *testing.T) {
	store := &fakeStore{m: make(map[string]string)}
	m := newTestModel(store)
	m.Init()

	assert.Equal(t, domain.ThemeLight, m.theme)
	assert.Equal(t, theme.LabelLightActive, m.toggleLabel)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.ThemeDark, m.theme)
	assert.True(t, m.toggleOn)
	assert.Equal(t, theme.LabelDarkActive, m.toggleLabel)
	assert.Equal(t, "dark", store.m[domain.KeyTheme])

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.ThemeLight, m.theme)
	assert.Equal(t, "light", store.m[domain.KeyTheme])
}

func TestModel_InitRestoresSession(t *testing.T) {
	store := &fakeStore{m: map[string]string{
		domain.KeyBirthDate:  "2019-05-04",
		domain.KeyResultText: "You are 7.33 dog years old.\nThat is about 62.9 in human years.",
		domain.KeyTheme:      "dark",
	}}
	m := newTestModel(store)
	m.Init()

	assert.Equal(t, "2019-05-04", m.DateInput())
	assert.Equal(t, store.m[domain.KeyResultText], m.result)
	assert.Equal(t, domain.ThemeDark, m.theme)
}

func TestView_RendersResultAndToggle(t *testing.T) {
	store := &fakeStore{m: make(map[string]string)}
	m := newTestModel(store)
	m.Init()

	m.SetDateInput("2019-05-04")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	out := m.View()
	assert.Contains(t, out, "dog years")
	assert.Contains(t, out, theme.LabelLightActive)
}
