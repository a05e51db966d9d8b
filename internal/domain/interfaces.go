package domain

// PreferenceStore persists small named preference values between runs.
type PreferenceStore interface {
	// Save serializes value and writes it under key.
	Save(key, value string) error

	// Load reads the value stored under key. ok reports whether the key
	// was present; err reports a store failure (corrupt file, IO error).
	// Absent and failed are distinct so callers can log the latter.
	Load(key string) (value string, ok bool, err error)
}

// Surface is the UI the services read from and write to. The terminal
// front end implements it; one-shot commands and tests use lightweight
// stand-ins.
type Surface interface {
	DateInput() string
	SetDateInput(v string)
	SetResultText(v string)
	SetTheme(t Theme)
	SetToggle(on bool)
	SetToggleLabel(v string)
}

// Calculator runs one calculation from a raw birth-date string.
type Calculator interface {
	// Calculate returns the display text for raw and persists it as the
	// current result, whether success or error.
	Calculate(raw string) string

	// RememberBirthDate persists a non-empty raw date field.
	RememberBirthDate(raw string)
}

// ThemeService normalizes, applies and persists a theme choice.
type ThemeService interface {
	Apply(surface Surface, choice string) Theme
}

// Restorer repopulates the surface from persisted state at startup.
type Restorer interface {
	Restore(surface Surface)
}
