package domain

// Theme is the two-valued visual preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// NormalizeTheme maps an arbitrary stored or user-supplied value onto a
// valid Theme. Anything other than exactly "dark" falls back to light.
func NormalizeTheme(v string) Theme {
	if Theme(v) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Preference store keys. Versioned so a future schema change can move to
// fresh keys without clashing with old persisted values.
const (
	KeyBirthDate  = "birth_date_v1"
	KeyResultText = "result_text_v1"
	KeyTheme      = "theme_v1"
)
