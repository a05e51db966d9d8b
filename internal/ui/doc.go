// Package ui is the interactive terminal front end.
//
// Its Bubble Tea model owns the widgets the services treat as the abstract
// UI surface: the date input, the result area, and the theme toggle with
// its action label. Styling is a lipgloss palette pair, one per theme.
package ui
