// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (preference values, store keys) and contracts
// (interfaces) only.
package domain
