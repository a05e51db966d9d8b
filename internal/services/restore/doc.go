// Package restore repopulates the UI surface from persisted state when the
// app starts. Stored values go back verbatim; nothing is recalculated.
package restore
