// Package commands defines the dogyears CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - (bare)   Launch the interactive calculator
//   - calc     One-shot calculation for a birth date
//   - theme    Set the preferred theme
//   - show     Print the persisted preferences
//
// # Implementation
//
// The root command builds the dependency graph (store, logger, services)
// from the environment and flags before any subcommand runs, so handlers
// share one app context.
package commands
