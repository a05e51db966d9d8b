// Package app wires application dependencies for the front ends.
//
// It builds the concrete store, logger and high-level services from
// Config, exposing them via the Wire struct for commands to use.
package app
