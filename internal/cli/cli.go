// Package cli implements the mathboard command-line interface.
//
// This package provides commands for inspecting, validating, and
// round-tripping board snapshot files, and for managing the autosave
// store. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - inspect: Summarize a snapshot file's objects and constraints
//   - validate: Restore a snapshot and check constraint consistency
//   - roundtrip: Restore a snapshot and re-capture it, reporting drift
//   - autosave: Manage the autosave snapshot store
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
package cli
