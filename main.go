// =============================================================================
// FIRE 1099 Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the FIRE 1099 converter CLI. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   fire1099 convert INPUT   - Convert a JSON filing into a FIRE file
//   fire1099 validate INPUT  - Schema-check a JSON filing
//   fire1099 version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core conversion logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/firefmt/fire-1099/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
