// =============================================================================
// QCEFF Table Display - Main Entry Point
// =============================================================================
//
// This is the main entry point for the QCEFF table display CLI. It hands
// control to the Cobra root command in the cmd package.
//
// USAGE:
//   qceff-display <table.csv>             - Print the summary table
//   qceff-display --detailed <table.csv>  - Summary plus every field per quantity
//   qceff-display version                 - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Table readers, report writer, configuration, logging
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/qceff-display/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
