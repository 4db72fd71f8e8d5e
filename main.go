// =============================================================================
// Disbursement Report Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Disbursement Report Generator CLI.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   disburse generate --input summary.json  - Build the XLSX report
//   disburse version                        - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core report-building logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/heggies-id/disbursement-report/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
