// =============================================================================
// Disbursement Report Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (disburse)
//   ├── generateCmd (disburse generate)
//   └── versionCmd (disburse version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Handing the configuration path to the subcommands
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "disburse",

	Short: "Disbursement Report Generator - Turn payment summaries into XLSX merchant reports",

	Long: `Disbursement Report Generator is a CLI tool that converts a merchant
disbursement payment summary (purchase and refund transactions plus totals)
into a multi-sheet XLSX report, ready to be emailed as an attachment or
stored as a file.

The generated workbook contains three sheets:
  Transaction - all purchases for the period
  Refund      - all refunds for the period
  Ledger      - purchases and refunds merged, ordered by transaction date

Example Usage:
  disburse generate --input summary.json           # Write the XLSX to the output directory
  disburse generate --input summary.json --stdout  # Also print the attachment payload
  disburse generate --config ./my.yaml --input summary.json`,

	// Without a subcommand there is nothing to do; print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// Persistent flags are available to this command and all subcommands.

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
