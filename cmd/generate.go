// =============================================================================
// Disbursement Report Generator - Generate Command
// =============================================================================
//
// This file defines the 'generate' command, which turns one payment-summary
// JSON file into the three-sheet XLSX report.
//
// COMMAND USAGE:
//   disburse generate --input summary.json [flags]
//
// FLAGS:
//   --input       : Path to the payment-summary JSON file (required)
//   --attachment  : Write the attachment payload (JSON) to this path
//   --stdout      : Print the attachment payload to stdout
//   --no-archive  : Leave the input file where it is after processing
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Load and validate the payment summary
//   3. Build the report document (Transaction, Refund, Ledger sheets)
//   4. Write the XLSX into the output directory
//   5. Optionally encode the document as an email attachment payload
//   6. Archive the processed summary
//
// A single bad record aborts the whole run: no partial report is written.
//
// =============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/heggies-id/disbursement-report/internal/config"
	"github.com/heggies-id/disbursement-report/internal/format"
	"github.com/heggies-id/disbursement-report/internal/mailer"
	"github.com/heggies-id/disbursement-report/internal/report"
	"github.com/heggies-id/disbursement-report/internal/summary"
	"github.com/heggies-id/disbursement-report/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputPath is the path to the payment-summary JSON file.
var inputPath string

// attachmentPath, when set, receives the attachment payload as JSON.
var attachmentPath string

// toStdout prints the attachment payload to stdout.
var toStdout bool

// noArchive leaves the processed input file in place.
var noArchive bool

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

// generateCmd represents the 'generate' command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an XLSX disbursement report from a payment summary",
	Long: `The generate command reads a payment-summary JSON file, builds the
three-sheet XLSX report, and writes it into the configured output directory.

On successful processing:
  - The generated XLSX is placed in the output directory
  - The attachment payload is emitted if requested
  - The input summary is moved to the archive directory

On error nothing is written: a report with silently skipped or malformed
rows is worse than no report, so any invalid date or missing field aborts
the entire run.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the generate command with the root command and sets up
// flags.
func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(
		&inputPath,
		"input",
		"",
		"Path to the payment-summary JSON file",
	)
	generateCmd.MarkFlagRequired("input")

	generateCmd.Flags().StringVar(
		&attachmentPath,
		"attachment",
		"",
		"Write the attachment payload (JSON) to this path",
	)

	generateCmd.Flags().BoolVar(
		&toStdout,
		"stdout",
		false,
		"Print the attachment payload to stdout",
	)

	generateCmd.Flags().BoolVar(
		&noArchive,
		"no-archive",
		false,
		"Leave the input file in place after processing",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runGenerate orchestrates the report-generation pipeline.
func runGenerate() error {
	startTime := time.Now()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(cfg.LogLevel)

	logger.Debug("loading payment summary", "path", inputPath)
	s, err := summary.Load(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load payment summary: %w", err)
	}

	logger.Info("payment summary loaded",
		"merchant", s.Purchase.MerchantName,
		"purchases", len(s.Purchase.Transactions),
		"refunds", s.RefundCount(),
	)

	doc, err := report.BuildReport(s.Purchase.Transactions, s.RefundTransactions())
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	fileName, err := outputFileName(cfg, s)
	if err != nil {
		return err
	}

	fm := utils.NewFileManager(cfg.OutputDir, cfg.ArchiveDir)
	fm.ArchiveOnSuccess = !noArchive
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	outputPath := filepath.Join(cfg.OutputDir, fileName)
	if err := mailer.SaveDocument(doc, outputPath); err != nil {
		return err
	}
	logger.Info("report written", "path", outputPath)

	if attachmentPath != "" || toStdout {
		if err := emitAttachment(doc, fileName, logger); err != nil {
			return err
		}
	}

	if archivePath, err := fm.ArchiveInputFile(inputPath); err != nil {
		return fmt.Errorf("failed to archive input: %w", err)
	} else if archivePath != inputPath {
		logger.Debug("input archived", "path", archivePath)
	}

	fmt.Println("=== Report Complete ===")
	fmt.Printf("Merchant:       %s\n", s.Purchase.MerchantName)
	fmt.Printf("Purchases:      %d\n", len(s.Purchase.Transactions))
	fmt.Printf("Refunds:        %d\n", s.RefundCount())
	fmt.Printf("Output:         %s\n", outputPath)
	fmt.Printf("Time elapsed:   %s\n", time.Since(startTime))

	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// outputFileName resolves the report file name from the configured format
// and the summary's report date.
func outputFileName(cfg *config.Config, s *summary.PaymentSummary) (string, error) {
	reportDate, err := format.ParseDate(s.Purchase.ReportDate)
	if err != nil {
		return "", fmt.Errorf("invalid report date: %w", err)
	}

	return utils.GenerateOutputFileName(cfg.FilenameFormat, map[string]string{
		"label": cfg.ReportLabel,
		"date":  reportDate.Format("02-01-2006"),
	}), nil
}

// emitAttachment encodes the document as an attachment payload and writes it
// to the requested destinations.
func emitAttachment(doc *excelize.File, fileName string, logger *slog.Logger) error {
	base := strings.TrimSuffix(fileName, ".xlsx")
	attachment, err := mailer.ToAttachment(doc, base)
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(attachment, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode attachment payload: %w", err)
	}

	if attachmentPath != "" {
		if err := os.WriteFile(attachmentPath, payload, 0644); err != nil {
			return fmt.Errorf("failed to write attachment payload: %w", err)
		}
		logger.Info("attachment payload written", "path", attachmentPath)
	}
	if toStdout {
		fmt.Println(string(payload))
	}

	return nil
}

// newLogger builds the diagnostic logger. --verbose forces debug level
// regardless of configuration.
func newLogger(configLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch configLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
