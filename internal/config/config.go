// =============================================================================
// Disbursement Report Generator - Configuration Module
// =============================================================================
//
// This module loads and manages the application configuration. One YAML file
// covers the whole tool; there is no per-merchant configuration because the
// merchant identity travels inside each payment summary.
//
// ARCHITECTURE:
//   The configuration system is designed to be:
//   - Small: only the knobs the generate command actually reads
//   - Defaulted: a missing config file still yields a working setup
//   - Validated: referenced directories are created on load
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration, loaded from config.yaml.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// OutputDir is the directory where generated XLSX reports are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory where processed payment-summary files are
	// moved after a successful run. Failed inputs stay where they were.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// =========================================================================
	// REPORT SETTINGS
	// =========================================================================

	// ReportLabel is the human-readable prefix used in report and attachment
	// file names.
	// Default: "Disbursement Report"
	ReportLabel string `yaml:"report_label"`

	// FilenameFormat defines the format for output file names.
	// Placeholders:
	//   {label}     - The report label
	//   {date}      - The report date (DD-MM-YYYY)
	//   {timestamp} - Generation timestamp (YYYYMMDD_HHMMSS)
	//   {uuid}      - A random UUID
	//
	// The extension is appended by the writer.
	// Default: "{label} {date}"
	FilenameFormat string `yaml:"filename_format"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of diagnostic logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads the configuration from a YAML file, applies defaults, and
// ensures the referenced directories exist. A missing file is not an error:
// the defaults describe a complete working setup.
func Load(configPath string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// Fall through to defaults.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.ArchiveDir == "" {
		config.ArchiveDir = "./archive"
	}
	if config.ReportLabel == "" {
		config.ReportLabel = "Disbursement Report"
	}
	if config.FilenameFormat == "" {
		config.FilenameFormat = "{label} {date}"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}

// validate checks the configuration and creates missing directories.
func validate(config *Config) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	dirs := []string{
		config.OutputDir,
		config.ArchiveDir,
	}
	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	return nil
}
