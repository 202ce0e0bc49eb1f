// =============================================================================
// QCEFF Table Display - Configuration Module
// =============================================================================
//
// This module loads the optional settings file. Every setting has a default,
// so the tool runs without any configuration at all; the file only exists for
// sites whose tables use a different delimiter, a different quantity prefix,
// or extra distribution aliases.
//
// EXAMPLE (qceff.yaml):
//   csv_settings:
//     delimiter: ","
//   summary:
//     strip_prefix: "QTY_"
//     dist_aliases:
//       - find: BOUNDED_NORMAL_RH_DISTRIBUTION
//         replace: BNRH_DISTRIBUTION
//   xlsx_sheet: "QCEFF"
//   log_level: warn
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds all settings for reading and rendering a table.
type Config struct {
	// CSVSettings controls how CSV tables are tokenised.
	CSVSettings CSVSettings `yaml:"csv_settings"`

	// Summary controls the condensed summary table.
	Summary SummarySettings `yaml:"summary"`

	// XLSXSheet is the worksheet read from .xlsx tables.
	// Default: "" (the first sheet)
	XLSXSheet string `yaml:"xlsx_sheet"`

	// LogLevel controls the verbosity of diagnostics on stderr.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "warn"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the diagnostics encoding: "text" or "json".
	// Default: "text"
	LogFormat string `yaml:"log_format"`
}

// =============================================================================
// CSV SETTINGS STRUCTURE
// =============================================================================

// CSVSettings contains settings for parsing CSV tables.
type CSVSettings struct {
	// Delimiter is the field separator. "tab", "\t", "pipe" and "semicolon"
	// are accepted as names.
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// LazyQuotes tolerates stray quotes inside unquoted fields.
	// Default: true
	LazyQuotes *bool `yaml:"lazy_quotes"`

	// TrimLeadingSpace drops spaces after a delimiter. Off by default so that
	// fields reach the report verbatim.
	TrimLeadingSpace bool `yaml:"trim_leading_space"`
}

// Lazy reports the effective LazyQuotes setting.
func (s CSVSettings) Lazy() bool {
	return s.LazyQuotes == nil || *s.LazyQuotes
}

// =============================================================================
// SUMMARY SETTINGS STRUCTURE
// =============================================================================

// SummarySettings controls column layout and label shortening.
type SummarySettings struct {
	// StripPrefix is removed from the start of quantity names.
	// Default: "QTY_"
	StripPrefix string `yaml:"strip_prefix"`

	// QuantityWidth, ProbitWidth and ObsIncWidth are the column widths.
	// Defaults: 30, 30, 20
	QuantityWidth int `yaml:"quantity_width"`
	ProbitWidth   int `yaml:"probit_width"`
	ObsIncWidth   int `yaml:"obs_inc_width"`

	// MaxLabelLength is the longest label shown untouched. Longer labels are
	// cut to TruncateTo characters followed by Ellipsis.
	// Defaults: 20, 18, ".."
	MaxLabelLength int    `yaml:"max_label_length"`
	TruncateTo     int    `yaml:"truncate_to"`
	Ellipsis       string `yaml:"ellipsis"`

	// DistAliases shorten distribution names before truncation.
	// Applied in order. The BNRH alias is always applied first.
	DistAliases []Alias `yaml:"dist_aliases"`
}

// Alias replaces every occurrence of Find with Replace.
type Alias struct {
	Find    string `yaml:"find"`
	Replace string `yaml:"replace"`
}

// DefaultAliases are applied to every distribution label.
var DefaultAliases = []Alias{
	{Find: "BOUNDED_NORMAL_RH_DISTRIBUTION", Replace: "BNRH_DISTRIBUTION"},
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns the settings used when no configuration file is given.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file. An empty path yields
//     the defaults.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.CSVSettings.Delimiter == "" {
		config.CSVSettings.Delimiter = ","
	}

	s := &config.Summary
	if s.StripPrefix == "" {
		s.StripPrefix = "QTY_"
	}
	if s.QuantityWidth == 0 {
		s.QuantityWidth = 30
	}
	if s.ProbitWidth == 0 {
		s.ProbitWidth = 30
	}
	if s.ObsIncWidth == 0 {
		s.ObsIncWidth = 20
	}
	if s.MaxLabelLength == 0 {
		s.MaxLabelLength = 20
	}
	if s.TruncateTo == 0 {
		s.TruncateTo = 18
	}
	if s.Ellipsis == "" {
		s.Ellipsis = ".."
	}
	s.DistAliases = append(append([]Alias{}, DefaultAliases...), s.DistAliases...)

	if config.LogLevel == "" {
		config.LogLevel = "warn"
	}
	if config.LogFormat == "" {
		config.LogFormat = "text"
	}
}

// validate rejects settings that would make the summary unreadable.
func validate(config *Config) error {
	s := config.Summary

	if s.QuantityWidth < 0 || s.ProbitWidth < 0 || s.ObsIncWidth < 0 {
		return errors.New("column widths must be positive")
	}
	if s.TruncateTo < 0 || s.TruncateTo >= s.MaxLabelLength {
		return fmt.Errorf("truncate_to (%d) must be below max_label_length (%d)", s.TruncateTo, s.MaxLabelLength)
	}
	for i, alias := range s.DistAliases {
		if alias.Find == "" {
			return fmt.Errorf("dist_aliases[%d]: find must not be empty", i)
		}
	}

	switch config.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", config.LogFormat)
	}

	return nil
}
