package cmd

import (
	"io"

	"github.com/ginjaninja78/qceff-display/internal/config"
	"github.com/ginjaninja78/qceff-display/internal/display"
	"github.com/ginjaninja78/qceff-display/internal/logging"
)

// runDisplay loads the settings and prints the report for tablePath.
//
// Every failure is wrapped in a tableError so that Execute can name the
// file in its message.
func runDisplay(out, errOut io.Writer, tablePath string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return &tableError{path: tablePath, err: err}
	}
	if sheet != "" {
		cfg.XLSXSheet = sheet
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger := logging.New(errOut, level, cfg.LogFormat)

	result, err := display.New(tablePath, cfg, logger).Run(out, detailed)
	if err != nil {
		return &tableError{path: tablePath, err: err}
	}

	logger.Debug("done",
		"rows", result.Rows,
		"kind", result.Kind,
		"elapsed", result.ProcessingTime,
	)
	return nil
}
