// =============================================================================
// QCEFF Table Display - Display Pipeline
// =============================================================================
//
// This module runs one report from start to finish:
//   1. Pick a reader from the file extension
//   2. Read the whole table
//   3. Render the report in memory
//   4. Write it out in one piece
//
// Nothing is written until the table has been read completely, so a bad file
// produces an error and no output at all.
//
// =============================================================================

package display

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/qceff-display/internal/config"
	"github.com/ginjaninja78/qceff-display/internal/csvparser"
	"github.com/ginjaninja78/qceff-display/internal/reportwriter"
	"github.com/ginjaninja78/qceff-display/internal/types"
	"github.com/ginjaninja78/qceff-display/internal/xlsxparser"
	"github.com/ginjaninja78/qceff-display/pkg/utils"
)

// =============================================================================
// SOURCE KINDS
// =============================================================================

// SourceKind identifies which reader handled a table.
type SourceKind string

const (
	SourceCSV  SourceKind = "csv"
	SourceXLSX SourceKind = "xlsx"
)

// sourceKind maps a path to its reader. Anything that is not a workbook is
// read as CSV, whatever its extension.
func sourceKind(path string) SourceKind {
	switch utils.Ext(path) {
	case ".xlsx", ".xlsm":
		return SourceXLSX
	default:
		return SourceCSV
	}
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result describes a completed report.
type Result struct {
	// FilePath is the table that was displayed.
	FilePath string

	// Kind is the reader that handled the file.
	Kind SourceKind

	// Version is the table's version line.
	Version string

	// Rows is the number of quantities in the report.
	Rows int

	// ShortRows counts rows with fewer than types.FieldCount fields.
	ShortRows int

	// Bytes is the size of the written report.
	Bytes int

	// ProcessingTime is the time taken from opening the file to the last write.
	ProcessingTime time.Duration
}

// =============================================================================
// DISPLAY STRUCTURE
// =============================================================================

// Display produces the report for a single table file.
type Display struct {
	path   string
	config *config.Config
	writer *reportwriter.Writer
	logger *slog.Logger
}

// New creates a Display for the table at path.
//
// PARAMETERS:
//   - path: The CSV or XLSX table to display.
//   - cfg: Settings with defaults applied; nil means config.Default().
//   - logger: Diagnostics sink; nil means slog.Default().
func New(path string, cfg *config.Config, logger *slog.Logger) *Display {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Display{
		path:   path,
		config: cfg,
		writer: reportwriter.New(cfg.Summary),
		logger: logger.With("run_id", uuid.NewString(), "file", path),
	}
}

// Run reads the table and writes the report to out.
//
// PARAMETERS:
//   - out: Where the report goes.
//   - detailed: Whether to include the per-quantity detail blocks.
//
// RETURNS:
//   - A Result describing the report.
//   - An error wrapping types.ErrFileNotFound or a *types.ParseError when the
//     table cannot be read, or the write error.
func (d *Display) Run(out io.Writer, detailed bool) (Result, error) {
	startTime := time.Now()
	result := Result{
		FilePath: d.path,
		Kind:     sourceKind(d.path),
	}

	// =========================================================================
	// STEP 1: READ THE TABLE
	// =========================================================================

	d.logger.Debug("reading table", "kind", result.Kind)

	table, err := d.read(result.Kind)
	if err != nil {
		d.logger.Debug("read failed", "error", err)
		return result, err
	}

	result.Version = table.Version
	result.Rows = len(table.Rows)
	for _, row := range table.Rows {
		if len(row) < types.FieldCount {
			result.ShortRows++
			d.logger.Debug("short row", "quantity", row.Quantity(), "fields", len(row))
		}
	}

	d.logger.Info("table read",
		"version", table.Version,
		"headers", len(table.Headers),
		"rows", result.Rows,
		"short_rows", result.ShortRows,
	)

	// =========================================================================
	// STEP 2: RENDER AND WRITE
	// =========================================================================

	report := d.writer.Render(table, detailed)
	n, err := out.Write(report)
	result.Bytes = n
	if err != nil {
		return result, fmt.Errorf("failed to write report: %w", err)
	}

	result.ProcessingTime = time.Since(startTime)
	d.logger.Debug("report written", "bytes", n, "detailed", detailed, "elapsed", result.ProcessingTime)

	return result, nil
}

// read dispatches to the reader for kind.
func (d *Display) read(kind SourceKind) (*types.Table, error) {
	if size, err := utils.GetFileSize(d.path); err == nil {
		d.logger.Debug("table file", "size", size)
	}

	switch kind {
	case SourceXLSX:
		return xlsxparser.Parse(d.path, d.config.XLSXSheet)
	default:
		return csvparser.Parse(d.path, d.config.CSVSettings)
	}
}
