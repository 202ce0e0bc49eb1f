// =============================================================================
// QCEFF Table Display - Report Writer Module
// =============================================================================
//
// This module renders a parsed QCEFF table as plain text.
//
// REPORT STRUCTURE:
//   QCEFF Table Display / File / Version      (preamble)
//   SUMMARY TABLE                             (one line per quantity)
//   DETAILED INFORMATION                      (detail mode only, one block per quantity)
//   END OF REPORT
//
// The whole report is built in memory and written in one call, so a failed
// write never leaves a report that looks complete.
//
// =============================================================================

package reportwriter

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/qceff-display/internal/config"
	"github.com/ginjaninja78/qceff-display/internal/types"
)

// =============================================================================
// BANNER WIDTHS
// =============================================================================

const (
	// summaryRule is the width of the rules around the summary title.
	summaryRule = 100

	// sectionRule is the width of the rules around every other title.
	sectionRule = 80
)

// =============================================================================
// WRITER STRUCTURE
// =============================================================================

// Writer renders tables using one set of summary settings.
// A Writer holds no per-table state and can be reused.
type Writer struct {
	settings config.SummarySettings
}

// New creates a Writer.
//
// PARAMETERS:
//   - settings: Column widths, prefix and label shortening rules, normally
//     config.Config.Summary after defaults have been applied.
func New(settings config.SummarySettings) *Writer {
	return &Writer{settings: settings}
}

// =============================================================================
// REPORT GENERATION
// =============================================================================

// Render builds the full report for table.
//
// PARAMETERS:
//   - table: The parsed table.
//   - detailed: Whether to append the per-quantity detail blocks.
//
// RETURNS:
//   - The report text.
func (w *Writer) Render(table *types.Table, detailed bool) []byte {
	var buffer bytes.Buffer

	fmt.Fprintln(&buffer, "QCEFF Table Display")
	fmt.Fprintf(&buffer, "File: %s\n", table.Source)
	fmt.Fprintf(&buffer, "Version: %s\n", table.Version)

	w.writeSummary(&buffer, table.Rows)

	if detailed {
		writeBanner(&buffer, "DETAILED INFORMATION", sectionRule)
		for _, row := range table.Rows {
			writeDetail(&buffer, row)
		}
	}

	writeBanner(&buffer, "END OF REPORT", sectionRule)

	return buffer.Bytes()
}

// Write renders table and writes the report to out.
func (w *Writer) Write(out io.Writer, table *types.Table, detailed bool) error {
	if _, err := out.Write(w.Render(table, detailed)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// writeBanner writes a blank line and a title framed by rules.
func writeBanner(buffer *bytes.Buffer, title string, width int) {
	rule := strings.Repeat("=", width)
	fmt.Fprintf(buffer, "\n%s\n%s\n%s\n", rule, title, rule)
}
