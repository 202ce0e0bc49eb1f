// =============================================================================
// QCEFF Table Display - XLSX Parser Module
// =============================================================================
//
// Some sites maintain their QCEFF table in a spreadsheet and export the CSV
// only when running the assimilation. This module reads the workbook directly
// so the report can be produced from either form.
//
// SHEET LAYOUT (same as the CSV):
//   Row 1: version in column A
//   Row 2: column headers
//   Row 3+: one row per quantity
//
// excelize drops trailing empty cells from each row, so rows come back ragged.
// That is fine: the report writer treats missing fields as absent.
//
// =============================================================================

package xlsxparser

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/qceff-display/internal/types"
	"github.com/ginjaninja78/qceff-display/pkg/utils"
)

// errTooShort is returned for sheets without both a version and a header row.
var errTooShort = errors.New("sheet needs a version row and a header row")

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a QCEFF table from an XLSX workbook.
//
// PARAMETERS:
//   - workbookPath: The path to the XLSX file.
//   - sheetName: The worksheet to read. Empty means the first sheet.
//
// RETURNS:
//   - The parsed table.
//   - types.ErrFileNotFound (wrapped) if the workbook is missing,
//     a *types.ParseError for anything else.
func Parse(workbookPath, sheetName string) (*types.Table, error) {
	if !utils.FileExists(workbookPath) {
		return nil, types.NotFound(workbookPath)
	}

	f, err := excelize.OpenFile(workbookPath)
	if err != nil {
		return nil, types.NewParseError(workbookPath, fmt.Errorf("failed to open workbook: %w", err))
	}
	defer f.Close()

	return ParseFile(f, workbookPath, sheetName)
}

// ParseFile reads a table from an already opened workbook.
func ParseFile(f *excelize.File, source, sheetName string) (*types.Table, error) {
	if sheetName == "" {
		sheetName = f.GetSheetName(0)
		if sheetName == "" {
			return nil, types.NewParseError(source, errors.New("workbook has no sheets"))
		}
	}

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, types.NewParseError(source, fmt.Errorf("sheet %q not found", sheetName))
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, types.NewParseError(source, fmt.Errorf("failed to read rows: %w", err))
	}

	if len(rows) < 2 || len(rows[0]) == 0 {
		return nil, types.NewParseError(source, errTooShort)
	}

	table := &types.Table{
		Version: rows[0][0],
		Headers: rows[1],
		Rows:    make([]types.Row, 0, len(rows)-2),
		Source:  source,
	}

	for _, row := range rows[2:] {
		// GetRows returns empty slices for blank rows between data rows;
		// the CSV reader skips blank lines, so do the same here.
		if isRowEmpty(row) {
			continue
		}
		table.Rows = append(table.Rows, types.Row(row))
	}

	return table, nil
}

// isRowEmpty checks if a row contains no cells at all.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
