// =============================================================================
// QCEFF Table Display - CSV Parser Module
// =============================================================================
//
// This module reads a QCEFF table from a CSV file. The layout is fixed:
//   Record 1: version line, e.g. "QCEFF table version: 1"
//   Record 2: column headers
//   Record 3+: one record per quantity
//
// The parser does not check the table's contents. Records may have any number
// of fields; the report writer copes with short ones.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/qceff-display/internal/config"
	"github.com/ginjaninja78/qceff-display/internal/types"
	"github.com/ginjaninja78/qceff-display/pkg/utils"
)

// errTooShort is returned for files without both a version and a header record.
var errTooShort = errors.New("table needs a version line and a header line")

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns the table it contains.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV tokenising settings.
//
// RETURNS:
//   - The parsed table.
//   - types.ErrFileNotFound (wrapped) if the path is missing or a directory,
//     a *types.ParseError for anything else.
func Parse(filePath string, settings config.CSVSettings) (*types.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if utils.IsNotExist(err) {
			return nil, types.NotFound(filePath)
		}
		return nil, types.NewParseError(filePath, err)
	}
	defer file.Close()

	if info, err := file.Stat(); err == nil && info.IsDir() {
		return nil, types.NotFound(filePath)
	}

	return ParseReader(bufio.NewReader(file), filePath, settings)
}

// ParseReader reads a table from r. source is recorded on the table and used
// in error messages.
func ParseReader(r io.Reader, source string, settings config.CSVSettings) (*types.Table, error) {
	csvReader := csv.NewReader(r)
	configureReader(csvReader, settings)

	// The whole table is read before anything is returned so that callers
	// never see half a table.
	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, types.NewParseError(source, fmt.Errorf("failed to read CSV: %w", err))
	}

	return build(allRows, source)
}

// build splits raw records into version, headers and data rows.
func build(allRows [][]string, source string) (*types.Table, error) {
	if len(allRows) < 2 || len(allRows[0]) == 0 {
		return nil, types.NewParseError(source, errTooShort)
	}

	table := &types.Table{
		Version: allRows[0][0],
		Headers: allRows[1],
		Rows:    make([]types.Row, 0, len(allRows)-2),
		Source:  source,
	}
	for _, record := range allRows[2:] {
		table.Rows = append(table.Rows, types.Row(record))
	}

	return table, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	switch settings.Delimiter {
	case "\\t", "\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Rows are allowed to be ragged.
	reader.FieldsPerRecord = -1

	reader.LazyQuotes = settings.Lazy()
	reader.TrimLeadingSpace = settings.TrimLeadingSpace
}
