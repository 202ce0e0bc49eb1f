// =============================================================================
// QCEFF Table Display - Shared Types
// =============================================================================
//
// This package contains the table model shared by the readers and the report
// writer, kept separate to avoid import cycles. Types defined here are used by:
//   - csvparser
//   - xlsxparser
//   - reportwriter
//   - display
//
// ROW LAYOUT (QCEFF table version 1):
//   0       quantity name
//   1-4     obs error info        (bounded below, bounded above, lower, upper)
//   5-9     probit inflation      (dist type, bounded below, bounded above, lower, upper)
//   10-14   probit state          (same layout as probit inflation)
//   15-19   probit extended state (same layout as probit inflation)
//   20-24   obs inc info          (filter kind, bounded below, bounded above, lower, upper)
//
// =============================================================================

package types

// =============================================================================
// FIELD OFFSETS
// =============================================================================

const (
	// QuantityField is the index of the quantity name (e.g. "QTY_TEMPERATURE").
	QuantityField = 0

	// ObsErrorOffset is the first field of the obs error info section.
	// Unlike the other sections it has no leading kind field.
	ObsErrorOffset = 1

	// ProbitInflationOffset is the dist type field of the probit inflation section.
	ProbitInflationOffset = 5

	// ProbitStateOffset is the dist type field of the probit state section.
	ProbitStateOffset = 10

	// ProbitExtendedStateOffset is the dist type field of the probit extended state section.
	ProbitExtendedStateOffset = 15

	// ObsIncInfoOffset is the filter kind field of the obs inc info section.
	ObsIncInfoOffset = 20

	// FieldCount is the number of logical fields in a version 1 row.
	FieldCount = 25
)

// =============================================================================
// TABLE
// =============================================================================

// Table is a QCEFF table as read from disk.
// It is built once by a reader and never modified afterwards.
type Table struct {
	// Version is the first field of the first record, verbatim
	// (e.g. "QCEFF table version: 1").
	Version string

	// Headers is the second record of the file.
	Headers []string

	// Rows contains every record after the header, in file order.
	Rows []Row

	// Source is the path the table was read from.
	Source string
}

// =============================================================================
// ROW
// =============================================================================

// Row is one quantity's configuration. Rows may be shorter than FieldCount;
// missing fields read as empty strings.
type Row []string

// Field returns the field at index i, or "" when the row is too short.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Has reports whether field i is physically present in the row.
func (r Row) Has(i int) bool {
	return i >= 0 && i < len(r)
}

// Quantity returns the raw quantity name.
func (r Row) Quantity() string {
	return r.Field(QuantityField)
}

// Group extracts the five-field section starting at offset.
// Use it for the probit sections and obs inc info; obs error info has no kind
// field and is read with Bounds.
func (r Row) Group(offset int) Group {
	return Group{
		Kind:    r.Field(offset),
		Bounds:  r.Bounds(offset + 1),
		Present: r.Has(offset),
	}
}

// Bounds extracts the four bound fields starting at offset.
func (r Row) Bounds(offset int) Bounds {
	return Bounds{
		BoundedBelow: r.Field(offset),
		BoundedAbove: r.Field(offset + 1),
		Lower:        r.Field(offset + 2),
		Upper:        r.Field(offset + 3),
	}
}

// =============================================================================
// SECTIONS
// =============================================================================

// Bounds holds the boundedness flags and bound values of a section, verbatim.
type Bounds struct {
	BoundedBelow string
	BoundedAbove string
	Lower        string
	Upper        string
}

// Group is a section with a leading kind field: a distribution type for the
// probit sections, a filter kind for obs inc info.
type Group struct {
	Kind string
	Bounds

	// Present is false when the row ends before the kind field.
	Present bool
}
