package reportwriter

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/ginjaninja78/qceff-display/internal/types"
)

// placeholder stands in for a section the row does not reach.
const placeholder = "N/A"

// summaryHeader names the summary columns.
var summaryHeader = []string{"QUANTITY", "PROBIT_INFL", "PROBIT_STATE", "PROBIT_EXT", "OBS_INC_INFO"}

// probitOffsets lists the probit sections in column order.
var probitOffsets = []int{
	types.ProbitInflationOffset,
	types.ProbitStateOffset,
	types.ProbitExtendedStateOffset,
}

// SummaryCells returns the five summary cells for row, unpadded.
func (w *Writer) SummaryCells(row types.Row) []string {
	cells := make([]string, 0, len(summaryHeader))
	cells = append(cells, w.DisplayName(row.Quantity()))

	for _, offset := range probitOffsets {
		g := row.Group(offset)
		if !g.Present {
			cells = append(cells, placeholder)
			continue
		}
		cells = append(cells, w.FormatDist(g.Kind, g.BoundedBelow, g.BoundedAbove, g.Lower, g.Upper))
	}

	obsInc := row.Group(types.ObsIncInfoOffset)
	if obsInc.Present {
		cells = append(cells, w.Truncate(obsInc.Kind))
	} else {
		cells = append(cells, placeholder)
	}

	return cells
}

// writeSummary writes the summary banner, header, separator and one line per row.
func (w *Writer) writeSummary(buffer *bytes.Buffer, rows []types.Row) {
	writeBanner(buffer, "SUMMARY TABLE", summaryRule)

	widths := w.columnWidths()
	writeSummaryLine(buffer, summaryHeader, widths)

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	buffer.WriteString(strings.Join(sep, " "))
	buffer.WriteByte('\n')

	for _, row := range rows {
		writeSummaryLine(buffer, w.SummaryCells(row), widths)
	}
}

func (w *Writer) columnWidths() []int {
	s := w.settings
	return []int{s.QuantityWidth, s.ProbitWidth, s.ProbitWidth, s.ProbitWidth, s.ObsIncWidth}
}

// writeSummaryLine pads each cell to its column width. Cells wider than the
// column are written in full and push the rest of the line right.
func writeSummaryLine(buffer *bytes.Buffer, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			buffer.WriteByte(' ')
		}
		buffer.WriteString(runewidth.FillRight(cell, widths[i]))
	}
	buffer.WriteByte('\n')
}
