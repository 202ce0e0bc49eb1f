package reportwriter

import (
	"bytes"
	"fmt"

	"github.com/ginjaninja78/qceff-display/internal/types"
)

// detailSection is one labelled block of a quantity's detail dump.
type detailSection struct {
	title string

	// kindLabel names the leading kind field; empty for obs error info,
	// which starts directly with the bounds.
	kindLabel string

	offset int
}

// detailSections lists the blocks in the order they are printed.
var detailSections = []detailSection{
	{title: "OBS ERROR INFO", offset: types.ObsErrorOffset},
	{title: "PROBIT INFLATION", kindLabel: "Dist Type", offset: types.ProbitInflationOffset},
	{title: "PROBIT STATE", kindLabel: "Dist Type", offset: types.ProbitStateOffset},
	{title: "PROBIT EXTENDED STATE", kindLabel: "Dist Type", offset: types.ProbitExtendedStateOffset},
	{title: "OBS INC INFO", kindLabel: "Filter Kind", offset: types.ObsIncInfoOffset},
}

// writeDetail dumps every field of row verbatim. Unlike the summary, nothing
// is shortened or interpreted here; missing fields print empty.
func writeDetail(buffer *bytes.Buffer, row types.Row) {
	writeBanner(buffer, "QUANTITY: "+row.Quantity(), sectionRule)

	for _, section := range detailSections {
		fmt.Fprintf(buffer, "\n%s:\n", section.title)

		offset := section.offset
		if section.kindLabel != "" {
			writeField(buffer, section.kindLabel, row.Field(offset))
			offset++
		}

		b := row.Bounds(offset)
		writeField(buffer, "Bounded Below", b.BoundedBelow)
		writeField(buffer, "Bounded Above", b.BoundedAbove)
		writeField(buffer, "Lower Bound", b.Lower)
		writeField(buffer, "Upper Bound", b.Upper)
	}
}

func writeField(buffer *bytes.Buffer, label, value string) {
	fmt.Fprintf(buffer, "  %-15s%s\n", label+":", value)
}
