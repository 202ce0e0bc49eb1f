package reportwriter

import (
	"strings"

	"github.com/ginjaninja78/qceff-display/internal/config"
	"github.com/ginjaninja78/qceff-display/internal/types"
)

// normalDistribution never gets a bound expression: it is unbounded by
// definition, whatever the flags say.
const normalDistribution = "NORMAL_DISTRIBUTION"

// defaultWriter backs the package-level helpers.
var defaultWriter = New(config.Default().Summary)

// FormatDist formats a probit distribution with the default settings.
// See Writer.FormatDist.
func FormatDist(dist, below, above, lower, upper string) string {
	return defaultWriter.FormatDist(dist, below, above, lower, upper)
}

// Truncate shortens a label with the default settings. See Writer.Truncate.
func Truncate(label string) string {
	return defaultWriter.Truncate(label)
}

// FormatDist renders a probit section for the summary table, e.g.
//
//	BOUNDED_NORMAL_RH_DISTRIBUTION, .true., FALSE, -888888, 5.0
//	  -> "BNRH_DISTRIBUTION [-inf,5.0)"
//
// Aliases are applied first and the label is truncated on its own; the bound
// expression is never cut.
func (w *Writer) FormatDist(dist, below, above, lower, upper string) string {
	dist = w.shorten(dist)
	label := w.Truncate(dist)

	if strings.EqualFold(strings.TrimSpace(dist), normalDistribution) {
		return label
	}

	open, closing := "(", ")"
	if types.IsTrue(below) {
		open = "["
	}
	if types.IsTrue(above) {
		closing = "]"
	}

	lo, hi := lower, upper
	if types.IsUnbounded(lower) {
		lo = "-inf"
	}
	if types.IsUnbounded(upper) {
		hi = "inf"
	}

	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteString(" ")
	sb.WriteString(open)
	sb.WriteString(lo)
	sb.WriteString(",")
	sb.WriteString(hi)
	sb.WriteString(closing)
	return sb.String()
}

// Truncate cuts labels longer than MaxLabelLength characters down to
// TruncateTo characters plus the ellipsis. Lengths count runes.
func (w *Writer) Truncate(label string) string {
	runes := []rune(label)
	if len(runes) <= w.settings.MaxLabelLength {
		return label
	}
	return string(runes[:w.settings.TruncateTo]) + w.settings.Ellipsis
}

// DisplayName strips the quantity prefix for the summary table.
func (w *Writer) DisplayName(quantity string) string {
	return strings.TrimPrefix(quantity, w.settings.StripPrefix)
}

// shorten applies the distribution aliases in order.
func (w *Writer) shorten(dist string) string {
	for _, alias := range w.settings.DistAliases {
		dist = strings.ReplaceAll(dist, alias.Find, alias.Replace)
	}
	return dist
}
