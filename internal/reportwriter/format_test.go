package reportwriter_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/ginjaninja78/qceff-display/internal/config"
	"github.com/ginjaninja78/qceff-display/internal/reportwriter"
)

func TestFormatDist(t *testing.T) {
	tests := []struct {
		name                             string
		dist, below, above, lower, upper string
		want                             string
	}{
		{
			name: "bnrh alias and sentinel",
			dist: "BOUNDED_NORMAL_RH_DISTRIBUTION", below: ".true.", above: "FALSE", lower: "-888888", upper: "5.0",
			want: "BNRH_DISTRIBUTION [-inf,5.0)",
		},
		{
			name: "normal distribution ignores bounds",
			dist: "NORMAL_DISTRIBUTION", below: "TRUE", above: "TRUE", lower: "0", upper: "1",
			want: "NORMAL_DISTRIBUTION",
		},
		{
			name: "normal distribution any case and padding",
			dist: " Normal_Distribution", below: "TRUE", above: "TRUE", lower: "0", upper: "1",
			want: " Normal_Distribution",
		},
		{
			name: "both bounded",
			dist: "GAMMA_DISTRIBUTION", below: "true", above: "True", lower: "0", upper: "100",
			want: "GAMMA_DISTRIBUTION [0,100]",
		},
		{
			name: "none and empty bounds",
			dist: "BETA_DISTRIBUTION", below: "FALSE", above: "FALSE", lower: "NONE", upper: "",
			want: "BETA_DISTRIBUTION (-inf,inf)",
		},
		{
			name: "upper sentinel is the negative literal",
			dist: "LOG_NORMAL_DISTRIBUTION", below: ".false.", above: ".true.", lower: "0", upper: "888888",
			want: "LOG_NORMAL_DISTRIB.. (0,888888]",
		},
		{
			name: "upper negative sentinel",
			dist: "GAMMA_DISTRIBUTION", below: "", above: "", lower: "0", upper: "-888888",
			want: "GAMMA_DISTRIBUTION (0,inf)",
		},
		{
			name: "fortran upper case flag is not true",
			dist: "GAMMA_DISTRIBUTION", below: ".TRUE.", above: "", lower: "0", upper: "1",
			want: "GAMMA_DISTRIBUTION (0,1)",
		},
		{
			name: "long label truncated before bounds",
			dist: "PARTICLE_FILTER_DISTRIBUTION", below: "TRUE", above: "FALSE", lower: "0", upper: "none",
			want: "PARTICLE_FILTER_DI.. [0,inf)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reportwriter.FormatDist(tt.dist, tt.below, tt.above, tt.lower, tt.upper))
		})
	}
}

func TestFormatDistIdempotentOnNormal(t *testing.T) {
	for _, dist := range []string{"NORMAL_DISTRIBUTION", "normal_distribution"} {
		once := reportwriter.FormatDist(dist, "TRUE", "TRUE", "0", "1")
		twice := reportwriter.FormatDist(once, "TRUE", "TRUE", "0", "1")
		assert.Equal(t, once, twice)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", reportwriter.Truncate(""))
	assert.Equal(t, "BNRH_DISTRIBUTION", reportwriter.Truncate("BNRH_DISTRIBUTION"))

	exactly20 := strings.Repeat("x", 20)
	assert.Equal(t, exactly20, reportwriter.Truncate(exactly20))

	for _, n := range []int{21, 30, 100} {
		got := reportwriter.Truncate(strings.Repeat("y", n))
		assert.Equal(t, 20, utf8.RuneCountInString(got))
		assert.Equal(t, strings.Repeat("y", 18)+"..", got)
	}

	assert.Equal(t, strings.Repeat("α", 18)+"..", reportwriter.Truncate(strings.Repeat("α", 30)))
}

func TestDisplayName(t *testing.T) {
	w := reportwriter.New(config.Default().Summary)

	assert.Equal(t, "TEMPERATURE", w.DisplayName("QTY_TEMPERATURE"))
	assert.Equal(t, "TEMPERATURE", w.DisplayName("TEMPERATURE"))
	assert.Equal(t, "SURFACE_QTY_X", w.DisplayName("SURFACE_QTY_X"))
	assert.Equal(t, "QTY_X", w.DisplayName("QTY_QTY_X"))
}

func TestCustomAliases(t *testing.T) {
	cfg := config.Default()
	cfg.Summary.DistAliases = append(cfg.Summary.DistAliases, config.Alias{Find: "_DISTRIBUTION", Replace: ""})
	w := reportwriter.New(cfg.Summary)

	assert.Equal(t, "BNRH [0,inf)", w.FormatDist("BOUNDED_NORMAL_RH_DISTRIBUTION", "TRUE", "FALSE", "0", ""))
	assert.Equal(t, "GAMMA (-inf,inf)", w.FormatDist("GAMMA_DISTRIBUTION", "", "", "", ""))
}
