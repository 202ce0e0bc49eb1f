package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/qceff-display/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qceff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, ",", cfg.CSVSettings.Delimiter)
	assert.True(t, cfg.CSVSettings.Lazy())
	assert.False(t, cfg.CSVSettings.TrimLeadingSpace)
	assert.Equal(t, "QTY_", cfg.Summary.StripPrefix)
	assert.Equal(t, 30, cfg.Summary.QuantityWidth)
	assert.Equal(t, 30, cfg.Summary.ProbitWidth)
	assert.Equal(t, 20, cfg.Summary.ObsIncWidth)
	assert.Equal(t, 20, cfg.Summary.MaxLabelLength)
	assert.Equal(t, 18, cfg.Summary.TruncateTo)
	assert.Equal(t, "..", cfg.Summary.Ellipsis)
	assert.Equal(t, config.DefaultAliases, cfg.Summary.DistAliases)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
csv_settings:
  delimiter: ";"
  lazy_quotes: false
summary:
  strip_prefix: "KIND_"
  probit_width: 24
  dist_aliases:
    - find: GAMMA_DISTRIBUTION
      replace: GAMMA
xlsx_sheet: QCEFF
log_level: debug
log_format: json
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.CSVSettings.Delimiter)
	assert.False(t, cfg.CSVSettings.Lazy())
	assert.Equal(t, "KIND_", cfg.Summary.StripPrefix)
	assert.Equal(t, 24, cfg.Summary.ProbitWidth)
	assert.Equal(t, 30, cfg.Summary.QuantityWidth)
	assert.Equal(t, "QCEFF", cfg.XLSXSheet)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []config.Alias{
		{Find: "BOUNDED_NORMAL_RH_DISTRIBUTION", Replace: "BNRH_DISTRIBUTION"},
		{Find: "GAMMA_DISTRIBUTION", Replace: "GAMMA"},
	}, cfg.Summary.DistAliases)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bad yaml", body: "summary: [", want: "failed to parse config file"},
		{name: "truncation", body: "summary:\n  truncate_to: 25\n", want: "truncate_to (25)"},
		{name: "negative width", body: "summary:\n  obs_inc_width: -1\n", want: "column widths"},
		{name: "empty alias", body: "summary:\n  dist_aliases:\n    - replace: X\n", want: "find must not be empty"},
		{name: "log format", body: "log_format: xml\n", want: "unknown log_format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
