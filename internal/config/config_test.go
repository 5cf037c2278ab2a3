package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SEQIZ_LOG_LEVEL", "SEQIZ_FORMAT", "SEQIZ_STRICT", "SEQIZ_PRECISION", "NO_COLOR"} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, FormatText, cfg.Format)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.Strict)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEQIZ_LOG_LEVEL", "DEBUG")
	t.Setenv("SEQIZ_FORMAT", "JSON")
	t.Setenv("SEQIZ_STRICT", "true")
	t.Setenv("SEQIZ_PRECISION", "6")
	t.Setenv("NO_COLOR", "1")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 6, cfg.Precision)
	assert.False(t, cfg.Color)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv_Unset(t *testing.T) {
	clearEnv(t)

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFromEnv_BadStrict(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEQIZ_STRICT", "sometimes")

	_, err := ConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEQIZ_STRICT")
}

func TestConfigFromEnv_BadPrecision(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEQIZ_PRECISION", "high")

	_, err := ConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEQIZ_PRECISION")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"yaml", func(c *Config) { c.Format = FormatYAML }, ""},
		{"trace level", func(c *Config) { c.LogLevel = "trace" }, ""},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, `invalid log level "loud"`},
		{"bad format", func(c *Config) { c.Format = "xml" }, `invalid format "xml"`},
		{"max precision", func(c *Config) { c.Precision = MaxPrecision }, ""},
		{"negative precision", func(c *Config) { c.Precision = -1 }, "invalid precision -1: must be between 0 and 100"},
		{"large precision", func(c *Config) { c.Precision = 101 }, "invalid precision 101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLogLevels(t *testing.T) {
	levels := LogLevels()
	assert.Contains(t, levels, "debug")
	assert.Contains(t, levels, "warning")
	assert.Len(t, levels, 7)
}
