package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Format selects how results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// AllFormats returns the supported output formats.
func AllFormats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// Config holds runtime settings for the CLI.
type Config struct {
	// LogLevel is a logrus level name. Default: "warn".
	LogLevel string

	// Format is the output format. Default: text.
	Format Format

	// Color enables styled text output. Disabled by NO_COLOR.
	Color bool

	// Strict rejects quadratic fits with non-integer coefficients.
	Strict bool

	// Precision is the number of decimal places shown next to
	// non-integer values. 0 disables the approximation.
	Precision int
}

// MaxPrecision bounds Precision.
const MaxPrecision = 100

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Format:   FormatText,
		Color:    true,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if l := os.Getenv("SEQIZ_LOG_LEVEL"); l != "" {
		cfg.LogLevel = strings.ToLower(l)
	}
	if f := os.Getenv("SEQIZ_FORMAT"); f != "" {
		cfg.Format = Format(strings.ToLower(f))
	}
	if s := os.Getenv("SEQIZ_STRICT"); s != "" {
		strict, err := strconv.ParseBool(s)
		if err != nil {
			return cfg, fmt.Errorf("SEQIZ_STRICT: %w", err)
		}
		cfg.Strict = strict
	}
	if s := os.Getenv("SEQIZ_PRECISION"); s != "" {
		prec, err := strconv.Atoi(s)
		if err != nil {
			return cfg, fmt.Errorf("SEQIZ_PRECISION: %w", err)
		}
		cfg.Precision = prec
	}
	// https://no-color.org: any non-empty value disables color.
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}

	return cfg, nil
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: choose from %s", c.LogLevel, strings.Join(LogLevels(), ", "))
	}

	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("invalid precision %d: must be between 0 and %d", c.Precision, MaxPrecision)
	}

	for _, f := range AllFormats() {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be text, json or yaml", c.Format)
}

// LogLevels returns the names of all logrus levels.
func LogLevels() []string {
	levels := make([]string, 0, len(logrus.AllLevels))
	for _, l := range logrus.AllLevels {
		levels = append(levels, l.String())
	}
	return levels
}
