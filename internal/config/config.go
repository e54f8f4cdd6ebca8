// Package config assembles the application configuration. The sequence
// bounds are fixed; only diagnostics (log level, metrics textfile) can be
// tuned, through FIBSEQ_-prefixed environment variables.
package config

import (
	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/logging"
	"github.com/agbru/fibseq/internal/sequence"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "FIBSEQ_"

// DefaultLogLevel keeps a normal run silent on stderr.
const DefaultLogLevel = "warn"

// AppConfig holds the settings of a single run.
type AppConfig struct {
	// Limit is the inclusive upper bound on generated terms.
	Limit int
	// Count is the number of trailing terms printed.
	Count int
	// LogLevel is a zerolog level name for stderr diagnostics.
	LogLevel string
	// MetricsFile, when non-empty, receives the run's metrics in Prometheus
	// text format.
	MetricsFile string
}

// DefaultConfig returns the fixed bounds with default diagnostics.
func DefaultConfig() AppConfig {
	return AppConfig{
		Limit:    sequence.DefaultLimit,
		Count:    sequence.DefaultCount,
		LogLevel: DefaultLogLevel,
	}
}

// Load returns DefaultConfig with environment overrides applied.
func Load() AppConfig {
	cfg := DefaultConfig()
	applyEnvOverrides(&cfg)
	return cfg
}

// Validate reports the first invalid field as a ValidationError.
func (c AppConfig) Validate() error {
	if c.Limit < 1 {
		return apperrors.ValidationError{Field: "limit", Message: "must be at least 1"}
	}
	if c.Count < 1 {
		return apperrors.ValidationError{Field: "count", Message: "must be at least 1"}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.ValidationError{Field: "log level", Message: err.Error()}
	}
	return nil
}
