package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/sequence"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()

	require.Equal(t, sequence.DefaultLimit, cfg.Limit)
	require.Equal(t, sequence.DefaultCount, cfg.Count)
	require.Equal(t, DefaultLogLevel, cfg.LogLevel)
	require.Empty(t, cfg.MetricsFile)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantLevel   string
		wantMetrics string
	}{
		{
			name:      "no environment",
			wantLevel: DefaultLogLevel,
		},
		{
			name:      "log level",
			env:       map[string]string{"FIBSEQ_LOG_LEVEL": "debug"},
			wantLevel: "debug",
		},
		{
			name:      "log level is normalized",
			env:       map[string]string{"FIBSEQ_LOG_LEVEL": "  INFO "},
			wantLevel: "info",
		},
		{
			name:      "unknown log level keeps default",
			env:       map[string]string{"FIBSEQ_LOG_LEVEL": "loud"},
			wantLevel: DefaultLogLevel,
		},
		{
			name:        "metrics file",
			env:         map[string]string{"FIBSEQ_METRICS_FILE": "/tmp/fibseq.prom"},
			wantLevel:   DefaultLogLevel,
			wantMetrics: "/tmp/fibseq.prom",
		},
		{
			name:      "bounds are not configurable",
			env:       map[string]string{"FIBSEQ_LIMIT": "5", "FIBSEQ_COUNT": "2"},
			wantLevel: DefaultLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"FIBSEQ_LOG_LEVEL", "FIBSEQ_METRICS_FILE", "FIBSEQ_LIMIT", "FIBSEQ_COUNT"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := Load()

			require.Equal(t, tt.wantLevel, cfg.LogLevel)
			require.Equal(t, tt.wantMetrics, cfg.MetricsFile)
			require.Equal(t, sequence.DefaultLimit, cfg.Limit)
			require.Equal(t, sequence.DefaultCount, cfg.Count)
		})
	}
}

func TestAppConfig_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		mutate    func(*AppConfig)
		wantField string
	}{
		{"zero limit", func(c *AppConfig) { c.Limit = 0 }, "limit"},
		{"negative count", func(c *AppConfig) { c.Count = -1 }, "count"},
		{"bad log level", func(c *AppConfig) { c.LogLevel = "loud" }, "log level"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			var validationErr apperrors.ValidationError
			require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %v", err)
			require.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}
