// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strings"

	"github.com/agbru/fibseq/internal/logging"
)

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the FIBSEQ_ prefix) to a function that
// applies the env value.
type envOverride struct {
	envKey string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
// The sequence bounds have no override.
var envOverrides = []envOverride{
	{"LOG_LEVEL", func(c *AppConfig, v string) {
		v = strings.ToLower(strings.TrimSpace(v))
		// Unknown levels keep the default; the run itself must not fail.
		if _, err := logging.ParseLevel(v); err == nil {
			c.LogLevel = v
		}
	}},
	{"METRICS_FILE", func(c *AppConfig, v string) {
		c.MetricsFile = strings.TrimSpace(v)
	}},
}

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// applyEnvOverrides applies every non-empty FIBSEQ_ variable to config.
//
// Supported environment variables (all prefixed with FIBSEQ_):
//   - LOG_LEVEL, METRICS_FILE
func applyEnvOverrides(config *AppConfig) {
	for _, o := range envOverrides {
		if val := getEnvString(o.envKey, ""); val != "" {
			o.apply(config, val)
		}
	}
}
