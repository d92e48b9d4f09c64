package config

import (
	"os"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	ConvergenceDelay time.Duration // Fixed wait between function app creation and publish
	Command          time.Duration // Upper bound for a single az or func invocation
	HTTP             time.Duration // Timeout for token and management-plane requests
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - IOTPORG_CONVERGENCE_DELAY (default: 10s)
//   - IOTPORG_COMMAND_TIMEOUT (default: 10m)
//   - IOTPORG_HTTP_TIMEOUT (default: 30s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		ConvergenceDelay: parseDuration("IOTPORG_CONVERGENCE_DELAY", 10*time.Second),
		Command:          parseDuration("IOTPORG_COMMAND_TIMEOUT", 10*time.Minute),
		HTTP:             parseDuration("IOTPORG_HTTP_TIMEOUT", 30*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d < 0 {
		return defaultVal
	}

	return d
}
