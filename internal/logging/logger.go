// Package logging builds the hclog loggers used by the generator.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Environment variables read by the logger factory.
const (
	EnvLogLevel = "VKGEN_LOG_LEVEL"
	EnvJSONLog  = "VKGEN_JSON_LOG"

	defaultLevel = "warn"
)

// NewLogger creates a new hclog logger with standard settings. Output
// defaults to stderr, JSON output is enabled by VKGEN_JSON_LOG=1.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: os.Getenv(EnvJSONLog) == "1",
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the configured log level from the environment.
func GetLogLevel() string {
	level := os.Getenv(EnvLogLevel)
	if level == "" {
		level = defaultLevel
	}

	return level
}
