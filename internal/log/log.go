// Package log builds the diagnostic logger. Search results are written by
// the report package, never through the logger.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Config holds details necessary for logging.
type Config struct {
	// Format specifies the output log format.
	// Accepted values are: text, json
	Format string

	// Level is the minimum log level that should appear on the output.
	// Unknown values fall back to warn.
	Level string

	// Output defaults to stderr.
	Output io.Writer
}

// NewLogger creates a new logger.
func NewLogger(config Config) *logrus.Logger {
	logger := logrus.New()

	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	logger.SetOutput(output)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:          true,
		EnvironmentOverrideColors: true,
	})

	if config.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	return logger
}

// Discard returns a logger that drops everything, for tests and library use.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return logger
}
