package config

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Log handler formats.
const (
	LogFormatCLI  = "cli"
	LogFormatText = "text"
)

// LogConfig holds settings for structured logging.
type LogConfig struct {
	// Level is an apex/log level name: debug, info, warn, error or fatal
	Level string

	// Format selects the handler, LogFormatCLI or LogFormatText
	Format string

	// Output is where log entries are written
	Output io.Writer
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "warn",
		Format: LogFormatCLI,
		Output: os.Stderr,
	}
}

// Validate checks that the level and format are known.
func (l *LogConfig) Validate() error {
	if _, err := log.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	switch l.Format {
	case LogFormatCLI, LogFormatText:
	default:
		return fmt.Errorf("log format %q: %w", l.Format, errors.ErrInvalidConfig)
	}
	if l.Output == nil {
		return fmt.Errorf("no log output: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// ParsedLevel returns the configured level, falling back to warn.
func (l *LogConfig) ParsedLevel() log.Level {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.WarnLevel
	}
	return level
}
