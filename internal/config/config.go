// Package config provides configuration for the chess command and the
// components it drives.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration, grouped by concern.
type Config struct {
	Display *DisplayConfig
	Log     *LogConfig
	Replay  *ReplayConfig

	// StartFEN is the position interactive games start from.
	// Empty means the standard starting position.
	StartFEN string

	// Output receives boards, statuses and replay results.
	Output io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Display: NewDisplayConfig(),
		Log:     NewLogConfig(),
		Replay:  NewReplayConfig(),
		Output:  os.Stdout,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.Output = w
}

// Validate checks every sub-config and the start position.
func (c *Config) Validate() error {
	if c.Output == nil {
		return fmt.Errorf("no output writer: %w", errors.ErrInvalidConfig)
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	if c.StartFEN != "" {
		if _, err := engine.NewGameFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %w: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// NewGame creates a game from the configured start position.
func (c *Config) NewGame() (*engine.Game, error) {
	if c.StartFEN == "" {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(c.StartFEN)
}
