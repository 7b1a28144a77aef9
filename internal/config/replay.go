package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ReplayConfig holds settings for batch replay of move scripts.
type ReplayConfig struct {
	// Workers is the number of parallel replays; 0 means one per CPU
	Workers int

	// BufferSize is the capacity of the work and result channels; 0 picks a default
	BufferSize int

	// JSON writes one JSON object per script instead of text lines
	JSON bool
}

// NewReplayConfig creates a ReplayConfig with default values.
// All fields use Go zero values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.BufferSize < 0 {
		return fmt.Errorf("buffer size (%d) must not be negative: %w", r.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
