package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DisplayConfig holds settings for drawing the board.
type DisplayConfig struct {
	// Perspective is the colour drawn at the bottom of the board
	Perspective chess.Colour

	// Unicode draws pieces with chess glyphs instead of FEN letters
	Unicode bool

	// Coordinates adds rank and file labels around the board
	Coordinates bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Perspective: chess.White,
		Coordinates: true,
	}
}

// ParsePerspective converts "white", "black", "w" or "b" to a colour.
func ParsePerspective(s string) (chess.Colour, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("perspective %q: %w", s, errors.ErrInvalidConfig)
}
