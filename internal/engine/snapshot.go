package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Snapshot is the persisted form of a game: the position as FEN plus the
// finished latch. It carries JSON tags so stores can encode it directly.
type Snapshot struct {
	FEN      string `json:"fen"`
	Finished bool   `json:"finished"`
}

// Snapshot captures the game for later restoration.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		FEN:      g.FEN(),
		Finished: g.finished,
	}
}

// Restore rebuilds a game from a snapshot.
func Restore(s Snapshot) (*Game, error) {
	game, err := NewGameFromFEN(s.FEN)
	if err != nil {
		return nil, errors.Wrap(err, "restoring snapshot")
	}
	game.finished = s.Finished
	return game, nil
}
