package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// GameResult summarises a replayed or interactive game.
type GameResult struct {
	Name     string        `json:"name"`
	Status   string        `json:"status"`
	Turn     string        `json:"turn,omitempty"`
	Winner   string        `json:"winner,omitempty"`
	Plies    int           `json:"plies"`
	FEN      string        `json:"fen,omitempty"`
	Rejected *RejectedMove `json:"rejected,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// RejectedMove records the first move a replay could not play.
type RejectedMove struct {
	Ply    int    `json:"ply"`
	Line   int    `json:"line,omitempty"`
	Move   string `json:"move"`
	Reason string `json:"reason"`
}

// NewGameResult captures the current state of game after plies moves.
func NewGameResult(name string, game *engine.Game, plies int) *GameResult {
	status := game.Status()
	r := &GameResult{
		Name:   name,
		Status: status.String(),
		Turn:   game.Turn().String(),
		Plies:  plies,
		FEN:    game.FEN(),
	}
	if status == engine.Checkmate {
		r.Winner = game.Turn().Opposite().String()
	}
	return r
}

// DescribeStatus returns a one-line human description of the game state.
func DescribeStatus(game *engine.Game) string {
	r := NewGameResult("", game, 0)
	return r.describe()
}

func (r *GameResult) describe() string {
	switch r.Status {
	case engine.Checkmate.String():
		return fmt.Sprintf("checkmate, %s wins", r.Winner)
	case engine.Stalemate.String():
		return "stalemate, draw"
	case engine.Ended.String():
		if r.Winner != "" {
			return fmt.Sprintf("game over, %s wins", r.Winner)
		}
		return "game over"
	case engine.Check.String():
		return fmt.Sprintf("%s to move, in check", r.Turn)
	}
	return fmt.Sprintf("%s to move", r.Turn)
}

// String formats the result as a single text line.
func (r *GameResult) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	sb.WriteString(": ")
	if r.Error != "" {
		sb.WriteString("error: ")
		sb.WriteString(r.Error)
		return sb.String()
	}

	fmt.Fprintf(&sb, "%s after %d plies", r.describe(), r.Plies)
	if r.Rejected != nil {
		fmt.Fprintf(&sb, "; rejected ply %d", r.Rejected.Ply)
		if r.Rejected.Line > 0 {
			fmt.Fprintf(&sb, " (line %d)", r.Rejected.Line)
		}
		fmt.Fprintf(&sb, " %s: %s", r.Rejected.Move, r.Rejected.Reason)
	}
	fmt.Fprintf(&sb, "; %s", r.FEN)
	return sb.String()
}
