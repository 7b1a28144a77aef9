package engine

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Positions shared across the engine tests. None involve castling or en
// passant.
const (
	foolsMateFEN    = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3"
	backRankMateFEN = "4R1k1/5ppp/8/8/8/8/8/6K1 b - - 0 1"
	stalemateFEN    = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	promotionFEN    = "k7/4P3/8/8/8/8/8/K7 w - - 0 1"
)

func mustGame(t testing.TB, fen string) *Game {
	t.Helper()
	game, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return game
}

// boardWith returns a board holding only the given pieces, keyed by square name.
func boardWith(pieces map[string]chess.Piece) *chess.Board {
	board := chess.NewBoard()
	for name, piece := range pieces {
		board.Set(chess.Sq(name), piece)
	}
	return board
}

// moveStrings renders moves in long algebraic form, sorted.
func moveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	slices.Sort(out)
	return out
}

func mv(from, to string) chess.Move {
	return chess.NewMove(chess.Sq(from), chess.Sq(to))
}

func play(t testing.TB, game *Game, moves ...chess.Move) {
	t.Helper()
	for _, m := range moves {
		if err := game.MakeMove(m); err != nil {
			t.Fatalf("MakeMove(%s): %v", m, err)
		}
	}
}
