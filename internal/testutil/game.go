// Package testutil provides shared test utilities for the chess-rules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Well-known positions shared by tests. None of them involve castling or
// en passant.
const (
	// FoolsMateFEN is the position after 1.f3 e5 2.g4 Qh4#; White is mated.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// BackRankMateFEN has Black mated by a rook on e8.
	BackRankMateFEN = "4R1k1/5ppp/8/8/8/8/8/6K1 b - - 0 1"

	// StalemateFEN has Black to move with no legal moves and not in check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	// PromotionFEN has a White pawn on e7 with e8 empty.
	PromotionFEN = "k7/4P3/8/8/8/8/8/K7 w - - 0 1"
)

// MustGame builds a game from a FEN string.
// It calls t.Fatal if the position is rejected.
func MustGame(t *testing.T, fen string) *engine.Game {
	t.Helper()
	game, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to set up position %q: %v", fen, err)
	}
	return game
}

// MustPlay plays a sequence of long algebraic moves ("e2e4", "e7e8q").
// It calls t.Fatal on the first unparsable or rejected move.
func MustPlay(t *testing.T, game *engine.Game, moves ...string) {
	t.Helper()
	for i, text := range moves {
		move := MustMove(t, text)
		if err := game.MakeMove(move); err != nil {
			t.Fatalf("move %d (%s) rejected: %v", i+1, text, err)
		}
	}
}

// MustMove converts long algebraic text such as "e2e4" or "e7e8q" to a move.
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	if len(text) != 4 && len(text) != 5 {
		t.Fatalf("bad move text %q", text)
	}
	start, err := chess.ParsePosition(text[0:2])
	if err != nil {
		t.Fatalf("bad move text %q: %v", text, err)
	}
	end, err := chess.ParsePosition(text[2:4])
	if err != nil {
		t.Fatalf("bad move text %q: %v", text, err)
	}
	move := chess.NewMove(start, end)
	if len(text) == 5 {
		move.Promotion = engine.ConvertFENCharToPiece(text[4])
		if !move.Promotion.IsPromotionChoice() {
			t.Fatalf("bad promotion in %q", text)
		}
	}
	return move
}

// MoveStrings returns the long algebraic form of each move, sorted, so that
// unordered move sets can be compared with AssertEqual.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	slices.Sort(out)
	return out
}

// Destinations returns the sorted, de-duplicated end squares of moves.
func Destinations(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.End.String())
	}
	slices.Sort(out)
	return slices.Compact(out)
}
