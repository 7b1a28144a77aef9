package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial position white", InitialFEN, chess.White, false},
		{"initial position black", InitialFEN, chess.Black, false},
		{"rook on open file", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", chess.Black, true},
		{"rook blocked", "4k3/4p3/8/8/8/8/8/4R1K1 b - - 0 1", chess.Black, false},
		{"bishop diagonal", "4k3/8/8/1B6/8/8/8/6K1 b - - 0 1", chess.Black, true},
		{"knight", "4k3/8/3N4/8/8/8/8/6K1 b - - 0 1", chess.Black, true},
		{"white pawn attacks forward diagonals", "4k3/3P4/8/8/8/8/8/6K1 b - - 0 1", chess.Black, true},
		{"pawn does not attack straight ahead", "8/8/8/8/8/4k3/4P3/6K1 b - - 0 1", chess.Black, false},
		{"black pawn attacks downwards", "4k3/8/8/8/8/8/5p2/4K3 w - - 0 1", chess.White, true},
		{"fool's mate", foolsMateFEN, chess.White, true},
		{"back rank mate", backRankMateFEN, chess.Black, true},
		{"stalemate", stalemateFEN, chess.Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN: %v", err)
			}
			if got := IsInCheck(board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%s) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsInCheck_NoKing(t *testing.T) {
	board := boardWith(map[string]chess.Piece{"e1": chess.B(chess.Queen)})
	if IsInCheck(board, chess.White) {
		t.Error("a side without a king should not be in check")
	}
}

func TestFindKing(t *testing.T) {
	board := chess.NewInitialBoard()

	pos, ok := FindKing(board, chess.White)
	if !ok || pos != chess.Sq("e1") {
		t.Errorf("FindKing(White) = %v, %v; want e1, true", pos, ok)
	}
	pos, ok = FindKing(board, chess.Black)
	if !ok || pos != chess.Sq("e8") {
		t.Errorf("FindKing(Black) = %v, %v; want e8, true", pos, ok)
	}

	board.Remove(chess.Sq("e8"))
	if _, ok := FindKing(board, chess.Black); ok {
		t.Error("FindKing found a removed king")
	}
}

func TestIsSquareAttacked(t *testing.T) {
	board := boardWith(map[string]chess.Piece{
		"d4": chess.W(chess.Rook),
		"d6": chess.B(chess.Pawn),
	})

	tests := []struct {
		square string
		want   bool
	}{
		{"d1", true},
		{"h4", true},
		{"d6", true}, // capture square
		{"d7", false},
		{"e5", false},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			if got := IsSquareAttacked(board, chess.Sq(tt.square), chess.White); got != tt.want {
				t.Errorf("IsSquareAttacked(%s) = %v, want %v", tt.square, got, tt.want)
			}
		})
	}
}

func TestIsInCheck_DoesNotModifyBoard(t *testing.T) {
	board, _, err := NewBoardFromFEN(foolsMateFEN)
	if err != nil {
		t.Fatal(err)
	}
	before := board.Clone()
	IsInCheck(board, chess.White)
	IsInCheck(board, chess.Black)
	if !board.Equal(before) {
		t.Error("IsInCheck modified the board")
	}
}
