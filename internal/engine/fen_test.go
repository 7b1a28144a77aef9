package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		wantTurn chess.Colour
		checks   map[string]chess.Piece
	}{
		{
			name:     "initial position",
			fen:      InitialFEN,
			wantTurn: chess.White,
			checks: map[string]chess.Piece{
				"e1": chess.W(chess.King),
				"e8": chess.B(chess.King),
				"e2": chess.W(chess.Pawn),
				"e7": chess.B(chess.Pawn),
				"a1": chess.W(chess.Rook),
				"g8": chess.B(chess.Knight),
				"e4": chess.NoPiece,
			},
		},
		{
			name:     "after 1.e4 with en passant field",
			fen:      "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			wantTurn: chess.Black,
			checks: map[string]chess.Piece{
				"e4": chess.W(chess.Pawn),
				"e2": chess.NoPiece,
			},
		},
		{
			name:     "placement only",
			fen:      "4k3/8/8/8/8/8/8/4K3",
			wantTurn: chess.White,
			checks: map[string]chess.Piece{
				"e1": chess.W(chess.King),
				"e8": chess.B(chess.King),
			},
		},
		{
			name:     "back rank mate",
			fen:      backRankMateFEN,
			wantTurn: chess.Black,
			checks: map[string]chess.Piece{
				"e8": chess.W(chess.Rook),
				"g8": chess.B(chess.King),
				"h7": chess.B(chess.Pawn),
				"g1": chess.W(chess.King),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, turn, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error = %v", tt.fen, err)
			}
			if turn != tt.wantTurn {
				t.Errorf("turn = %s, want %s", turn, tt.wantTurn)
			}
			for name, want := range tt.checks {
				if got, _ := board.Get(chess.Sq(name)); got != want {
					t.Errorf("%s = %v, want %v", name, got, want)
				}
			}
		})
	}
}

func TestNewBoardFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "8/8/8 w - - 0 1"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w - - 0 1"},
		{"digit nine", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"short rank", "7/8/8/8/8/8/8/8 w - - 0 1"},
		{"long rank", "rnbqkbnrr/8/8/8/8/8/8/8 w - - 0 1"},
		{"piece after full rank", "8p/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad side to move", InitialFEN[:len(InitialFEN)-len(" w KQkq - 0 1")] + " x - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewBoardFromFEN(tt.fen)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("NewBoardFromFEN(%q) error = %v, want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestNewBoardFromFEN_ParseErrorDetail(t *testing.T) {
	_, _, err := NewBoardFromFEN("rnbqkbnr/ppppXppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")
	var parseErr *chesserrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error %T is not a *ParseError", err)
	}
	if parseErr.Column != 14 {
		t.Errorf("Column = %d, want 14", parseErr.Column)
	}
}

func TestBoardToFEN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"initial without castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"back rank mate", backRankMateFEN},
		{"stalemate", stalemateFEN},
		{"promotion", promotionFEN},
		{"full ranks and gaps", "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, turn, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN: %v", err)
			}
			if got := BoardToFEN(board, turn); got != tt.fen {
				t.Errorf("BoardToFEN() = %q, want %q", got, tt.fen)
			}
		})
	}
}

func TestBoardToFEN_DropsCastlingAndClocks(t *testing.T) {
	board, turn, err := NewBoardFromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatal(err)
	}
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1"
	if got := BoardToFEN(board, turn); got != want {
		t.Errorf("BoardToFEN() = %q, want %q", got, want)
	}
}

func TestNewGameFromFEN(t *testing.T) {
	game, err := NewGameFromFEN(stalemateFEN)
	if err != nil {
		t.Fatal(err)
	}
	if game.Turn() != chess.Black {
		t.Errorf("Turn() = %s, want Black", game.Turn())
	}
	if game.FEN() != stalemateFEN {
		t.Errorf("FEN() = %q, want %q", game.FEN(), stalemateFEN)
	}

	if _, err := NewGameFromFEN("8/8/8/8/8/8/8/8 w - - 0 1"); !errors.Is(err, chesserrors.ErrNoKing) {
		t.Errorf("empty board error = %v, want ErrNoKing", err)
	}
}

func TestConvertFENCharToPiece(t *testing.T) {
	tests := []struct {
		c    byte
		want chess.PieceType
	}{
		{'K', chess.King}, {'k', chess.King},
		{'Q', chess.Queen}, {'q', chess.Queen},
		{'R', chess.Rook}, {'r', chess.Rook},
		{'B', chess.Bishop}, {'b', chess.Bishop},
		{'N', chess.Knight}, {'n', chess.Knight},
		{'P', chess.Pawn}, {'p', chess.Pawn},
		{'x', chess.NoPieceType}, {'1', chess.NoPieceType},
	}
	for _, tt := range tests {
		if got := ConvertFENCharToPiece(tt.c); got != tt.want {
			t.Errorf("ConvertFENCharToPiece(%q) = %s, want %s", tt.c, got, tt.want)
		}
	}
}
