package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Status summarises the position for the side to move.
type Status int

const (
	InProgress Status = iota
	Check
	Checkmate
	Stalemate
	Ended // finished without mate or stalemate, e.g. by resignation
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"in progress", "check", "checkmate", "stalemate", "ended"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// IsTerminal reports whether no further moves can be played.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate || s == Ended
}

// Game is a single match: the live board, whose turn it is, and whether the
// game has finished. A Game is not safe for concurrent use; callers that
// share one must serialise access.
type Game struct {
	board    *chess.Board
	turn     chess.Colour
	finished bool
}

// NewGame creates a game from the standard starting position with White to move.
func NewGame() *Game {
	return &Game{
		board: chess.NewInitialBoard(),
		turn:  chess.White,
	}
}

// NewGameFromBoard creates a game from an arbitrary position. The board is
// copied. Each side must have exactly one king, and the side not to move
// must not be in check.
func NewGameFromBoard(board *chess.Board, turn chess.Colour) (*Game, error) {
	if err := validateSetup(board, turn); err != nil {
		return nil, err
	}
	return &Game{board: board.Clone(), turn: turn}, nil
}

// validateSetup checks the king invariants the engine relies on.
func validateSetup(board *chess.Board, turn chess.Colour) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		switch n := board.Count(chess.NewPiece(colour, chess.King)); {
		case n == 0:
			return fmt.Errorf("%s has no king: %w", colour, errors.ErrNoKing)
		case n > 1:
			return fmt.Errorf("%s has %d kings: %w", colour, n, errors.ErrInvalidSetup)
		}
	}
	if IsInCheck(board, turn.Opposite()) {
		return fmt.Errorf("%s is in check but it is %s's turn: %w", turn.Opposite(), turn, errors.ErrInvalidSetup)
	}
	return nil
}

// Board returns a copy of the live board for read-only consumers such as
// renderers.
func (g *Game) Board() *chess.Board {
	return g.board.Clone()
}

// Piece returns the piece on pos without copying the board.
func (g *Game) Piece(pos chess.Position) (chess.Piece, bool) {
	return g.board.Get(pos)
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.turn
}

// Finished reports whether the game has ended.
func (g *Game) Finished() bool {
	return g.finished
}

// EndGame marks the game finished. It cannot be undone.
func (g *Game) EndGame() {
	g.finished = true
}

// ValidMoves returns the legal moves of the piece on pos, regardless of
// whose turn it is. It returns nil for an empty square.
func (g *Game) ValidMoves(pos chess.Position) []chess.Move {
	return LegalMoves(g.board, pos)
}

// MakeMove plays move for the side to move. The returned error wraps
// errors.ErrInvalidMove and is a *errors.MoveError; a rejected move leaves
// the game unchanged.
func (g *Game) MakeMove(move chess.Move) error {
	if reason := g.rejectReason(move); reason != "" {
		return &errors.MoveError{
			Err:    errors.ErrInvalidMove,
			Move:   move.String(),
			Turn:   g.turn.String(),
			Reason: reason,
		}
	}

	ApplyMove(g.board, move)
	g.turn = g.turn.Opposite()
	return nil
}

// rejectReason returns why move cannot be played now, or "" if it can.
func (g *Game) rejectReason(move chess.Move) string {
	if g.finished {
		return "game is finished"
	}
	if !move.Start.Valid() || !move.End.Valid() {
		return "square is off the board"
	}
	piece, ok := g.board.Get(move.Start)
	if !ok {
		return fmt.Sprintf("no piece on %s", move.Start)
	}
	if piece.Colour != g.turn {
		return fmt.Sprintf("%s belongs to %s", move.Start, piece.Colour)
	}
	if slices.Contains(g.ValidMoves(move.Start), move) {
		return ""
	}
	if piece.Type == chess.Pawn && move.End.Row == piece.Colour.PromotionRow() && !move.IsPromotion() {
		return "promotion piece required"
	}
	return "not a legal move"
}

// IsInCheck reports whether colour's king is attacked.
func (g *Game) IsInCheck(colour chess.Colour) bool {
	return IsInCheck(g.board, colour)
}

// IsInCheckmate reports whether colour is in check and no piece of that
// colour has a legal move.
func (g *Game) IsInCheckmate(colour chess.Colour) bool {
	return g.IsInCheck(colour) && !HasLegalMoves(g.board, colour)
}

// IsInStalemate reports whether colour is not in check and no piece of that
// colour has a legal move.
func (g *Game) IsInStalemate(colour chess.Colour) bool {
	return !g.IsInCheck(colour) && !HasLegalMoves(g.board, colour)
}

// Status evaluates the position for the side to move.
func (g *Game) Status() Status {
	inCheck := g.IsInCheck(g.turn)
	hasMoves := HasLegalMoves(g.board, g.turn)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case g.finished:
		return Ended
	case inCheck:
		return Check
	}
	return InProgress
}
