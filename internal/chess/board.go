package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board is the 8x8 grid of squares. Squares[row-1][col-1] holds the piece on
// Position{row, col}; NoPiece marks an empty square.
//
// Board is a plain value: copying it (or calling Clone) yields an independent
// grid, which is what legal-move filtering relies on.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 1; col <= BoardSize; col++ {
		b.Set(Position{Row: 1, Col: col}, W(backRank[col-1]))
		b.Set(Position{Row: 2, Col: col}, W(Pawn))
		b.Set(Position{Row: 7, Col: col}, B(Pawn))
		b.Set(Position{Row: 8, Col: col}, B(backRank[col-1]))
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the piece at pos and whether the square is occupied.
// Off-board positions report (NoPiece, false).
func (b *Board) Get(pos Position) (Piece, bool) {
	if !pos.Valid() {
		return NoPiece, false
	}
	piece := b.Squares[pos.Row-1][pos.Col-1]
	return piece, !piece.IsEmpty()
}

// Set places a piece at pos, replacing whatever was there.
// It panics if pos is off the board.
func (b *Board) Set(pos Position, piece Piece) {
	mustBeOnBoard(pos)
	b.Squares[pos.Row-1][pos.Col-1] = piece
}

// Remove empties the square at pos.
// It panics if pos is off the board.
func (b *Board) Remove(pos Position) {
	mustBeOnBoard(pos)
	b.Squares[pos.Row-1][pos.Col-1] = NoPiece
}

func mustBeOnBoard(pos Position) {
	if !pos.Valid() {
		panic(fmt.Errorf("square %s: %w", pos, errors.ErrIllegalPosition))
	}
}

// Clone creates an independent copy of the board.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	return b.Squares == other.Squares
}

// Occupied returns every occupied square of the given colour, scanning
// row 1 to row 8 and column a to h.
func (b *Board) Occupied(colour Colour) []Position {
	var out []Position
	b.ForEach(func(pos Position, piece Piece) {
		if piece.Colour == colour {
			out = append(out, pos)
		}
	})
	return out
}

// ForEach calls fn for every occupied square.
func (b *Board) ForEach(fn func(pos Position, piece Piece)) {
	for row := 1; row <= BoardSize; row++ {
		for col := 1; col <= BoardSize; col++ {
			piece := b.Squares[row-1][col-1]
			if piece.IsEmpty() {
				continue
			}
			fn(Position{Row: row, Col: col}, piece)
		}
	}
}

// Count returns the number of pieces matching piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	b.ForEach(func(_ Position, p Piece) {
		if p == piece {
			n++
		}
	})
	return n
}
