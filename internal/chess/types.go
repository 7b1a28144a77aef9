// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black.
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnHomeRow returns the row pawns of this colour start on.
func (c Colour) PawnHomeRow() int {
	if c == White {
		return 2
	}
	return 7
}

// PromotionRow returns the row on which pawns of this colour promote.
func (c Colour) PromotionRow() int {
	if c == White {
		return BoardSize
	}
	return 1
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPieceType PieceType = iota // Empty square, or no promotion
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionPieces lists the piece types a pawn may promote to.
var PromotionPieces = []PieceType{Queen, Bishop, Knight, Rook}

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsPromotionChoice reports whether a pawn may promote to p.
func (p PieceType) IsPromotionChoice() bool {
	return slices.Contains(PromotionPieces, p)
}

// Piece is a coloured piece. The zero value is NoPiece.
type Piece struct {
	Colour Colour
	Type   PieceType
}

// NoPiece marks an empty square.
var NoPiece = Piece{}

// NewPiece creates a piece of the given colour and type.
func NewPiece(colour Colour, pieceType PieceType) Piece {
	return Piece{Colour: colour, Type: pieceType}
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return NewPiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return NewPiece(Black, pieceType)
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FENLetter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	ColBase   = 'a'
	RowBase   = '1'
)

// Position is a square on the board, 1-based (row 1 is White's back rank,
// column 1 is the a-file).
type Position struct {
	Row int
	Col int
}

// NewPosition validates and returns a position.
func NewPosition(row, col int) (Position, error) {
	pos := Position{Row: row, Col: col}
	if !pos.Valid() {
		return Position{}, fmt.Errorf("row %d, column %d: %w", row, col, errors.ErrIllegalPosition)
	}
	return pos, nil
}

// MustPosition is like NewPosition but panics on an off-board square.
func MustPosition(row, col int) Position {
	pos, err := NewPosition(row, col)
	if err != nil {
		panic(err)
	}
	return pos
}

// Sq converts an algebraic square name such as "e4", panicking on bad input.
// Intended for tables and tests.
func Sq(name string) Position {
	pos, err := ParsePosition(name)
	if err != nil {
		panic(err)
	}
	return pos
}

// ParsePosition converts an algebraic square name ("a1".."h8") to a position.
func ParsePosition(name string) (Position, error) {
	if len(name) != 2 {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrIllegalPosition,
			Input:    name,
			Expected: "square a1-h8",
			Got:      fmt.Sprintf("%d characters", len(name)),
		}
	}
	col := int(name[0]-ColBase) + 1
	row := int(name[1]-RowBase) + 1
	if name[0] < ColBase || name[1] < RowBase {
		col, row = 0, 0
	}
	pos := Position{Row: row, Col: col}
	if !pos.Valid() {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrIllegalPosition,
			Input:    name,
			Expected: "square a1-h8",
			Got:      name,
		}
	}
	return pos, nil
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.Row >= 1 && p.Row <= BoardSize && p.Col >= 1 && p.Col <= BoardSize
}

// Offset returns the position shifted by the given deltas, and whether it is
// still on the board.
func (p Position) Offset(dRow, dCol int) (Position, bool) {
	next := Position{Row: p.Row + dRow, Col: p.Col + dCol}
	return next, next.Valid()
}

// String returns the algebraic name of the square.
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return string([]byte{byte(ColBase + p.Col - 1), byte(RowBase + p.Row - 1)})
}

// index maps a valid position to 0..63.
func (p Position) index() int {
	return (p.Row-1)*BoardSize + (p.Col - 1)
}

// Move is a coordinate move. Promotion is NoPieceType unless a pawn reaches
// its promotion row.
type Move struct {
	Start     Position
	End       Position
	Promotion PieceType
}

// NewMove creates a move without promotion.
func NewMove(start, end Position) Move {
	return Move{Start: start, End: end}
}

// NewPromotion creates a promoting move.
func NewPromotion(start, end Position, promotion PieceType) Move {
	return Move{Start: start, End: end, Promotion: promotion}
}

// IsPromotion returns true if this move carries a promotion choice.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.Start.String() + m.End.String()
	if m.IsPromotion() {
		s += string(NewPiece(Black, m.Promotion).FENLetter())
	}
	return s
}

// key packs a move into an int that orders by start, end, then promotion.
func (m Move) key() int {
	return (m.Start.index()*BoardSize*BoardSize+m.End.index())*8 + int(m.Promotion)
}

func moveFromKey(key int) Move {
	promotion := PieceType(key % 8)
	key /= 8
	end := key % (BoardSize * BoardSize)
	start := key / (BoardSize * BoardSize)
	return Move{
		Start:     Position{Row: start/BoardSize + 1, Col: start%BoardSize + 1},
		End:       Position{Row: end/BoardSize + 1, Col: end%BoardSize + 1},
		Promotion: promotion,
	}
}

// SortMoves orders moves by start square, end square and promotion piece.
// Move generation makes no ordering promise; this is for display and tests.
func SortMoves(moves []Move) {
	keys := make([]int, len(moves))
	for i, m := range moves {
		keys[i] = m.key()
	}
	slices.Sort(keys)
	for i, k := range keys {
		moves[i] = moveFromKey(k)
	}
}
