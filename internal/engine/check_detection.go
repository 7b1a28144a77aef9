package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked, that is, if
// the king's square is the destination of some opposing piece's pseudo-legal
// move. A colour with no king on the board is never in check; Game
// constructors refuse such boards, so this only matters for raw boards.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := FindKing(board, colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// FindKing finds the king of the given colour on the board.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Position, bool) {
	king := chess.NewPiece(colour, chess.King)
	for row := 1; row <= chess.BoardSize; row++ {
		for col := 1; col <= chess.BoardSize; col++ {
			pos := chess.Position{Row: row, Col: col}
			if piece, _ := board.Get(pos); piece == king {
				return pos, true
			}
		}
	}
	return chess.Position{}, false
}

// IsSquareAttacked returns true if any piece of byColour has a pseudo-legal
// move ending on target.
func IsSquareAttacked(board *chess.Board, target chess.Position, byColour chess.Colour) bool {
	for _, from := range board.Occupied(byColour) {
		for _, move := range PieceMoves(board, from) {
			if move.End == target {
				return true
			}
		}
	}
	return false
}
