package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the pseudo-legal moves of the piece on pos that do not
// leave its own king in check. Each candidate is tried on a fresh copy of the
// board, so board itself is never modified.
func LegalMoves(board *chess.Board, pos chess.Position) []chess.Move {
	piece, ok := board.Get(pos)
	if !ok {
		return nil
	}

	var legal []chess.Move
	for _, move := range PieceMoves(board, pos) {
		if tryMove(board, move, piece.Colour) {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.Occupied(colour) {
		for _, move := range PieceMoves(board, from) {
			if tryMove(board, move, colour) {
				return true
			}
		}
	}
	return false
}

// AllLegalMoves returns every legal move of the given colour.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Occupied(colour) {
		moves = append(moves, LegalMoves(board, from)...)
	}
	return moves
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	testBoard := board.Clone()
	ApplyMove(testBoard, move)
	return !IsInCheck(testBoard, colour)
}

// ApplyMove moves the piece on move.Start to move.End, capturing whatever is
// there, and substitutes the promotion piece if one is set. The move is not
// validated; the start square must be occupied.
func ApplyMove(board *chess.Board, move chess.Move) {
	piece, ok := board.Get(move.Start)
	if !ok {
		return
	}
	if move.IsPromotion() {
		piece = chess.NewPiece(piece.Colour, move.Promotion)
	}
	board.Remove(move.Start)
	board.Set(move.End, piece)
}
