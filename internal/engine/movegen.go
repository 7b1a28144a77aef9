// Package engine provides chess move generation, check detection and game state.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Offsets are {row, col} deltas.
var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs    = append(append([][2]int{}, diagonalDirs...), straightDirs...)
	knightMoves  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingMoves    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// PieceMoves returns the pseudo-legal moves of the piece on pos: moves that
// respect the piece's movement and blocking rules but may leave its own king
// in check. It returns nil for an empty square. The order of the result is
// unspecified.
func PieceMoves(board *chess.Board, pos chess.Position) []chess.Move {
	piece, ok := board.Get(pos)
	if !ok {
		return nil
	}

	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(board, pos, piece.Colour)
	case chess.Knight:
		return leapingMoves(board, pos, piece.Colour, knightMoves)
	case chess.King:
		return leapingMoves(board, pos, piece.Colour, kingMoves)
	case chess.Bishop:
		return slidingMoves(board, pos, piece.Colour, diagonalDirs)
	case chess.Rook:
		return slidingMoves(board, pos, piece.Colour, straightDirs)
	case chess.Queen:
		return slidingMoves(board, pos, piece.Colour, queenDirs)
	}
	return nil
}

// slidingMoves walks each ray until the edge or the first occupied square,
// which is included only when it holds an opposing piece.
func slidingMoves(board *chess.Board, from chess.Position, colour chess.Colour, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to, onBoard := from.Offset(dir[0], dir[1])
		for onBoard {
			target, occupied := board.Get(to)
			if occupied {
				if target.Colour != colour {
					moves = append(moves, chess.NewMove(from, to))
				}
				break // Blocked
			}
			moves = append(moves, chess.NewMove(from, to))
			to, onBoard = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// leapingMoves handles knights and kings: every on-board offset that is
// empty or holds an opposing piece.
func leapingMoves(board *chess.Board, from chess.Position, colour chess.Colour, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, offset := range offsets {
		to, onBoard := from.Offset(offset[0], offset[1])
		if !onBoard {
			continue
		}
		if target, occupied := board.Get(to); occupied && target.Colour == colour {
			continue
		}
		moves = append(moves, chess.NewMove(from, to))
	}
	return moves
}

// pawnMoves generates pushes, the double push from the home row, and
// diagonal captures. En passant is not supported.
func pawnMoves(board *chess.Board, from chess.Position, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	dir := colour.PawnDirection()

	// Forward move
	if one, onBoard := from.Offset(dir, 0); onBoard {
		if _, occupied := board.Get(one); !occupied {
			moves = appendPawnMove(moves, from, one, colour)

			// Double push from starting row
			if from.Row == colour.PawnHomeRow() {
				if two, onBoard := from.Offset(2*dir, 0); onBoard {
					if _, occupied := board.Get(two); !occupied {
						moves = appendPawnMove(moves, from, two, colour)
					}
				}
			}
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to, onBoard := from.Offset(dir, dc)
		if !onBoard {
			continue
		}
		if target, occupied := board.Get(to); occupied && target.Colour != colour {
			moves = appendPawnMove(moves, from, to, colour)
		}
	}
	return moves
}

// appendPawnMove adds one move, or one per promotion choice when the pawn
// lands on its promotion row.
func appendPawnMove(moves []chess.Move, from, to chess.Position, colour chess.Colour) []chess.Move {
	if to.Row != colour.PromotionRow() {
		return append(moves, chess.NewMove(from, to))
	}
	for _, promotion := range chess.PromotionPieces {
		moves = append(moves, chess.NewPromotion(from, to, promotion))
	}
	return moves
}
