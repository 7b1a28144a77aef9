package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree of the given depth from
// the current position. It ignores the finished latch and does not modify
// the game.
func (g *Game) Perft(depth int) int {
	return perft(g.board, g.turn, depth)
}

func perft(board *chess.Board, turn chess.Colour, depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(board, turn)
	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for _, move := range moves {
		next := board.Clone()
		ApplyMove(next, move)
		nodes += perft(next, turn.Opposite(), depth-1)
	}
	return nodes
}
