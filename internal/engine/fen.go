package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.PieceType {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoPieceType
	}
}

// NewBoardFromFEN reads the piece placement and side-to-move fields of a FEN
// string. Castling, en passant and clock fields are accepted but ignored, as
// the engine implements neither castling nor en passant. A missing
// side-to-move field means White.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	turn, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}
	return board, turn, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    positions,
			Expected: "8 ranks",
			Got:      fmt.Sprintf("%d", len(ranks)),
		}
	}

	column := 0
	for i, rankText := range ranks {
		row := chess.BoardSize - i
		col := 1
		for j := 0; j < len(rankText); j++ {
			column++
			c := rankText[j]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece := ConvertFENCharToPiece(c)
				if piece == chess.NoPieceType {
					return &errors.ParseError{
						Err:    errors.ErrInvalidFEN,
						Input:  positions,
						Column: column,
						Got:    fmt.Sprintf("piece character %q", c),
					}
				}
				if col > chess.BoardSize {
					return &errors.ParseError{
						Err:      errors.ErrInvalidFEN,
						Input:    positions,
						Column:   column,
						Expected: fmt.Sprintf("8 squares on rank %d", row),
						Got:      "more",
					}
				}
				colour := chess.White
				if unicode.IsLower(rune(c)) {
					colour = chess.Black
				}
				board.Set(chess.Position{Row: row, Col: col}, chess.NewPiece(colour, piece))
				col++
			}
		}
		column++ // the '/' separator
		if col != chess.BoardSize+1 {
			return &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Input:    positions,
				Expected: fmt.Sprintf("8 squares on rank %d", row),
				Got:      fmt.Sprintf("%d", col-1),
			}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN converts a board and side to move to a FEN string. Castling and
// en passant are always "-"; the clocks are fixed at "0 1".
func BoardToFEN(board *chess.Board, turn chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize; row >= 1; row-- {
		emptyCount := 0
		for col := 1; col <= chess.BoardSize; col++ {
			piece, ok := board.Get(chess.Position{Row: row, Col: col})
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 1 {
			sb.WriteByte('/')
		}
	}
}

// NewGameFromFEN creates a game from a FEN position.
func NewGameFromFEN(fen string) (*Game, error) {
	board, turn, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewGameFromBoard(board, turn)
}

// FEN returns the position in FEN notation.
func (g *Game) FEN() string {
	return BoardToFEN(g.board, g.turn)
}
