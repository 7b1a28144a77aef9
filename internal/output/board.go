// Package output draws boards and writes game state as text or JSON.
package output

import (
	"bufio"
	"io"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// RenderOptions controls how RenderBoard draws a board.
type RenderOptions struct {
	// Perspective is the colour drawn at the bottom. The zero value is
	// chess.Black; config.NewDisplayConfig defaults to White.
	Perspective chess.Colour
	Unicode     bool
	Coordinates bool

	// Selected is marked with [ ]; ignored unless it is on the board.
	Selected chess.Position
	// Highlights are marked with ( ), typically Selected's legal destinations.
	Highlights []chess.Position
}

// OptionsFromConfig builds render options from display settings.
func OptionsFromConfig(cfg *config.DisplayConfig) RenderOptions {
	return RenderOptions{
		Perspective: cfg.Perspective,
		Unicode:     cfg.Unicode,
		Coordinates: cfg.Coordinates,
	}
}

var unicodeGlyphs = map[chess.Piece]string{
	chess.W(chess.King):   "♔",
	chess.W(chess.Queen):  "♕",
	chess.W(chess.Rook):   "♖",
	chess.W(chess.Bishop): "♗",
	chess.W(chess.Knight): "♘",
	chess.W(chess.Pawn):   "♙",
	chess.B(chess.King):   "♚",
	chess.B(chess.Queen):  "♛",
	chess.B(chess.Rook):   "♜",
	chess.B(chess.Bishop): "♝",
	chess.B(chess.Knight): "♞",
	chess.B(chess.Pawn):   "♟",
}

// RenderBoard writes board as text, one rank per line, with the perspective
// colour's back rank at the bottom. Pieces are FEN letters (or glyphs) and
// empty squares are dots.
func RenderBoard(w io.Writer, board *chess.Board, opts RenderOptions) error {
	bw := bufio.NewWriter(w)

	rows, cols := boardOrder(opts.Perspective)
	if opts.Coordinates {
		writeFileLabels(bw, cols)
	}
	for _, row := range rows {
		if opts.Coordinates {
			bw.WriteString(strconv.Itoa(row))
			bw.WriteByte(' ')
		}
		for _, col := range cols {
			pos := chess.Position{Row: row, Col: col}
			piece, _ := board.Get(pos)
			bw.WriteString(renderSquare(piece, pos, opts))
		}
		if opts.Coordinates {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(row))
		}
		bw.WriteByte('\n')
	}
	if opts.Coordinates {
		writeFileLabels(bw, cols)
	}
	return bw.Flush()
}

// boardOrder returns the rows top to bottom and columns left to right.
func boardOrder(perspective chess.Colour) (rows, cols []int) {
	for i := 1; i <= chess.BoardSize; i++ {
		if perspective == chess.Black {
			rows = append(rows, i)
			cols = append(cols, chess.BoardSize+1-i)
		} else {
			rows = append(rows, chess.BoardSize+1-i)
			cols = append(cols, i)
		}
	}
	return rows, cols
}

func writeFileLabels(bw *bufio.Writer, cols []int) {
	bw.WriteString("  ")
	for i, col := range cols {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteByte(' ')
		bw.WriteByte(byte(chess.ColBase + col - 1))
	}
	bw.WriteByte('\n')
}

func renderSquare(piece chess.Piece, pos chess.Position, opts RenderOptions) string {
	symbol := "."
	if !piece.IsEmpty() {
		if opts.Unicode {
			symbol = unicodeGlyphs[piece]
		} else {
			symbol = string(piece.FENLetter())
		}
	}

	switch {
	case opts.Selected.Valid() && pos == opts.Selected:
		return "[" + symbol + "]"
	case slices.Contains(opts.Highlights, pos):
		return "(" + symbol + ")"
	}
	return " " + symbol + " "
}
