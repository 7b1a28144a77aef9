package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ScriptMove is one move read from a move script, with its source line.
type ScriptMove struct {
	Line int
	Text string
	Move chess.Move
}

// ParseScript reads a move script: one move per line in either accepted
// move form. Blank lines and text after '#' are ignored.
func ParseScript(r io.Reader) ([]ScriptMove, error) {
	var moves []ScriptMove
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		move, err := ParseMove(strings.Fields(text))
		if err != nil {
			return moves, errors.Wrapf(err, "line %d", lineNum)
		}
		moves = append(moves, ScriptMove{Line: lineNum, Text: text, Move: move})
	}
	if err := scanner.Err(); err != nil {
		return moves, errors.Wrap(err, "reading script")
	}
	return moves, nil
}
