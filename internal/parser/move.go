package parser

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// promotionWords maps accepted promotion spellings to piece types.
var promotionWords = map[string]chess.PieceType{
	"q":      chess.Queen,
	"queen":  chess.Queen,
	"r":      chess.Rook,
	"rook":   chess.Rook,
	"b":      chess.Bishop,
	"bishop": chess.Bishop,
	"n":      chess.Knight,
	"knight": chess.Knight,
}

// ParsePosition converts a square name such as "e4" or "E4" to a position.
func ParsePosition(text string) (chess.Position, error) {
	pos, err := chess.ParsePosition(strings.ToLower(strings.TrimSpace(text)))
	if err != nil {
		return chess.Position{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Input:    text,
			Expected: "square a1-h8",
			Got:      fmt.Sprintf("%q", text),
		}
	}
	return pos, nil
}

// ParsePromotion converts a promotion word or letter to a piece type.
func ParsePromotion(text string) (chess.PieceType, error) {
	if piece, ok := promotionWords[strings.ToLower(text)]; ok {
		return piece, nil
	}
	return chess.NoPieceType, &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Input:    text,
		Expected: "queen, rook, bishop or knight",
		Got:      fmt.Sprintf("%q", text),
	}
}

// ParseMove builds a move from command arguments. It accepts
// "<from> <to> [promotion]" as separate arguments, or a single long
// algebraic word such as "e2e4" or "e7e8q".
func ParseMove(args []string) (chess.Move, error) {
	if len(args) == 1 {
		return parseLongAlgebraic(args[0])
	}
	if len(args) < 2 || len(args) > 3 {
		return chess.Move{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Input:    strings.Join(args, " "),
			Expected: "<from> <to> [promotion]",
			Got:      fmt.Sprintf("%d arguments", len(args)),
		}
	}

	start, err := ParsePosition(args[0])
	if err != nil {
		return chess.Move{}, err
	}
	end, err := ParsePosition(args[1])
	if err != nil {
		return chess.Move{}, err
	}
	move := chess.NewMove(start, end)
	if len(args) == 3 {
		if move.Promotion, err = ParsePromotion(args[2]); err != nil {
			return chess.Move{}, err
		}
	}
	return move, nil
}

// parseLongAlgebraic reads "e2e4" or "e7e8q".
func parseLongAlgebraic(word string) (chess.Move, error) {
	if len(word) != 4 && len(word) != 5 {
		return chess.Move{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Input:    word,
			Expected: "move such as e2e4 or e7e8q",
			Got:      fmt.Sprintf("%d characters", len(word)),
		}
	}
	return ParseMove(splitLongAlgebraic(word))
}

func splitLongAlgebraic(word string) []string {
	args := []string{word[0:2], word[2:4]}
	if len(word) == 5 {
		args = append(args, word[4:])
	}
	return args
}
