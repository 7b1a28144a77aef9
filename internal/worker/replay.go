package worker

import (
	"bytes"
	stderrors "errors"
	"io"

	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

// GameFactory creates the starting game for each replay.
type GameFactory func() (*engine.Game, error)

// NewReplayFunc returns a ProcessFunc that replays each item's script on a
// fresh game from newGame.
func NewReplayFunc(newGame GameFactory) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result, err := Replay(item.Name, bytes.NewReader(item.Script), newGame)
		return ProcessResult{Index: item.Index, Result: result, Error: err}
	}
}

// Replay plays the moves of script in order and reports where the game
// ended up. It stops at the first rejected move and records it. A checkmate
// or stalemate latches the game finished, so any further move is rejected.
// The returned error is non-nil only if the script cannot be parsed or the
// game cannot be created; the result then carries the error text.
func Replay(name string, script io.Reader, newGame GameFactory) (*output.GameResult, error) {
	ctx := log.WithField("script", name)

	moves, err := parser.ParseScript(script)
	if err != nil {
		ctx.WithError(err).Warn("unreadable script")
		return &output.GameResult{Name: name, Error: err.Error()}, err
	}
	game, err := newGame()
	if err != nil {
		ctx.WithError(err).Warn("cannot create game")
		return &output.GameResult{Name: name, Error: err.Error()}, err
	}

	plies := 0
	for _, sm := range moves {
		if err := game.MakeMove(sm.Move); err != nil {
			result := output.NewGameResult(name, game, plies)
			result.Rejected = &output.RejectedMove{
				Ply:    plies + 1,
				Line:   sm.Line,
				Move:   sm.Move.String(),
				Reason: rejectionReason(err),
			}
			ctx.WithFields(log.Fields{"ply": plies + 1, "move": sm.Text}).Info("move rejected")
			return result, nil
		}
		plies++
		if game.Status().IsTerminal() {
			game.EndGame()
		}
	}

	ctx.WithFields(log.Fields{"plies": plies, "status": game.Status()}).Debug("replayed")
	return output.NewGameResult(name, game, plies), nil
}

func rejectionReason(err error) string {
	var moveErr *errors.MoveError
	if stderrors.As(err, &moveErr) && moveErr.Reason != "" {
		return moveErr.Reason
	}
	return err.Error()
}
