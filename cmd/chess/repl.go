package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

const helpText = `Commands:
  board                       redraw the board
  move <from> <to> [piece]    move a piece, e.g. "move e2 e4" or "move e7e8q"
  highlight <square>          show the legal moves of the piece on a square
  status                      show whose turn it is and the game state
  resign                      resign on behalf of the side to move
  save <file>                 save the game as JSON
  load <file>                 load a game saved with save
  help                        show this text
  quit                        leave the game
`

// repl runs a hot-seat game: both seats are held locally and each move is
// made on behalf of the side to move.
type repl struct {
	sess *session.Session
	in   *bufio.Scanner
	out  io.Writer
	opts output.RenderOptions
}

func newREPL(sess *session.Session, in io.Reader, out io.Writer, opts output.RenderOptions) *repl {
	r := &repl{
		sess: sess,
		in:   bufio.NewScanner(in),
		out:  out,
		opts: opts,
	}
	sess.Subscribe(func(e session.Event) {
		switch e.Type {
		case session.Joined, session.Observing:
		default:
			fmt.Fprintln(r.out, e.String())
		}
	})
	return r
}

// run reads commands until quit or end of input.
func (r *repl) run() error {
	r.drawBoard()
	for {
		r.prompt()
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return r.in.Err()
		}
		cmd, err := parser.ParseCommand(r.in.Text())
		if err != nil {
			fmt.Fprintln(r.out, err)
			continue
		}
		if cmd.Type == parser.QuitCommand {
			return nil
		}
		if err := r.dispatch(cmd); err != nil {
			log.WithError(err).WithField("command", cmd.Type).Debug("command failed")
			fmt.Fprintln(r.out, userMessage(err))
		}
	}
}

func (r *repl) prompt() {
	if r.sess.Finished() {
		fmt.Fprint(r.out, "game over> ")
		return
	}
	fmt.Fprintf(r.out, "%s to move> ", r.sess.Turn())
}

func (r *repl) dispatch(cmd parser.Command) error {
	switch cmd.Type {
	case parser.NoCommand:
		return nil
	case parser.BoardCommand:
		r.drawBoard()
	case parser.MoveCommand:
		return r.move(cmd.Args)
	case parser.HighlightCommand:
		return r.highlight(cmd.Args[0])
	case parser.StatusCommand:
		r.status()
	case parser.ResignCommand:
		return r.resign()
	case parser.SaveCommand:
		return r.save(cmd.Args[0])
	case parser.LoadCommand:
		return r.load(cmd.Args[0])
	case parser.HelpCommand:
		fmt.Fprint(r.out, helpText)
	}
	return nil
}

func (r *repl) drawBoard() {
	if err := output.RenderBoard(r.out, r.sess.Board(), r.opts); err != nil {
		log.WithError(err).Error("cannot draw board")
	}
}

// currentPlayer returns the name seated for the side to move.
func (r *repl) currentPlayer() string {
	player, _ := r.sess.Seat(r.sess.Turn())
	return player
}

func (r *repl) move(args []string) error {
	move, err := parser.ParseMove(args)
	if err != nil {
		return err
	}
	if err := r.sess.Move(r.currentPlayer(), move); err != nil {
		return err
	}
	r.drawBoard()
	return nil
}

func (r *repl) highlight(square string) error {
	pos, err := parser.ParsePosition(square)
	if err != nil {
		return err
	}
	moves := r.sess.ValidMoves(pos)
	if len(moves) == 0 {
		fmt.Fprintf(r.out, "no legal moves from %s\n", pos)
		return nil
	}

	opts := r.opts
	opts.Selected = pos
	opts.Highlights = make([]chess.Position, 0, len(moves))
	for _, m := range moves {
		opts.Highlights = append(opts.Highlights, m.End)
	}
	return output.RenderBoard(r.out, r.sess.Board(), opts)
}

func (r *repl) status() {
	line := output.DescribeStatus(r.sess.Game())
	if winner := r.sess.Winner(); winner != "" && !strings.Contains(line, "wins") {
		line += fmt.Sprintf(", %s wins", winner)
	}
	fmt.Fprintf(r.out, "%s (%d plies)\n", line, r.sess.Plies())
}

func (r *repl) resign() error {
	return r.sess.Resign(r.currentPlayer())
}

func (r *repl) save(path string) error {
	f, err := os.Create(path) //nolint:gosec // G304: CLI tool writes user-specified files
	if err != nil {
		return err
	}
	if err := output.WriteSnapshotJSON(f, r.sess.Snapshot()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "saved to %s\n", path)
	return nil
}

func (r *repl) load(path string) error {
	f, err := os.Open(path) //nolint:gosec // G304: CLI tool reads user-specified files
	if err != nil {
		return err
	}
	defer f.Close()

	snap, err := output.ReadSnapshotJSON(f)
	if err != nil {
		return err
	}
	if err := r.sess.Restore(snap); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "loaded %s\n", path)
	r.drawBoard()
	return nil
}

// userMessage turns an error into a line for the player.
func userMessage(err error) string {
	var moveErr *errors.MoveError
	if stderrors.As(err, &moveErr) && moveErr.Reason != "" {
		return fmt.Sprintf("illegal move %s: %s", moveErr.Move, moveErr.Reason)
	}
	return err.Error()
}
