// Package session manages games shared between two seated players and any
// number of observers.
package session

import (
	"fmt"
	"sync"

	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// errAnonymous rejects the empty name, which marks a free seat.
var errAnonymous = fmt.Errorf("empty player name: %w", errors.ErrNotAPlayer)

// Session wraps a Game with seats, observers and event fan-out. All methods
// are safe for concurrent use. Subscribers are called synchronously, in
// registration order, after the session lock is released.
type Session struct {
	mu          sync.Mutex
	id          int
	name        string
	game        *engine.Game
	seats       [2]string // indexed by chess.Colour
	observers   map[string]bool
	subscribers []func(Event)
	winner      string
	plies       int
	log         *log.Entry
}

// New creates a session around game.
func New(id int, name string, game *engine.Game) *Session {
	return &Session{
		id:        id,
		name:      name,
		game:      game,
		observers: make(map[string]bool),
		log:       log.WithFields(log.Fields{"game": id, "name": name}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() int {
	return s.id
}

// Name returns the session name.
func (s *Session) Name() string {
	return s.name
}

// Subscribe registers fn to receive every subsequent event.
func (s *Session) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// publish delivers events outside the lock so subscribers may call back in.
func (s *Session) publish(events ...Event) {
	s.mu.Lock()
	subscribers := append([]func(Event){}, s.subscribers...)
	s.mu.Unlock()

	for _, e := range events {
		e.GameID = s.id
		for _, fn := range subscribers {
			fn(e)
		}
	}
}

// Join seats player as colour. Rejoining a seat one already holds is a no-op.
func (s *Session) Join(player string, colour chess.Colour) error {
	if player == "" {
		return fmt.Errorf("joining %s: %w", colour, errAnonymous)
	}
	s.mu.Lock()
	switch holder := s.seats[colour]; holder {
	case player:
		s.mu.Unlock()
		return nil
	case "":
		s.seats[colour] = player
		delete(s.observers, player)
	default:
		s.mu.Unlock()
		s.log.WithFields(log.Fields{"player": player, "colour": colour}).Warn("seat taken")
		return fmt.Errorf("%s is held by %s: %w", colour, holder, errors.ErrSeatTaken)
	}
	s.mu.Unlock()

	s.log.WithFields(log.Fields{"player": player, "colour": colour}).Info("joined")
	s.publish(Event{Type: Joined, Player: player, Colour: colour})
	return nil
}

// Observe adds player as a spectator.
func (s *Session) Observe(player string) {
	s.mu.Lock()
	s.observers[player] = true
	s.mu.Unlock()

	s.log.WithField("player", player).Info("observing")
	s.publish(Event{Type: Observing, Player: player})
}

// Leave frees every seat player holds and drops them as an observer. The
// game itself is unaffected.
func (s *Session) Leave(player string) {
	if player == "" {
		return
	}
	var events []Event
	s.mu.Lock()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if s.seats[colour] == player {
			s.seats[colour] = ""
			events = append(events, Event{Type: Left, Player: player, Colour: colour})
		}
	}
	if s.observers[player] {
		delete(s.observers, player)
		if len(events) == 0 {
			events = append(events, Event{Type: Left, Player: player})
		}
	}
	s.mu.Unlock()

	if len(events) > 0 {
		s.log.WithField("player", player).Info("left")
		s.publish(events...)
	}
}

// Seat returns the player holding colour.
func (s *Session) Seat(colour chess.Colour) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	player := s.seats[colour]
	return player, player != ""
}

// Observers returns the number of spectators.
func (s *Session) Observers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

// ValidMoves returns the legal moves of the piece on pos.
func (s *Session) ValidMoves(pos chess.Position) []chess.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ValidMoves(pos)
}

// Move plays move on behalf of player, who must hold the seat of the side
// to move. A move that checkmates or stalemates the opponent finishes the
// game.
func (s *Session) Move(player string, move chess.Move) error {
	s.mu.Lock()
	turn := s.game.Turn()
	if player == "" || s.seats[turn] != player {
		s.mu.Unlock()
		s.log.WithFields(log.Fields{"player": player, "move": move}).Warn("move by non-player")
		return fmt.Errorf("%s does not hold the %s seat: %w", player, turn, errors.ErrNotAPlayer)
	}
	if err := s.game.MakeMove(move); err != nil {
		s.mu.Unlock()
		s.log.WithFields(log.Fields{"player": player, "move": move}).WithError(err).Warn("move rejected")
		return err
	}
	s.plies++
	ply := s.plies

	events := []Event{{Type: Moved, Player: player, Colour: turn, Move: move}}
	opponent := turn.Opposite()
	switch {
	case s.game.IsInCheckmate(opponent):
		s.game.EndGame()
		s.winner = player
		events = append(events, Event{Type: Checkmate, Colour: opponent, Winner: player})
	case s.game.IsInStalemate(opponent):
		s.game.EndGame()
		events = append(events, Event{Type: Stalemate, Colour: opponent})
	case s.game.IsInCheck(opponent):
		events = append(events, Event{Type: Check, Colour: opponent})
	}
	s.mu.Unlock()

	s.log.WithFields(log.Fields{"player": player, "move": move, "ply": ply}).Info("moved")
	if len(events) > 1 && events[1].Type != Check {
		s.log.WithField("outcome", events[1].Type).Info("game over")
	}
	s.publish(events...)
	return nil
}

// Resign ends the game; the opponent wins. player must hold a seat.
func (s *Session) Resign(player string) error {
	s.mu.Lock()
	colour, seated := s.seatOf(player)
	switch {
	case !seated:
		s.mu.Unlock()
		return fmt.Errorf("%s cannot resign: %w", player, errors.ErrNotAPlayer)
	case s.game.Finished():
		s.mu.Unlock()
		return fmt.Errorf("%s cannot resign: %w", player, errors.ErrGameFinished)
	}
	s.game.EndGame()
	s.winner = s.seats[colour.Opposite()]
	winner := s.winner
	s.mu.Unlock()

	s.log.WithFields(log.Fields{"player": player, "winner": winner}).Info("resigned")
	s.publish(Event{Type: Resigned, Player: player, Colour: colour, Winner: winner})
	return nil
}

// seatOf returns the colour player holds, preferring the side to move when
// one player holds both seats. The caller holds the lock.
func (s *Session) seatOf(player string) (chess.Colour, bool) {
	turn := s.game.Turn()
	if player == "" {
		return turn, false
	}
	if s.seats[turn] == player {
		return turn, true
	}
	if s.seats[turn.Opposite()] == player {
		return turn.Opposite(), true
	}
	return turn, false
}

// Status evaluates the position for the side to move.
func (s *Session) Status() engine.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Status()
}

// Turn returns the colour to move.
func (s *Session) Turn() chess.Colour {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Turn()
}

// Finished reports whether the game has ended.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Finished()
}

// Winner returns the winning player's name once the game has been won by
// checkmate or resignation.
func (s *Session) Winner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.winner
}

// Plies returns the number of moves played in this session.
func (s *Session) Plies() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plies
}

// Board returns a copy of the current board.
func (s *Session) Board() *chess.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Board()
}

// Game returns an independent copy of the game for read-only reporting.
func (s *Session) Game() *engine.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, err := engine.Restore(s.game.Snapshot())
	if err != nil {
		// A live game always round-trips.
		panic(err)
	}
	return game
}

// Snapshot captures the game for saving.
func (s *Session) Snapshot() engine.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Restore replaces the game with one rebuilt from snap. Seats and
// subscribers are kept; the ply count and winner are reset.
func (s *Session) Restore(snap engine.Snapshot) error {
	game, err := engine.Restore(snap)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.game = game
	s.plies = 0
	s.winner = ""
	s.mu.Unlock()

	s.log.WithField("fen", snap.FEN).Info("restored")
	return nil
}
