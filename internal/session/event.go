package session

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// EventType identifies what happened in a session.
type EventType int

const (
	Joined EventType = iota
	Observing
	Left
	Moved
	Check
	Checkmate
	Stalemate
	Resigned
)

var eventTypeNames = [...]string{
	Joined:    "joined",
	Observing: "observing",
	Left:      "left",
	Moved:     "moved",
	Check:     "check",
	Checkmate: "checkmate",
	Stalemate: "stalemate",
	Resigned:  "resigned",
}

// String returns the string representation of an event type.
func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event is a notification sent to subscribers.
type Event struct {
	Type   EventType
	GameID int
	Player string       // acting player; empty for Check, Checkmate and Stalemate
	Colour chess.Colour // the player's seat, or the side in check, mate or stalemate
	Move   chess.Move   // set for Moved
	Winner string       // set for Checkmate and Resigned; empty if the seat was free
}

// String describes the event for display.
func (e Event) String() string {
	switch e.Type {
	case Joined:
		return fmt.Sprintf("%s joined the game as %s", e.Player, e.Colour)
	case Observing:
		return fmt.Sprintf("%s is observing the game", e.Player)
	case Left:
		return fmt.Sprintf("%s left the game", e.Player)
	case Moved:
		s := fmt.Sprintf("%s moved %s to %s", e.Player, e.Move.Start, e.Move.End)
		if e.Move.IsPromotion() {
			s += fmt.Sprintf(", promoting to %s", e.Move.Promotion)
		}
		return s
	case Check:
		return fmt.Sprintf("%s is in check", e.Colour)
	case Checkmate:
		return fmt.Sprintf("%s is checkmated, %s wins", e.Colour, winnerName(e.Winner, e.Colour.Opposite()))
	case Stalemate:
		return fmt.Sprintf("%s is stalemated, the game is drawn", e.Colour)
	case Resigned:
		return fmt.Sprintf("%s resigned, %s wins", e.Player, winnerName(e.Winner, e.Colour.Opposite()))
	}
	return e.Type.String()
}

func winnerName(player string, colour chess.Colour) string {
	if player == "" {
		return colour.String()
	}
	return player
}
