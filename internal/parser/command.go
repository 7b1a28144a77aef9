// Package parser turns user input into squares, moves and commands.
package parser

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// CommandType identifies a REPL command.
type CommandType int

const (
	NoCommand CommandType = iota // blank line
	BoardCommand
	MoveCommand
	HighlightCommand
	StatusCommand
	ResignCommand
	SaveCommand
	LoadCommand
	HelpCommand
	QuitCommand
)

// commandNames maps command types to the word typed at the prompt.
var commandNames = [...]string{
	NoCommand:        "",
	BoardCommand:     "board",
	MoveCommand:      "move",
	HighlightCommand: "highlight",
	StatusCommand:    "status",
	ResignCommand:    "resign",
	SaveCommand:      "save",
	LoadCommand:      "load",
	HelpCommand:      "help",
	QuitCommand:      "quit",
}

// aliases are accepted in addition to the names above.
var aliases = map[string]CommandType{
	"b":      BoardCommand,
	"redraw": BoardCommand,
	"m":      MoveCommand,
	"hl":     HighlightCommand,
	"h":      HelpCommand,
	"?":      HelpCommand,
	"q":      QuitCommand,
	"exit":   QuitCommand,
}

// arity holds the accepted argument counts, inclusive.
var arity = map[CommandType][2]int{
	BoardCommand:     {0, 0},
	MoveCommand:      {1, 3},
	HighlightCommand: {1, 1},
	StatusCommand:    {0, 0},
	ResignCommand:    {0, 0},
	SaveCommand:      {1, 1},
	LoadCommand:      {1, 1},
	HelpCommand:      {0, 1},
	QuitCommand:      {0, 0},
}

// String returns the command word.
func (c CommandType) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// Command is a parsed REPL line.
type Command struct {
	Type CommandType
	Args []string
}

// ParseCommand splits line into a command and its arguments. Command words
// are case-insensitive; a blank line yields NoCommand.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Type: NoCommand}, nil
	}

	word := strings.ToLower(fields[0])
	cmdType, ok := lookupCommand(word)
	if !ok {
		return Command{}, &errors.ParseError{
			Err:   errors.ErrParseFailure,
			Input: line,
			Got:   fmt.Sprintf("command %q", fields[0]),
		}
	}

	args := fields[1:]
	bounds := arity[cmdType]
	if len(args) < bounds[0] || len(args) > bounds[1] {
		return Command{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Input:    line,
			Expected: expectedArgs(cmdType, bounds),
			Got:      fmt.Sprintf("%d", len(args)),
		}
	}
	return Command{Type: cmdType, Args: args}, nil
}

func lookupCommand(word string) (CommandType, bool) {
	for i, name := range commandNames {
		if name != "" && name == word {
			return CommandType(i), true
		}
	}
	cmdType, ok := aliases[word]
	return cmdType, ok
}

func expectedArgs(cmdType CommandType, bounds [2]int) string {
	switch {
	case bounds[0] == bounds[1] && bounds[0] == 0:
		return fmt.Sprintf("no arguments for %s", cmdType)
	case bounds[0] == bounds[1]:
		return fmt.Sprintf("%d argument(s) for %s", bounds[0], cmdType)
	}
	return fmt.Sprintf("%d to %d arguments for %s", bounds[0], bounds[1], cmdType)
}
