// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Game options
	startFEN  = flag.String("fen", "", "Start position as FEN (default: standard position)")
	whiteName = flag.String("white", "white", "Name of the White player")
	blackName = flag.String("black", "black", "Name of the Black player")

	// Display options
	perspective = flag.String("perspective", "white", "Side drawn at the bottom of the board: white or black")
	unicode     = flag.Bool("unicode", false, "Draw pieces with Unicode glyphs")
	noCoords    = flag.Bool("nocoords", false, "Don't draw rank and file labels")

	// Replay options
	replay     = flag.Bool("replay", false, "Replay the move scripts named as arguments and report the results")
	workers    = flag.Int("workers", 0, "Number of replay workers (default: number of CPUs)")
	jsonOutput = flag.Bool("json", false, "Write replay results as JSON, one object per line")

	// Logging options
	logFile   = flag.String("log", "", "Write log entries to this file (default: stderr)")
	logLevel  = flag.String("loglevel", "warn", "Log level: debug, info, warn, error")
	logFormat = flag.String("logformat", config.LogFormatCLI, "Log format: cli or text")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// configFromFlags builds the configuration from command-line flags.
func configFromFlags() (*config.Config, error) {
	b := config.NewConfigBuilder()
	if err := applyFlags(b); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// applyFlags applies command-line flags to the builder.
func applyFlags(b *config.ConfigBuilder) error {
	applyGameFlags(b)
	if err := applyDisplayFlags(b); err != nil {
		return err
	}
	applyReplayFlags(b)
	applyLogFlags(b)
	return nil
}

// applyGameFlags configures the start position.
func applyGameFlags(b *config.ConfigBuilder) {
	b.WithStartFEN(*startFEN)
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(b *config.ConfigBuilder) error {
	colour, err := config.ParsePerspective(*perspective)
	if err != nil {
		return err
	}
	b.WithPerspective(colour).
		WithUnicode(*unicode).
		WithCoordinates(!*noCoords)
	return nil
}

// applyReplayFlags configures batch replay.
func applyReplayFlags(b *config.ConfigBuilder) {
	if *workers > 0 {
		b.WithWorkers(*workers)
	}
	b.WithJSONOutput(*jsonOutput)
}

// applyLogFlags configures logging. The log file itself is opened in main.
func applyLogFlags(b *config.ConfigBuilder) {
	b.WithLogLevel(*logLevel).WithLogFormat(*logFormat)
}
