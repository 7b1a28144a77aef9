// chess is a two-player chess rules engine for the terminal. Without
// arguments it runs a hot-seat game; with -replay it checks move scripts in
// batch.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := configFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogging(cfg.Log)

	if *replay {
		os.Exit(replayMain(cfg, flag.Args()))
	}
	if err := interactiveMain(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile points the log output at the -log file if one was given.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.Log.Output = file
}

// replayMain runs batch replay and returns the exit code.
func replayMain(cfg *config.Config, files []string) int {
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -replay needs at least one script file")
		return 2
	}
	items := loadScripts(files)
	failed, err := runReplay(cfg, items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if failed > 0 || len(items) < len(files) {
		return 1
	}
	return 0
}

// interactiveMain seats both players and runs the REPL on stdin.
func interactiveMain(cfg *config.Config) error {
	game, err := cfg.NewGame()
	if err != nil {
		return err
	}

	registry := session.NewRegistry()
	sess := registry.Create(fmt.Sprintf("%s vs %s", *whiteName, *blackName), game)
	if err := sess.Join(*whiteName, chess.White); err != nil {
		return err
	}
	if err := sess.Join(*blackName, chess.Black); err != nil {
		return err
	}
	log.WithField("game", sess.ID()).Debug("started")

	r := newREPL(sess, os.Stdin, cfg.Output, output.OptionsFromConfig(cfg.Display))
	return r.run()
}

func usage() {
	fmt.Fprintf(os.Stderr, `chess-rules-go - two-player chess in the terminal

Usage: chess [options]
       chess -replay [options] script...

A move script holds one move per line in coordinate notation ("e2 e4",
"e2e4" or "e7 e8 queen"); text after # is a comment.

Options:
`)
	flag.PrintDefaults()
}
