package main

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/text"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// setupLogging installs the configured apex/log handler and level.
func setupLogging(cfg *config.LogConfig) {
	switch cfg.Format {
	case config.LogFormatText:
		log.SetHandler(text.New(cfg.Output))
	default:
		log.SetHandler(cli.New(cfg.Output))
	}
	log.SetLevel(cfg.ParsedLevel())
}
