package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// loadScripts reads each named script file into a work item. A file that
// cannot be read is reported and skipped.
func loadScripts(names []string) []worker.WorkItem {
	items := make([]worker.WorkItem, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(name) //nolint:gosec // G304: CLI tool reads user-specified files
		if err != nil {
			log.WithError(err).WithField("file", name).Error("cannot read script")
			continue
		}
		items = append(items, worker.WorkItem{Name: name, Script: data})
	}
	return items
}

// runReplay replays every script in parallel and writes one result per
// script, in argument order. It returns the number of scripts that failed
// to parse or set up.
func runReplay(cfg *config.Config, items []worker.WorkItem) (int, error) {
	numWorkers := cfg.Replay.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	bufferSize := cfg.Replay.BufferSize
	if bufferSize <= 0 {
		bufferSize = numWorkers * 2
	}

	pool := worker.NewPoolWithOptions(worker.NewReplayFunc(cfg.NewGame),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(bufferSize),
	)
	writer := output.NewResultWriter(cfg.Output, cfg.Replay.JSON)

	failed := 0
	err := pool.Run(items, func(res worker.ProcessResult) error {
		if res.Error != nil {
			failed++
		}
		return writer.WriteResult(res.Result)
	})
	if err != nil {
		return failed, fmt.Errorf("writing results: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return failed, fmt.Errorf("writing results: %w", err)
	}

	log.WithFields(log.Fields{"scripts": len(items), "failed": failed, "workers": numWorkers}).Info("replay complete")
	return failed, nil
}
