package main

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// saveRestoreBool is a helper to save and defer-restore a bool flag pointer.
// Usage: defer saveRestoreBool(unicode, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyDisplayFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		b := config.NewConfigBuilder()
		testutil.AssertNoError(t, applyDisplayFlags(b))
		cfg := b.Build()
		testutil.AssertEqual(t, cfg.Display.Perspective, chess.White)
		testutil.AssertFalse(t, cfg.Display.Unicode)
		testutil.AssertTrue(t, cfg.Display.Coordinates)
	})

	t.Run("black perspective with glyphs and no labels", func(t *testing.T) {
		defer saveRestoreString(perspective, "black")()
		defer saveRestoreBool(unicode, true)()
		defer saveRestoreBool(noCoords, true)()
		b := config.NewConfigBuilder()
		testutil.AssertNoError(t, applyDisplayFlags(b))
		cfg := b.Build()
		testutil.AssertEqual(t, cfg.Display.Perspective, chess.Black)
		testutil.AssertTrue(t, cfg.Display.Unicode)
		testutil.AssertFalse(t, cfg.Display.Coordinates)
	})

	t.Run("bad perspective", func(t *testing.T) {
		defer saveRestoreString(perspective, "green")()
		_, err := configFromFlags()
		testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidConfig)
	})
}

func TestApplyReplayFlags(t *testing.T) {
	tests := []struct {
		name        string
		workers     int
		json        bool
		wantWorkers int
	}{
		{"defaults", 0, false, 0},
		{"explicit workers", 3, false, 3},
		{"negative workers ignored", -1, false, 0},
		{"json", 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(workers, tt.workers)()
			defer saveRestoreBool(jsonOutput, tt.json)()
			b := config.NewConfigBuilder()
			applyReplayFlags(b)
			cfg := b.Build()
			testutil.AssertEqual(t, cfg.Replay.Workers, tt.wantWorkers)
			testutil.AssertEqual(t, cfg.Replay.JSON, tt.json)
		})
	}
}

func TestApplyLogAndGameFlags(t *testing.T) {
	defer saveRestoreString(logLevel, "debug")()
	defer saveRestoreString(logFormat, config.LogFormatText)()
	defer saveRestoreString(startFEN, testutil.PromotionFEN)()

	cfg, err := configFromFlags()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg.Log.Level, "debug")
	testutil.AssertEqual(t, cfg.Log.Format, config.LogFormatText)
	testutil.AssertEqual(t, cfg.StartFEN, testutil.PromotionFEN)
	testutil.AssertNoError(t, cfg.Validate())
}

func TestApplyFlagsInvalidLogLevel(t *testing.T) {
	defer saveRestoreString(logLevel, "chatty")()
	cfg, err := configFromFlags()
	testutil.AssertNoError(t, err)
	testutil.AssertErrorIs(t, cfg.Validate(), chesserrors.ErrInvalidConfig)
}
