package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// WriteSnapshotJSON writes a game snapshot as indented JSON.
func WriteSnapshotJSON(w io.Writer, snap engine.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(snap), "encoding snapshot")
}

// ReadSnapshotJSON reads a snapshot written by WriteSnapshotJSON.
func ReadSnapshotJSON(r io.Reader) (engine.Snapshot, error) {
	var snap engine.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return engine.Snapshot{}, errors.Wrap(err, "decoding snapshot")
	}
	if snap.FEN == "" {
		return engine.Snapshot{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Expected: "snapshot with a fen field",
		}
	}
	return snap, nil
}

// WriteStatusJSON writes one result as a single line of JSON.
func WriteStatusJSON(w io.Writer, result *GameResult) error {
	return json.NewEncoder(w).Encode(result)
}
