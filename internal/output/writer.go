package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// ResultWriter is the interface for writing game results.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(result *GameResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error
}

// NewResultWriter returns a JSON writer when asJSON is set, otherwise a text writer.
func NewResultWriter(w io.Writer, asJSON bool) ResultWriter {
	if asJSON {
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes one line per result.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteResult writes the result's text line.
func (tw *TextWriter) WriteResult(result *GameResult) error {
	_, err := fmt.Fprintln(tw.w, result.String())
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Games []*GameResult `json:"games"`
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Flush.
type JSONWriter struct {
	w       io.Writer
	results []*GameResult
	single  bool // If true, write each result immediately as one line
}

// NewJSONWriter creates a JSON writer that batches results into one document.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		results: make([]*GameResult, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteResult buffers a result (or writes it immediately in single mode).
func (jw *JSONWriter) WriteResult(result *GameResult) error {
	if jw.single {
		return WriteStatusJSON(jw.w, result)
	}
	jw.results = append(jw.results, result)
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.results})

	// Clear buffer after writing
	jw.results = jw.results[:0]

	return err
}
