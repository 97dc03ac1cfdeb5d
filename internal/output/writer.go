package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different formats.
type ReportWriter interface {
	WritePerft(r *PerftReport) error
	WriteSearch(r *SearchReport) error
	WriteGame(r *GameReport) error

	// Flush writes any buffered reports to the underlying writer.
	Flush() error

	// Close flushes and releases the writer.
	Close() error
}

// NewWriter returns the ReportWriter for cfg.Format writing to cfg.OutputFile.
func NewWriter(cfg *config.Config) ReportWriter {
	if cfg.Format == config.JSONFormat {
		return NewJSONWriter(cfg.OutputFile)
	}
	return NewTextWriter(cfg.OutputFile, cfg.MaxLineLength)
}

// TextWriter writes reports as human-readable text as soon as they arrive.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
}

// NewTextWriter creates a text writer wrapping move lists at maxLineLength.
func NewTextWriter(w io.Writer, maxLineLength int) *TextWriter {
	return &TextWriter{w: w, maxLineLength: maxLineLength}
}

// WritePerft writes one "move: nodes" line per root move, then the totals.
func (tw *TextWriter) WritePerft(r *PerftReport) error {
	lw := newLineWriter(tw.w, tw.maxLineLength)
	for _, line := range r.Divide {
		lw.Printf("%s: %d", line.Move, line.Nodes)
	}
	if len(r.Divide) > 0 {
		lw.NewLine()
	}
	lw.Printf("Depth: %d", r.Depth)
	lw.Printf("Nodes searched: %d", r.Nodes)
	if r.Reference != 0 {
		lw.Printf("Reference: %d", r.Reference)
	}
	lw.Printf("Time: %dms", r.ElapsedMS)
	return lw.err
}

// WriteSearch writes the chosen move and search statistics on one line.
func (tw *TextWriter) WriteSearch(r *SearchReport) error {
	lw := newLineWriter(tw.w, tw.maxLineLength)
	best := r.BestMove
	if best == "" {
		best = "(none)"
	}
	lw.Printf("bestmove %s score %d depth %d nodes %d time %dms", best, r.Score, r.Depth, r.Nodes, r.ElapsedMS)
	return lw.err
}

// WriteGame writes the start position, the numbered move list and the result.
func (tw *TextWriter) WriteGame(r *GameReport) error {
	lw := newLineWriter(tw.w, tw.maxLineLength)
	lw.Printf("Start: %s", r.InitialFEN)
	for i, m := range r.Moves {
		switch {
		case m.Colour == "white":
			lw.Write(fmt.Sprintf("%d.", m.MoveNumber))
		case i == 0:
			lw.Write(fmt.Sprintf("%d...", m.MoveNumber))
		}
		lw.Write(m.Move)
	}
	lw.Write(r.Result)
	lw.NewLine()
	lw.Printf("Final: %s", r.FinalFEN)
	return lw.err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds batched reports for array output.
type JSONOutput struct {
	Perft    []*PerftReport  `json:"perft,omitempty"`
	Searches []*SearchReport `json:"searches,omitempty"`
	Games    []*GameReport   `json:"games,omitempty"`
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as one object on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	pending JSONOutput
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WritePerft buffers or writes a perft report.
func (jw *JSONWriter) WritePerft(r *PerftReport) error {
	if jw.single {
		return jw.encode(r)
	}
	jw.pending.Perft = append(jw.pending.Perft, r)
	return nil
}

// WriteSearch buffers or writes a search report.
func (jw *JSONWriter) WriteSearch(r *SearchReport) error {
	if jw.single {
		return jw.encode(r)
	}
	jw.pending.Searches = append(jw.pending.Searches, r)
	return nil
}

// WriteGame buffers or writes a game report.
func (jw *JSONWriter) WriteGame(r *GameReport) error {
	if jw.single {
		return jw.encode(r)
	}
	jw.pending.Games = append(jw.pending.Games, r)
	return nil
}

// Flush writes all buffered reports as one JSON object.
func (jw *JSONWriter) Flush() error {
	if jw.single {
		return nil
	}
	if len(jw.pending.Perft)+len(jw.pending.Searches)+len(jw.pending.Games) == 0 {
		return nil
	}
	err := jw.encode(&jw.pending)
	jw.pending = JSONOutput{}
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
