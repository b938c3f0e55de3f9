// Package output writes and reads finished games: JSON save files that
// rebuild a game history, and a plain text listing of its snapshots.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/history"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(h *history.GameHistory) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes each game as its sequence of snapshots.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game header followed by its snapshots. At verbosity 0
// only the header and the final snapshot are written.
func (tw *TextWriter) WriteGame(h *history.GameHistory) error {
	snaps := h.Snapshots()
	name := h.Name
	if name == "" {
		name = "?"
	}
	if _, err := fmt.Fprintf(tw.w, "Game %s (%d states)\n", name, len(snaps)); err != nil {
		return err
	}
	if tw.cfg != nil && tw.cfg.Verbosity == 0 && len(snaps) > 0 {
		snaps = snaps[len(snaps)-1:]
	}
	for _, s := range snaps {
		if _, err := fmt.Fprintf(tw.w, "%s\n\n", s.String()); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a library on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	order   SortOrder
	games   []*history.GameHistory
	written bool // A library has been written
}

// NewJSONWriter creates a new JSON writer that batches games and writes
// them as one library sorted by order.
func NewJSONWriter(w io.Writer, order SortOrder) *JSONWriter {
	return &JSONWriter{
		w:     w,
		order: order,
		games: make([]*history.GameHistory, 0),
	}
}

// WriteGame buffers a game for JSON output.
func (jw *JSONWriter) WriteGame(h *history.GameHistory) error {
	jw.games = append(jw.games, h)
	return nil
}

// Flush writes all buffered games as a library, sorted by the writer's order.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}
	return jw.writeLibrary()
}

// Close flushes pending games. A writer that never wrote a library writes
// an empty one, so the output is always a readable document.
func (jw *JSONWriter) Close() error {
	if len(jw.games) == 0 && jw.written {
		return nil
	}
	return jw.writeLibrary()
}

func (jw *JSONWriter) writeLibrary() error {
	SortGames(jw.games, jw.order)
	err := WriteLibrary(jw.w, jw.games)
	jw.written = true

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}
