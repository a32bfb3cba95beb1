package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/fogchess-go/internal/config"
	"github.com/lgbarn/fogchess-go/internal/game"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(g *game.Game) error

	// WriteResult writes a replayed game together with the name of the move
	// list it came from and the moves that were rejected while replaying it.
	WriteResult(source string, g *game.Game, rejected []error) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer matching the configured format.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes game summaries as text.
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

// WriteGame writes a game summary.
func (tw *TextWriter) WriteGame(g *game.Game) error {
	return tw.WriteResult("", g, nil)
}

// WriteResult writes a Source tag ahead of the summary and one comment line
// per rejected move after it.
func (tw *TextWriter) WriteResult(source string, g *game.Game, rejected []error) error {
	if source != "" {
		writeTag(tw.w, "Source", source)
	}

	cfg := *tw.cfg
	cfg.OutputFile = tw.w
	OutputGame(g, &cfg)

	for _, err := range rejected {
		if _, werr := fmt.Fprintf(tw.w, "; rejected %v\n", err); werr != nil {
			return werr
		}
	}
	if len(rejected) > 0 {
		_, err := fmt.Fprintln(tw.w)
		return err
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
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w     io.Writer
	cfg   *config.Config
	games []*JSONGame
}

// NewJSONWriter creates a new JSON writer that batches games and writes
// them as an array on Close.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame queues a game for output. The game's state is captured at the
// time of the call.
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	return jw.WriteResult("", g, nil)
}

// WriteResult queues a game with its source and the rejected moves as
// error strings.
func (jw *JSONWriter) WriteResult(source string, g *game.Game, rejected []error) error {
	jg := GameToJSON(g, jw.cfg)
	jg.Source = source
	for _, err := range rejected {
		jg.Errors = append(jg.Errors, err.Error())
	}
	jw.games = append(jw.games, jg)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
