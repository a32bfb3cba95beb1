// Package output renders games as text or JSON for the command-line driver.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/fogchess-go/internal/chess"
	"github.com/lgbarn/fogchess-go/internal/config"
	"github.com/lgbarn/fogchess-go/internal/game"
)

// HiddenSquare marks a square the viewer cannot see.
const HiddenSquare = '?'

// HiddenMove stands in for an opponent's move in a fogged history.
const HiddenMove = "?"

// maxLineLength is the wrap width of the move list.
const maxLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// BoardRows renders the board rank by rank from the eighth, one byte per
// file. Squares the perspective's side cannot see are HiddenSquare.
func BoardRows(board *chess.Board, perspective config.Perspective) []string {
	viewer, fogged := perspective.Colour()

	rows := make([]string, 0, chess.BoardSize)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		var sb strings.Builder
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			if fogged && !board.IsVisible(viewer, sq) {
				sb.WriteByte(HiddenSquare)
				continue
			}
			sb.WriteByte(board.Get(sq).Letter())
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// showsEverything reports whether the full position may be printed.
func showsEverything(g *game.Game, perspective config.Perspective) bool {
	_, fogged := perspective.Colour()
	return !fogged || !g.Variant().FogOfWar || g.Done()
}

// visibleHistory returns the move list as the perspective's side knows it.
// In a fogged view the opponent's moves are replaced by HiddenMove.
func visibleHistory(g *game.Game, perspective config.Perspective) []game.MovePair {
	moves := g.History()
	if showsEverything(g, perspective) {
		return moves
	}
	viewer, _ := perspective.Colour()
	hidden := make([]game.MovePair, len(moves))
	for i, pair := range moves {
		if viewer == chess.White && pair.Black != "" {
			pair.Black = HiddenMove
		}
		if viewer == chess.Black && pair.White != "" {
			pair.White = HiddenMove
		}
		hidden[i] = pair
	}
	return hidden
}

// visibleLegalMoves returns the legal moves, or nil when the perspective's
// side is fogged and not on move.
func visibleLegalMoves(g *game.Game, perspective config.Perspective) []string {
	if !showsEverything(g, perspective) {
		if viewer, _ := perspective.Colour(); viewer != g.ToMove() {
			return nil
		}
	}
	return g.LegalMoves()
}

// OutputGame writes a text summary of the game: header tags, the board, the
// move list and the moves available to the side to move.
func OutputGame(g *game.Game, cfg *config.Config) {
	w := cfg.OutputFile

	outputTags(g, cfg, w)
	fmt.Fprintln(w)

	if cfg.Output.ShowBoard {
		outputBoard(g.Board(), cfg.Output, w)
		fmt.Fprintln(w)
	}

	outputMoves(g, cfg.Output.Perspective, w)

	if legal := visibleLegalMoves(g, cfg.Output.Perspective); cfg.Output.ShowMoves && !g.Done() && legal != nil {
		ow := NewOutputWriter(w, maxLineLength)
		ow.Write("Legal:")
		for _, m := range legal {
			ow.Write(m)
		}
		ow.NewLine()
	}
	fmt.Fprintln(w)
}

// outputTags writes the game state as PGN-style tag pairs.
func outputTags(g *game.Game, cfg *config.Config, w io.Writer) {
	writeTag(w, "Variant", g.Variant().String())
	writeTag(w, "Status", g.Status().String())
	if winner, ok := g.Winner(); ok {
		writeTag(w, "Winner", winner.String())
	}
	writeTag(w, "ToMove", g.ToMove().String())
	writeTag(w, "Ply", fmt.Sprint(g.Ply()))
	if g.Variant().Timed() {
		writeTag(w, "WhiteClock", formatClock(g.Remaining(chess.White)))
		writeTag(w, "BlackClock", formatClock(g.Remaining(chess.Black)))
	}
	if showsEverything(g, cfg.Output.Perspective) {
		writeTag(w, "FEN", g.FEN())
	}
}

func writeTag(w io.Writer, tag, value string) {
	fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value))
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputBoard draws the board, optionally with file and rank labels.
func outputBoard(board *chess.Board, oc *config.OutputConfig, w io.Writer) {
	rows := BoardRows(board, oc.Perspective)
	for i, row := range rows {
		cells := strings.Join(strings.Split(row, ""), " ")
		if oc.Coordinates {
			fmt.Fprintf(w, "%d %s\n", chess.BoardSize-i, cells)
		} else {
			fmt.Fprintln(w, cells)
		}
	}
	if oc.Coordinates {
		fmt.Fprintln(w, "  a b c d e f g h")
	}
}

// outputMoves writes the numbered move list as seen from perspective.
func outputMoves(g *game.Game, perspective config.Perspective, w io.Writer) {
	ow := NewOutputWriter(w, maxLineLength)
	for i, pair := range visibleHistory(g, perspective) {
		ow.Write(fmt.Sprintf("%d.", i+1))
		if pair.White == "" {
			ow.Write("...")
		} else {
			ow.Write(pair.White)
		}
		if pair.Black != "" {
			ow.Write(pair.Black)
		}
	}
	if result := resultString(g); result != "" {
		ow.Write(result)
	}
	ow.NewLine()
}

// resultString returns the PGN result marker of a finished game.
func resultString(g *game.Game) string {
	if !g.Done() {
		return ""
	}
	winner, ok := g.Winner()
	switch {
	case !ok:
		return "1/2-1/2"
	case winner == chess.White:
		return "1-0"
	default:
		return "0-1"
	}
}

// formatClock renders a duration as m:ss.
func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
