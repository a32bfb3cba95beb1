package output

import (
	"github.com/lgbarn/fogchess-go/internal/chess"
	"github.com/lgbarn/fogchess-go/internal/config"
	"github.com/lgbarn/fogchess-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Source     string          `json:"source,omitempty"`
	Variant    string          `json:"variant"`
	Status     string          `json:"status"`
	Winner     string          `json:"winner,omitempty"`
	Result     string          `json:"result,omitempty"`
	ToMove     string          `json:"toMove"`
	PlyCount   int             `json:"plyCount"`
	InCheck    bool            `json:"inCheck,omitempty"`
	View       string          `json:"view"`
	Board      []string        `json:"board"`
	FEN        string          `json:"fen,omitempty"`
	Moves      []game.MovePair `json:"moves"`
	LegalMoves []string        `json:"legalMoves"`
	Clock      *JSONClock      `json:"clock,omitempty"`
	Errors     []string        `json:"errors,omitempty"`
}

// JSONClock holds the remaining time of both players in milliseconds.
type JSONClock struct {
	White int64 `json:"whiteMs"`
	Black int64 `json:"blackMs"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to JSON format as seen from the configured
// perspective.
func GameToJSON(g *game.Game, cfg *config.Config) *JSONGame {
	perspective := cfg.Output.Perspective
	if showsEverything(g, perspective) {
		perspective = config.PerspectiveAll
	}

	jg := &JSONGame{
		Variant:    g.Variant().String(),
		Status:     g.Status().String(),
		Result:     resultString(g),
		ToMove:     colourName(g.ToMove()),
		PlyCount:   g.Ply(),
		InCheck:    g.InCheck(),
		View:       perspective.String(),
		Board:      BoardRows(g.Board(), perspective),
		Moves:      visibleHistory(g, cfg.Output.Perspective),
		LegalMoves: visibleLegalMoves(g, cfg.Output.Perspective),
	}
	if jg.Moves == nil {
		jg.Moves = []game.MovePair{}
	}
	if jg.LegalMoves == nil {
		jg.LegalMoves = []string{}
	}
	if winner, ok := g.Winner(); ok {
		jg.Winner = colourName(winner)
	}
	if perspective == config.PerspectiveAll {
		jg.FEN = g.FEN()
	}
	if g.Variant().Timed() {
		jg.Clock = &JSONClock{
			White: g.Remaining(chess.White).Milliseconds(),
			Black: g.Remaining(chess.Black).Milliseconds(),
		}
	}
	return jg
}

// colourName returns "white" or "black".
func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
