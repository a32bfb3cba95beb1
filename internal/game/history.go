package game

import "github.com/lgbarn/fogchess-go/internal/chess"

// MovePair holds one full turn of notations. White is empty when the game
// started with Black to move; Black is empty while White's move awaits a reply.
type MovePair struct {
	White string `json:"white"`
	Black string `json:"black,omitempty"`
}

// history is the ordered list of full turns.
type history []MovePair

// record appends a notation for the given side.
func (h history) record(colour chess.Colour, notation string) history {
	if colour == chess.White {
		return append(h, MovePair{White: notation})
	}
	if n := len(h); n > 0 && h[n-1].Black == "" {
		h[n-1].Black = notation
		return h
	}
	return append(h, MovePair{Black: notation})
}
