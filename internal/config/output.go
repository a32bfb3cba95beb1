package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fogchess-go/internal/chess"
	"github.com/lgbarn/fogchess-go/internal/errors"
)

// Perspective selects whose view of the board is rendered.
type Perspective int

const (
	PerspectiveAll   Perspective = iota // Everything, ignoring fog
	PerspectiveWhite                    // What White can see
	PerspectiveBlack                    // What Black can see
)

// String returns the flag spelling of the perspective.
func (p Perspective) String() string {
	switch p {
	case PerspectiveWhite:
		return "white"
	case PerspectiveBlack:
		return "black"
	default:
		return "all"
	}
}

// Colour returns the viewing side, or false for the unrestricted view.
func (p Perspective) Colour() (chess.Colour, bool) {
	switch p {
	case PerspectiveWhite:
		return chess.White, true
	case PerspectiveBlack:
		return chess.Black, true
	default:
		return chess.White, false
	}
}

// ParsePerspective converts a flag value to a Perspective.
func ParsePerspective(s string) (Perspective, error) {
	switch strings.ToLower(s) {
	case "", "all":
		return PerspectiveAll, nil
	case "white", "w":
		return PerspectiveWhite, nil
	case "black", "b":
		return PerspectiveBlack, nil
	default:
		return PerspectiveAll, fmt.Errorf("unknown view %q: %w", s, errors.ErrInvalidConfig)
	}
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of a text board
	JSONFormat bool

	// Perspective selects whose fog is applied to the rendered board
	Perspective Perspective

	// ShowBoard prints the board after the game summary
	ShowBoard bool

	// ShowMoves lists the legal moves of the side to move
	ShowMoves bool

	// Coordinates adds file and rank labels to the text board
	Coordinates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Perspective: PerspectiveAll,
		ShowBoard:   true,
		ShowMoves:   true,
		Coordinates: true,
	}
}
