package config

import "fmt"

// Variant selects the rules a game is played under.
type Variant struct {
	// FogOfWar hides every square a player's pieces cannot see.
	FogOfWar bool

	// CheckRule maintains the check flag after every ply.
	CheckRule bool

	// CheckmateRule forbids moves that leave the mover's king attacked and
	// ends the game on checkmate or stalemate. Without it the game ends when
	// a king is captured.
	CheckmateRule bool

	// Clock enables per-player clocks when non-nil.
	Clock *ClockConfig
}

// StandardVariant returns the rules of ordinary chess without clocks.
func StandardVariant() Variant {
	return Variant{CheckRule: true, CheckmateRule: true}
}

// FogOfWarVariant returns the king-capture fog-of-war rules.
func FogOfWarVariant() Variant {
	return Variant{FogOfWar: true}
}

// Timed reports whether clocks are enabled.
func (v Variant) Timed() bool {
	return v.Clock != nil
}

// Validate checks that the variant configuration is valid.
func (v Variant) Validate() error {
	if v.Clock == nil {
		return nil
	}
	return v.Clock.Validate()
}

// String describes the variant for logs and summaries.
func (v Variant) String() string {
	name := "standard"
	switch {
	case v.FogOfWar:
		name = "fog-of-war"
	case !v.CheckmateRule:
		name = "king-capture"
	}
	if v.Clock != nil {
		name += fmt.Sprintf(" (%s+%s)", v.Clock.Base, v.Clock.PerMove)
	}
	return name
}
