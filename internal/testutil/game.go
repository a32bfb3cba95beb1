package testutil

import (
	"testing"
	"time"

	"github.com/lgbarn/fogchess-go/internal/chess"
	"github.com/lgbarn/fogchess-go/internal/config"
	"github.com/lgbarn/fogchess-go/internal/game"
)

// NewTestGame creates a game from a FEN position, or the initial position
// when fen is empty. Returns nil if the game cannot be created.
func NewTestGame(variant config.Variant, fen string) *game.Game {
	var opts []game.Option
	if fen != "" {
		opts = append(opts, game.WithFEN(fen))
	}
	g, err := game.New(variant, opts...)
	if err != nil {
		return nil
	}
	return g
}

// MustNewGame creates a game and fails the test if that is not possible.
func MustNewGame(t testing.TB, variant config.Variant, opts ...game.Option) *game.Game {
	t.Helper()
	g, err := game.New(variant, opts...)
	if err != nil {
		t.Fatalf("game.New() failed: %v", err)
	}
	return g
}

// MustPlay plays each move in order and fails the test on the first error.
func MustPlay(t testing.TB, g *game.Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if err := g.MakeMove(m); err != nil {
			t.Fatalf("MakeMove(%q) failed: %v", m, err)
		}
	}
}

// AssertPieceAt fails unless the square holds want. The Moved flag is ignored.
func AssertPieceAt(t testing.TB, g *game.Game, square string, want chess.Piece) {
	t.Helper()
	got, err := g.Piece(square)
	if err != nil {
		t.Errorf("Piece(%q) error: %v", square, err)
		return
	}
	got.Moved = want.Moved
	if got != want {
		t.Errorf("Piece(%q) = %v, want %v", square, got, want)
	}
}

// FakeClock is a manually advanced time source for timed games.
type FakeClock struct {
	now time.Time
}

// NewFakeClock creates a FakeClock at a fixed instant.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the fake time forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
