package game

import (
	"time"

	"github.com/lgbarn/fogchess-go/internal/chess"
	"github.com/lgbarn/fogchess-go/internal/config"
)

// Clock tracks the remaining time of both players. Time is only charged when
// a move is submitted; there are no background timers.
type Clock struct {
	remaining [chess.NumColours]time.Duration
	increment time.Duration
	turnStart time.Time
	running   bool
	now       func() time.Time
}

func newClock(cfg config.ClockConfig, now func() time.Time) *Clock {
	c := &Clock{increment: cfg.PerMove, now: now}
	c.remaining[chess.White] = cfg.Base
	c.remaining[chess.Black] = cfg.Base
	c.start()
	return c
}

// start begins timing the next turn.
func (c *Clock) start() {
	c.turnStart = c.now()
	c.running = true
}

// elapsed returns the time spent on the current turn.
func (c *Clock) elapsed() time.Duration {
	if !c.running {
		return 0
	}
	return c.now().Sub(c.turnStart)
}

// spend debits the current turn from colour. It reports false, leaving the
// budget at zero, when the turn took longer than the time left.
func (c *Clock) spend(colour chess.Colour) bool {
	left := c.remaining[colour] - c.elapsed()
	if left < 0 {
		c.remaining[colour] = 0
		c.running = false
		return false
	}
	c.remaining[colour] = left
	return true
}

// complete credits the increment to the side that just moved and starts the
// opponent's turn.
func (c *Clock) complete(colour chess.Colour) {
	c.remaining[colour] += c.increment
	c.start()
}

// stop charges the running turn to colour and freezes both clocks.
func (c *Clock) stop(colour chess.Colour) {
	if !c.running {
		return
	}
	left := c.remaining[colour] - c.elapsed()
	if left < 0 {
		left = 0
	}
	c.remaining[colour] = left
	c.running = false
}

// Remaining reports the live time of colour, counting the running turn
// against toMove.
func (c *Clock) Remaining(colour, toMove chess.Colour) time.Duration {
	left := c.remaining[colour]
	if colour == toMove {
		left -= c.elapsed()
	}
	if left < 0 {
		return 0
	}
	return left
}

// set replaces the budget of colour. When colour is on move its turn restarts
// so the new value is the live one.
func (c *Clock) set(colour, toMove chess.Colour, d time.Duration) {
	c.remaining[colour] = d
	if colour == toMove && c.running {
		c.start()
	}
}
