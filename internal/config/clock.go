package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/fogchess-go/internal/errors"
)

// ClockConfig holds the time control of a timed game.
type ClockConfig struct {
	// Base is the starting budget of each player.
	Base time.Duration

	// PerMove is added to the mover's budget after each completed move.
	PerMove time.Duration
}

// NewClockConfig creates a ClockConfig with the given base time and increment.
func NewClockConfig(base, perMove time.Duration) *ClockConfig {
	return &ClockConfig{Base: base, PerMove: perMove}
}

// Validate checks that the clock configuration is valid.
func (c *ClockConfig) Validate() error {
	if c.Base <= 0 {
		return fmt.Errorf("clock base time %s must be positive: %w", c.Base, errors.ErrInvalidConfig)
	}
	if c.PerMove < 0 {
		return fmt.Errorf("clock increment %s is negative: %w", c.PerMove, errors.ErrInvalidConfig)
	}
	return nil
}
