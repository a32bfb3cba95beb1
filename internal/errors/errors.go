// Package errors provides sentinel errors and error types for the fogchess engine.
// It defines the failure conditions reported to collaborators and a structured
// error type that preserves move context while allowing inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidCoordinate indicates a square index outside 0-7.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrIllegalMove indicates a notation missing from the legal-move table.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvariantViolation indicates corrupted engine state, such as a missing king.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrGameOver indicates a mutation attempted after the game reached a terminal status.
	ErrGameOver = errors.New("game over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOccupied indicates a piece placed on a square that already holds one.
	ErrOccupied = errors.New("square occupied")
)

// MoveError wraps errors with move context: the ply at which the move was
// submitted, the notation text and the side that submitted it. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply number of the attempted move
	Notation string // The notation that was submitted
	Side     string // Side to move when the move was submitted
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Side != "" {
		parts = append(parts, strings.ToLower(e.Side))
	}
	if e.Notation != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Notation))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It forwards to the standard library so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
