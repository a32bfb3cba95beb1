// Package config provides rule-variant and program configuration for fogchess.
package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/lgbarn/fogchess-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Rules of the game to play
	Variant Variant

	// Output formatting
	Output *OutputConfig

	// Verbosity: 0=errors only, 1=summary and warnings, 2=game events, 3=every move
	Verbosity int

	// Workers replaying move lists in parallel (0 = one per CPU)
	Workers int

	// StartFEN overrides the standard initial position when set
	StartFEN string

	// File handling
	MoveFile       string
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Variant:    StandardVariant(),
		Output:     NewOutputConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer for rendered output.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer for log output.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// LogLevel maps Verbosity to the minimum slog level written to LogFile.
func (c *Config) LogLevel() slog.Level {
	switch {
	case c.Verbosity <= 0:
		return slog.LevelError
	case c.Verbosity == 1:
		return slog.LevelWarn
	case c.Verbosity == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Validate checks the configuration before a game is started.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "negative worker count %d", c.Workers)
	}
	return c.Variant.Validate()
}
