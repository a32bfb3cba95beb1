// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/fogchess-go/internal/config"
)

var (
	// Rule variant
	fogOfWar    = flag.Bool("fog", false, "Play fog-of-war: each side only sees what its pieces reach")
	noCheck     = flag.Bool("nocheck", false, "Don't report check")
	noCheckmate = flag.Bool("nocheckmate", false, "Disable the checkmate rule; the game ends when a king is captured")
	clockBase   = flag.Duration("clock", 0, "Time per player, e.g. 5m (0 = untimed)")
	increment   = flag.Duration("increment", 0, "Time added after each move, e.g. 2s")
	startFEN    = flag.String("fen", "", "Start from this FEN position")

	// Input
	inlineMoves  = flag.String("m", "", "Moves to play, separated by commas or spaces (e.g. 'e2-e4,e7-e5')")
	fileListFile = flag.String("f", "", "File containing a list of move files to replay (one per line)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	view         = flag.String("view", "all", "Board seen by: all, white or black")
	noBoard      = flag.Bool("noboard", false, "Don't draw the board")
	noMoves      = flag.Bool("nomoves", false, "Don't list the moves available to the side to move")
	noCoords     = flag.Bool("nocoords", false, "Don't label files and ranks")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Log verbosity: 0=errors, 1=warnings, 2=game events, 3=every move")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of games replayed in parallel (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	variant, err := variantFromFlags()
	if err != nil {
		return err
	}
	cfg.Variant = variant
	cfg.StartFEN = *startFEN
	cfg.MoveFile = *fileListFile
	cfg.OutputFilename = *outputFile
	cfg.Workers = *workers

	if err := applyOutputFlags(cfg); err != nil {
		return err
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// variantFromFlags builds the rule variant from the rule flags.
func variantFromFlags() (config.Variant, error) {
	b := config.NewVariantBuilder().
		WithFogOfWar(*fogOfWar).
		WithCheckRule(!*fogOfWar && !*noCheck).
		WithCheckmateRule(!*fogOfWar && !*noCheckmate)

	if *clockBase != 0 || *increment != 0 {
		b.WithClock(*clockBase, *increment)
	}
	return b.Build()
}

// applyOutputFlags configures rendering.
func applyOutputFlags(cfg *config.Config) error {
	perspective, err := config.ParsePerspective(*view)
	if err != nil {
		return err
	}
	cfg.Output.Perspective = perspective
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowMoves = !*noMoves
	cfg.Output.Coordinates = !*noCoords
	return nil
}
