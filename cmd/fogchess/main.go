// fogchess replays chess games, including fog-of-war and king-capture
// variants, from move lists and prints the resulting positions.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lgbarn/fogchess-go/internal/config"
	"github.com/lgbarn/fogchess-go/internal/game"
	"github.com/lgbarn/fogchess-go/internal/output"
	"github.com/lgbarn/fogchess-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fogchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	logger := newLogger(cfg)

	scripts, err := loadScripts(cfg, flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	results := replayScripts(cfg, scripts, logger)
	played, rejected, err := writeResults(cfg, results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	writeSummary(os.Stderr, *quiet, played, rejected)
}

// writeSummary prints the game count unless silent.
func writeSummary(w io.Writer, silent bool, played, rejected int) {
	if silent {
		return
	}
	fmt.Fprintf(w, "%d game(s) replayed, %d move(s) rejected.\n", played, rejected)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.OutputFilename == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(cfg.OutputFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(cfg.OutputFilename)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// newLogger builds the slog logger writing to the configured log file.
func newLogger(cfg *config.Config) *slog.Logger {
	handler := slog.NewTextHandler(cfg.LogFile, &slog.HandlerOptions{Level: cfg.LogLevel()})
	return slog.New(handler).With("program", "fogchess")
}

// loadScripts gathers the move lists to replay. Inline moves come first, then
// each named file, then the files listed in cfg.MoveFile. With none of these
// the moves are read from stdin.
func loadScripts(cfg *config.Config, args []string, stdin io.Reader) ([]worker.Script, error) {
	var scripts []worker.Script

	if *inlineMoves != "" {
		scripts = append(scripts, worker.Script{Name: "-m", Moves: game.SplitMoves(*inlineMoves)})
	}

	files := args
	if cfg.MoveFile != "" {
		listed, err := readFileList(cfg.MoveFile)
		if err != nil {
			return nil, err
		}
		files = append(files, listed...)
	}

	for _, filename := range files {
		s, err := readScriptFile(filename)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}

	if len(scripts) == 0 {
		moves, err := game.ReadMoveList(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		scripts = append(scripts, worker.Script{Name: "stdin", Moves: moves})
	}
	return scripts, nil
}

// readScriptFile reads one move file.
func readScriptFile(filename string) (worker.Script, error) {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return worker.Script{}, fmt.Errorf("opening move file: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	moves, err := game.ReadMoveList(file)
	if err != nil {
		return worker.Script{}, fmt.Errorf("reading %s: %w", filename, err)
	}
	return worker.Script{Name: filename, Moves: moves}, nil
}

// readFileList reads a file containing a list of move files, one per line.
// Blank lines and lines starting with '#' are skipped.
func readFileList(filename string) ([]string, error) {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, fmt.Errorf("opening file list: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	var files []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		files = append(files, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file list: %w", err)
	}
	return files, nil
}

// replayScripts plays every script on its own game using the worker pool.
func replayScripts(cfg *config.Config, scripts []worker.Script, logger *slog.Logger) []worker.Result {
	opts := []game.Option{game.WithLogger(logger)}
	if cfg.StartFEN != "" {
		opts = append(opts, game.WithFEN(cfg.StartFEN))
	}

	var poolOpts []worker.PoolOption
	if cfg.Workers > 0 {
		poolOpts = append(poolOpts, worker.WithWorkers(cfg.Workers))
	}
	return worker.ReplayAll(scripts, worker.Replayer(cfg.Variant, opts...), poolOpts...)
}

// writeResults renders every replayed game in input order and returns the
// number of games written and of moves rejected. Games that could not be set
// up are reported to the log instead.
func writeResults(cfg *config.Config, results []worker.Result) (played, rejected int, err error) {
	w := output.NewGameWriter(cfg.OutputFile, cfg)
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(cfg.LogFile, "%s: %v\n", res.Name, res.Err)
			continue
		}

		if err := w.WriteResult(res.Name, res.Game, res.Rejected); err != nil {
			return played, rejected, err
		}
		played++
		rejected += len(res.Rejected)
	}
	return played, rejected, w.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fogchess [options] [move-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games from move lists and prints the resulting positions.\n")
	fmt.Fprintf(os.Stderr, "Moves are written as from-to squares, e.g. e2-e4; castling is the king's move (e1-g1).\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nVariants:\n")
	fmt.Fprintf(os.Stderr, "  (default)      standard rules with check and checkmate\n")
	fmt.Fprintf(os.Stderr, "  -nocheckmate   moves into check allowed, capture the king to win\n")
	fmt.Fprintf(os.Stderr, "  -fog           fog of war: king capture, each side sees only what it reaches\n")
}
