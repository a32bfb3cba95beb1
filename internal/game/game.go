// Package game orchestrates a single chess game: the turn sequence, the
// legal-move table, rule variants, fog-of-war visibility and clocks.
//
// A Game is not safe for concurrent use. Callers that share one Game between
// goroutines must serialise every call, MakeMove in particular.
package game

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/lgbarn/fogchess-go/internal/chess"
	"github.com/lgbarn/fogchess-go/internal/config"
	"github.com/lgbarn/fogchess-go/internal/engine"
	"github.com/lgbarn/fogchess-go/internal/errors"
)

var log = slog.Default().With("package", "game")

// Game is one game in progress or finished.
type Game struct {
	board   *chess.Board
	toMove  chess.Colour
	variant config.Variant
	rules   engine.Rules

	status    Status
	winner    chess.Colour
	hasWinner bool

	// Rebuilt from scratch every ply.
	legal map[string]*engine.Move
	dests map[chess.Square][]chess.Square

	history history
	ply     int
	plyBase int // 1 when the game started with Black to move

	clock *Clock
	now   func() time.Time
	log   *slog.Logger

	startFEN string
}

// Option configures a Game.
type Option func(*Game)

// WithFEN starts the game from a FEN position instead of the initial one.
func WithFEN(fen string) Option {
	return func(g *Game) {
		g.startFEN = fen
	}
}

// WithBoard starts the game from a copy of board with toMove on move.
func WithBoard(board *chess.Board, toMove chess.Colour) Option {
	return func(g *Game) {
		g.board = board.Copy()
		g.toMove = toMove
	}
}

// WithClockSource replaces time.Now for the game's clocks.
func WithClockSource(now func() time.Time) Option {
	return func(g *Game) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLogger sets the logger used for move and status events.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.log = logger
		}
	}
}

// New creates a game under the given rule variant. Without WithFEN or
// WithBoard the game starts from the standard initial position.
func New(variant config.Variant, opts ...Option) (*Game, error) {
	if err := variant.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		toMove:  chess.White,
		variant: variant,
		rules:   engine.Rules{CheckmateRule: variant.CheckmateRule},
		now:     time.Now,
		log:     log,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.setupBoard(); err != nil {
		return nil, err
	}
	if g.toMove == chess.Black {
		g.plyBase = 1
	}
	if variant.Clock != nil {
		g.clock = newClock(*variant.Clock, g.now)
	}

	if err := g.calculateMoves(); err != nil {
		return nil, err
	}
	g.settle()

	g.log.Info("Game created", "variant", variant.String(), "toMove", g.toMove, "status", g.status)
	return g, nil
}

// setupBoard builds the starting board and checks both kings are present.
func (g *Game) setupBoard() error {
	switch {
	case g.board != nil:
	case g.startFEN != "":
		board, toMove, err := engine.NewBoardFromFEN(g.startFEN)
		if err != nil {
			return err
		}
		g.board, g.toMove = board, toMove
	default:
		g.board = engine.NewInitialBoard()
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, err := engine.FindKing(g.board, colour); err != nil {
			return err
		}
	}
	return nil
}

// calculateMoves refreshes the check flag, fog visibility and the legal-move
// table for the side to move.
func (g *Game) calculateMoves() error {
	if g.variant.CheckRule || g.variant.CheckmateRule {
		inCheck, err := engine.TestForCheck(g.board, g.toMove)
		if err != nil {
			return err
		}
		g.board.Check = inCheck
	} else {
		g.board.Check = false
	}

	g.updateVisibility()

	moves, err := engine.LegalMoves(g.board, g.toMove, g.rules)
	if err != nil {
		return err
	}

	g.legal = make(map[string]*engine.Move, len(moves))
	g.dests = make(map[chess.Square][]chess.Square)
	for _, m := range moves {
		g.legal[m.Notation()] = m
		g.dests[m.From] = append(g.dests[m.From], m.To)
	}
	return nil
}

// updateVisibility recomputes which squares each side can see. Under fog a
// side sees the squares its pieces stand on and every square they could
// reach; otherwise everything is visible.
func (g *Game) updateVisibility() {
	if !g.variant.FogOfWar {
		g.board.SetVisibility(true)
		return
	}

	g.board.SetVisibility(false)
	g.board.Pieces(func(sq chess.Square, p chess.Piece) {
		g.board.Reveal(p.Colour, sq)
		for _, to := range engine.Scan(g.board, sq, g.rules) {
			g.board.Reveal(p.Colour, to)
		}
	})
}

// settle derives the status from a freshly calculated legal-move table.
func (g *Game) settle() {
	switch {
	case len(g.legal) == 0 && g.board.Check:
		g.finish(Checkmate, g.toMove.Opposite(), true)
	case len(g.legal) == 0:
		g.finish(Stalemate, chess.White, false)
	case g.board.Check:
		g.status = Check
	default:
		g.status = Playing
	}
}

// finish moves the game to a terminal status.
func (g *Game) finish(status Status, winner chess.Colour, hasWinner bool) {
	g.status = status
	g.winner = winner
	g.hasWinner = hasWinner

	g.legal = map[string]*engine.Move{}
	g.dests = map[chess.Square][]chess.Square{}
	g.board.SetVisibility(true)
	if g.clock != nil {
		g.clock.stop(g.toMove)
	}

	attrs := []any{"status", status, "ply", g.ply}
	if hasWinner {
		attrs = append(attrs, "winner", winner)
	}
	g.log.Info("Game over", attrs...)
}

// MakeMove plays the move with the given notation, e.g. "e2-e4".
//
// Errors wrap ErrGameOver once the game has ended (including when the mover's
// clock ran out on this call) and ErrIllegalMove for any notation missing from
// the legal-move table. A rejected move leaves the game unchanged, except that
// a time-out ends the game.
func (g *Game) MakeMove(notation string) error {
	notation = strings.TrimSpace(notation)
	mover := g.toMove

	if g.status.Terminal() {
		return g.moveError(errors.ErrGameOver, notation)
	}

	m, ok := g.legal[notation]
	if !ok {
		g.log.Warn("Rejected move", "move", notation, "side", mover, "ply", g.ply+1)
		return g.moveError(errors.ErrIllegalMove, notation)
	}

	if g.clock != nil && !g.clock.spend(mover) {
		err := g.moveError(errors.Wrapf(errors.ErrGameOver, "%s ran out of time", mover), notation)
		g.finish(Timeout, mover.Opposite(), true)
		return err
	}

	kingCapture := g.board.Get(m.To).Is(mover.Opposite(), chess.King)

	m.Apply(g.board)
	g.history = g.history.record(mover, notation)
	g.ply++
	if g.clock != nil {
		g.clock.complete(mover)
	}
	g.log.Debug("Move applied", "move", notation, "side", mover, "ply", g.ply, "class", m.Class)

	g.toMove = mover.Opposite()
	if kingCapture {
		g.finish(KingCaptured, mover, true)
		return nil
	}

	if err := g.calculateMoves(); err != nil {
		return err
	}
	g.settle()
	return nil
}

// moveError wraps err with the context of the move being attempted.
func (g *Game) moveError(err error, notation string) error {
	return &errors.MoveError{
		Err:      err,
		Ply:      g.ply + 1,
		Notation: notation,
		Side:     g.toMove.String(),
	}
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// Status returns the current status.
func (g *Game) Status() Status {
	return g.status
}

// Done reports whether the game has ended.
func (g *Game) Done() bool {
	return g.status.Terminal()
}

// Winner returns the winning side; the flag is false while the game is
// running and after a stalemate.
func (g *Game) Winner() (chess.Colour, bool) {
	return g.winner, g.hasWinner
}

// InCheck reports whether the side to move is in check. It is always false
// when neither check rule is enabled.
func (g *Game) InCheck() bool {
	return g.board.Check
}

// Piece returns the occupant of the named square.
func (g *Game) Piece(square string) (chess.Piece, error) {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return chess.Piece{}, err
	}
	return g.board.At(sq)
}

// Visible reports whether colour can see the named square.
func (g *Game) Visible(colour chess.Colour, square string) (bool, error) {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return false, err
	}
	return g.board.IsVisible(colour, sq), nil
}

// LegalMoves returns the sorted notations the side to move may play.
func (g *Game) LegalMoves() []string {
	moves := make([]string, 0, len(g.legal))
	for n := range g.legal {
		moves = append(moves, n)
	}
	sort.Strings(moves)
	return moves
}

// Destinations returns the sorted squares the piece on square may move to.
// Unknown squares and pieces without moves yield nil.
func (g *Game) Destinations(square string) []string {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return nil
	}
	var out []string
	for _, to := range g.dests[sq] {
		out = append(out, to.String())
	}
	sort.Strings(out)
	return out
}

// History returns the moves played so far, one entry per full turn.
func (g *Game) History() []MovePair {
	return append([]MovePair(nil), g.history...)
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return g.ply
}

// Remaining returns the time left for colour, or zero in untimed games.
func (g *Game) Remaining(colour chess.Colour) time.Duration {
	if g.clock == nil {
		return 0
	}
	return g.clock.Remaining(colour, g.toMove)
}

// SetRemaining replaces the time left for colour.
func (g *Game) SetRemaining(colour chess.Colour, d time.Duration) error {
	switch {
	case g.clock == nil:
		return errors.Wrap(errors.ErrInvalidConfig, "game has no clock")
	case d < 0:
		return errors.Wrapf(errors.ErrInvalidConfig, "negative remaining time %s", d)
	case g.status.Terminal():
		return errors.ErrGameOver
	}
	g.clock.set(colour, g.toMove, d)
	return nil
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board, g.toMove, 1+(g.plyBase+g.ply)/2)
}

// Variant returns the rules the game is played under.
func (g *Game) Variant() config.Variant {
	return g.variant
}
