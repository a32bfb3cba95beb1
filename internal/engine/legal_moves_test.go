package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/fogchess-go/internal/chess"
	chesserrors "github.com/lgbarn/fogchess-go/internal/errors"
)

// perft counts the leaf nodes of the legal move tree to the given depth.
func perft(tb testing.TB, board *chess.Board, colour chess.Colour, depth int) int {
	if depth == 0 {
		return 1
	}
	moves, err := LegalMoves(board, colour, standardRules)
	if err != nil {
		tb.Fatalf("LegalMoves() error: %v", err)
	}
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		st := m.Apply(board)
		nodes += perft(tb, board, colour.Opposite(), depth-1)
		m.Undo(board, st)
	}
	return nodes
}

func TestPerft(t *testing.T) {
	// Reference counts for positions where no promotion occurs within the
	// searched depth.
	tests := []struct {
		name  string
		fen   string
		depth int
		want  int
	}{
		{"initial depth 1", InitialFEN, 1, 20},
		{"initial depth 2", InitialFEN, 2, 400},
		{"initial depth 3", InitialFEN, 3, 8902},
		{"kiwipete depth 1", benchFENs["Complex"], 1, 48},
		{"kiwipete depth 2", benchFENs["Complex"], 2, 2039},
		{"rook endgame depth 1", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 1, 14},
		{"rook endgame depth 2", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 2, 191},
		{"rook endgame depth 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if testing.Short() && tt.want > 1000 {
				t.Skip("skipping deep perft in short mode")
			}
			board, toMove := mustBoard(t, tt.fen)
			if got := perft(t, board, toMove, tt.depth); got != tt.want {
				t.Errorf("perft(%d) = %d, want %d", tt.depth, got, tt.want)
			}
		})
	}
}

func TestLegalMoves_Filtering(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		rules     Rules
		wantCount int
	}{
		{"in check must respond", "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1", standardRules, 2},
		{"without rule moves into check are kept", "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1", Rules{}, 5},
		{"checkmated side has none", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", standardRules, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove := mustBoard(t, tt.fen)
			before := board.SaveState()
			moves, err := LegalMoves(board, toMove, tt.rules)
			if err != nil {
				t.Fatalf("LegalMoves() error: %v", err)
			}
			if len(moves) != tt.wantCount {
				t.Errorf("len(LegalMoves()) = %d, want %d: %v", len(moves), tt.wantCount, destinations(moves))
			}
			if board.SaveState() != before {
				t.Error("LegalMoves() modified the board")
			}
		})
	}
}

func TestLegalMoves_MissingKing(t *testing.T) {
	board := chess.NewBoard()
	board.Set(chess.MustSquare("e1"), chess.W(chess.King))
	board.Set(chess.MustSquare("a2"), chess.W(chess.Rook))

	_, err := LegalMoves(board, chess.Black, standardRules)
	if err != nil {
		t.Fatalf("LegalMoves(Black) with no pieces error: %v", err)
	}

	board.Set(chess.MustSquare("h8"), chess.B(chess.Rook))
	if _, err := LegalMoves(board, chess.Black, standardRules); !errors.Is(err, chesserrors.ErrInvariantViolation) {
		t.Errorf("LegalMoves(Black) error = %v, want ErrInvariantViolation", err)
	}
}

func TestGameState(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		rules         Rules
		wantCheckmate bool
		wantStalemate bool
	}{
		{"initial", InitialFEN, standardRules, false, false},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", standardRules, true, false},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/R5K1 b - - 0 1", standardRules, false, false},
		{"back rank mated", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", standardRules, true, false},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", standardRules, false, true},
		{"check but escapable", "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1", standardRules, false, false},
		{"no mate without the rule", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", Rules{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove := mustBoard(t, tt.fen)

			mate, err := IsCheckmate(board, toMove, tt.rules)
			if err != nil {
				t.Fatalf("IsCheckmate() error: %v", err)
			}
			if mate != tt.wantCheckmate {
				t.Errorf("IsCheckmate() = %v, want %v", mate, tt.wantCheckmate)
			}

			stale, err := IsStalemate(board, toMove, tt.rules)
			if err != nil {
				t.Fatalf("IsStalemate() error: %v", err)
			}
			if stale != tt.wantStalemate {
				t.Errorf("IsStalemate() = %v, want %v", stale, tt.wantStalemate)
			}
		})
	}
}
