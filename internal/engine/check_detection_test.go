package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/fogchess-go/internal/chess"
	chesserrors "github.com/lgbarn/fogchess-go/internal/errors"
)

func TestTestForCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial white", InitialFEN, chess.White, false},
		{"initial black", InitialFEN, chess.Black, false},
		{"rook on open file", "4k3/8/8/8/8/8/8/4K2r w - - 0 1", chess.White, true},
		{"rook blocked", "4k3/8/8/8/8/8/8/r2BK3 w - - 0 1", chess.White, false},
		{"bishop diagonal", "4k3/8/8/8/1b6/8/8/4K3 w - - 0 1", chess.White, true},
		{"queen diagonal", "4k3/8/8/8/8/8/5q2/4K3 w - - 0 1", chess.White, true},
		{"queen straight", "4k3/8/8/8/8/8/8/q3K3 w - - 0 1", chess.White, true},
		{"knight", "4k3/8/8/8/8/3n4/8/4K3 w - - 0 1", chess.White, true},
		{"black pawn attacks down", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"black pawn behind does not attack", "4k3/8/8/8/8/8/8/3pK3 w - - 0 1", chess.White, false},
		{"white pawn attacks up", "4k3/3P4/8/8/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"adjacent king", "8/8/8/8/8/8/4k3/4K3 w - - 0 1", chess.White, true},
		{"own piece does not check", "4k3/8/8/8/8/8/8/4K2R w - - 0 1", chess.White, false},
		{"rook on diagonal does not check", "4k3/8/8/8/8/8/5r2/4K3 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := mustBoard(t, tt.fen)
			got, err := TestForCheck(board, tt.colour)
			if err != nil {
				t.Fatalf("TestForCheck() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("TestForCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestFindKing(t *testing.T) {
	board := NewInitialBoard()

	tests := []struct {
		colour chess.Colour
		want   string
	}{
		{chess.White, "e1"},
		{chess.Black, "e8"},
	}
	for _, tt := range tests {
		got, err := FindKing(board, tt.colour)
		if err != nil {
			t.Fatalf("FindKing(%v) error: %v", tt.colour, err)
		}
		if got.String() != tt.want {
			t.Errorf("FindKing(%v) = %v, want %v", tt.colour, got, tt.want)
		}
	}

	board.Set(chess.MustSquare("e8"), chess.Piece{})
	if _, err := FindKing(board, chess.Black); !errors.Is(err, chesserrors.ErrInvariantViolation) {
		t.Errorf("FindKing() without king error = %v, want ErrInvariantViolation", err)
	}
	if _, err := TestForCheck(board, chess.Black); !errors.Is(err, chesserrors.ErrInvariantViolation) {
		t.Errorf("TestForCheck() without king error = %v, want ErrInvariantViolation", err)
	}
}

func TestIsCheckAt(t *testing.T) {
	board, _ := mustBoard(t, "4k3/8/8/8/8/8/8/4K2r w - - 0 1")

	tests := []struct {
		square string
		want   bool
	}{
		{"f1", true},
		{"d1", false}, // the king itself blocks the ray
		{"d2", false},
		{"h2", true},
		{"g2", false},
	}
	for _, tt := range tests {
		if got := IsCheckAt(board, chess.White, chess.MustSquare(tt.square)); got != tt.want {
			t.Errorf("IsCheckAt(%s) = %v, want %v", tt.square, got, tt.want)
		}
	}
}
