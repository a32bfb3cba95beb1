package engine

import (
	"github.com/lgbarn/fogchess-go/internal/chess"
	"github.com/lgbarn/fogchess-go/internal/errors"
)

// offset is a (file, rank) displacement.
type offset struct {
	df, dr int
}

var (
	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	diagonalDirs = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs      = append(append([]offset{}, diagonalDirs...), straightDirs...)
)

// FindKing finds the king of the given colour on the board.
// A missing king means the board is corrupt.
func FindKing(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			if board.Get(sq).Is(colour, chess.King) {
				return sq, nil
			}
		}
	}
	return chess.NoSquare, errors.Wrapf(errors.ErrInvariantViolation, "%s king not found", colour)
}

// TestForCheck returns true if the given colour's king is in check.
func TestForCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	kingSq, err := FindKing(board, colour)
	if err != nil {
		return false, err
	}
	return IsCheckAt(board, colour, kingSq), nil
}

// IsCheckAt returns true if a king of the given colour standing on sq would
// be attacked by the opposing side.
func IsCheckAt(board *chess.Board, colour chess.Colour, sq chess.Square) bool {
	enemy := colour.Opposite()

	// Knight and king attacks
	for i := range knightOffsets {
		k := knightOffsets[i]
		if board.IsPieceAt(enemy, chess.Knight, sq.Offset(k.df, k.dr)) {
			return true
		}
		g := kingOffsets[i]
		if board.IsPieceAt(enemy, chess.King, sq.Offset(g.df, g.dr)) {
			return true
		}
	}

	// Enemy pawns attack towards us, so they sit one step "behind" from their view.
	back := -enemy.Forward()
	if board.IsPieceAt(enemy, chess.Pawn, sq.Offset(-1, back)) ||
		board.IsPieceAt(enemy, chess.Pawn, sq.Offset(1, back)) {
		return true
	}

	// Sliding pieces; the queen counts along both ray families
	return rayAttacked(board, sq, enemy, chess.Bishop, diagonalDirs) ||
		rayAttacked(board, sq, enemy, chess.Rook, straightDirs)
}

// rayAttacked walks each direction from sq and reports whether the first
// occupied square holds an enemy piece of the given kind or a queen.
func rayAttacked(board *chess.Board, sq chess.Square, enemy chess.Colour, kind chess.Kind, dirs []offset) bool {
	for _, dir := range dirs {
		cur := sq
		for step := 0; step < chess.BoardSize-1; step++ {
			cur = cur.Offset(dir.df, dir.dr)
			if !cur.Valid() {
				break
			}
			piece := board.Get(cur)
			if piece.IsEmpty() {
				continue
			}
			if piece.Colour == enemy && (piece.Kind == kind || piece.Kind == chess.Queen) {
				return true
			}
			break // Blocked
		}
	}
	return false
}
