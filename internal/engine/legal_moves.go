package engine

import "github.com/lgbarn/fogchess-go/internal/chess"

// PseudoLegalMoves returns every pseudo-legal move for the given colour.
func PseudoLegalMoves(board *chess.Board, colour chess.Colour, rules Rules) []*Move {
	var moves []*Move
	board.Pieces(func(sq chess.Square, p chess.Piece) {
		if p.Colour == colour {
			moves = append(moves, Generate(board, sq, rules)...)
		}
	})
	return moves
}

// LegalMoves returns the moves the given colour may play.
//
// With the checkmate rule each candidate is tried on the board, the mover's
// king is tested and the move is taken back; only safe moves are kept. This
// costs one check test per candidate, which is acceptable for a turn-based
// engine and avoids maintaining incremental attack maps. Without the rule
// every pseudo-legal move is returned, including moves into check.
//
// The board is unchanged on return.
func LegalMoves(board *chess.Board, colour chess.Colour, rules Rules) ([]*Move, error) {
	candidates := PseudoLegalMoves(board, colour, rules)
	if !rules.CheckmateRule {
		return candidates, nil
	}

	legal := candidates[:0]
	for _, m := range candidates {
		safe, err := leavesKingSafe(board, m, colour)
		if err != nil {
			return nil, err
		}
		if safe {
			legal = append(legal, m)
		}
	}
	return legal, nil
}

// leavesKingSafe makes the move, checks if it leaves the king in check, and
// takes it back.
func leavesKingSafe(board *chess.Board, m *Move, colour chess.Colour) (bool, error) {
	st := m.Apply(board)
	inCheck, err := TestForCheck(board, colour)
	m.Undo(board, st)
	if err != nil {
		return false, err
	}
	return !inCheck, nil
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour, rules Rules) (bool, error) {
	moves, err := LegalMoves(board, colour, rules)
	if err != nil {
		return false, err
	}
	return len(moves) > 0, nil
}
