package engine

import "github.com/lgbarn/fogchess-go/internal/chess"

// IsCheckmate returns true if colour is in check and has no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour, rules Rules) (bool, error) {
	inCheck, hasMoves, err := mateState(board, colour, rules)
	return inCheck && !hasMoves, err
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour, rules Rules) (bool, error) {
	inCheck, hasMoves, err := mateState(board, colour, rules)
	return !inCheck && !hasMoves, err
}

func mateState(board *chess.Board, colour chess.Colour, rules Rules) (inCheck, hasMoves bool, err error) {
	if inCheck, err = TestForCheck(board, colour); err != nil {
		return false, false, err
	}
	if hasMoves, err = HasLegalMoves(board, colour, rules); err != nil {
		return false, false, err
	}
	return inCheck, hasMoves, nil
}
