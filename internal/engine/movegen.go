package engine

import (
	"github.com/lgbarn/fogchess-go/internal/chess"
)

// Rules holds the rule switches that influence move generation.
type Rules struct {
	// CheckmateRule forbids moves that leave the mover's king attacked,
	// including castling out of, through or into check.
	CheckmateRule bool
}

// Generate returns the pseudo-legal moves of the piece standing on from.
// An empty square yields no moves.
func Generate(board *chess.Board, from chess.Square, rules Rules) []*Move {
	if !from.Valid() {
		return nil
	}
	piece := board.Get(from)

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, from, piece)
	case chess.Knight:
		return stepMoves(board, from, piece, knightOffsets)
	case chess.Bishop:
		return slidingMoves(board, from, piece, diagonalDirs)
	case chess.Rook:
		return slidingMoves(board, from, piece, straightDirs)
	case chess.Queen:
		return slidingMoves(board, from, piece, allDirs)
	case chess.King:
		moves := stepMoves(board, from, piece, kingOffsets)
		return append(moves, castlingMoves(board, from, piece, rules)...)
	default:
		return nil
	}
}

// Scan returns the destination squares of the piece on from without any
// legality filtering. Fog-of-war visibility is built from it, so squares a
// piece threatens count even when moving there would be illegal.
func Scan(board *chess.Board, from chess.Square, rules Rules) []chess.Square {
	moves := Generate(board, from, rules)
	squares := make([]chess.Square, 0, len(moves))
	for _, m := range moves {
		squares = append(squares, m.To)
	}
	return squares
}

// stepMoves handles knight and king single steps from a fixed offset table.
func stepMoves(board *chess.Board, from chess.Square, piece chess.Piece, offsets []offset) []*Move {
	var moves []*Move
	for _, o := range offsets {
		to := from.Offset(o.df, o.dr)
		if board.IsEmptyOrNotColour(piece.Colour, to) {
			moves = append(moves, &Move{Class: RegularMove, From: from, To: to, Piece: piece})
		}
	}
	return moves
}

// slidingMoves walks each direction until blocked, including the first enemy piece.
func slidingMoves(board *chess.Board, from chess.Square, piece chess.Piece, dirs []offset) []*Move {
	var moves []*Move
	for _, dir := range dirs {
		to := from
		for step := 0; step < chess.BoardSize-1; step++ {
			to = to.Offset(dir.df, dir.dr)
			if !board.IsEmptyOrNotColour(piece.Colour, to) {
				break // Off board or own piece
			}
			moves = append(moves, &Move{Class: RegularMove, From: from, To: to, Piece: piece})
			if !board.IsEmpty(to) {
				break // Capture ends the ray
			}
		}
	}
	return moves
}
