package engine

import "github.com/lgbarn/fogchess-go/internal/chess"

// pawnStartRank returns the rank index pawns of colour start on.
func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return chess.BoardSize - 2
}

// pawnMoves generates pushes, captures, en passant and promotions for a pawn.
func pawnMoves(board *chess.Board, from chess.Square, pawn chess.Piece) []*Move {
	var moves []*Move
	dir := pawn.Colour.Forward()
	farRank := pawn.Colour.Opposite().HomeRank()

	add := func(to chess.Square) {
		m := &Move{Class: RegularMove, From: from, To: to, Piece: pawn}
		if to.Rank == farRank {
			m.Class = PromotionMove
			m.Promotion = chess.Queen
		}
		moves = append(moves, m)
	}

	// Forward move
	one := from.Offset(0, dir)
	if board.IsEmpty(one) {
		add(one)

		// Double push from starting rank
		two := from.Offset(0, 2*dir)
		if from.Rank == pawnStartRank(pawn.Colour) && board.IsEmpty(two) {
			moves = append(moves, &Move{Class: DoublePawnMove, From: from, To: two, Piece: pawn})
		}
	}

	// Captures
	for _, df := range []int{-1, 1} {
		to := from.Offset(df, dir)
		if board.IsOtherColour(pawn.Colour, to) {
			add(to)
		}

		// En passant: the marker sits beside us on our own rank.
		side := from.Offset(df, 0)
		if side == board.LastDouble() && board.IsPieceAt(pawn.Colour.Opposite(), chess.Pawn, side) && board.IsEmpty(to) {
			moves = append(moves, &Move{Class: EnPassantMove, From: from, To: to, Piece: pawn, CaptureAt: side})
		}
	}

	return moves
}
