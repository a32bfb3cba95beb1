package engine

import "github.com/lgbarn/fogchess-go/internal/chess"

// kingHomeFile is the e-file, where kings must stand to castle.
const kingHomeFile = 4

// castlingMoves yields the castling candidates of a king standing on from.
func castlingMoves(board *chess.Board, from chess.Square, king chess.Piece, rules Rules) []*Move {
	colour := king.Colour
	if from != chess.Sq(kingHomeFile, colour.HomeRank()) {
		return nil
	}

	var moves []*Move
	for _, side := range chess.CastlingSides(colour) {
		if m := castlingMove(board, from, king, side, rules); m != nil {
			moves = append(moves, m)
		}
	}
	return moves
}

// castlingMove builds the castling move for one side, or nil if any
// precondition fails.
func castlingMove(board *chess.Board, from chess.Square, king chess.Piece, side chess.CastlingSide, rules Rules) *Move {
	if !board.CanCastle(side) {
		return nil
	}

	rookFrom := side.RookSquare()
	rook := board.Get(rookFrom)
	if !rook.Is(king.Colour, chess.Rook) {
		return nil
	}

	dir := -1
	if side.Kingside() {
		dir = 1
	}

	// Everything strictly between king and rook must be empty.
	for sq := from.Offset(dir, 0); sq != rookFrom; sq = sq.Offset(dir, 0) {
		if !board.IsEmpty(sq) {
			return nil
		}
	}

	transit := from.Offset(dir, 0)
	to := from.Offset(2*dir, 0)

	if rules.CheckmateRule {
		for _, sq := range []chess.Square{from, transit, to} {
			if IsCheckAt(board, king.Colour, sq) {
				return nil
			}
		}
	}

	return &Move{
		Class: CastlingMove,
		From:  from,
		To:    to,
		Piece: king,
		Rook:  &Move{Class: RegularMove, From: rookFrom, To: transit, Piece: rook},
	}
}
