// Package engine provides chess move generation, check detection and
// reversible move application.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/fogchess-go/internal/chess"
	"github.com/lgbarn/fogchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoKind
	}
}

// NewBoardFromFEN creates a board from a FEN string and returns it together
// with the side to move. The halfmove and fullmove fields are ignored.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, chess.White, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, chess.White, err
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, err := FindKing(board, colour); err != nil {
			return nil, chess.White, err
		}
	}

	board.SetVisibility(true)
	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	kings := map[chess.Colour]int{}
	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := ConvertFENCharToKind(byte(c))
				if kind == chess.NoKind {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				if kind == chess.King {
					kings[colour]++
				}

				board.Set(chess.Sq(file, rank), chess.NewPiece(colour, kind))
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}

	if kings[chess.White] > 1 || kings[chess.Black] > 1 {
		return fmt.Errorf("more than one king per side: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	var rights chess.CastlingRights
	if len(parts) >= 3 && parts[2] != "-" {
		for _, c := range parts[2] {
			switch c {
			case 'K':
				rights[chess.WhiteKingside] = true
			case 'Q':
				rights[chess.WhiteQueenside] = true
			case 'k':
				rights[chess.BlackKingside] = true
			case 'q':
				rights[chess.BlackQueenside] = true
			default:
				return fmt.Errorf("invalid castling field %q: %w", parts[2], errors.ErrInvalidFEN)
			}
		}
	}
	board.SetCastlingRights(rights)
	return nil
}

// parseEnPassant parses the en passant target square field and converts it
// into the square of the pawn that just advanced.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	switch target.Rank {
	case 2: // White just pushed to rank 4
		board.SetLastDouble(target.Offset(0, 1))
	case 5: // Black just pushed to rank 5
		board.SetLastDouble(target.Offset(0, -1))
	default:
		return fmt.Errorf("en passant square %q on wrong rank: %w", parts[3], errors.ErrInvalidFEN)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board, toMove chess.Colour, fullmove int) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	fmt.Fprintf(&sb, " 0 %d", fullmove)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	letters := []struct {
		side   chess.CastlingSide
		letter byte
	}{
		{chess.WhiteKingside, 'K'},
		{chess.WhiteQueenside, 'Q'},
		{chess.BlackKingside, 'k'},
		{chess.BlackQueenside, 'q'},
	}

	hasCastling := false
	for _, l := range letters {
		if board.CanCastle(l.side) {
			sb.WriteByte(l.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	marker := board.LastDouble()
	if !marker.Valid() {
		sb.WriteByte('-')
		return
	}
	pawn := board.Get(marker)
	// The target is the square the pawn passed over.
	sb.WriteString(marker.Offset(0, -pawn.Colour.Forward()).String())
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
