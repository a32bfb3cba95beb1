package chess

import (
	"github.com/lgbarn/fogchess-go/internal/errors"
)

// Cell is a single board square with per-colour visibility bits.
type Cell struct {
	Piece        Piece
	WhiteVisible bool
	BlackVisible bool
}

// CastlingSide indexes the four castling rights by the original rook square.
type CastlingSide int

const (
	WhiteQueenside CastlingSide = iota // a1 rook
	WhiteKingside                      // h1 rook
	BlackQueenside                     // a8 rook
	BlackKingside                      // h8 rook
	NumCastlingSides
)

// CastlingRights holds one flag per original rook square.
type CastlingRights [NumCastlingSides]bool

// AllCastlingRights is the rights set of the standard starting position.
var AllCastlingRights = CastlingRights{true, true, true, true}

// rookSquares maps each castling side to the square its rook starts on.
var rookSquares = [NumCastlingSides]Square{
	WhiteQueenside: {File: 0, Rank: 0},
	WhiteKingside:  {File: 7, Rank: 0},
	BlackQueenside: {File: 0, Rank: 7},
	BlackKingside:  {File: 7, Rank: 7},
}

// RookSquare returns the original rook square of a castling side.
func (cs CastlingSide) RookSquare() Square {
	return rookSquares[cs]
}

// Colour returns the side that owns the castling right.
func (cs CastlingSide) Colour() Colour {
	if cs == WhiteQueenside || cs == WhiteKingside {
		return White
	}
	return Black
}

// Kingside reports whether the right is for short castling.
func (cs CastlingSide) Kingside() bool {
	return cs == WhiteKingside || cs == BlackKingside
}

// CastlingSides returns the queenside and kingside rights of a colour.
func CastlingSides(colour Colour) [2]CastlingSide {
	if colour == White {
		return [2]CastlingSide{WhiteQueenside, WhiteKingside}
	}
	return [2]CastlingSide{BlackQueenside, BlackKingside}
}

// Board represents a chess board with all state needed for rule evaluation.
// The board owns its cells and flags; nothing here is shared between boards.
type Board struct {
	// cells[file][rank]
	cells [BoardSize][BoardSize]Cell

	// One flag per original rook square. A flag is cleared the first time
	// its rook or the matching king moves.
	castling CastlingRights

	// Destination of the most recent two-square pawn advance, or NoSquare.
	lastDouble Square

	// Check is set when the side to move is in check.
	Check bool
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{lastDouble: NoSquare}
}

// Clear empties every square and resets all flags.
func (b *Board) Clear() {
	b.cells = [BoardSize][BoardSize]Cell{}
	b.castling = CastlingRights{}
	b.lastDouble = NoSquare
	b.Check = false
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.cells[file][0].Piece = W(backRank[file])
		b.cells[file][1].Piece = W(Pawn)
		b.cells[file][6].Piece = B(Pawn)
		b.cells[file][7].Piece = B(backRank[file])
	}

	b.castling = AllCastlingRights
	b.SetVisibility(true)
}

// Get returns the piece at sq. The square must be on the board.
func (b *Board) Get(sq Square) Piece {
	return b.cells[sq.File][sq.Rank].Piece
}

// Set places a piece at sq. The square must be on the board.
func (b *Board) Set(sq Square, p Piece) {
	b.cells[sq.File][sq.Rank].Piece = p
}

// At returns the piece at sq, or ErrInvalidCoordinate if sq is off the board.
func (b *Board) At(sq Square) (Piece, error) {
	if !sq.Valid() {
		return Piece{}, errors.Wrapf(errors.ErrInvalidCoordinate, "square (%d, %d)", sq.File, sq.Rank)
	}
	return b.Get(sq), nil
}

// Add places p on an empty square.
func (b *Board) Add(sq Square, p Piece) error {
	existing, err := b.At(sq)
	if err != nil {
		return err
	}
	if !existing.IsEmpty() {
		return errors.Wrapf(errors.ErrOccupied, "%s already contains %s", sq, existing)
	}
	b.Set(sq, p)
	return nil
}

// Move relocates the occupant of from to to without any side effects.
// Whatever stood on to is overwritten.
func (b *Board) Move(from, to Square) {
	b.cells[to.File][to.Rank].Piece = b.cells[from.File][from.Rank].Piece
	b.cells[from.File][from.Rank].Piece = Piece{}
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.Valid() && b.Get(sq).IsEmpty()
}

// IsColour reports whether sq holds a piece of colour c.
func (b *Board) IsColour(c Colour, sq Square) bool {
	if !sq.Valid() {
		return false
	}
	p := b.Get(sq)
	return !p.IsEmpty() && p.Colour == c
}

// IsOtherColour reports whether sq holds a piece not of colour c.
func (b *Board) IsOtherColour(c Colour, sq Square) bool {
	if !sq.Valid() {
		return false
	}
	p := b.Get(sq)
	return !p.IsEmpty() && p.Colour != c
}

// IsEmptyOrNotColour reports whether sq is on the board and either empty
// or held by the opponent of c.
func (b *Board) IsEmptyOrNotColour(c Colour, sq Square) bool {
	if !sq.Valid() {
		return false
	}
	p := b.Get(sq)
	return p.IsEmpty() || p.Colour != c
}

// IsPieceAt reports whether sq holds a piece of the given colour and kind.
func (b *Board) IsPieceAt(colour Colour, kind Kind, sq Square) bool {
	return sq.Valid() && b.Get(sq).Is(colour, kind)
}

// Pieces calls fn for every occupied square, rank by rank from a1.
func (b *Board) Pieces(fn func(Square, Piece)) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.cells[file][rank].Piece; !p.IsEmpty() {
				fn(Sq(file, rank), p)
			}
		}
	}
}

// CastlingRights returns a copy of the castling flags.
func (b *Board) CastlingRights() CastlingRights {
	return b.castling
}

// SetCastlingRights replaces the castling flags.
func (b *Board) SetCastlingRights(rights CastlingRights) {
	b.castling = rights
}

// CanCastle reports whether the right for side is still held.
func (b *Board) CanCastle(side CastlingSide) bool {
	return b.castling[side]
}

// Revoke clears any castling right whose rook starts on sq.
func (b *Board) Revoke(sq Square) {
	for side, rookSq := range rookSquares {
		if rookSq == sq {
			b.castling[side] = false
		}
	}
}

// RevokeColour clears both castling rights of colour.
func (b *Board) RevokeColour(colour Colour) {
	for _, side := range CastlingSides(colour) {
		b.castling[side] = false
	}
}

// LastDouble returns the square of the pawn that just advanced two squares,
// or NoSquare.
func (b *Board) LastDouble() Square {
	return b.lastDouble
}

// SetLastDouble records the en passant marker.
func (b *Board) SetLastDouble(sq Square) {
	b.lastDouble = sq
}

// SetVisibility sets both colours' visibility of every square.
func (b *Board) SetVisibility(visible bool) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.cells[file][rank].WhiteVisible = visible
			b.cells[file][rank].BlackVisible = visible
		}
	}
}

// Reveal makes sq visible to colour.
func (b *Board) Reveal(colour Colour, sq Square) {
	if !sq.Valid() {
		return
	}
	if colour == White {
		b.cells[sq.File][sq.Rank].WhiteVisible = true
	} else {
		b.cells[sq.File][sq.Rank].BlackVisible = true
	}
}

// IsVisible reports whether colour can see sq. Off-board squares are never visible.
func (b *Board) IsVisible(colour Colour, sq Square) bool {
	if !sq.Valid() {
		return false
	}
	if colour == White {
		return b.cells[sq.File][sq.Rank].WhiteVisible
	}
	return b.cells[sq.File][sq.Rank].BlackVisible
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// BoardState captures all mutable board state for save/restore operations
// and for comparing positions.
type BoardState struct {
	Cells      [BoardSize][BoardSize]Cell
	Castling   CastlingRights
	LastDouble Square
	Check      bool
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Cells:      b.cells,
		Castling:   b.castling,
		LastDouble: b.lastDouble,
		Check:      b.Check,
	}
}

// RestoreState restores the board to a previously saved state.
func (b *Board) RestoreState(s BoardState) {
	b.cells = s.Cells
	b.castling = s.Castling
	b.lastDouble = s.LastDouble
	b.Check = s.Check
}
