// Package chess provides core chess types: colours, pieces, squares and the board.
package chess

import (
	"fmt"

	"github.com/lgbarn/fogchess-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of playing sides.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of the colour.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is the occupant of a board square. The zero value is an empty square.
type Piece struct {
	Colour Colour
	Kind   Kind
	// Moved is set once the piece has left its starting square.
	Moved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece{Colour: colour, Kind: kind}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black and '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Pawn", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Square identifies a board cell by file (0 = a) and rank (0 = 1).
type Square struct {
	File int
	Rank int
}

// NoSquare marks the absence of a square, e.g. no pending en passant.
var NoSquare = Square{File: -1, Rank: -1}

// Sq is shorthand for Square{file, rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// CheckRange reports whether i is a valid file or rank index.
func CheckRange(i int) bool {
	return i >= 0 && i < BoardSize
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return CheckRange(s.File) && CheckRange(s.Rank)
}

// Offset returns the square displaced by (df, dr). The result may be off board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String renders the algebraic name, e.g. "e4", or "-" for off-board squares.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// SquareName renders the algebraic name of (file, rank).
func SquareName(file, rank int) (string, error) {
	sq := Sq(file, rank)
	if !sq.Valid() {
		return "", errors.Wrapf(errors.ErrInvalidCoordinate, "square (%d, %d)", file, rank)
	}
	return sq.String(), nil
}

// ParseSquare converts an algebraic name such as "e4" into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	sq := Sq(int(s[0])-FileBase, int(s[1])-RankBase)
	if !sq.Valid() {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrInvalidCoordinate)
	}
	return sq, nil
}

// MustSquare is like ParseSquare but panics on malformed input.
// It is intended for fixed names in tables and tests.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// SquareColour returns the checker colour of a square: a1 is dark.
func SquareColour(sq Square) Colour {
	if (sq.File+sq.Rank)&1 == 0 {
		return Black
	}
	return White
}
