package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fogchess-go/internal/chess"
	"github.com/lgbarn/fogchess-go/internal/errors"
)

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	RegularMove MoveClass = iota
	DoublePawnMove
	EnPassantMove
	PromotionMove
	CastlingMove
)

// String returns the name of the move class.
func (c MoveClass) String() string {
	switch c {
	case RegularMove:
		return "Regular"
	case DoublePawnMove:
		return "DoublePawn"
	case EnPassantMove:
		return "EnPassant"
	case PromotionMove:
		return "Promotion"
	case CastlingMove:
		return "Castling"
	default:
		return "Unknown"
	}
}

// Move is a command object describing one move. It is not modified after
// construction; everything needed to take it back lives in MoveState.
type Move struct {
	Class MoveClass

	From chess.Square
	To   chess.Square

	// The piece being moved, as it stood on From when the move was generated.
	Piece chess.Piece

	// The kind a pawn turns into (PromotionMove only).
	Promotion chess.Kind

	// Square of the pawn taken en passant (EnPassantMove only).
	CaptureAt chess.Square

	// The paired rook relocation (CastlingMove only).
	Rook *Move
}

// MoveState stores what Apply overwrote so Undo can restore it exactly.
type MoveState struct {
	captured   chess.Piece
	epCaptured chess.Piece
	moved      bool
	castling   chess.CastlingRights
	lastDouble chess.Square
	rook       *MoveState
}

// Captured returns the piece taken by the applied move, if any.
func (st MoveState) Captured() chess.Piece {
	if !st.epCaptured.IsEmpty() {
		return st.epCaptured
	}
	return st.captured
}

// Notation returns the canonical key of the move, e.g. "e2-e4".
func (m *Move) Notation() string {
	return m.From.String() + "-" + m.To.String()
}

// String implements fmt.Stringer.
func (m *Move) String() string {
	return m.Notation()
}

// IsCapture reports whether the move takes a piece on the given board.
func (m *Move) IsCapture(board *chess.Board) bool {
	return m.Class == EnPassantMove || board.IsOtherColour(m.Piece.Colour, m.To)
}

// Apply performs the move on board and returns the state needed by Undo.
// The move must have been generated for this board position.
func (m *Move) Apply(board *chess.Board) MoveState {
	st := MoveState{
		castling:   board.CastlingRights(),
		lastDouble: board.LastDouble(),
	}

	if m.Class == EnPassantMove {
		st.epCaptured = board.Get(m.CaptureAt)
		board.Set(m.CaptureAt, chess.Piece{})
	}

	m.applyBase(board, &st)

	switch m.Class {
	case PromotionMove:
		board.Set(m.To, chess.Piece{Colour: m.Piece.Colour, Kind: m.Promotion, Moved: true})
	case CastlingMove:
		rookState := m.Rook.Apply(board)
		st.rook = &rookState
	}

	// The en passant window lasts exactly one ply.
	if m.Class == DoublePawnMove {
		board.SetLastDouble(m.To)
	} else {
		board.SetLastDouble(chess.NoSquare)
	}

	return st
}

// applyBase relocates the piece, records the capture and updates castling rights.
func (m *Move) applyBase(board *chess.Board, st *MoveState) {
	st.captured = board.Get(m.To)
	st.moved = board.Get(m.From).Moved

	board.Move(m.From, m.To)
	piece := board.Get(m.To)
	piece.Moved = true
	board.Set(m.To, piece)

	// A rook leaving or being taken on its home square loses the right.
	board.Revoke(m.From)
	board.Revoke(m.To)
	if piece.Kind == chess.King {
		board.RevokeColour(piece.Colour)
	}
	if st.captured.Kind == chess.King {
		board.RevokeColour(st.captured.Colour)
	}
}

// Undo reverses Apply, given the state it returned.
func (m *Move) Undo(board *chess.Board, st MoveState) {
	switch m.Class {
	case CastlingMove:
		m.Rook.Undo(board, *st.rook)
	case PromotionMove:
		// Put the pawn back first so the base undo carries it home.
		pawn := m.Piece
		pawn.Moved = true
		board.Set(m.To, pawn)
	}

	m.undoBase(board, st)

	if m.Class == EnPassantMove {
		board.Set(m.CaptureAt, st.epCaptured)
	}

	board.SetCastlingRights(st.castling)
	board.SetLastDouble(st.lastDouble)
}

// undoBase moves the piece back and restores the captured occupant.
func (m *Move) undoBase(board *chess.Board, st MoveState) {
	piece := board.Get(m.To)
	piece.Moved = st.moved
	board.Set(m.From, piece)
	board.Set(m.To, st.captured)
}

// ParseNotation splits "e2-e4" into its source and destination squares.
func ParseNotation(notation string) (chess.Square, chess.Square, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(notation), "-")
	if !ok {
		return chess.NoSquare, chess.NoSquare, fmt.Errorf("notation %q: %w", notation, errors.ErrIllegalMove)
	}
	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return chess.NoSquare, chess.NoSquare, err
	}
	toSq, err := chess.ParseSquare(to)
	if err != nil {
		return chess.NoSquare, chess.NoSquare, err
	}
	return fromSq, toSq, nil
}

// Notation builds the key for a move between two squares.
func Notation(from, to chess.Square) string {
	return from.String() + "-" + to.String()
}
