package game

// Status is the state of a game after the most recent ply.
type Status int

const (
	Playing Status = iota
	Check          // Informational: the side to move is in check
	Checkmate
	Stalemate
	KingCaptured
	Timeout
)

// String returns the status name reported to collaborators.
func (s Status) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case KingCaptured:
		return "KingCaptured"
	case Timeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s >= Checkmate
}
