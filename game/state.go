package game

import "github.com/daystram/checkers/board"

type State uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown State = iota

	// StateRunning is when the side to move has at least one legal move.
	StateRunning

	// StateChainForced is when the piece that just captured must capture again.
	StateChainForced

	// StateBlackWon is when White has no pieces or no legal moves left.
	StateBlackWon

	// StateWhiteWon is when Black has no pieces or no legal moves left.
	StateWhiteWon
)

func (s State) IsRunning() bool {
	return s == StateRunning || s == StateChainForced
}

func (s State) IsOver() bool {
	return s == StateBlackWon || s == StateWhiteWon
}

func (s State) Winner() board.Side {
	switch s {
	case StateBlackWon:
		return board.SideBlack
	case StateWhiteWon:
		return board.SideWhite
	default:
		return board.SideUnknown
	}
}

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StateRunning:
		return "StateRunning"
	case StateChainForced:
		return "StateChainForced"
	case StateBlackWon:
		return "StateBlackWon"
	case StateWhiteWon:
		return "StateWhiteWon"
	default:
		return ""
	}
}

func stateWonBy(s board.Side) State {
	if s == board.SideBlack {
		return StateBlackWon
	}
	return StateWhiteWon
}

type Reason uint8

const (
	ReasonUnknown Reason = iota

	// ReasonNoMoves is when the side to move cannot move any piece.
	ReasonNoMoves

	// ReasonNoPieces is when the losing side has no pieces left on the board.
	ReasonNoPieces
)

func (r Reason) String() string {
	switch r {
	case ReasonNoMoves:
		return "no legal moves"
	case ReasonNoPieces:
		return "no pieces left"
	default:
		return ""
	}
}

type GameOver struct {
	Winner board.Side
	Reason Reason
}

func (g GameOver) String() string {
	return g.Winner.String() + " wins (" + g.Winner.Opposite().String() + ": " + g.Reason.String() + ")"
}
