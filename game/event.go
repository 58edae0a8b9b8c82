package game

import (
	"fmt"

	"github.com/daystram/checkers/board"
	"github.com/daystram/checkers/position"
)

type EventKind uint8

const (
	EventUnknown EventKind = iota
	EventMoveApplied
	EventCapture
	EventPromotion
	EventChainForced
	EventTurnChanged
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventMoveApplied:
		return "EventMoveApplied"
	case EventCapture:
		return "EventCapture"
	case EventPromotion:
		return "EventPromotion"
	case EventChainForced:
		return "EventChainForced"
	case EventTurnChanged:
		return "EventTurnChanged"
	case EventGameOver:
		return "EventGameOver"
	default:
		return ""
	}
}

// Event describes one consequence of an applied move. Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind
	Move board.Move

	// Captured is the square of the removed piece for EventCapture.
	Captured position.Pos

	// Side is the side to move after EventTurnChanged, or the side that must continue for EventChainForced.
	Side board.Side

	GameOver *GameOver
}

func (e Event) String() string {
	switch e.Kind {
	case EventMoveApplied:
		return fmt.Sprintf("%s: %s", e.Move.IsSide, e.Move)
	case EventCapture:
		return fmt.Sprintf("%s captures on %s", e.Move.IsSide, e.Captured)
	case EventPromotion:
		return fmt.Sprintf("%s crowned on %s", e.Move.IsSide, e.Move.To)
	case EventChainForced:
		return fmt.Sprintf("%s must continue capturing from %s", e.Side, e.Move.To)
	case EventTurnChanged:
		return fmt.Sprintf("%s to move", e.Side)
	case EventGameOver:
		if e.GameOver == nil {
			return "game over"
		}
		return e.GameOver.String()
	default:
		return ""
	}
}

type Observer interface {
	OnEvent(Event)
}

type ObserverFunc func(Event)

func (f ObserverFunc) OnEvent(e Event) {
	f(e)
}
