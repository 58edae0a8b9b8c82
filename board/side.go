package board

import "github.com/daystram/checkers/position"

type Side uint8

const (
	SideUnknown Side = iota
	SideBlack
	SideWhite
)

func (s Side) String() string {
	switch s {
	case SideBlack:
		return "Black"
	case SideWhite:
		return "White"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideBlack:
		return SideWhite
	case SideWhite:
		return SideBlack
	default:
		return SideUnknown
	}
}

// Forward returns the row delta of a man's simple move.
func (s Side) Forward() position.Pos {
	switch s {
	case SideBlack:
		return 1
	case SideWhite:
		return -1
	default:
		return 0
	}
}

// PromotionRow returns the far rank on which a man of this side is crowned.
func (s Side) PromotionRow() position.Pos {
	if s == SideBlack {
		return Height - 1
	}
	return 0
}
