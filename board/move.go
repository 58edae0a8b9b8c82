package board

import "github.com/daystram/checkers/position"

type Move struct {
	From, To position.Pos
	Piece    Cell

	IsSide    Side
	IsCapture bool
}

func (m Move) String() string {
	return m.Notation()
}

// Notation renders the move as "B6-A5" for a step and "B6xD4" for a capture.
func (m Move) Notation() string {
	sep := "-"
	if m.IsCapture {
		sep = "x"
	}
	return m.From.Notation() + sep + m.To.Notation()
}

// Same reports whether both moves travel between the same squares.
func (m Move) Same(o Move) bool {
	return m.From == o.From && m.To == o.To
}
