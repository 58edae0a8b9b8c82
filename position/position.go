package position

import (
	"errors"
	"strings"

	"golang.org/x/exp/constraints"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a row-major square index. Row 0 is Black's back rank (rank 8), row 7 is White's back rank (rank 1).
type Pos int8

func New(row, col Pos) Pos {
	return row*MaxComponentScalar + col
}

func NewPosFromNotation(n string) (Pos, error) {
	row, col, err := notationToRowCol(strings.ToUpper(strings.TrimSpace(n)))
	if err != nil {
		return 0, err
	}
	return New(row, col), nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return p.Col().NotationComponentCol() + p.Row().NotationComponentRow()
}

func (p Pos) Valid() bool {
	return 0 <= p && p < MaxComponentScalar*MaxComponentScalar
}

func (p Pos) Row() Pos {
	return p / MaxComponentScalar
}

func (p Pos) Col() Pos {
	return p % MaxComponentScalar
}

// IsDark reports whether the square is playable, i.e. (row+col) is odd.
func (p Pos) IsDark() bool {
	return (p.Row()+p.Col())%2 == 1
}

// Offset returns the square dRow rows and dCol columns away, and false if it falls off the board.
func (p Pos) Offset(dRow, dCol Pos) (Pos, bool) {
	row, col := p.Row()+dRow, p.Col()+dCol
	if row < 0 || MaxComponentScalar <= row || col < 0 || MaxComponentScalar <= col {
		return 0, false
	}
	return New(row, col), true
}

// DiagonalDistance returns the number of steps between a and b, and false if they do not share a diagonal.
func DiagonalDistance(a, b Pos) (Pos, bool) {
	dRow, dCol := abs(b.Row()-a.Row()), abs(b.Col()-a.Col())
	if dRow != dCol || dRow == 0 {
		return 0, false
	}
	return dRow, true
}

// Midpoint returns the square halfway between a and b.
func Midpoint(a, b Pos) Pos {
	return New((a.Row()+b.Row())/2, (a.Col()+b.Col())/2)
}

func notationToRowCol(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	col, err := notationToCol(n[0])
	if err != nil {
		return 0, 0, err
	}
	row, err := notationToRow(n[1])
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func notationToCol(c byte) (Pos, error) {
	col := Pos(c) - 'A'
	if col < 0 || MaxComponentScalar <= col {
		return 0, ErrInvalidNotation
	}
	return col, nil
}

func notationToRow(r byte) (Pos, error) {
	rank := Pos(r) - '0'
	if rank < 1 || MaxComponentScalar < rank {
		return 0, ErrInvalidNotation
	}
	return MaxComponentScalar - rank, nil
}

func (p Pos) NotationComponentCol() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('A' + p))
}

func (p Pos) NotationComponentRow() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('0' + MaxComponentScalar - p))
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
