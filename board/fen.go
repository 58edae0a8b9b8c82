package board

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/daystram/checkers/position"
)

// UnmarshalFEN fills b from a layout string and returns the side to move.
//
// The layout lists rows from row 0 (rank 8, Black's back rank) to row 7, separated by '/'. Men are 'b' and
// 'w', kings 'B' and 'W', and digits skip empty cells. The second segment is the side to move, "b" or "w".
func UnmarshalFEN(fen string, b *Board) (Side, error) {
	if b == nil {
		return SideUnknown, fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 2 {
		return SideUnknown, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return SideUnknown, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	var parsed Board
	for row := position.Pos(0); row < Height; row++ {
		ptr := -1
		for col := position.Pos(0); col < Width; col++ {
			ptr++
			if ptr >= len(rows[row]) {
				return SideUnknown, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			sym := rune(rows[row][ptr])
			c, ok := cellFromSymbol(sym)
			if !ok {
				if sym != '0' && unicode.IsDigit(sym) {
					skip := position.Pos(sym - '0')
					if col+skip-1 < Width {
						col += skip - 1
						continue
					}
					return SideUnknown, fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return SideUnknown, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(sym))
			}
			pos := position.New(row, col)
			if !pos.IsDark() {
				return SideUnknown, fmt.Errorf("%w: piece on light square %s", ErrInvalidFEN, pos)
			}
			parsed.set(pos, c)
		}
		if ptr != len(rows[row])-1 {
			return SideUnknown, fmt.Errorf("%w: extra cells", ErrInvalidFEN)
		}
	}

	var turn Side
	switch segments[1] {
	case "b":
		turn = SideBlack
	case "w":
		turn = SideWhite
	default:
		return SideUnknown, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	*b = parsed
	return turn, nil
}

func MarshalFEN(b *Board, turn Side) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	var skip uint8
	for row := position.Pos(0); row < Height; row++ {
		for col := position.Pos(0); col < Width; col++ {
			for skip = 0; col < Width && b.cells[position.New(row, col)] == CellEmpty; col++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if col < Width {
				_, _ = builder.WriteString(b.cells[position.New(row, col)].SymbolFEN())
			}
		}
		if row < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}

	switch turn {
	case SideBlack:
		_, _ = builder.WriteString(" b")
	case SideWhite:
		_, _ = builder.WriteString(" w")
	default:
		return "", fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}
	return builder.String(), nil
}
