package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/checkers/position"
)

type bitmap uint64

func (bm *bitmap) Set(pos position.Pos) {
	*bm |= maskCell[pos]
}

func (bm *bitmap) Unset(pos position.Pos) {
	*bm &^= maskCell[pos]
}

func (bm bitmap) LS1B() position.Pos {
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

func (bm bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

func (bm bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for row := position.Pos(0); row < Height; row++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", row.NotationComponentRow()))
		for col := position.Pos(0); col < Width; col++ {
			if bm&maskCell[position.New(row, col)] != 0 {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for col := position.Pos(0); col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", col.NotationComponentCol()))
	}
	return builder.String()
}
