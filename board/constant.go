package board

import "github.com/daystram/checkers/position"

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

var (
	DefaultStartingPositionFEN = "1b1b1b1b/b1b1b1b1/1b1b1b1b/8/8/w1w1w1w1/1w1w1w1w/w1w1w1w1 b"

	maskCell [TotalCells]bitmap
	maskDark bitmap

	// diagonals lists the four diagonal directions as {dRow, dCol}.
	diagonals = [4][2]position.Pos{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func init() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
		if pos.IsDark() {
			maskDark |= maskCell[pos]
		}
	}
}
