package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/checkers/position"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")

	colorLabel     = color.New(color.Bold)
	colorDark      = color.New(color.FgHiWhite, color.BgGreen)
	colorLight     = color.New(color.FgBlack, color.BgHiWhite)
	colorHighlight = color.New(color.FgBlack, color.BgHiYellow)
)

// Board is an 8x8 grid of cells, row-major, row 0 being Black's back rank.
type Board struct {
	cells [TotalCells]Cell

	// occupancy, kept in sync with cells
	sides [3]bitmap
	kings bitmap
}

type boardConfig struct {
	fen string
}

type BoardOption func(*boardConfig)

func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
	}
}

// NewBoard builds a board from the configured layout and returns it together with the side to move.
func NewBoard(opts ...BoardOption) (*Board, Side, error) {
	cfg := &boardConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	b := &Board{}
	turn, err := UnmarshalFEN(cfg.fen, b)
	if err != nil {
		return nil, SideUnknown, err
	}
	return b, turn, nil
}

func (b *Board) FEN(turn Side) string {
	fen, _ := MarshalFEN(b, turn)
	return fen
}

func (b *Board) Cell(pos position.Pos) Cell {
	if !pos.Valid() {
		return CellEmpty
	}
	return b.cells[pos]
}

// Grid returns a copy of the cells indexed by [row][col].
func (b *Board) Grid() [Height][Width]Cell {
	var grid [Height][Width]Cell
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		grid[pos.Row()][pos.Col()] = b.cells[pos]
	}
	return grid
}

func (b *Board) Count(s Side) uint8 {
	if s == SideUnknown {
		return 0
	}
	return b.sides[s].BitCount()
}

func (b *Board) CountKings(s Side) uint8 {
	if s == SideUnknown {
		return 0
	}
	return (b.sides[s] & b.kings).BitCount()
}

// GenerateMoves returns the captures and simple moves available to the piece on from.
func (b *Board) GenerateMoves(from position.Pos) (captures, simples []Move) {
	c := b.Cell(from)
	if c == CellEmpty {
		return nil, nil
	}
	s := c.Side()

	if c.IsKing() {
		// flying slide, stopping before the first occupied cell
		for _, d := range diagonals {
			for to, ok := from.Offset(d[0], d[1]); ok && b.cells[to] == CellEmpty; to, ok = to.Offset(d[0], d[1]) {
				simples = append(simples, Move{From: from, To: to, Piece: c, IsSide: s})
			}
		}
	} else {
		for _, dCol := range [2]position.Pos{1, -1} {
			if to, ok := from.Offset(s.Forward(), dCol); ok && b.cells[to] == CellEmpty {
				simples = append(simples, Move{From: from, To: to, Piece: c, IsSide: s})
			}
		}
	}

	return b.GenerateCaptures(from), simples
}

// GenerateCaptures returns the single-jump captures available to the piece on from, in every diagonal direction.
func (b *Board) GenerateCaptures(from position.Pos) []Move {
	c := b.Cell(from)
	if c == CellEmpty {
		return nil
	}
	s := c.Side()

	var captures []Move
	for _, d := range diagonals {
		jumped, ok := from.Offset(d[0], d[1])
		if !ok {
			continue
		}
		to, ok := from.Offset(2*d[0], 2*d[1])
		if !ok || b.cells[to] != CellEmpty {
			continue
		}
		if b.cells[jumped].Side() == s.Opposite() {
			captures = append(captures, Move{From: from, To: to, Piece: c, IsSide: s, IsCapture: true})
		}
	}
	return captures
}

// GenerateSideMoves aggregates captures and simple moves over every piece of the side, in row-major order.
func (b *Board) GenerateSideMoves(s Side) (captures, simples []Move) {
	if s == SideUnknown {
		return nil, nil
	}
	for bm := b.sides[s]; bm != 0; bm &= bm - 1 {
		caps, simps := b.GenerateMoves(bm.LS1B())
		captures = append(captures, caps...)
		simples = append(simples, simps...)
	}
	return captures, simples
}

// GenerateTurnMoves returns the legal moves of the side under the mandatory capture rule.
// An empty result means the side cannot move.
func (b *Board) GenerateTurnMoves(s Side) []Move {
	captures, simples := b.GenerateSideMoves(s)
	if len(captures) > 0 {
		return captures
	}
	return simples
}

func (b *Board) set(pos position.Pos, c Cell) {
	if prev := b.cells[pos]; prev != CellEmpty {
		b.sides[prev.Side()].Unset(pos)
		b.kings.Unset(pos)
	}
	b.cells[pos] = c
	if c != CellEmpty {
		b.sides[c.Side()].Set(pos)
		if c.IsKing() {
			b.kings.Set(pos)
		}
	}
}

// Apply relocates the moved piece, removes the jumped piece of a capture and crowns a man reaching its
// promotion row. It reports whether a promotion happened. Moves that are not diagonal, start on an empty
// cell, land on an occupied cell, or capture over anything other than two cells are programming errors.
func (b *Board) Apply(mv Move) bool {
	c := b.Cell(mv.From)
	steps, ok := position.DiagonalDistance(mv.From, mv.To)
	if c == CellEmpty || !ok || !mv.To.Valid() || b.cells[mv.To] != CellEmpty || (mv.IsCapture && steps != 2) {
		panic(fmt.Sprintf("board: malformed move %s", mv))
	}

	b.set(mv.From, CellEmpty)
	if mv.IsCapture {
		b.set(position.Midpoint(mv.From, mv.To), CellEmpty)
	}

	promoted := !c.IsKing() && mv.To.Row() == c.Side().PromotionRow()
	if promoted {
		c = c.Promoted()
	}
	b.set(mv.To, c)
	return promoted
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for row := position.Pos(0); row < Height; row++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", row.NotationComponentRow()))
		for col := position.Pos(0); col < Width; col++ {
			sym := b.cells[position.New(row, col)].SymbolFEN()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for col := position.Pos(0); col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", col.NotationComponentCol()))
	}
	return builder.String()
}

// Draw renders the board with terminal colours, highlighting the given squares.
func (b *Board) Draw(highlight ...position.Pos) string {
	var marked bitmap
	for _, pos := range highlight {
		if pos.Valid() {
			marked.Set(pos)
		}
	}

	builder := strings.Builder{}
	for row := position.Pos(0); row < Height; row++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", row.NotationComponentRow()))
		for col := position.Pos(0); col < Width; col++ {
			pos := position.New(row, col)
			cell := fmt.Sprintf(" %s ", b.cells[pos].SymbolUnicode())
			switch {
			case marked&maskCell[pos] != 0:
				cell = colorHighlight.Sprint(cell)
			case maskDark&maskCell[pos] != 0:
				cell = colorDark.Sprint(cell)
			default:
				cell = colorLight.Sprint(cell)
			}
			_, _ = builder.WriteString(cell)
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for col := position.Pos(0); col < Width; col++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", col.NotationComponentCol()))
	}
	return builder.String()
}

// DebugString reports piece counts and the occupancy of each side.
func (b *Board) DebugString() string {
	return fmt.Sprintf("black: %2d (kings %d)\n%s\nwhite: %2d (kings %d)\n%s",
		b.Count(SideBlack), b.CountKings(SideBlack), b.sides[SideBlack].Dump('b'),
		b.Count(SideWhite), b.CountKings(SideWhite), b.sides[SideWhite].Dump('w'))
}
