package board

import (
	"sort"
	"testing"

	"github.com/daystram/checkers/position"
)

func mustBoard(t *testing.T, fen string) (*Board, Side) {
	t.Helper()
	b, turn, err := NewBoard(WithFEN(fen))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return b, turn
}

func notations(mvs []Move) []string {
	out := make([]string, 0, len(mvs))
	for _, mv := range mvs {
		out = append(out, mv.Notation())
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInitialLayout(t *testing.T) {
	t.Parallel()
	b, turn := mustBoard(t, DefaultStartingPositionFEN)
	if turn != SideBlack {
		t.Errorf("unexpected turn: got=%s want=%s", turn, SideBlack)
	}
	if got := b.Count(SideBlack); got != 12 {
		t.Errorf("unexpected black count: got=%d want=12", got)
	}
	if got := b.Count(SideWhite); got != 12 {
		t.Errorf("unexpected white count: got=%d want=12", got)
	}
	grid := b.Grid()
	for row := position.Pos(0); row < Height; row++ {
		for col := position.Pos(0); col < Width; col++ {
			want := CellEmpty
			if (row+col)%2 == 1 {
				switch {
				case row <= 2:
					want = CellBlackMan
				case row >= 5:
					want = CellWhiteMan
				}
			}
			if got := grid[row][col]; got != want {
				t.Errorf("unexpected cell at (%d,%d): got=%s want=%s", row, col, got, want)
			}
		}
	}
}

func TestGenerateMoves(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		fen          string
		from         position.Pos
		wantCaptures []string
		wantSimples  []string
	}{
		{
			name:        "black man steps forward only",
			fen:         "8/8/8/4b3/8/8/8/8 b",
			from:        position.New(3, 4),
			wantSimples: []string{"E5-D4", "E5-F4"},
		},
		{
			name:        "white man steps forward only",
			fen:         "8/8/8/4w3/8/8/8/8 w",
			from:        position.New(3, 4),
			wantSimples: []string{"E5-D6", "E5-F6"},
		},
		{
			name:        "man on edge",
			fen:         "8/8/8/8/7b/8/8/8 b",
			from:        position.New(4, 7),
			wantSimples: []string{"H4-G3"},
		},
		{
			name:        "man blocked by own pieces",
			fen:         "8/8/8/4b3/3b1b2/8/8/8 b",
			from:        position.New(3, 4),
			wantSimples: nil,
		},
		{
			name:         "man captures backward",
			fen:          "8/8/8/4w3/3b4/8/8/8 b",
			from:         position.New(4, 3),
			wantCaptures: []string{"D4xF6"},
			wantSimples:  []string{"D4-C3", "D4-E3"},
		},
		{
			name:         "man captures king",
			fen:          "8/8/8/8/3b4/4W3/8/8 b",
			from:         position.New(4, 3),
			wantCaptures: []string{"D4xF2"},
			wantSimples:  []string{"D4-C3"},
		},
		{
			name:         "capture needs empty landing",
			fen:          "8/8/8/8/3b4/4w3/5w2/8 b",
			from:         position.New(4, 3),
			wantCaptures: nil,
			wantSimples:  []string{"D4-C3"},
		},
		{
			name:         "no capture over own piece",
			fen:          "8/8/8/8/3b4/4b3/8/8 b",
			from:         position.New(4, 3),
			wantCaptures: nil,
			wantSimples:  []string{"D4-C3"},
		},
		{
			name:         "no capture off board",
			fen:          "8/8/8/6b1/7w/8/8/8 b",
			from:         position.New(3, 6),
			wantCaptures: nil,
			wantSimples:  []string{"G5-F4"},
		},
		{
			name: "king flies on empty diagonals",
			fen:  "8/8/8/8/3B4/8/8/8 b",
			from: position.New(4, 3),
			wantSimples: []string{
				"D4-A1", "D4-A7", "D4-B2", "D4-B6", "D4-C3", "D4-C5",
				"D4-E3", "D4-E5", "D4-F2", "D4-F6", "D4-G1", "D4-G7", "D4-H8",
			},
		},
		{
			name:         "king slide stops before occupant",
			fen:          "8/6w1/8/8/3W4/8/1b6/8 w",
			from:         position.New(4, 3),
			wantCaptures: nil,
			wantSimples: []string{
				"D4-A7", "D4-B6", "D4-C3", "D4-C5",
				"D4-E3", "D4-E5", "D4-F2", "D4-F6", "D4-G1",
			},
		},
		{
			name:         "king captures only adjacent pieces",
			fen:          "8/8/5b2/8/3W4/2b5/8/8 w",
			from:         position.New(4, 3),
			wantCaptures: []string{"D4xB2"},
			wantSimples: []string{
				"D4-A7", "D4-B6", "D4-C5",
				"D4-E3", "D4-E5", "D4-F2", "D4-G1",
			},
		},
		{
			name: "empty square",
			fen:  "8/8/8/8/8/8/8/8 b",
			from: position.New(4, 3),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, _ := mustBoard(t, tt.fen)
			captures, simples := b.GenerateMoves(tt.from)
			if got, want := notations(captures), tt.wantCaptures; !equalStrings(got, want) {
				t.Errorf("unexpected captures: got=%v want=%v", got, want)
			}
			if got, want := notations(simples), tt.wantSimples; !equalStrings(got, want) {
				t.Errorf("unexpected simples: got=%v want=%v", got, want)
			}
			for _, mv := range append(captures, simples...) {
				if !mv.To.IsDark() {
					t.Errorf("move %s lands on a light square", mv)
				}
			}
		})
	}
}

func TestGenerateTurnMoves(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		side Side
		want []string
	}{
		{
			name: "opening",
			fen:  DefaultStartingPositionFEN,
			side: SideBlack,
			want: []string{"B6-A5", "B6-C5", "D6-C5", "D6-E5", "F6-E5", "F6-G5", "H6-G5"},
		},
		{
			name: "capture is mandatory",
			fen:  "1b6/8/8/8/3b4/4w3/8/8 b",
			side: SideBlack,
			want: []string{"D4xF2"},
		},
		{
			name: "any capture may be chosen",
			fen:  "8/8/8/2w5/1b1b4/4w3/8/8 b",
			side: SideBlack,
			want: []string{"B4xD6", "D4xB6", "D4xF2"},
		},
		{
			name: "no pieces",
			fen:  "8/8/8/8/3b4/8/8/8 w",
			side: SideWhite,
			want: nil,
		},
		{
			name: "blocked",
			fen:  "8/8/8/8/8/2b5/1b6/w7 w",
			side: SideWhite,
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, _ := mustBoard(t, tt.fen)
			if got := notations(b.GenerateTurnMoves(tt.side)); !equalStrings(got, tt.want) {
				t.Errorf("unexpected moves: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		fen          string
		mv           Move
		wantPromoted bool
		wantFEN      string
	}{
		{
			name:    "simple step",
			fen:     DefaultStartingPositionFEN,
			mv:      Move{From: position.New(2, 1), To: position.New(3, 0)},
			wantFEN: "1b1b1b1b/b1b1b1b1/3b1b1b/b7/8/w1w1w1w1/1w1w1w1w/w1w1w1w1 b",
		},
		{
			name:    "capture removes jumped piece",
			fen:     "8/8/8/8/3b4/4w3/8/8 b",
			mv:      Move{From: position.New(4, 3), To: position.New(6, 5), IsCapture: true},
			wantFEN: "8/8/8/8/8/8/5b2/8 b",
		},
		{
			name:         "black man promotes",
			fen:          "8/8/8/8/8/8/3b4/8 b",
			mv:           Move{From: position.New(6, 3), To: position.New(7, 2)},
			wantPromoted: true,
			wantFEN:      "8/8/8/8/8/8/8/2B5 b",
		},
		{
			name:         "white man promotes by capture",
			fen:          "8/4b3/5w2/8/8/8/8/8 b",
			mv:           Move{From: position.New(2, 5), To: position.New(0, 3), IsCapture: true},
			wantPromoted: true,
			wantFEN:      "3W4/8/8/8/8/8/8/8 b",
		},
		{
			name:         "king never demotes",
			fen:          "8/8/8/8/8/8/8/2W5 b",
			mv:           Move{From: position.New(7, 2), To: position.New(2, 7)},
			wantPromoted: false,
			wantFEN:      "8/8/7W/8/8/8/8/8 b",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, turn := mustBoard(t, tt.fen)
			if got := b.Apply(tt.mv); got != tt.wantPromoted {
				t.Errorf("unexpected promoted: got=%v want=%v", got, tt.wantPromoted)
			}
			if got := b.FEN(turn); got != tt.wantFEN {
				t.Errorf("unexpected FEN: got=%s want=%s", got, tt.wantFEN)
			}
		})
	}
}

func TestApplyMalformedPanics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		mv   Move
	}{
		{name: "empty origin", mv: Move{From: position.New(4, 1), To: position.New(5, 2)}},
		{name: "lateral", mv: Move{From: position.New(2, 1), To: position.New(2, 3)}},
		{name: "occupied landing", mv: Move{From: position.New(1, 0), To: position.New(2, 1)}},
		{name: "long capture", mv: Move{From: position.New(2, 1), To: position.New(5, 4), IsCapture: true}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, _ := mustBoard(t, DefaultStartingPositionFEN)
			defer func() {
				if r := recover(); r == nil {
					t.Error("panic expected: got=nil")
				}
			}()
			b.Apply(tt.mv)
		})
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	b, turn := mustBoard(t, DefaultStartingPositionFEN)
	bb := b.Clone()
	bb.Apply(Move{From: position.New(2, 1), To: position.New(3, 0)})
	if got := b.FEN(turn); got != DefaultStartingPositionFEN {
		t.Errorf("clone mutated original: got=%s", got)
	}
	if b.Cell(position.New(3, 0)) != CellEmpty || bb.Cell(position.New(3, 0)) != CellBlackMan {
		t.Error("unexpected cells after applying to clone")
	}
}
