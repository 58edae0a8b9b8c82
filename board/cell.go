package board

type Cell uint8

const (
	CellEmpty Cell = iota
	CellBlackMan
	CellWhiteMan
	CellBlackKing
	CellWhiteKing
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellBlackMan:
		return "Black Man"
	case CellWhiteMan:
		return "White Man"
	case CellBlackKing:
		return "Black King"
	case CellWhiteKing:
		return "White King"
	default:
		return ""
	}
}

func (c Cell) Side() Side {
	switch c {
	case CellBlackMan, CellBlackKing:
		return SideBlack
	case CellWhiteMan, CellWhiteKing:
		return SideWhite
	default:
		return SideUnknown
	}
}

func (c Cell) IsKing() bool {
	return c == CellBlackKing || c == CellWhiteKing
}

// Promoted returns the king of the same side. Kings and empty cells are returned unchanged.
func (c Cell) Promoted() Cell {
	switch c {
	case CellBlackMan:
		return CellBlackKing
	case CellWhiteMan:
		return CellWhiteKing
	default:
		return c
	}
}

func (c Cell) SymbolFEN() string {
	switch c {
	case CellBlackMan:
		return "b"
	case CellWhiteMan:
		return "w"
	case CellBlackKing:
		return "B"
	case CellWhiteKing:
		return "W"
	default:
		return ""
	}
}

func (c Cell) SymbolUnicode() string {
	switch c {
	case CellBlackMan:
		return "⛂"
	case CellWhiteMan:
		return "⛀"
	case CellBlackKing:
		return "⛃"
	case CellWhiteKing:
		return "⛁"
	default:
		return " "
	}
}

func cellFromSymbol(sym rune) (Cell, bool) {
	switch sym {
	case 'b':
		return CellBlackMan, true
	case 'w':
		return CellWhiteMan, true
	case 'B':
		return CellBlackKing, true
	case 'W':
		return CellWhiteKing, true
	default:
		return CellEmpty, false
	}
}
