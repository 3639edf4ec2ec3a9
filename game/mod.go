package game

import "fmt"

// Size of a gobbler. The numeric value is also the piece value used by the evaluator.
type Size int

const (
	Small Size = iota + 1
	Medium
	Large
)

// Sizes in ascending order
var Sizes = []Size{Small, Medium, Large}

func (s Size) String() string {
	switch s {
	case Small:
		return "S"
	case Medium:
		return "M"
	case Large:
		return "L"
	default:
		return "?"
	}
}

// Color identifies a player. Red is player A, Blue is player B.
type Color int

const (
	Red Color = iota + 1
	Blue
)

func (c Color) Opponent() Color {
	if c == Red {
		return Blue
	}
	return Red
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}

// Piece is an immutable gobbler. The zero Piece stands for "no piece".
type Piece struct {
	Size  Size
	Color Color
}

func (p Piece) IsZero() bool {
	return p == Piece{}
}

func (p Piece) String() string {
	if p.IsZero() {
		return "-"
	}
	return p.Size.String()
}

const BoardSize = 3

// Cell is a board coordinate, row first.
type Cell struct {
	Row int
	Col int
}

func (c Cell) InBounds() bool {
	return 0 <= c.Row && c.Row < BoardSize && 0 <= c.Col && c.Col < BoardSize
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cells lists every cell in row-major order, the order moves are generated in.
var Cells = func() []Cell {
	cells := make([]Cell, 0, BoardSize*BoardSize)
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	return cells
}()

// Lines holds the 3 rows, 3 columns and 2 diagonals, in that order.
var Lines = [8][3]Cell{
	// rows
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	// cols
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	// diags
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Evaluate scores a position from the perspective of the given color.
// Decided positions score exactly +WinScore or -WinScore.
type Evaluate func(g *Game, perspective Color) int
