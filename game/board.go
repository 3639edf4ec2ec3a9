package game

import "fmt"

// Board is the 3x3 grid of gobbler stacks. Each stack is ordered bottom to top
// and strictly increasing in size.
type Board struct {
	stacks [BoardSize][BoardSize][]Piece
}

func NewBoard() *Board {
	return &Board{}
}

// TopAt returns the visible piece of a cell.
func (b *Board) TopAt(c Cell) (Piece, bool) {
	if !c.InBounds() {
		return Piece{}, false
	}
	stack := b.stacks[c.Row][c.Col]
	if len(stack) == 0 {
		return Piece{}, false
	}
	return stack[len(stack)-1], true
}

// CanPlace reports whether p may be dropped on c: the cell is empty or its top is strictly smaller.
func (b *Board) CanPlace(c Cell, p Piece) bool {
	if !c.InBounds() {
		return false
	}
	top, ok := b.TopAt(c)
	return !ok || p.Size > top.Size
}

// Place pushes p onto c and returns the piece it covers (zero Piece if the cell was empty).
func (b *Board) Place(c Cell, p Piece) (Piece, error) {
	if !c.InBounds() {
		return Piece{}, fmt.Errorf("%w: cell %v", ErrOutOfBounds, c)
	}
	if !b.CanPlace(c, p) {
		return Piece{}, fmt.Errorf("%w: %v %v on %v", ErrIllegalPlacement, p.Color, p, c)
	}
	covered, _ := b.TopAt(c)
	b.stacks[c.Row][c.Col] = append(b.stacks[c.Row][c.Col], p)
	return covered, nil
}

// RemoveTop pops the top piece of c.
func (b *Board) RemoveTop(c Cell) (Piece, bool) {
	top, ok := b.TopAt(c)
	if !ok {
		return Piece{}, false
	}
	stack := b.stacks[c.Row][c.Col]
	b.stacks[c.Row][c.Col] = stack[:len(stack)-1]
	return top, true
}

// RelocateTop moves the top piece of from onto to. On error the board is unchanged.
func (b *Board) RelocateTop(from, to Cell) (moved, covered Piece, err error) {
	if !from.InBounds() || !to.InBounds() {
		return Piece{}, Piece{}, fmt.Errorf("%w: %v -> %v", ErrOutOfBounds, from, to)
	}
	if from == to {
		return Piece{}, Piece{}, fmt.Errorf("%w: %v onto itself", ErrIllegalPlacement, from)
	}
	moved, ok := b.RemoveTop(from)
	if !ok {
		return Piece{}, Piece{}, fmt.Errorf("%w: %v is empty", ErrNoPieceToMove, from)
	}
	covered, err = b.Place(to, moved)
	if err != nil {
		// restore without re-checking, the piece was legally on top before
		b.push(from, moved)
		return Piece{}, Piece{}, err
	}
	return moved, covered, nil
}

// Height is the number of pieces stacked on c.
func (b *Board) Height(c Cell) int {
	if !c.InBounds() {
		return 0
	}
	return len(b.stacks[c.Row][c.Col])
}

// Stack returns a copy of the pieces on c, bottom first.
func (b *Board) Stack(c Cell) []Piece {
	if !c.InBounds() || len(b.stacks[c.Row][c.Col]) == 0 {
		return nil
	}
	return append([]Piece(nil), b.stacks[c.Row][c.Col]...)
}

func (b *Board) push(c Cell, p Piece) {
	b.stacks[c.Row][c.Col] = append(b.stacks[c.Row][c.Col], p)
}

func (b *Board) Copy() *Board {
	cp := &Board{}
	for r := range b.stacks {
		for c := range b.stacks[r] {
			if len(b.stacks[r][c]) > 0 {
				cp.stacks[r][c] = append([]Piece(nil), b.stacks[r][c]...)
			}
		}
	}
	return cp
}
