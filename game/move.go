package game

import "fmt"

// Move is a Put or a Relocate. Moves name the acting player by color, so a move
// built against one game stays valid against a copy of it.
type Move interface {
	Mover() Color
	String() string
	isMove()
}

// Put takes the piece in inventory slot Index and drops it on To.
type Put struct {
	By    Color
	Index int
	To    Cell
}

func (m Put) Mover() Color { return m.By }
func (Put) isMove()        {}

func (m Put) String() string {
	return fmt.Sprintf("%v put slot %d on %v", m.By, m.Index, m.To)
}

// Relocate moves the top piece of From onto To.
type Relocate struct {
	By   Color
	From Cell
	To   Cell
}

func (m Relocate) Mover() Color { return m.By }
func (Relocate) isMove()        {}

func (m Relocate) String() string {
	return fmt.Sprintf("%v move %v to %v", m.By, m.From, m.To)
}
