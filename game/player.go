package game

import "fmt"

// PiecesPerSize is how many gobblers of each size a player starts with.
const PiecesPerSize = 2

// Player owns an ordered inventory of unplaced gobblers. The order is part of
// the game state: moves address inventory slots, not sizes.
type Player struct {
	Name      string
	Color     Color
	inventory []Piece
}

func NewPlayer(name string, color Color) *Player {
	inventory := make([]Piece, 0, len(Sizes)*PiecesPerSize)
	for _, size := range Sizes {
		for i := 0; i < PiecesPerSize; i++ {
			inventory = append(inventory, Piece{Size: size, Color: color})
		}
	}
	return &Player{Name: name, Color: color, inventory: inventory}
}

// Len is the number of unplaced pieces.
func (p *Player) Len() int {
	return len(p.inventory)
}

func (p *Player) PieceAt(index int) (Piece, bool) {
	if index < 0 || index >= len(p.inventory) {
		return Piece{}, false
	}
	return p.inventory[index], true
}

// Inventory returns a copy of the unplaced pieces in slot order.
func (p *Player) Inventory() []Piece {
	return append([]Piece(nil), p.inventory...)
}

func (p *Player) take(index int) Piece {
	piece := p.inventory[index]
	p.inventory = append(p.inventory[:index], p.inventory[index+1:]...)
	return piece
}

func (p *Player) restore(index int, piece Piece) {
	p.inventory = append(p.inventory, Piece{})
	copy(p.inventory[index+1:], p.inventory[index:])
	p.inventory[index] = piece
}

func (p *Player) Copy() *Player {
	cp := *p
	cp.inventory = nil
	if len(p.inventory) > 0 {
		cp.inventory = append([]Piece(nil), p.inventory...)
	}
	return &cp
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%v)", p.Name, p.Color)
}
