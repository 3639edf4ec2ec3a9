package game

import (
	"iter"
	"slices"
)

// Moves lazily yields every legal move of color: all puts (slot by slot, cells in
// row-major order) then all relocations (source then destination in row-major
// order). The live board and inventory are re-read on every step, so callers may
// make and undo a move between pulls as long as the position is restored first.
func (g *Game) Moves(color Color) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		player := g.Player(color)
		if player == nil {
			return
		}
		for i := 0; i < player.Len(); i++ {
			piece, _ := player.PieceAt(i)
			for _, to := range Cells {
				if g.Board.CanPlace(to, piece) {
					if !yield(Put{By: color, Index: i, To: to}) {
						return
					}
				}
			}
		}
		for _, from := range Cells {
			top, ok := g.Board.TopAt(from)
			if !ok || top.Color != color {
				continue
			}
			for _, to := range Cells {
				if to != from && g.Board.CanPlace(to, top) {
					if !yield(Relocate{By: color, From: from, To: to}) {
						return
					}
				}
			}
		}
	}
}

// LegalMoves collects Moves(color).
func (g *Game) LegalMoves(color Color) []Move {
	return slices.Collect(g.Moves(color))
}
