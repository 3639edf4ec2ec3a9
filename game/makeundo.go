package game

import "fmt"

// Undo carries what UndoMove needs to reverse a MakeMove exactly.
type Undo struct {
	Piece   Piece // the piece that was put or relocated
	Covered Piece // what it landed on, zero if the cell was empty
}

// MakeMove applies a legal move in place for search. The turn marker is flipped
// before the board changes and no winner or draw check is made. The move must
// come from the move generator; anything the board rejects is a programming
// error and panics.
func (g *Game) MakeMove(move Move) Undo {
	g.switchTurn()

	switch m := move.(type) {
	case Put:
		player := g.Player(m.By)
		piece, ok := player.PieceAt(m.Index)
		if !ok {
			panic(fmt.Sprintf("make %v: no piece in slot %d", m, m.Index))
		}
		covered, err := g.Board.Place(m.To, piece)
		if err != nil {
			panic(fmt.Sprintf("make %v: %v", m, err))
		}
		player.take(m.Index)
		return Undo{Piece: piece, Covered: covered}
	case Relocate:
		moved, covered, err := g.Board.RelocateTop(m.From, m.To)
		if err != nil {
			panic(fmt.Sprintf("make %v: %v", m, err))
		}
		return Undo{Piece: moved, Covered: covered}
	default:
		panic(fmt.Sprintf("make: unexpected move type %T", move))
	}
}

// UndoMove reverses MakeMove, restoring board, inventory order and turn.
func (g *Game) UndoMove(move Move, undo Undo) {
	switch m := move.(type) {
	case Put:
		g.liftBack(m.To, undo)
		g.Player(m.By).restore(m.Index, undo.Piece)
	case Relocate:
		g.liftBack(m.To, undo)
		g.Board.push(m.From, undo.Piece)
	default:
		panic(fmt.Sprintf("undo: unexpected move type %T", move))
	}

	g.switchTurn()
}

// liftBack pops the moved piece off the destination, which re-exposes whatever it covered.
func (g *Game) liftBack(to Cell, undo Undo) {
	top, ok := g.Board.RemoveTop(to)
	if !ok || top != undo.Piece {
		panic(fmt.Sprintf("undo: expected %v on %v, found %v", undo.Piece, to, top))
	}
	if under, _ := g.Board.TopAt(to); under != undo.Covered {
		panic(fmt.Sprintf("undo: expected %v under %v, found %v", undo.Covered, to, under))
	}
}
