package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// bruteForceMoves tries every syntactically possible move against Validate
func bruteForceMoves(g *Game, color Color) []Move {
	var moves []Move
	for i := 0; i < g.Player(color).Len(); i++ {
		for _, to := range Cells {
			m := Put{By: color, Index: i, To: to}
			if g.Validate(m) == nil {
				moves = append(moves, m)
			}
		}
	}
	for _, from := range Cells {
		for _, to := range Cells {
			m := Relocate{By: color, From: from, To: to}
			if g.Validate(m) == nil {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

func TestMoves(t *testing.T) {
	t.Run("opening moves are every slot on every cell", func(t *testing.T) {
		g := NewGame("Alice", "Bob")
		moves := g.LegalMoves(Red)

		require.Len(t, moves, 6*9, "Six slots on nine empty cells")
		require.Equal(t, Put{By: Red, Index: 0, To: Cell{0, 0}}, moves[0])
		require.Equal(t, Put{By: Red, Index: 0, To: Cell{0, 1}}, moves[1])
		require.Equal(t, Put{By: Red, Index: 5, To: Cell{2, 2}}, moves[len(moves)-1])
	})

	t.Run("puts come before relocations", func(t *testing.T) {
		g := NewGame("Alice", "Bob")
		playMoves(t, g,
			Put{By: Red, Index: 4, To: Cell{0, 0}},
			Put{By: Blue, Index: 0, To: Cell{1, 1}},
		)
		moves := g.LegalMoves(Red)

		seenRelocate := false
		for _, m := range moves {
			_, isRelocate := m.(Relocate)
			if seenRelocate {
				require.True(t, isRelocate, "No put after the first relocation")
			}
			seenRelocate = seenRelocate || isRelocate
		}
		// large at (0,0) can go to the 7 empty cells and over the small at (1,1)
		require.Contains(t, moves, Relocate{By: Red, From: Cell{0, 0}, To: Cell{1, 1}})
		require.NotContains(t, moves, Relocate{By: Red, From: Cell{0, 0}, To: Cell{0, 0}})
		require.NotContains(t, moves, Relocate{By: Red, From: Cell{1, 1}, To: Cell{0, 1}}, "Blue piece is not Red's to move")
	})

	t.Run("generated moves match every valid move", func(t *testing.T) {
		for seed := uint64(1); seed <= 30; seed++ {
			g := randomGame(t, seed, int(seed%16))
			if g.Over() {
				continue
			}
			color := g.CurrentPlayer().Color
			require.Equal(t, bruteForceMoves(g, color), g.LegalMoves(color),
				"seed %d: generator and validator should agree in order", seed)
		}
	})

	t.Run("generation is deterministic", func(t *testing.T) {
		g := randomGame(t, 7, 9)
		color := Red
		require.Equal(t, g.LegalMoves(color), g.LegalMoves(color))
	})

	t.Run("stopping early stops the generator", func(t *testing.T) {
		g := NewGame("Alice", "Bob")
		count := 0
		for range g.Moves(Red) {
			count++
			if count == 3 {
				break
			}
		}
		require.Equal(t, 3, count)
		require.True(t, g.HasLegalMove(Red))
	})
}
