package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardCanPlace(t *testing.T) {
	t.Run("empty cells accept every size", func(t *testing.T) {
		b := NewBoard()
		for _, c := range Cells {
			for _, size := range Sizes {
				require.True(t, b.CanPlace(c, Piece{Size: size, Color: Red}),
					"Empty cell %v should accept %v", c, size)
			}
		}
	})

	t.Run("only strictly larger pieces cover the top", func(t *testing.T) {
		for _, below := range Sizes {
			for _, above := range Sizes {
				b := NewBoard()
				c := Cell{1, 1}
				_, err := b.Place(c, Piece{Size: below, Color: Blue})
				require.NoError(t, err)

				got := b.CanPlace(c, Piece{Size: above, Color: Red})
				require.Equal(t, above > below, got,
					"CanPlace %v over %v should be %v", above, below, above > below)
			}
		}
	})

	t.Run("out of bounds cells accept nothing", func(t *testing.T) {
		b := NewBoard()
		require.False(t, b.CanPlace(Cell{-1, 0}, Piece{Size: Large, Color: Red}))
		require.False(t, b.CanPlace(Cell{0, 3}, Piece{Size: Large, Color: Red}))
	})
}

func TestBoardPlace(t *testing.T) {
	t.Run("placing then reading the top yields the placed piece", func(t *testing.T) {
		for _, c := range Cells {
			for _, size := range Sizes {
				b := NewBoard()
				p := Piece{Size: size, Color: Blue}
				covered, err := b.Place(c, p)
				require.NoError(t, err)
				require.True(t, covered.IsZero(), "Empty cell should cover nothing")

				top, ok := b.TopAt(c)
				require.True(t, ok)
				require.Equal(t, p, top, "Top should be the placed piece")
			}
		}
	})

	t.Run("placing over a smaller piece returns the covered piece", func(t *testing.T) {
		b := NewBoard()
		small := Piece{Size: Small, Color: Red}
		large := Piece{Size: Large, Color: Blue}
		_, err := b.Place(Cell{0, 0}, small)
		require.NoError(t, err)

		covered, err := b.Place(Cell{0, 0}, large)
		require.NoError(t, err)
		require.Equal(t, small, covered, "Large should cover the small piece")
		require.Equal(t, []Piece{small, large}, b.Stack(Cell{0, 0}), "Stack should grow bottom to top")
	})

	t.Run("illegal placement leaves the cell unchanged", func(t *testing.T) {
		b := NewBoard()
		large := Piece{Size: Large, Color: Red}
		_, err := b.Place(Cell{2, 2}, large)
		require.NoError(t, err)

		_, err = b.Place(Cell{2, 2}, Piece{Size: Large, Color: Blue})
		require.ErrorIs(t, err, ErrIllegalPlacement)
		_, err = b.Place(Cell{2, 2}, Piece{Size: Small, Color: Blue})
		require.ErrorIs(t, err, ErrIllegalPlacement)
		require.Equal(t, []Piece{large}, b.Stack(Cell{2, 2}), "Stack should not change")
	})

	t.Run("out of bounds placement is rejected", func(t *testing.T) {
		b := NewBoard()
		_, err := b.Place(Cell{3, 0}, Piece{Size: Small, Color: Red})
		require.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestBoardRemoveTop(t *testing.T) {
	b := NewBoard()
	_, ok := b.RemoveTop(Cell{1, 2})
	require.False(t, ok, "Empty cell has nothing to remove")

	small := Piece{Size: Small, Color: Red}
	medium := Piece{Size: Medium, Color: Blue}
	_, _ = b.Place(Cell{1, 2}, small)
	_, _ = b.Place(Cell{1, 2}, medium)

	got, ok := b.RemoveTop(Cell{1, 2})
	require.True(t, ok)
	require.Equal(t, medium, got, "Should pop the top piece")
	top, _ := b.TopAt(Cell{1, 2})
	require.Equal(t, small, top, "Covered piece should be visible again")
}

func TestBoardRelocateTop(t *testing.T) {
	t.Run("relocating reveals the origin and covers the destination", func(t *testing.T) {
		b := NewBoard()
		small := Piece{Size: Small, Color: Blue}
		medium := Piece{Size: Medium, Color: Red}
		large := Piece{Size: Large, Color: Red}
		_, _ = b.Place(Cell{0, 0}, small)
		_, _ = b.Place(Cell{0, 0}, large)
		_, _ = b.Place(Cell{2, 1}, medium)

		moved, covered, err := b.RelocateTop(Cell{0, 0}, Cell{2, 1})
		require.NoError(t, err)
		require.Equal(t, large, moved)
		require.Equal(t, medium, covered)
		require.Equal(t, []Piece{small}, b.Stack(Cell{0, 0}))
		require.Equal(t, []Piece{medium, large}, b.Stack(Cell{2, 1}))
	})

	t.Run("illegal destination restores the origin", func(t *testing.T) {
		b := NewBoard()
		small := Piece{Size: Small, Color: Blue}
		medium := Piece{Size: Medium, Color: Red}
		_, _ = b.Place(Cell{0, 0}, small)
		_, _ = b.Place(Cell{1, 1}, medium)

		_, _, err := b.RelocateTop(Cell{0, 0}, Cell{1, 1})
		require.ErrorIs(t, err, ErrIllegalPlacement)
		require.Equal(t, []Piece{small}, b.Stack(Cell{0, 0}), "Origin should be unchanged")
		require.Equal(t, []Piece{medium}, b.Stack(Cell{1, 1}), "Destination should be unchanged")
	})

	t.Run("relocating onto the same cell is rejected", func(t *testing.T) {
		b := NewBoard()
		small := Piece{Size: Small, Color: Blue}
		large := Piece{Size: Large, Color: Blue}
		_, _ = b.Place(Cell{1, 0}, small)
		_, _ = b.Place(Cell{1, 0}, large)

		_, _, err := b.RelocateTop(Cell{1, 0}, Cell{1, 0})
		require.ErrorIs(t, err, ErrIllegalPlacement)
		require.Equal(t, []Piece{small, large}, b.Stack(Cell{1, 0}))
	})

	t.Run("relocating from an empty cell is rejected", func(t *testing.T) {
		b := NewBoard()
		_, _, err := b.RelocateTop(Cell{0, 1}, Cell{0, 2})
		require.ErrorIs(t, err, ErrNoPieceToMove)
	})
}
