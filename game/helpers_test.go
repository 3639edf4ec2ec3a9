package game

import (
	"testing"

	"golang.org/x/exp/rand"
)

// randomGame plays up to plies random legal moves from the opening
func randomGame(t *testing.T, seed uint64, plies int) *Game {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := NewGame("Alice", "Bob")
	for i := 0; i < plies && !g.Over(); i++ {
		moves := g.LegalMoves(g.CurrentPlayer().Color)
		if err := g.Play(moves[r.Intn(len(moves))]); err != nil {
			t.Fatalf("random move %d rejected: %v", i, err)
		}
	}
	return g
}
