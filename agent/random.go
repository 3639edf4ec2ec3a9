package agent

import (
	"gobblers/experiments/metrics"
	"gobblers/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent picks uniformly among the legal moves. The same seed replays
// the same choices.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(g *game.Game) (game.Move, metrics.SearchMetric, error) {
	current := g.CurrentPlayer()
	if current == nil {
		return nil, metrics.SearchMetric{}, nil
	}
	moves := g.LegalMoves(current.Color)
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}, nil
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
