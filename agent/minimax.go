package agent

import (
	"gobblers/experiments/metrics"
	"gobblers/game"
	"gobblers/searcher"
)

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent plays the moves chosen by a minimax searcher.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindMove(g *game.Game) (game.Move, metrics.SearchMetric, error) {
	result := a.minimax.Search(g)
	return result.Move, result.Metric, nil
}
