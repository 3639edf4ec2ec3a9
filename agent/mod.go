package agent

import (
	"gobblers/experiments/metrics"
	"gobblers/game"
)

type Agent interface {
	// FindMove returns the move to play for the player whose turn it is, with
	// search metrics when the agent collects them
	FindMove(g *game.Game) (game.Move, metrics.SearchMetric, error)
}
