package searcher

import (
	"gobblers/experiments/metrics"
	"gobblers/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// WithoutPruning turns alpha-beta cutoffs off, giving an exhaustive minimax
// over the same tree.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

// Minimax is a fixed-depth minimax search with alpha-beta pruning. It explores
// the tree in place on the live game with MakeMove/UndoMove and hands the game
// back exactly as it received it.
type Minimax struct {
	color    game.Color
	depth    int
	pruning  bool
	evaluate game.Evaluate
	metrics  metrics.Collector

	// per-search counters for the debug log, kept even without a collector
	nodes   int
	cutoffs int
}

type Result struct {
	Move   game.Move // nil when there is nothing to play
	Score  int
	Metric metrics.SearchMetric
}

func NewMinimax(color game.Color, depth int, options ...Option) *Minimax {
	if depth < 1 {
		panic("search depth must be positive")
	}
	m := &Minimax{ // Default values
		color:    color,
		depth:    depth,
		pruning:  true,
		evaluate: game.EvaluatePosition,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Color() game.Color {
	return m.color
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) ChooseMove(g *game.Game) game.Move {
	return m.Search(g).Move
}

// Search returns the best move for the searcher's color and its minimax value.
// Ties keep the first move in generation order. It returns no move when the game
// is over, when it is not the searcher's turn, or when no legal move exists.
func (m *Minimax) Search(g *game.Game) Result {
	current := g.CurrentPlayer()
	if current == nil || current.Color != m.color {
		log.Warn().Msgf("%v searcher asked to move in state %v", m.color, g.State())
		return Result{}
	}

	m.metrics.Start(m.depth, m.pruning)
	m.nodes, m.cutoffs = 0, 0
	var best game.Move
	bestScore := -Infinity
	alpha, beta := -Infinity, Infinity
	for move := range g.Moves(m.color) {
		undo := g.MakeMove(move)
		m.addNode()
		score := m.minimax(g, m.depth-1, alpha, beta, false)
		g.UndoMove(move, undo)

		if score > bestScore {
			bestScore = score
			best = move
		}
		alpha = max(alpha, score)
	}
	if best == nil {
		bestScore = DrawScore
	}

	metric := m.metrics.Complete(bestScore)
	log.Debug().
		Int("depth", m.depth).
		Int("score", bestScore).
		Int("nodes", m.nodes).
		Int("cutoffs", m.cutoffs).
		Msgf("%v searcher best move: %v", m.color, best)
	return Result{Move: best, Score: bestScore, Metric: metric}
}

func (m *Minimax) minimax(g *game.Game, depth, alpha, beta int, maximizing bool) int {
	if _, won := g.CheckWinner(); depth == 0 || won {
		m.metrics.AddLeaf()
		return m.evaluate(g, m.color)
	}

	mover := g.CurrentPlayer().Color
	searched := false
	var value int
	if maximizing {
		value = -Infinity
		for move := range g.Moves(mover) {
			searched = true
			undo := g.MakeMove(move)
			m.addNode()
			value = max(value, m.minimax(g, depth-1, alpha, beta, false))
			g.UndoMove(move, undo)

			alpha = max(alpha, value)
			if m.pruning && beta <= alpha {
				m.addCutoff()
				break
			}
		}
	} else {
		value = Infinity
		for move := range g.Moves(mover) {
			searched = true
			undo := g.MakeMove(move)
			m.addNode()
			value = min(value, m.minimax(g, depth-1, alpha, beta, true))
			g.UndoMove(move, undo)

			beta = min(beta, value)
			if m.pruning && beta <= alpha {
				m.addCutoff()
				break
			}
		}
	}

	if !searched {
		return DrawScore
	}
	return value
}

func (m *Minimax) addNode() {
	m.nodes++
	m.metrics.AddNode()
}

func (m *Minimax) addCutoff() {
	m.cutoffs++
	m.metrics.AddCutoff()
}
