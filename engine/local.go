package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gobblers/agent"
	"gobblers/experiments/metrics"
	"gobblers/game"
	"gobblers/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrNoMove is returned when an agent has nothing to play in a running game.
var ErrNoMove = errors.New("agent returned no move")

type Option func(e *Engine)

func WithMaxTurns(maxTurns int) Option {
	return func(e *Engine) {
		if maxTurns > 0 {
			e.maxTurns = maxTurns
		}
	}
}

// WithOutput prints the game to w after every move.
func WithOutput(w io.Writer, renderer game.Renderer) Option {
	return func(e *Engine) {
		e.out = w
		e.renderer = renderer
	}
}

// Engine plays one game between two agents in process.
type Engine struct {
	ID       string
	Game     *game.Game
	agents   [2]agent.Agent // indexed by color - 1
	maxTurns int
	out      io.Writer
	renderer game.Renderer
}

func LocalEngine(nameA, nameB string, agentA, agentB agent.Agent, options ...Option) *Engine {
	if agentA == nil || agentB == nil {
		panic("both players need an agent")
	}
	e := &Engine{ // Default values
		ID:       uuid.New().String(),
		Game:     game.NewGame(nameA, nameB),
		agents:   [2]agent.Agent{agentA, agentB},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the game is over or the turn cap is reached.
// A game stopped by the cap is reported as unfinished.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		StartingPlayer: e.Game.CurrentPlayer().Color.String(),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("game %s: %s is starting", e.ID, e.Game.CurrentPlayer().Name)

	var err error
	for turn := 1; !e.Game.Over() && turn <= e.maxTurns; turn++ {
		current := e.Game.CurrentPlayer()
		move, searchMetric, findErr := e.agents[current.Color-1].FindMove(e.Game)
		if findErr != nil {
			err = fmt.Errorf("turn %d: %s failed to find a move: %w", turn, current.Name, findErr)
			break
		}
		if move == nil {
			err = fmt.Errorf("turn %d: %s: %w", turn, current.Name, ErrNoMove)
			break
		}
		if playErr := e.Game.Play(move); playErr != nil {
			err = fmt.Errorf("turn %d: %s played %v: %w", turn, current.Name, move, playErr)
			break
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       current.Color.String(),
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("turn", turn).Str("state", e.Game.State().String()).Msgf("%s played %v", current.Name, move)
		if e.out != nil {
			fmt.Fprintf(e.out, "%s played %v\n%s\n", e.renderer.Name(current), move, e.renderer.Board(e.Game.Board))
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.State = e.Game.State().String()
	gameMetric.Finished = e.Game.Over()
	if winner, ok := e.Game.CheckWinner(); ok && gameMetric.Finished {
		gameMetric.Winner = winner.String()
	}

	if err != nil {
		log.Error().Err(err).Msgf("game %s aborted", e.ID)
		return gameMetric, moveMetrics, err
	}
	if gameMetric.Finished {
		log.Info().Msgf("game %s over after %d moves: %s", e.ID, gameMetric.TotalMoves, gameMetric.State)
	} else {
		log.Info().Msgf("game %s stopped after %d moves without a result", e.ID, gameMetric.TotalMoves)
	}
	return gameMetric, moveMetrics, nil
}
