package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gobblers/agent"
	"gobblers/engine"
	"gobblers/experiments"
	"gobblers/game"
	"gobblers/meta"
	"gobblers/player"
	"gobblers/searcher"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	kind  string
	depth int
	seed  uint64
}

func main() {
	kindA := flag.String("a", "human", "Agent playing A (red): human, minimax or random")
	kindB := flag.String("b", "minimax", "Agent playing B (blue): human, minimax or random")
	depthA := flag.Int("depth-a", meta.DEFAULT_DEPTH, "Search depth of A when it is a minimax agent")
	depthB := flag.Int("depth-b", meta.DEFAULT_DEPTH, "Search depth of B when it is a minimax agent")
	seed := flag.Uint64("seed", 1, "Seed of random agents")
	maxTurns := flag.Int("max-turns", meta.MAX_TURNS, "Number of moves after which the game is stopped")
	watch := flag.Bool("watch", false, "Print the board after every move")
	experiment := flag.String("experiment", "", "Run an experiment instead of a game: depth or pruning")
	numGames := flag.Int("games", meta.NUM_GAMES, "Number of games per experiment matchup")
	out := flag.String("out", "results", "Directory for experiment records")
	debug := flag.Bool("debug", false, "Log every move and search")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *experiment != "" {
		dir, err := experiments.Run(*experiment, *out, *numGames)
		if err != nil {
			log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
		}
		fmt.Printf("records stored in %s\n", dir)
		return
	}

	renderer := game.NewRenderer(termenv.NewOutput(os.Stdout).EnvColorProfile())
	agentA, err := createAgent(config{kind: *kindA, depth: *depthA, seed: *seed}, game.Red, renderer)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid agent for A")
	}
	agentB, err := createAgent(config{kind: *kindB, depth: *depthB, seed: *seed + 1}, game.Blue, renderer)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid agent for B")
	}

	options := []engine.Option{engine.WithMaxTurns(*maxTurns)}
	if *watch {
		options = append(options, engine.WithOutput(os.Stdout, renderer))
	}
	e := engine.LocalEngine(name("A", *kindA), name("B", *kindB), agentA, agentB, options...)

	gameMetric, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	printOutcome(os.Stdout, e.Game, renderer)
	log.Info().Msgf("game %s took %v over %d moves", gameMetric.ID, gameMetric.Duration, gameMetric.TotalMoves)
}

func createAgent(cfg config, color game.Color, renderer game.Renderer) (agent.Agent, error) {
	switch cfg.kind {
	case "human":
		return player.NewHuman(os.Stdin, os.Stdout, renderer), nil
	case "minimax":
		if cfg.depth < 1 {
			return nil, fmt.Errorf("search depth must be positive, got %d", cfg.depth)
		}
		return agent.NewMinimaxAgent(searcher.NewMinimax(color, cfg.depth)), nil
	case "random":
		return agent.NewRandomAgent(cfg.seed), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", cfg.kind)
	}
}

func name(side, kind string) string {
	return fmt.Sprintf("%s (%s)", side, kind)
}

func printOutcome(w io.Writer, g *game.Game, renderer game.Renderer) {
	fmt.Fprintf(w, "%s\n", renderer.Game(g))
	switch g.State() {
	case game.AWins:
		fmt.Fprintf(w, "%s wins\n", renderer.Name(g.A))
	case game.BWins:
		fmt.Fprintf(w, "%s wins\n", renderer.Name(g.B))
	case game.Draw:
		fmt.Fprintln(w, "draw")
	default:
		fmt.Fprintln(w, "stopped without a result")
	}
}
