package experiments

import (
	"errors"
	"fmt"

	"gobblers/agent"
	"gobblers/engine"
	"gobblers/experiments/metrics"
	"gobblers/game"
	"gobblers/meta"
	"gobblers/searcher"

	"github.com/rs/zerolog/log"
)

var ErrUnknownExperiment = errors.New("unknown experiment")

const (
	Random  = "random"
	Minimax = "minimax"
)

// Run runs the named experiment and returns the directory holding its records.
func Run(name, dir string, numGames int) (string, error) {
	switch name {
	case "depth":
		return RunDepthExperiment(dir, numGames)
	case "pruning":
		return RunPruningExperiment(dir, numGames)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownExperiment, name)
	}
}

// RunDepthExperiment pairs searchers of increasing depth against a random
// baseline and against a depth-1 searcher.
func RunDepthExperiment(dir string, numGames int) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: Random, Seed: 1}
	depthConfigs := []metrics.AgentConfig{
		{ID: 1, Kind: Minimax, Depth: 1, Pruning: true},
		{ID: 2, Kind: Minimax, Depth: 2, Pruning: true},
		{ID: 3, Kind: Minimax, Depth: meta.DEFAULT_DEPTH, Pruning: true},
	}

	matchUps := depthMatchUps(baseline, depthConfigs)
	return runExperiment("depth", dir, numGames, append([]metrics.AgentConfig{baseline}, depthConfigs...), matchUps)
}

// depthMatchUps pairs every config with the baseline and with the shallowest
// config, except the shallowest config with itself.
func depthMatchUps(baseline metrics.AgentConfig, depthConfigs []metrics.AgentConfig) [][]metrics.AgentConfig {
	shallowest := depthConfigs[0]
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
		if config.ID != shallowest.ID {
			matchUps = append(matchUps, []metrics.AgentConfig{shallowest, config})
		}
	}
	return matchUps
}

// RunPruningExperiment plays alpha-beta against exhaustive minimax of the same
// depth. Both choose the same moves, so the records compare search effort.
func RunPruningExperiment(dir string, numGames int) (string, error) {
	pruned := metrics.AgentConfig{ID: 1, Kind: Minimax, Depth: meta.DEFAULT_DEPTH, Pruning: true}
	exhaustive := metrics.AgentConfig{ID: 2, Kind: Minimax, Depth: meta.DEFAULT_DEPTH}
	matchUps := [][]metrics.AgentConfig{{pruned, exhaustive}}

	return runExperiment("pruning", dir, numGames, []metrics.AgentConfig{pruned, exhaustive}, matchUps)
}

func runExperiment(name, dir string, numGames int, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent%d=%+v and agent%d=%+v...",
			mi+1, len(matchUps), matchup[0].ID, matchup[0], matchup[1].ID, matchup[1])

		for i := 0; i < numGames; i++ {
			// Alternate which agent moves first
			configA, configB := matchup[0], matchup[1]
			if i%2 == 1 {
				configA, configB = configB, configA
			}

			gameMetric, moveMetrics, err := runGame(configA, configB, uint64(i))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				AgentA:     configA.ID,
				AgentB:     configB.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with state: %s", mi+1, len(matchUps), i+1, gameMetric.State)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	return store(name, dir, configs, gameRecords, moveRecords)
}

func store(name, dir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single game with configA as A (Red) and configB as B (Blue)
func runGame(configA, configB metrics.AgentConfig, gameIndex uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agentA := createAgent(configA, game.Red, gameIndex)
	agentB := createAgent(configB, game.Blue, gameIndex)
	e := engine.LocalEngine(fmt.Sprintf("agent%d", configA.ID), fmt.Sprintf("agent%d", configB.ID), agentA, agentB)
	return e.Run()
}

// createAgent builds the agent described by config. Random agents draw a
// different stream each game from the configured seed.
func createAgent(config metrics.AgentConfig, color game.Color, gameIndex uint64) agent.Agent {
	switch config.Kind {
	case Random:
		return agent.NewRandomAgent(config.Seed + gameIndex)
	case Minimax:
		options := []searcher.Option{searcher.WithMetrics()}
		if !config.Pruning {
			options = append(options, searcher.WithoutPruning())
		}
		return agent.NewMinimaxAgent(searcher.NewMinimax(color, config.Depth, options...))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
