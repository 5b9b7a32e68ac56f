package experiments

import (
	"errors"
	"fmt"

	"rbnim/agent"
	"rbnim/engine"
	"rbnim/experiments/metrics"
	"rbnim/game"
	"rbnim/searcher"

	"github.com/rs/zerolog/log"
)

var ErrUnknownExperiment = errors.New("unknown experiment")

const (
	Pruning = "pruning"
	Depth   = "depth"
)

type Setup struct {
	Red      int
	Blue     int
	Variant  game.Variant
	NumGames int // per matchup
	OutDir   string
}

func DefaultSetup() Setup {
	return Setup{
		Red:      5,
		Blue:     5,
		Variant:  game.Standard,
		NumGames: 30,
		OutDir:   "experiments",
	}
}

var baseline = metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent, Seed: 1}

// Run plays the named experiment and returns the directory holding its records.
func Run(name string, setup Setup) (string, error) {
	switch name {
	case Pruning:
		return RunPruningExperiment(setup)
	case Depth:
		return RunDepthExperiment(setup)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownExperiment, name)
	}
}

// RunPruningExperiment pits pruned and unpruned searches at equal depth
// against the random baseline; move records show the node counts.
func RunPruningExperiment(setup Setup) (string, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.MinimaxAgent, Depth: 4, Pruning: true},
		{ID: 2, Kind: metrics.MinimaxAgent, Depth: 4, Pruning: false},
		{ID: 3, Kind: metrics.MinimaxAgent, Depth: 0, Pruning: true},
		{ID: 4, Kind: metrics.MinimaxAgent, Depth: 0, Pruning: false},
	}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(Pruning, setup, append(configs, baseline), matchUps)
}

// RunDepthExperiment pits increasing search depths against the random baseline.
func RunDepthExperiment(setup Setup) (string, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: metrics.MinimaxAgent, Depth: 1, Pruning: true},
		{ID: 2, Kind: metrics.MinimaxAgent, Depth: 2, Pruning: true},
		{ID: 3, Kind: metrics.MinimaxAgent, Depth: 4, Pruning: true},
		{ID: 4, Kind: metrics.MinimaxAgent, Depth: 0, Pruning: true},
	}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(Depth, setup, append(configs, baseline), matchUps)
}

func runExperiment(name string, setup Setup, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < setup.NumGames; i++ {
			// Alternate the starting seat
			first := game.Human
			if i%2 == 1 {
				first = game.Computer
			}

			outcome, err := runGame(setup, config1, config2, first, uint64(i))
			if err != nil {
				return "", fmt.Errorf("%s experiment matchup %d game %d: %w", name, mi+1, i+1, err)
			}
			count++

			gameMetric, moveMetrics := collect(outcome)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, outcome.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(setup.OutDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return writer.Dir(), nil
}

// runGame seats config1 as human and config2 as computer.
func runGame(setup Setup, config1, config2 metrics.AgentConfig, first game.Player, gameIndex uint64) (engine.Outcome, error) {
	state, err := game.NewGameState(setup.Red, setup.Blue, setup.Variant, first)
	if err != nil {
		return engine.Outcome{}, err
	}
	agents := map[game.Player]agent.Agent{
		game.Human:    createAgent(config1, gameIndex),
		game.Computer: createAgent(config2, gameIndex),
	}
	e, err := engine.LocalEngine(state, agents)
	if err != nil {
		return engine.Outcome{}, err
	}
	return e.Run()
}

func createAgent(config metrics.AgentConfig, gameIndex uint64) agent.Agent {
	if config.Kind == metrics.RandomAgent {
		return agent.NewRandomAgent(config.Seed + gameIndex)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(searcher.Limit(config.Depth)))
	}
	if !config.Pruning {
		options = append(options, searcher.WithoutPruning())
	}
	return agent.NewMinimaxAgent(searcher.NewSearcher(options...))
}

func collect(outcome engine.Outcome) (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: outcome.Starting.String(),
		Winner:         outcome.Winner.String(),
		StartTime:      outcome.StartTime,
		EndTime:        outcome.StartTime.Add(outcome.Duration),
		Duration:       outcome.Duration,
		TotalMoves:     len(outcome.Turns),
		Red:            outcome.Red,
		Blue:           outcome.Blue,
		Score:          outcome.Score,
	}
	moveMetrics := make([]metrics.MoveMetric, 0, len(outcome.Turns))
	for _, turn := range outcome.Turns {
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:          turn.Step,
			Player:        turn.Player.String(),
			Move:          turn.Move.String(),
			SearchMetrics: turn.Metrics,
		})
	}
	return gameMetric, moveMetrics
}
