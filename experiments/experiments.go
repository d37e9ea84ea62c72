package experiments

import (
	"errors"
	"fmt"

	"connect/engine"
	"connect/experiments/metrics"
	"connect/game"
	"connect/searcher"
	"connect/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	Lazy   = "lazy"
	Eager  = "eager"
	Random = "random"
)

// Settings controls the board and the amount of games of an experiment.
type Settings struct {
	Dims      game.Dimensions
	Games     int // Per match up
	OutputDir string
	Seed      uint64 // Seats and random agents; equal seeds replay the same games
}

// RunStrengthExperiment pits the engine agents against the random baseline
// and against each other.
func RunStrengthExperiment(settings Settings) (Summary, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: Lazy},
		{ID: 2, Kind: Eager},
		{ID: 3, Kind: Random, Seed: settings.Seed},
	}
	matchUps := [][]metrics.AgentConfig{
		{configs[0], configs[2]},
		{configs[1], configs[2]},
		{configs[0], configs[1]},
	}

	return newExperiment("strength", settings, configs).run(matchUps)
}

// RunBaselineExperiment plays the random agent against itself, which gives
// the first-mover advantage of the board without any search.
func RunBaselineExperiment(settings Settings) (Summary, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: Random, Seed: settings.Seed},
		{ID: 2, Kind: Random, Seed: settings.Seed},
	}
	matchUps := [][]metrics.AgentConfig{
		{configs[0], configs[1]},
	}

	return newExperiment("baseline", settings, configs).run(matchUps)
}

type experiment struct {
	name     string
	settings Settings
	configs  []metrics.AgentConfig

	// Tables live for the whole experiment so the eager model is built once
	// and lazy agents keep what earlier games computed.
	lazyTable  *searcher.Table
	eagerTable *searcher.Table
	games      int // Games started, used to derive random seeds
	seats      *rand.Rand
}

func newExperiment(name string, settings Settings, configs []metrics.AgentConfig) *experiment {
	return &experiment{
		name:       name,
		settings:   settings,
		configs:    configs,
		lazyTable:  searcher.NewTable(),
		eagerTable: searcher.NewTable(),
		seats:      rand.New(rand.NewSource(settings.Seed)),
	}
}

func (e *experiment) run(matchUps [][]metrics.AgentConfig) (Summary, error) {
	count := 0
	aborted := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment on %s board...", e.name, e.settings.Dims)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < e.settings.Games; i++ {
			config1, config2 := matchUp[0], matchUp[1]
			if e.seats.Intn(2) == 1 {
				config1, config2 = config2, config1
			}

			gameMetric, moveMetrics, err := e.runGame(config1, config2)
			if errors.Is(err, agent.ErrMissingKey) {
				// The random agent can leave the eager model by skipping a win
				log.Warn().Err(err).Msgf("aborted matchup %d of %d game %d", mi+1, len(matchUps), i+1)
				aborted++
				continue
			}
			if err != nil {
				return Summary{}, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Player1:    config1.ID,
				Player2:    config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, gameMetric.Winner())
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", e.name)

	dir, err := e.store(gameRecords, moveRecords)
	if err != nil {
		return Summary{}, err
	}

	summary := summarize(e.configs, gameRecords, moveRecords)
	summary.Aborted = aborted
	summary.Dir = dir
	summary.Log()
	return summary, nil
}

func (e *experiment) store(gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(e.settings.OutputDir, e.name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(e.configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single game where config1 moves first
func (e *experiment) runGame(config1, config2 metrics.AgentConfig) (metrics.GameMetric, []metrics.MoveMetric, error) {
	e.games++
	agent1, err := e.createAgent(config1, true)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	agent2, err := e.createAgent(config2, false)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	return engine.LocalEngine(e.settings.Dims, []agent.Agent{agent1, agent2}).Run()
}

func (e *experiment) createAgent(config metrics.AgentConfig, isPlayerOne bool) (agent.Agent, error) {
	role := agent.Role(isPlayerOne)
	switch config.Kind {
	case Lazy:
		return agent.NewLazyAgent(e.settings.Dims, role,
			agent.WithTable(e.lazyTable),
			agent.WithMetrics(metrics.NewCollector()),
		), nil
	case Eager:
		return agent.NewEagerAgent(e.settings.Dims, role,
			agent.WithTable(e.eagerTable),
			agent.WithMetrics(metrics.NewCollector()),
		), nil
	case Random:
		return agent.NewRandomAgent(e.settings.Dims, e.seed(config)), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

// seed gives every (agent, game) pair its own stream, so no agent replays
// the moves another agent made in an earlier game.
func (e *experiment) seed(config metrics.AgentConfig) uint64 {
	return config.Seed + uint64(e.games)*uint64(len(e.configs)) + uint64(config.ID)
}
