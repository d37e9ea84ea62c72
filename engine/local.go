package engine

import (
	"fmt"
	"time"

	"connect/experiments/metrics"
	"connect/game"
	"connect/gamemaster"
	"connect/searcher/agent"

	"github.com/rs/zerolog/log"
)

type localEngine struct {
	master gamemaster.Engine
	agents []agent.Agent
}

// LocalEngine pits two agents against each other; agents[0] plays first.
func LocalEngine(dims game.Dimensions, agents []agent.Agent) Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &localEngine{
		master: gamemaster.NewLocalEngine(dims),
		agents: agents,
	}
}

func (e *localEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	step := 1
	for !e.master.State().Over() {
		player := e.player()
		col, searchMetric, err := e.agents[player-1].FindMove(e.master.Grid())
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("player %d failed to find a move: %w", player, err)
		}

		state, err := e.master.Play(col)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("player %d played column %d: %w", player, col+1, err)
		}
		log.Debug().Msgf("step %d: player %d chose column %d (%.2f)", step, player, col+1, searchMetric.Score)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Column:       col,
			SearchMetric: searchMetric,
		})
		gameMetric.State = state
		step++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	log.Info().Msgf("game over after %d moves: %s", gameMetric.TotalMoves, gameMetric.State)

	return gameMetric, moveMetrics, nil
}

// player returns 1 or 2 for the side to move.
func (e *localEngine) player() int {
	if e.master.Turn() == game.PlayerOne {
		return 1
	}
	return 2
}
