package agent

import (
	"fmt"
	"time"

	"connect/bitboard"
	"connect/experiments/metrics"
	"connect/game"
	"connect/searcher"

	"github.com/rs/zerolog/log"
)

type eagerAgent struct {
	dims      game.Dimensions
	role      game.Cell
	solver    *searcher.Solver
	collector metrics.Collector
}

// NewEagerAgent builds the whole model from the empty board up front and
// afterwards only looks positions up. A position outside the model is
// reported with ErrMissingKey instead of being computed, so the agent must
// be built for exactly the board it is asked about.
func NewEagerAgent(dims game.Dimensions, role game.Cell, options ...Option) Agent {
	c := newConfig(options)
	solver := searcher.NewSolver(dims, searcher.WithTable(c.table))

	log.Info().Msgf("generating model for %s board...", dims)
	start := time.Now()
	solver.Evaluate(bitboard.New(dims))
	log.Info().Dur("duration", time.Since(start)).Int("entries", solver.Table().Len()).Msg("generated model")
	solver.Table().LogStats()

	return &eagerAgent{
		dims:      dims,
		role:      role,
		solver:    solver,
		collector: c.collector,
	}
}

func (a *eagerAgent) FindMove(grid game.Grid) (int, metrics.SearchMetric, error) {
	b, err := decode(a.dims, grid, a.role)
	if err != nil {
		return -1, metrics.SearchMetric{}, err
	}

	a.collector.Start()
	scores, ok := a.solver.Lookup(b)
	metric := a.collector.Complete()
	if !ok {
		return -1, metric, fmt.Errorf("%w: %s", ErrMissingKey, b.Key())
	}

	log.Debug().Str("scores", scores.String()).Msgf("player %v scores", a.role)
	col, score, ok := scores.Best()
	if !ok {
		return -1, metric, ErrNoLegalMoves
	}
	metric.Score = score
	metric.TableSize = a.solver.Table().Len()
	return col, metric, nil
}
