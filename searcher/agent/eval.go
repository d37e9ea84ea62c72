package agent

import (
	"connect/experiments/metrics"
	"connect/game"
	"connect/searcher"

	"github.com/rs/zerolog/log"
)

type lazyAgent struct {
	dims      game.Dimensions
	role      game.Cell
	solver    *searcher.Solver
	collector metrics.Collector
}

// NewLazyAgent returns an agent that evaluates positions as they are queried,
// memoizing everything it computes for later queries.
func NewLazyAgent(dims game.Dimensions, role game.Cell, options ...Option) Agent {
	c := newConfig(options)
	return &lazyAgent{
		dims:      dims,
		role:      role,
		solver:    searcher.NewSolver(dims, searcher.WithTable(c.table), searcher.WithMetrics(c.collector)),
		collector: c.collector,
	}
}

func (a *lazyAgent) FindMove(grid game.Grid) (int, metrics.SearchMetric, error) {
	b, err := decode(a.dims, grid, a.role)
	if err != nil {
		return -1, metrics.SearchMetric{}, err
	}

	a.collector.Start()
	scores := a.solver.Evaluate(b)
	metric := a.collector.Complete()

	log.Debug().Str("scores", scores.String()).Msgf("player %v scores", a.role)
	col, score, ok := scores.Best()
	if !ok {
		return -1, metric, ErrNoLegalMoves
	}
	metric.Score = score
	metric.TableSize = a.solver.Table().Len()
	return col, metric, nil
}
