package agent

import (
	"connect/experiments/metrics"
	"connect/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	dims game.Dimensions
	rng  *rand.Rand
}

// NewRandomAgent returns an agent playing a uniformly random legal column.
func NewRandomAgent(dims game.Dimensions, seed uint64) Agent {
	return &randomAgent{
		dims: dims,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (a *randomAgent) FindMove(grid game.Grid) (int, metrics.SearchMetric, error) {
	b, err := decode(a.dims, grid, grid.ToMove())
	if err != nil {
		return -1, metrics.SearchMetric{}, err
	}
	legal := b.Legal()
	return legal[a.rng.Intn(len(legal))], metrics.SearchMetric{}, nil
}
