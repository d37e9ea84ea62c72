package agent

import (
	"errors"
	"fmt"

	"connect/bitboard"
	"connect/experiments/metrics"
	"connect/game"
	"connect/searcher"
)

var (
	// ErrNoLegalMoves is returned for a grid with every column full.
	ErrNoLegalMoves = errors.New("no legal moves")
	// ErrWrongTurn is returned when the grid has the other player to move.
	ErrWrongTurn = errors.New("not the agent's turn")
	// ErrMissingKey is returned by the eager agent when the queried position
	// was never reached while building its model.
	ErrMissingKey = errors.New("model does not have key")
)

type Agent interface {
	// FindMove returns the column to play in grid and the metrics of the search
	FindMove(grid game.Grid) (int, metrics.SearchMetric, error)
}

// Role returns the marker an engine plays with.
func Role(isPlayerOne bool) game.Cell {
	if isPlayerOne {
		return game.PlayerOne
	}
	return game.PlayerTwo
}

type Option func(c *config)

type config struct {
	table     *searcher.Table
	collector metrics.Collector
}

// WithTable shares a table between agents. Scores are stored from the point
// of view of the player to move, so agents of either role can share one.
func WithTable(table *searcher.Table) Option {
	return func(c *config) {
		c.table = table
	}
}

// WithMetrics collects search metrics for every query.
func WithMetrics(collector metrics.Collector) Option {
	return func(c *config) {
		c.collector = collector
	}
}

func newConfig(options []Option) *config {
	c := &config{collector: metrics.NewDummyCollector()}
	for _, option := range options {
		option(c)
	}
	if c.table == nil {
		c.table = searcher.NewTable()
	}
	return c
}

// decode packs grid for the player to move and checks a move is possible.
func decode(dims game.Dimensions, grid game.Grid, mover game.Cell) (*bitboard.Board, error) {
	if !grid.Fits(dims) {
		return nil, fmt.Errorf("grid does not match board %s", dims)
	}
	if toMove := grid.ToMove(); toMove != mover {
		return nil, fmt.Errorf("%w: %v to move, agent plays %v", ErrWrongTurn, toMove, mover)
	}
	b := bitboard.Decode(dims, grid, mover)
	if len(b.Legal()) == 0 {
		return nil, ErrNoLegalMoves
	}
	return b, nil
}
