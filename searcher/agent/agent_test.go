package agent

import (
	"testing"

	"connect/experiments/metrics"
	"connect/game"
	"connect/searcher"

	"github.com/stretchr/testify/require"
)

// gridOf builds a grid from rows written top to bottom, using 'X', 'O' and '.'.
func gridOf(rows ...string) game.Grid {
	grid := make(game.Grid, len(rows))
	for i, row := range rows {
		grid[i] = make([]game.Cell, len(row))
		for j, ch := range row {
			switch ch {
			case 'X':
				grid[i][j] = game.PlayerOne
			case 'O':
				grid[i][j] = game.PlayerTwo
			}
		}
	}
	return grid
}

var line = game.Dimensions{Rows: 1, Cols: 4, WinLength: 2}

func TestLazyAgent(t *testing.T) {
	dims := game.DefaultDimensions()

	t.Run("takes the immediate win as player one", func(t *testing.T) {
		a := NewLazyAgent(dims, Role(true))

		col, metric, err := a.FindMove(gridOf(
			".....",
			".....",
			"OOO..",
			"XXX..",
		))

		require.NoError(t, err)
		require.Equal(t, 3, col)
		require.Equal(t, 1.0, metric.Score)
	})

	t.Run("takes the immediate win as player two", func(t *testing.T) {
		a := NewLazyAgent(dims, Role(false))

		col, metric, err := a.FindMove(gridOf(
			".....",
			"....X",
			"XXX.X",
			"OOO.X",
		))

		require.NoError(t, err)
		require.Equal(t, 3, col)
		require.Equal(t, 1.0, metric.Score)
	})

	t.Run("does not modify the grid", func(t *testing.T) {
		a := NewLazyAgent(dims, Role(true))
		grid := gridOf(
			".....",
			"..X..",
			"O.OX.",
			"XOXOO",
		)
		before := grid.Copy()

		_, _, err := a.FindMove(grid)

		require.NoError(t, err)
		require.Equal(t, before, grid)
	})

	t.Run("collects search metrics", func(t *testing.T) {
		a := NewLazyAgent(line, Role(true), WithMetrics(metrics.NewCollector()))

		col, metric, err := a.FindMove(game.NewGrid(line))

		require.NoError(t, err)
		require.Contains(t, []int{1, 2}, col)
		require.Positive(t, metric.Evaluated)
		require.Equal(t, metric.Evaluated, metric.TableSize)

		_, again, err := a.FindMove(game.NewGrid(line))
		require.NoError(t, err)
		require.Zero(t, again.Evaluated)
		require.Equal(t, 1, again.CacheHits)
	})

	t.Run("full board has no legal moves", func(t *testing.T) {
		a := NewLazyAgent(dims, Role(true))

		_, _, err := a.FindMove(gridOf(
			"XOXOX",
			"XOXOX",
			"OXOXO",
			"OXOXO",
		))

		require.ErrorIs(t, err, ErrNoLegalMoves)
	})

	t.Run("rejects a grid where the other player moves", func(t *testing.T) {
		a := NewLazyAgent(dims, Role(false))

		col, _, err := a.FindMove(gridOf(
			".....",
			".....",
			".....",
			"XO...",
		))

		require.ErrorIs(t, err, ErrWrongTurn)
		require.Equal(t, -1, col)
	})

	t.Run("rejects a grid of the wrong size", func(t *testing.T) {
		a := NewLazyAgent(dims, Role(true))

		_, _, err := a.FindMove(game.NewGrid(game.Dimensions{Rows: 6, Cols: 7, WinLength: 4}))

		require.Error(t, err)
	})
}

func TestEagerAgent(t *testing.T) {
	t.Run("builds the model at construction", func(t *testing.T) {
		table := searcher.NewTable()
		NewEagerAgent(line, Role(true), WithTable(table))

		require.Positive(t, table.Len())
	})

	t.Run("agrees with the lazy agent on reachable positions", func(t *testing.T) {
		table := searcher.NewTable()
		eager := []Agent{NewEagerAgent(line, Role(true), WithTable(table)), NewEagerAgent(line, Role(false), WithTable(table))}
		lazy := []Agent{NewLazyAgent(line, Role(true)), NewLazyAgent(line, Role(false))}

		cases := []struct {
			grid game.Grid
			seat int
		}{
			{gridOf("...."), 0},
			{gridOf("X..."), 1},
			{gridOf(".X.."), 1},
			{gridOf("X.O."), 0},
			{gridOf("O..X"), 0},
		}
		for _, c := range cases {
			want, _, err := lazy[c.seat].FindMove(c.grid)
			require.NoError(t, err)
			got, _, err := eager[c.seat].FindMove(c.grid)
			require.NoError(t, err)
			require.Equal(t, want, got, "grid %v", c.grid)
		}
	})

	t.Run("reports positions the model never reached", func(t *testing.T) {
		// A finished game is never expanded while building the model.
		a := NewEagerAgent(line, Role(false))

		col, _, err := a.FindMove(gridOf("XX.."))

		require.ErrorIs(t, err, ErrMissingKey)
		require.Equal(t, -1, col)
	})

	t.Run("rejects a grid where the other player moves", func(t *testing.T) {
		a := NewEagerAgent(line, Role(true))

		_, _, err := a.FindMove(gridOf("X..."))

		require.ErrorIs(t, err, ErrWrongTurn)
	})

	t.Run("lookups do not grow the model", func(t *testing.T) {
		table := searcher.NewTable()
		a := NewEagerAgent(line, Role(false), WithTable(table))
		size := table.Len()

		_, _, _ = a.FindMove(gridOf("XX.."))

		require.Equal(t, size, table.Len())
	})
}

func TestRandomAgent(t *testing.T) {
	dims := game.DefaultDimensions()
	grid := gridOf(
		"X.O.X",
		"O.X.O",
		"X.O.X",
		"OXOXO",
	)

	t.Run("only plays legal columns", func(t *testing.T) {
		a := NewRandomAgent(dims, 1)
		for i := 0; i < 50; i++ {
			col, _, err := a.FindMove(grid)
			require.NoError(t, err)
			require.Contains(t, []int{1, 3}, col)
		}
	})

	t.Run("same seed plays the same columns", func(t *testing.T) {
		a, b := NewRandomAgent(dims, 42), NewRandomAgent(dims, 42)
		for i := 0; i < 20; i++ {
			x, _, _ := a.FindMove(grid)
			y, _, _ := b.FindMove(grid)
			require.Equal(t, x, y)
		}
	})

	t.Run("plays for whichever player is to move", func(t *testing.T) {
		a := NewRandomAgent(dims, 3)
		for _, g := range []game.Grid{game.NewGrid(dims), gridOf(".....", ".....", ".....", "..X..")} {
			col, _, err := a.FindMove(g)
			require.NoError(t, err)
			require.GreaterOrEqual(t, col, 0)
			require.Less(t, col, dims.Cols)
		}
	})

	t.Run("full board has no legal moves", func(t *testing.T) {
		_, _, err := NewRandomAgent(dims, 1).FindMove(gridOf(
			"XOXOX",
			"XOXOX",
			"OXOXO",
			"OXOXO",
		))
		require.ErrorIs(t, err, ErrNoLegalMoves)
	})
}
