package searcher

import (
	"testing"

	"connect/bitboard"
	"connect/experiments/metrics"
	"connect/game"

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

// A single row of three cells where two adjacent tokens win. Small enough to
// work out the whole tree by hand:
//
//	X in the middle: both replies let X complete a pair -> 1
//	X on an edge: O blocks (X then ties, 0.5) or O goes wide (X wins, 1)
//	              -> mean(1-0.5, 1-0) = 0.75
//
// A minimizing opponent would always block, valuing the edges at 0.5.
var strip = game.Dimensions{Rows: 1, Cols: 3, WinLength: 2}

func TestSolverEvaluate(t *testing.T) {
	t.Run("average reply over the whole tree", func(t *testing.T) {
		s := NewSolver(strip)
		got := s.Evaluate(bitboard.New(strip))

		require.InDeltaSlice(t, []float64{0.75, 1, 0.75}, []float64(got), 1e-12)
		require.Equal(t, 10, s.Table().Len(), "root, three replies and six two-token positions")
	})

	t.Run("immediate win short-circuits the vector", func(t *testing.T) {
		dims := game.DefaultDimensions()
		b := bitboard.Decode(dims, gridOf(
			".....",
			".....",
			"OOO..",
			"XXX..",
		), game.PlayerOne)

		got := NewSolver(dims).Evaluate(b)

		require.Equal(t, Scores{Unset, Unset, Unset, Win, Unset}, got)
		col, score, ok := got.Best()
		require.True(t, ok)
		require.Equal(t, 3, col)
		require.Equal(t, 1.0, score)
	})

	t.Run("only the lowest winning column is scored", func(t *testing.T) {
		dims := game.DefaultDimensions()
		b := bitboard.Decode(dims, gridOf(
			".....",
			".....",
			".OOO.",
			".XXX.",
		), game.PlayerOne)

		got := NewSolver(dims).Evaluate(b)

		require.Equal(t, Scores{Win, Unset, Unset, Unset, Unset}, got, "column 4 also wins but stays unset")
	})

	t.Run("tying move scores one half and full columns are unset", func(t *testing.T) {
		dims := game.DefaultDimensions()
		b := bitboard.Decode(dims, gridOf(
			"XOXO.",
			"XOXOX",
			"OXOXO",
			"OXOXO",
		), game.PlayerOne)

		got := NewSolver(dims).Evaluate(b)

		require.Equal(t, Scores{Unset, Unset, Unset, Unset, Tie}, got)
	})

	t.Run("single reply leading to a tie scores one half", func(t *testing.T) {
		dims := game.DefaultDimensions()
		b := bitboard.Decode(dims, gridOf(
			"XOX..",
			"XOXOX",
			"OXOXO",
			"OXOXO",
		), game.PlayerOne)

		got := NewSolver(dims).Evaluate(b)

		require.Equal(t, Scores{Unset, Unset, Unset, Tie, Tie}, got)
	})

	t.Run("winning reply drags the move to zero", func(t *testing.T) {
		// X into column 3 leaves O the top of column 4, completing O's
		// vertical four. X into column 4 blocks it and O can only tie.
		dims := game.DefaultDimensions()
		b := bitboard.Decode(dims, gridOf(
			"XOX..",
			"XOXOO",
			"OXOXO",
			"OXOXO",
		), game.PlayerOne)

		got := NewSolver(dims).Evaluate(b)

		require.Equal(t, Scores{Unset, Unset, Unset, Loss, Tie}, got)
		col, _, _ := got.Best()
		require.Equal(t, 4, col)
	})

	t.Run("scores lie in the unit interval or are unset for full columns", func(t *testing.T) {
		dims := game.DefaultDimensions()
		b := bitboard.Decode(dims, gridOf(
			".....",
			"..X..",
			"O.OX.",
			"XOXOX",
		), game.PlayerTwo)

		got := NewSolver(dims).Evaluate(b)

		require.Len(t, got, dims.Cols)
		for col, v := range got {
			if b.Full(col) {
				require.Equal(t, Unset, v)
				continue
			}
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 1.0)
		}
	})

	t.Run("board is restored after the search", func(t *testing.T) {
		dims := game.DefaultDimensions()
		b := bitboard.Decode(dims, gridOf(
			".....",
			"..X..",
			"O.OX.",
			"XOXOX",
		), game.PlayerTwo)
		before := b.Key()

		NewSolver(dims).Evaluate(b)

		require.Equal(t, before, b.Key())
		require.Equal(t, gridOf(
			".....",
			"..X..",
			"O.OX.",
			"XOXOX",
		), b.Encode(game.PlayerTwo))
	})
}

func TestSolverMemoization(t *testing.T) {
	t.Run("re-query returns identical scores from the table", func(t *testing.T) {
		collector := metrics.NewCollector()
		s := NewSolver(strip, WithMetrics(collector))
		b := bitboard.New(strip)

		collector.Start()
		first := s.Evaluate(b)
		firstMetric := collector.Complete()

		collector.Start()
		second := s.Evaluate(b)
		secondMetric := collector.Complete()

		require.Equal(t, first, second)
		require.Equal(t, 10, firstMetric.Evaluated)
		require.Zero(t, secondMetric.Evaluated)
		require.Equal(t, 1, secondMetric.CacheHits)
	})

	t.Run("callers cannot corrupt the table", func(t *testing.T) {
		s := NewSolver(strip)
		b := bitboard.New(strip)

		got := s.Evaluate(b)
		got[1] = 0

		again := s.Evaluate(b)
		require.Equal(t, 1.0, again[1])
	})

	t.Run("shared table serves a second solver", func(t *testing.T) {
		table := NewTable()
		NewSolver(strip, WithTable(table)).Evaluate(bitboard.New(strip))

		got, ok := NewSolver(strip, WithTable(table)).Lookup(bitboard.New(strip))
		require.True(t, ok)
		require.InDeltaSlice(t, []float64{0.75, 1, 0.75}, []float64(got), 1e-12)
	})

	t.Run("lookup does not compute", func(t *testing.T) {
		s := NewSolver(strip)
		_, ok := s.Lookup(bitboard.New(strip))
		require.False(t, ok)
		require.Zero(t, s.Table().Len())
	})
}

func TestNewSolver(t *testing.T) {
	require.Panics(t, func() {
		NewSolver(game.Dimensions{Rows: 6, Cols: 8, WinLength: 4})
	})
}
