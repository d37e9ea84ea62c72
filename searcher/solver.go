package searcher

import (
	"connect/bitboard"
	"connect/experiments/metrics"
	"connect/game"
)

type Option func(s *Solver)

// WithTable shares an existing table instead of starting from an empty one.
func WithTable(table *Table) Option {
	return func(s *Solver) {
		if table != nil {
			s.table = table
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Solver) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

// Solver scores every column of a position by exhausting the game tree below
// it. Opponent replies are averaged, not minimized over.
type Solver struct {
	dims    game.Dimensions
	table   *Table
	metrics metrics.Collector
}

// NewSolver panics if boards of the given dimensions cannot be packed.
func NewSolver(dims game.Dimensions, options ...Option) *Solver {
	if err := bitboard.CheckDimensions(dims); err != nil {
		panic(err)
	}
	s := &Solver{ // Default values
		dims:    dims,
		table:   NewTable(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Solver) Table() *Table {
	return s.table
}

// Lookup returns the stored scores of a position without computing anything.
func (s *Solver) Lookup(b *bitboard.Board) (Scores, bool) {
	scores, ok := s.table.Get(b.Key())
	if !ok {
		return nil, false
	}
	return scores.Clone(), true
}

// Evaluate returns the scores of b for the player to move. The board must
// not be terminal. It is mutated during the search and restored on return.
func (s *Solver) Evaluate(b *bitboard.Board) Scores {
	return s.evaluate(b).Clone()
}

func (s *Solver) evaluate(b *bitboard.Board) Scores {
	key := b.Key()
	if scores, ok := s.table.Get(key); ok {
		s.metrics.AddCacheHit()
		return scores
	}
	scores := s.compute(b)
	s.table.Put(key, scores)
	s.metrics.AddEvaluation()
	return scores
}

func (s *Solver) compute(b *bitboard.Board) Scores {
	scores := newScores(s.dims.Cols)

	// The first column that wins on the spot takes the whole vector; other
	// columns stay Unset even if they would win too. Ties are only noted.
	for col := 0; col < s.dims.Cols; col++ {
		if b.Full(col) {
			continue
		}
		switch s.probe(b, col) {
		case bitboard.MoverWon:
			scores[col] = Win
			return scores
		case bitboard.Tied:
			scores[col] = Tie
		}
	}

	for col := 0; col < s.dims.Cols; col++ {
		if b.Full(col) || scores[col] != Unset {
			continue
		}
		scores[col] = averageReply(s.reply(b, col))
	}
	return scores
}

// probe reports the status after the player to move drops into col.
func (s *Solver) probe(b *bitboard.Board, col int) bitboard.Status {
	undo := b.Play(col)
	defer undo()
	return b.Status(col)
}

// reply returns the opponent's scores after the player to move drops into col.
func (s *Solver) reply(b *bitboard.Board, col int) Scores {
	undo := b.Play(col)
	defer undo()
	b.Flip()
	defer b.Flip()
	return s.evaluate(b)
}
