package searcher

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Unset marks a column that is full or was not evaluated.
const Unset = -1.0

const (
	Win  = 1.0
	Tie  = 0.5
	Loss = 1 - Win
)

// Scores holds one value per column: the estimated chance that the player to
// move does not lose after dropping a token there, or Unset.
type Scores []float64

func newScores(cols int) Scores {
	s := make(Scores, cols)
	for i := range s {
		s[i] = Unset
	}
	return s
}

// Best returns the column with the highest score, preferring the lowest
// column on ties. ok is false when every column is Unset.
func (s Scores) Best() (col int, score float64, ok bool) {
	col, score = -1, Unset
	for i, v := range s {
		if v > score {
			col, score = i, v
		}
	}
	return col, score, col >= 0
}

// Set returns the scores that are not Unset.
func (s Scores) Set() []float64 {
	return lo.Filter(s, func(v float64, _ int) bool {
		return v != Unset
	})
}

func (s Scores) Clone() Scores {
	c := make(Scores, len(s))
	copy(c, s)
	return c
}

func (s Scores) String() string {
	return strings.Join(lo.Map(s, func(v float64, _ int) string {
		return fmt.Sprintf("%.2f", v)
	}), ",")
}

// averageReply scores a move from the opponent's scores for the position it
// leads to. The opponent is assumed to pick any of its moves with equal
// probability, so the result is the mean of the complements.
func averageReply(replies Scores) float64 {
	set := replies.Set()
	if len(set) == 0 {
		panic("opponent has no moves in a live position")
	}
	return lo.SumBy(set, func(v float64) float64 { return Win - v }) / float64(len(set))
}
