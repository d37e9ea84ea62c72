package experiments

import (
	"time"

	"connect/experiments/metrics"
	"connect/game"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the outcome of an experiment.
type Summary struct {
	Games   int
	Aborted int
	Ties    int
	Wins    map[int]int // AgentConfig.ID to games won
	Dir     string      // Where the records were written

	MeanMoveDuration time.Duration
	StdMoveDuration  time.Duration
	MeanMoves        float64
}

func summarize(configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) Summary {
	s := Summary{
		Games: len(games),
		Wins:  lo.SliceToMap(configs, func(c metrics.AgentConfig) (int, int) { return c.ID, 0 }),
	}

	for _, g := range games {
		switch g.State {
		case game.PlayerOneWon:
			s.Wins[g.Player1]++
		case game.PlayerTwoWon:
			s.Wins[g.Player2]++
		case game.Tied:
			s.Ties++
		}
	}

	if len(games) > 0 {
		s.MeanMoves = stat.Mean(lo.Map(games, func(g metrics.GameRecord, _ int) float64 {
			return float64(g.TotalMoves)
		}), nil)
	}

	if len(moves) > 1 {
		durations := lo.Map(moves, func(m metrics.MoveRecord, _ int) float64 {
			return float64(m.Duration)
		})
		mean, std := stat.MeanStdDev(durations, nil)
		s.MeanMoveDuration = time.Duration(mean)
		s.StdMoveDuration = time.Duration(std)
	} else if len(moves) == 1 {
		s.MeanMoveDuration = moves[0].Duration
	}

	return s
}

func (s Summary) Log() {
	log.Info().
		Int("games", s.Games).
		Int("aborted", s.Aborted).
		Int("ties", s.Ties).
		Interface("wins", s.Wins).
		Float64("mean_moves", s.MeanMoves).
		Dur("mean_move_duration", s.MeanMoveDuration).
		Dur("std_move_duration", s.StdMoveDuration).
		Str("dir", s.Dir).
		Msg("experiment summary")
}
