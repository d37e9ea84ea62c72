package metrics

import (
	"time"

	"connect/game"
)

// SearchMetric describes the work done to answer one column query.
type SearchMetric struct {
	Duration  time.Duration
	Evaluated int     // States computed rather than served from the table
	CacheHits int     // Recursive calls served from the table
	TableSize int     // Entries in the table after the query
	Score     float64 // Score of the chosen column
}

type MoveMetric struct {
	Step   int
	Player int // 1 or 2
	Column int
	SearchMetric
}

type GameMetric struct {
	State      game.State
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Winner names the outcome for records and logs.
func (g GameMetric) Winner() string {
	switch g.State {
	case game.PlayerOneWon:
		return "player1"
	case game.PlayerTwoWon:
		return "player2"
	case game.Tied:
		return "tie"
	default:
		return ""
	}
}

type Collector interface {
	Start()
	AddEvaluation()
	AddCacheHit()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	evaluated int
	cacheHits int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.evaluated = 0
	m.cacheHits = 0
}

func (m *collector) AddEvaluation() {
	m.evaluated++
}

func (m *collector) AddCacheHit() {
	m.cacheHits++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:  time.Since(m.startTime),
		Evaluated: m.evaluated,
		CacheHits: m.cacheHits,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                 {}
func (m *dummyCollector) AddEvaluation()         {}
func (m *dummyCollector) AddCacheHit()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
