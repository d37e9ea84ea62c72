package engine

import "connect/experiments/metrics"

type Engine interface {
	// Run plays a game till it is won or tied
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
