package engine

import "deepsea/experiments/metrics"

type Engine interface {
	// Run plays the game until it is finished and returns each seat's final score
	Run() (scores []int, gameMetric metrics.GameMetric, err error)
}
