package engine

import (
	"context"

	"dicegrid/experiments/metrics"
	"dicegrid/gamemaster"
)

type Engine interface {
	// Run plays rounds until the configured number is reached or the game master
	// refuses to start another, then scores the boards.
	Run(ctx context.Context) (gamemaster.Result, metrics.GameMetric, error)
}
