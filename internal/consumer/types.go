package consumer

import (
	"github.com/courtside/leaderboard-service/internal/leaderboard"
	"github.com/courtside/leaderboard-service/internal/matches"
	"github.com/courtside/leaderboard-service/internal/metrics"
)

// Processor handles match-created notifications by recomputing and storing the
// venue's leaderboard. It holds no per-message state; the delivery runtime may
// run any number of Handle calls concurrently.
type Processor struct {
	matches matches.Client
	builder *leaderboard.Builder
	store   leaderboard.Store
	metrics metrics.Metrics
}
