package http

import (
	"net/http"

	"github.com/courtside/leaderboard-service/internal/config"
	"github.com/courtside/leaderboard-service/internal/consumer"
	"github.com/courtside/leaderboard-service/internal/metrics"
	"github.com/courtside/leaderboard-service/internal/pubsub"
)

type Server struct {
	Processor      *consumer.Processor
	Publisher      pubsub.Publisher
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
