package http

import (
	"net/http"

	"github.com/courtside/leaderboard-service/internal/config"
	"github.com/courtside/leaderboard-service/internal/consumer"
	"github.com/courtside/leaderboard-service/internal/metrics"
	"github.com/courtside/leaderboard-service/internal/pubsub"
)

func NewServer(processor *consumer.Processor, publisher pubsub.Publisher, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Processor:      processor,
		Publisher:      publisher,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	// Pub/Sub push subscription endpoint: a 2xx response acks the message,
	// anything else makes it eligible for redelivery.
	s.Router.Handle("/pubsub/match-created", Chain(s.MatchCreatedPushHandler(), paramsMiddleware))
	// Operational trigger for publishing a synthetic event through the real
	// publish path.
	s.Router.Handle("/publish/match-created", Chain(s.PublishMatchCreatedHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
