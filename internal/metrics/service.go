package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		EventsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "leaderboard_events_processed_total",
			Help: "The total number of match-created events processed successfully.",
		}),
		EventsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaderboard_events_failed_total",
			Help: "The total number of match-created events that failed processing.",
		}, []string{"reason"}),
		RecomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "leaderboard_recompute_duration_seconds",
			Help:    "The duration of a single leaderboard recomputation.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "leaderboard_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.EventsProcessed,
		s.EventsFailed,
		s.RecomputeDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncEventsProcessed() {
	s.EventsProcessed.Inc()
}

func (s *Service) IncEventsFailed(reason string) {
	s.EventsFailed.WithLabelValues(reason).Inc()
}

func (s *Service) ObserveRecomputeDuration(seconds float64) {
	s.RecomputeDuration.Observe(seconds)
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
