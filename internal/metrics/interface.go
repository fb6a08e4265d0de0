package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncEventsProcessed()
	IncEventsFailed(reason string)
	ObserveRecomputeDuration(seconds float64)
	SetStartupTime(seconds float64)
}
