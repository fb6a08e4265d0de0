package metrics

import "sync"

// MockMetrics is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type MockMetrics struct {
	mu sync.Mutex

	// Call records
	EventsProcessed    int
	EventsFailed       map[string]int
	RecomputeDurations []float64
	StartupTimes       []float64
}

// NewMock creates a new mock instance.
func NewMock() *MockMetrics {
	return &MockMetrics{EventsFailed: make(map[string]int)}
}

func (m *MockMetrics) IncEventsProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EventsProcessed++
}

func (m *MockMetrics) IncEventsFailed(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EventsFailed[reason]++
}

func (m *MockMetrics) ObserveRecomputeDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecomputeDurations = append(m.RecomputeDurations, seconds)
}

func (m *MockMetrics) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimes = append(m.StartupTimes, seconds)
}
