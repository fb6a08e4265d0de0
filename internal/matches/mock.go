package matches

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the Client interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetMatchesFunc func(ctx context.Context, venueName string) ([]Match, error)

	// Call records
	GetMatchesCalls []string
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// GetMatches records the call and executes the mock function if provided.
func (m *MockClient) GetMatches(ctx context.Context, venueName string) ([]Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetMatchesCalls = append(m.GetMatchesCalls, venueName)
	if m.GetMatchesFunc != nil {
		return m.GetMatchesFunc(ctx, venueName)
	}
	return nil, nil
}
