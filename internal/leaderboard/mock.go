package leaderboard

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertFunc func(ctx context.Context, doc *Document) error
	GetFunc    func(ctx context.Context, venueName string) (*Document, error)

	// Call records
	UpsertCalls []*Document
	GetCalls    []string
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Upsert records the call and executes the mock function if provided.
func (m *MockStore) Upsert(ctx context.Context, doc *Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertCalls = append(m.UpsertCalls, doc)
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, doc)
	}
	return nil
}

// Get records the call and executes the mock function if provided.
func (m *MockStore) Get(ctx context.Context, venueName string) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, venueName)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, venueName)
	}
	return nil, nil
}
