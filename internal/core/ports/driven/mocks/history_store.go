package mocks

import (
	"context"
	"errors"
	"sync"
)

// MockHistoryStore is an in-memory HistoryStore for testing
type MockHistoryStore struct {
	mu        sync.Mutex
	entries   []string
	saveCalls int
	failNext  bool
}

// NewMockHistoryStore creates a new MockHistoryStore
func NewMockHistoryStore(entries ...string) *MockHistoryStore {
	return &MockHistoryStore{entries: entries}
}

// SetFailNext makes the next call fail
func (m *MockHistoryStore) SetFailNext(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = fail
}

// SaveCalls reports how many times Save has been invoked
func (m *MockHistoryStore) SaveCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCalls
}

func (m *MockHistoryStore) Load(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext {
		m.failNext = false
		return nil, errors.New("mock history failure")
	}

	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *MockHistoryStore) Save(ctx context.Context, entries []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext {
		m.failNext = false
		return errors.New("mock history failure")
	}

	m.entries = make([]string, len(entries))
	copy(m.entries, entries)
	m.saveCalls++
	return nil
}
