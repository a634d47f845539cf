package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/astralstream/mediasearch/internal/core/domain"
)

// MockSettingsStore is an in-memory SettingsStore for testing
type MockSettingsStore struct {
	mu       sync.Mutex
	filters  *domain.SearchFilters
	failNext bool
}

// NewMockSettingsStore creates a new MockSettingsStore
func NewMockSettingsStore() *MockSettingsStore {
	return &MockSettingsStore{}
}

// SetFailNext makes the next call fail
func (m *MockSettingsStore) SetFailNext(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = fail
}

func (m *MockSettingsStore) GetFilters(ctx context.Context) (*domain.SearchFilters, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext {
		m.failNext = false
		return nil, errors.New("mock settings failure")
	}

	if m.filters == nil {
		return domain.DefaultFilters(), nil
	}
	copied := *m.filters
	return &copied, nil
}

func (m *MockSettingsStore) SaveFilters(ctx context.Context, filters *domain.SearchFilters) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext {
		m.failNext = false
		return errors.New("mock settings failure")
	}

	copied := *filters
	m.filters = &copied
	return nil
}
