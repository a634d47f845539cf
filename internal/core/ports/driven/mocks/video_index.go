package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/astralstream/mediasearch/internal/core/domain"
)

// MockVideoIndex is an in-memory VideoIndex for testing
type MockVideoIndex struct {
	mu       sync.RWMutex
	order    []string
	records  map[string]*domain.VideoRecord
	failNext bool
}

// NewMockVideoIndex creates a new MockVideoIndex
func NewMockVideoIndex() *MockVideoIndex {
	return &MockVideoIndex{records: make(map[string]*domain.VideoRecord)}
}

// SetFailNext makes the next call fail
func (m *MockVideoIndex) SetFailNext(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = fail
}

func (m *MockVideoIndex) takeFailure() error {
	if m.failNext {
		m.failNext = false
		return errors.New("mock index failure")
	}
	return nil
}

func (m *MockVideoIndex) List(ctx context.Context) ([]*domain.VideoRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return nil, err
	}

	out := make([]*domain.VideoRecord, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.records[id])
	}
	return out, nil
}

func (m *MockVideoIndex) Get(ctx context.Context, id string) (*domain.VideoRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return nil, err
	}

	record, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (m *MockVideoIndex) Upsert(ctx context.Context, records []*domain.VideoRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}

	for _, record := range records {
		if _, exists := m.records[record.ID]; !exists {
			m.order = append(m.order, record.ID)
		}
		m.records[record.ID] = record
	}
	return nil
}

func (m *MockVideoIndex) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeFailure(); err != nil {
		return err
	}

	if _, ok := m.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.records, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
