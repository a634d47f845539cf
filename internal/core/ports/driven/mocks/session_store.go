package mocks

import (
	"context"
	"sync"

	"github.com/astralstream/mediasearch/internal/core/domain"
)

// MockSessionStore is an in-memory SessionStore for testing
type MockSessionStore struct {
	mu       sync.Mutex
	byToken  map[string]*domain.Session
}

// NewMockSessionStore creates a new MockSessionStore
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{byToken: make(map[string]*domain.Session)}
}

func (m *MockSessionStore) Save(ctx context.Context, session *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byToken[session.Token] = session
	return nil
}

func (m *MockSessionStore) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.byToken[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

func (m *MockSessionStore) DeleteByToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byToken, token)
	return nil
}
