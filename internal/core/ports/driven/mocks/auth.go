package mocks

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/astralstream/mediasearch/internal/core/domain"
)

// MockAuthAdapter is a fake AuthAdapter for testing. Hashes are the
// password with a fixed prefix and tokens map back to stored claims.
type MockAuthAdapter struct {
	mu     sync.Mutex
	tokens map[string]*domain.TokenClaims
	serial int
}

// NewMockAuthAdapter creates a new MockAuthAdapter
func NewMockAuthAdapter() *MockAuthAdapter {
	return &MockAuthAdapter{tokens: make(map[string]*domain.TokenClaims)}
}

func (m *MockAuthAdapter) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *MockAuthAdapter) VerifyPassword(password, hash string) bool {
	return hash == "hashed:"+password
}

func (m *MockAuthAdapter) GenerateToken(claims *domain.TokenClaims) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.serial++
	token := fmt.Sprintf("token-%d-%s", m.serial, claims.SessionID)
	copied := *claims
	m.tokens[token] = &copied
	return token, nil
}

func (m *MockAuthAdapter) ParseToken(token string) (*domain.TokenClaims, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !strings.HasPrefix(token, "token-") {
		return nil, errors.New("malformed token")
	}
	claims, ok := m.tokens[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	copied := *claims
	return &copied, nil
}
