package driven

import (
	"context"

	"github.com/astralstream/mediasearch/internal/core/domain"
)

// SessionStore persists authenticated sessions
type SessionStore interface {
	// Save stores a session until it expires
	Save(ctx context.Context, session *domain.Session) error

	// GetByToken retrieves a session by token value
	GetByToken(ctx context.Context, token string) (*domain.Session, error)

	// DeleteByToken deletes a session by token value
	DeleteByToken(ctx context.Context, token string) error
}
