package driving

import (
	"context"

	"github.com/astralstream/mediasearch/internal/core/domain"
)

// AuthService handles authentication for the HTTP surface
type AuthService interface {
	// Authenticate validates credentials and creates a session
	Authenticate(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)

	// ValidateToken validates a JWT token and returns the auth context
	ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error)

	// Logout invalidates a session
	Logout(ctx context.Context, token string) error
}
