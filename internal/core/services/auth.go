package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/astralstream/mediasearch/internal/core/domain"
	"github.com/astralstream/mediasearch/internal/core/ports/driven"
	"github.com/astralstream/mediasearch/internal/core/ports/driving"
)

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// authService implements the AuthService interface against a single
// admin credential; the surrounding product is a single-user player
type authService struct {
	sessionStore driven.SessionStore
	authAdapter  driven.AuthAdapter
	username     string
	passwordHash string
	tokenTTL     time.Duration
}

// NewAuthService creates a new AuthService. passwordHash must be a hash
// produced by the auth adapter.
func NewAuthService(
	sessionStore driven.SessionStore,
	authAdapter driven.AuthAdapter,
	username string,
	passwordHash string,
) driving.AuthService {
	return &authService{
		sessionStore: sessionStore,
		authAdapter:  authAdapter,
		username:     username,
		passwordHash: passwordHash,
		tokenTTL:     24 * time.Hour,
	}
}

// Authenticate validates credentials and creates a session
func (s *authService) Authenticate(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.Username != s.username || !s.authAdapter.VerifyPassword(req.Password, s.passwordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	sessionID := generateID()
	now := time.Now()
	claims := &domain.TokenClaims{
		Username:  s.username,
		SessionID: sessionID,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.tokenTTL).Unix(),
	}

	token, err := s.authAdapter.GenerateToken(claims)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:        sessionID,
		Username:  s.username,
		Token:     token,
		ExpiresAt: now.Add(s.tokenTTL),
		CreatedAt: now,
	}
	if err := s.sessionStore.Save(ctx, session); err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Username:  s.username,
	}, nil
}

// ValidateToken validates a JWT token and returns the auth context
func (s *authService) ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error) {
	if token == "" {
		return nil, domain.ErrTokenInvalid
	}

	claims, err := s.authAdapter.ParseToken(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	if time.Now().Unix() > claims.ExpiresAt {
		return nil, domain.ErrTokenExpired
	}

	session, err := s.sessionStore.GetByToken(ctx, token)
	if err == domain.ErrNotFound {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	if session.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	return &domain.AuthContext{
		Username:  claims.Username,
		SessionID: claims.SessionID,
	}, nil
}

// Logout invalidates a session
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionStore.DeleteByToken(ctx, token)
}

func generateID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
