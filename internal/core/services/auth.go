package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"tradechat/internal/core/contracts"
	"tradechat/internal/core/domain"
	"tradechat/pkg/logging"
)

// AuthService resolves a bearer token to a marketplace user. It never
// touches connection state.
type AuthService struct {
	log      *slog.Logger
	verifier contracts.TokenVerifier
	users    domain.UserRepository
}

func NewAuthService(
	log *slog.Logger,
	verifier contracts.TokenVerifier,
	users domain.UserRepository,
) *AuthService {
	return &AuthService{
		log:      log,
		verifier: verifier,
		users:    users,
	}
}

// Authenticate returns domain.ErrInvalidToken or domain.ErrUnknownUser on failure.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}
	claims, err := s.verifier.VerifyToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "auth - authenticate - token rejected", logging.Err(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	user, err := s.users.GetUserByEmail(ctx, claims.Email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.log.ErrorContext(ctx, "auth - authenticate - user lookup failed", "email", claims.Email, logging.Err(err))
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUnknownUser, err)
	}
	if user == nil {
		return nil, domain.ErrUnknownUser
	}
	return user, nil
}
