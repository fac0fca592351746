// Package services contains server-side business logic: authentication
// (credential verification and token minting) and inventory operations.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/akarpenko/warehouse-api/internal/logging"
	"github.com/akarpenko/warehouse-api/internal/server/auth"
	"github.com/akarpenko/warehouse-api/internal/server/models"
	"github.com/akarpenko/warehouse-api/internal/server/repositories/users"
)

var (
	// ErrInvalidCredentials covers every expected login failure: unknown
	// email, wrong password, and backing-store faults. The cases are
	// deliberately indistinguishable so responses cannot be used to probe
	// which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned by GetProfile for an unknown subject id.
	ErrUserNotFound = errors.New("user not found")
)

// LoginResult is returned on successful authentication. User never carries
// the password hash.
type LoginResult struct {
	Token     string
	User      *models.Profile
	ExpiresAt time.Time
}

// AuthService verifies credentials against the credential store and mints
// signed tokens. It holds no mutable state and is safe for concurrent use.
type AuthService struct {
	users  users.Repository
	codec  *auth.Codec
	logger logging.Logger
}

func NewAuthService(repo users.Repository, codec *auth.Codec, logger logging.Logger) *AuthService {
	return &AuthService{
		users:  repo,
		codec:  codec,
		logger: logger.With("module", "auth_service"),
	}
}

// Login verifies email/password and on success returns a token whose claims
// snapshot the user's current roles, plus the user profile and the token's
// expiry. All failure paths return ErrInvalidCredentials; a store fault is
// additionally logged but never surfaced in the result.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			s.logger.Warn(ctx, "login attempt with unknown email", "email", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error(ctx, "credential store fault during login", "error", err)
		return nil, ErrInvalidCredentials
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.logger.Warn(ctx, "invalid password attempt", "email", email)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.codec.Encode(user)
	if err != nil {
		s.logger.Error(ctx, "token encode failed", "error", err)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info(ctx, "user logged in", "email", user.Email)

	return &LoginResult{
		Token:     token,
		User:      user.Profile(),
		ExpiresAt: expiresAt,
	}, nil
}

// GetProfile resolves a validated subject id to the user-facing profile.
// This path is only reached after the boundary layer has validated a token,
// so no password handling is involved.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error(ctx, "credential store fault during profile lookup", "error", err)
		return nil, ErrUserNotFound
	}

	return user.Profile(), nil
}
