// Package services contains the server-side business logic of the auth core:
// identifier resolution, credential verification, session issuance, and
// session validation.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pos-admin/internal/common"
	"pos-admin/internal/logging"
	"pos-admin/internal/server/auth"
	"pos-admin/internal/server/models"
	sessionsrepo "pos-admin/internal/server/repositories/sessions"
	usersrepo "pos-admin/internal/server/repositories/users"
)

// AuthService verifies credentials, issues sessions, and re-identifies users
// from session tokens.
type AuthService struct {
	users           usersrepo.Repository
	sessions        sessionsrepo.Repository
	logger          logging.Logger
	sessionValidity time.Duration
	now             func() time.Time
}

// NewAuthService constructs an AuthService. sessionValidity is the lifetime
// of newly issued sessions.
func NewAuthService(u usersrepo.Repository, s sessionsrepo.Repository, l logging.Logger, sessionValidity time.Duration) *AuthService {
	return &AuthService{
		users:           u,
		sessions:        s,
		logger:          l.With("module", "auth_service"),
		sessionValidity: sessionValidity,
		now:             time.Now,
	}
}

// Login resolves the identifier, verifies the password, and creates a new
// session. Every authentication failure collapses into ErrUnauthorized so
// the caller cannot tell an unknown account from a wrong password.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*models.User, *models.Session, error) {
	identifier = strings.TrimSpace(identifier)
	password = strings.TrimSpace(password)
	if identifier == "" || password == "" {
		return nil, nil, fmt.Errorf("%w: identifier and password required", common.ErrValidation)
	}

	user, err := s.resolveUser(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, common.ErrUnauthorized
		}
		s.logger.Error(ctx, "user lookup failed", "error", err.Error())
		return nil, nil, common.ErrInternal
	}

	if !user.CanAuthenticate() {
		return nil, nil, common.ErrUnauthorized
	}
	if !auth.VerifyPassword(password, *user.Salt, *user.PasswordHash) {
		return nil, nil, common.ErrUnauthorized
	}

	session := &models.Session{
		ID:        auth.NewSessionToken(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.sessionValidity),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Error(ctx, "session create failed", "error", err.Error())
		return nil, nil, common.ErrInternal
	}

	return user, session, nil
}

// resolveUser routes identifiers containing '@' to the e-mail lookup and
// everything else to the username lookup.
func (s *AuthService) resolveUser(ctx context.Context, identifier string) (*models.User, error) {
	if strings.Contains(identifier, "@") {
		return s.users.FindActiveByEmail(ctx, strings.ToLower(identifier))
	}
	return s.users.FindActiveByUsername(ctx, identifier)
}

// ValidateSession re-identifies the user behind a session token. A missing,
// expired, or deactivated session yields ErrUnauthorized; that is an
// expected negative result, not a store failure.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*models.User, *models.Session, error) {
	if token == "" {
		return nil, nil, common.ErrUnauthorized
	}

	session, user, err := s.sessions.FindValid(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, common.ErrUnauthorized
		}
		s.logger.Error(ctx, "session lookup failed", "error", err.Error())
		return nil, nil, common.ErrInternal
	}

	return user, session, nil
}
