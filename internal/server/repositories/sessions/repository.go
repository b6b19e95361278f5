package sessions

import (
	"context"
	"time"

	"pos-admin/internal/server/models"
)

// Repository persists and validates browser sessions.
type Repository interface {
	// Create inserts a new session row, provisioning the sessions relation
	// on demand if it does not exist yet.
	Create(ctx context.Context, s *models.Session) error

	// FindValid returns the session and its user when the session expires
	// after now and the user is still active; otherwise common.ErrNotFound.
	FindValid(ctx context.Context, sessionID string, now time.Time) (*models.Session, *models.User, error)

	// EnsureSchema idempotently provisions the sessions relation and its
	// indexes. Safe to call concurrently and repeatedly.
	EnsureSchema(ctx context.Context) error
}
