package users

import (
	"context"

	"pos-admin/internal/server/models"
)

// Repository resolves login identifiers to active user rows.
type Repository interface {
	FindActiveByEmail(ctx context.Context, email string) (*models.User, error)
	FindActiveByUsername(ctx context.Context, username string) (*models.User, error)
}
