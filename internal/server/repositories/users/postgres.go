// Package users implements the read side of the users relation for the auth
// core. Users are written by the out-of-scope user-management endpoints; this
// package only looks them up during login.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pos-admin/internal/common"
	"pos-admin/internal/dbx"
	"pos-admin/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// COALESCE(active, TRUE): a user row without an active value counts as
// active. LIMIT 1: uniqueness is the store's job; if it ever returns several
// matches the first one wins.
const selectUser = `SELECT id, email, username, password_hash, salt, role, branch_id, full_name, COALESCE(active, TRUE)
		 FROM users`

// FindActiveByEmail looks up an active user by e-mail, case-insensitively.
func (r *PostgresRepository) FindActiveByEmail(ctx context.Context, email string) (*models.User, error) {
	query := selectUser + `
		 WHERE LOWER(email) = $1 AND COALESCE(active, TRUE)
		 LIMIT 1`

	return r.findOne(ctx, query, strings.ToLower(email))
}

// FindActiveByUsername looks up an active user by username, case-insensitively.
func (r *PostgresRepository) FindActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	query := selectUser + `
		 WHERE LOWER(username) = LOWER($1) AND COALESCE(active, TRUE)
		 LIMIT 1`

	return r.findOne(ctx, query, username)
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	var role sql.NullString

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash,
		&user.Salt, &role, &user.BranchID, &user.FullName, &user.Active,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.Role = models.Role(role.String)
	return user, nil
}
