// Package sessions implements the session store of the auth core, including
// defensive provisioning of its own schema: the sessions relation may not
// exist when the first login arrives, and the write path must survive that.
package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"pos-admin/internal/common"
	"pos-admin/internal/dbx"
	"pos-admin/internal/server/models"
)

// undefinedTableCode is SQLSTATE 42P01, raised when the sessions relation
// has not been provisioned yet. Only this condition triggers the single
// provision-and-retry cycle; everything else fails straight away.
const undefinedTableCode = "42P01"

type PostgresRepository struct {
	db dbx.DBTX

	// schemaReady skips redundant DDL round trips within one process. It is
	// a latency optimization only: other processes provision independently,
	// so every DDL statement below must stay idempotent on its own.
	schemaReady atomic.Bool
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const insertSession = `INSERT INTO sessions (id, user_id, expires_at)
		 VALUES ($1, $2, $3)`

// Create persists a new session row. If the insert fails because the
// relation is missing, the schema is provisioned and the insert retried
// exactly once; a second failure is returned as-is.
func (r *PostgresRepository) Create(ctx context.Context, s *models.Session) error {
	_, err := r.db.ExecContext(ctx, insertSession, s.ID, s.UserID, s.ExpiresAt)
	if err == nil {
		return nil
	}
	if !isUndefinedTable(err) {
		return fmt.Errorf("db error: %w", err)
	}

	// 42P01 proves the relation is missing right now, no matter what this
	// process provisioned earlier. The flag is stale; drop it so the DDL
	// actually runs again.
	r.schemaReady.Store(false)
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, insertSession, s.ID, s.UserID, s.ExpiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// FindValid looks up the session joined to its user. Expiry and the user's
// active flag are checked against the store on every call, never cached, so
// deactivating a user kills all of their sessions immediately.
func (r *PostgresRepository) FindValid(ctx context.Context, sessionID string, now time.Time) (*models.Session, *models.User, error) {
	query := `SELECT s.id, s.user_id, s.expires_at,
		   u.id, u.email, u.username, u.role, u.branch_id, u.full_name
		 FROM sessions s
		 JOIN users u ON u.id = s.user_id
		 WHERE s.id = $1 AND s.expires_at > $2 AND COALESCE(u.active, TRUE)`

	session := &models.Session{}
	user := &models.User{Active: true}
	var role sql.NullString

	err := r.db.QueryRowContext(ctx, query, sessionID, now).Scan(
		&session.ID, &session.UserID, &session.ExpiresAt,
		&user.ID, &user.Email, &user.Username, &role, &user.BranchID, &user.FullName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, common.ErrNotFound
		}
		return nil, nil, fmt.Errorf("db error: %w", err)
	}

	user.Role = models.Role(role.String)
	return session, user, nil
}

// EnsureSchema provisions the sessions relation plus its two lookup indexes
// (by user, by expiry) with create-if-not-exists semantics, so concurrent
// callers never conflict.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if r.schemaReady.Load() {
		return nil
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions (expires_at)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}

	r.schemaReady.Store(true)
	return nil
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode
}
