// Package httpapi exposes the auth core over HTTP: the login and me
// endpoints, the CORS policy for the browser SPA, and the session guard the
// rest of the admin API consumes.
package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"pos-admin/internal/logging"
	"pos-admin/internal/server/models"
)

// AuthService is the slice of the service layer the HTTP handlers need.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (*models.User, *models.Session, error)
	ValidateSession(ctx context.Context, token string) (*models.User, *models.Session, error)
}

type Server struct {
	address       string
	auth          AuthService
	logger        logging.Logger
	db            *sql.DB // health probe only
	cookieMaxAge  time.Duration
	secureCookies bool
}

func NewServer(address string, l logging.Logger, auth AuthService, db *sql.DB, cookieMaxAge time.Duration, secureCookies bool) *Server {
	return &Server{
		address:       address,
		auth:          auth,
		logger:        l.With("module", "http_server"),
		db:            db,
		cookieMaxAge:  cookieMaxAge,
		secureCookies: secureCookies,
	}
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
