// Package server wires the POS admin auth core together: database,
// migrations, repositories, services, and the HTTP API.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"pos-admin/internal/logging"
	"pos-admin/internal/server/config"
	"pos-admin/internal/server/httpapi"
	sessionsrepo "pos-admin/internal/server/repositories/sessions"
	usersrepo "pos-admin/internal/server/repositories/users"
	"pos-admin/internal/server/services"
	"pos-admin/migrations"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	userRepo := usersrepo.NewPostgresRepository(db)
	sessionRepo := sessionsrepo.NewPostgresRepository(db)

	// Explicit idempotent provisioning at startup; the write path still
	// re-provisions lazily if the relation is missing at first insert.
	if err := sessionRepo.EnsureSchema(context.Background()); err != nil {
		return nil, fmt.Errorf("session schema error: %w", err)
	}

	authService := services.NewAuthService(userRepo, sessionRepo, logger, cfg.SessionValidityDuration)

	httpServer := httpapi.NewServer(
		cfg.EndpointAddr, logger, authService, db,
		cfg.SessionValidityDuration, cfg.SecureCookies,
	)

	return &App{config: cfg, logger: logger, db: db, httpServer: httpServer}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	app.logger.Info(ctx, "App stopped")
}
