package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/eventplan-api/internal/api"
	"github.com/phrazzld/eventplan-api/internal/config"
	"github.com/phrazzld/eventplan-api/internal/platform/logger"
	"github.com/phrazzld/eventplan-api/internal/platform/postgres"
	"github.com/phrazzld/eventplan-api/internal/service"
	"github.com/phrazzld/eventplan-api/internal/service/auth"
)

const startupPingTimeout = 5 * time.Second

// application holds the shared dependencies of the server process.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userService  service.UserService
	eventService service.EventService
}

// newApplication wires stores and services on a single connection pool.
//
// An unreachable database or a failed migration is logged and startup
// continues: static routes stay available and store-backed routes answer
// 500 until the database comes back. Only a failure to create the pool is
// fatal.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := postgres.Open(cfg.Database)
	if err != nil {
		return nil, err
	}

	app := &application{
		config: cfg,
		logger: log,
		db:     db,
	}

	if err := postgres.Ping(ctx, db, startupPingTimeout); err != nil {
		log.Error("database unreachable at startup, continuing without it", logger.Err(err))
	} else if err := postgres.Migrate(ctx, db, "up", log); err != nil {
		log.Error("database migration failed at startup, continuing", logger.Err(err))
	} else {
		log.Info("database ready")
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.userService = service.NewUserService(postgres.NewPostgresUserStore(db, log), hasher, log)
	app.eventService = service.NewEventService(postgres.NewPostgresEventStore(db, log), log)

	return app, nil
}

func (app *application) router() http.Handler {
	return api.NewRouter(api.RouterConfig{
		Users:              app.userService,
		Events:             app.eventService,
		DB:                 app.db,
		AllowedOrigins:     app.config.CORS.AllowedOrigins,
		ExposeErrorDetails: app.config.Server.ExposeErrorDetails,
		Logger:             app.logger,
	})
}

// cleanup releases the database pool.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", logger.Err(err))
	}
}
