package main

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/phrazzld/eventplan-api/internal/config"
	"github.com/phrazzld/eventplan-api/internal/platform/logger"
	"github.com/phrazzld/eventplan-api/internal/platform/postgres"
)

// runMigrationCommand opens the database and runs a single goose command.
// Unlike server startup, any failure here is returned to the caller.
func runMigrationCommand(ctx context.Context, cfg *config.Config, command string, log *slog.Logger) error {
	if !slices.Contains(postgres.MigrationCommands, command) {
		return fmt.Errorf("unsupported migration command %q", command)
	}

	log = log.With("component", "migrations", "command", command)
	started := time.Now()

	db, err := postgres.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database connection", logger.Err(err))
		}
	}()

	if err := postgres.Ping(ctx, db, 5*time.Second); err != nil {
		return err
	}

	if err := postgres.Migrate(ctx, db, command, log); err != nil {
		return err
	}

	log.Info("migration command completed", "duration_ms", time.Since(started).Milliseconds())
	return nil
}
