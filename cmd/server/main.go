// Package main implements the entry point for the event planner API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/eventplan-api/internal/config"
	"github.com/phrazzld/eventplan-api/internal/platform/logger"
	"github.com/phrazzld/eventplan-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command and exit ("+strings.Join(postgres.MigrationCommands, "|")+")")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		slog.Error("server exited with error", logger.Err(err))
		os.Exit(1)
	}
}

// run loads configuration, then either executes a migration command or
// serves HTTP until interrupted.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"allowed_origins", cfg.CORS.AllowedOrigins)

	if migrateCmd != "" {
		return runMigrationCommand(ctx, cfg, migrateCmd, log)
	}

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return err
	}
	return app.startHTTPServer(ctx, app.router())
}
