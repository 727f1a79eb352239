// Package main implements the entry point for the taskdesk server,
// a task-tracking HTTP API backed by a relational tasks table.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/mhalvorsen/taskdesk/internal/api"
	"github.com/mhalvorsen/taskdesk/internal/config"
	"github.com/mhalvorsen/taskdesk/internal/platform/logger"
	"github.com/mhalvorsen/taskdesk/internal/platform/postgres"
)

// main initializes configuration, logging, and the database pool, then
// serves the API until the process is signalled to stop.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run loads configuration and wires application components together.
// Startup fails fast so the process supervisor can tell the service never
// became healthy.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_host", cfg.Database.Host,
		"database_name", cfg.Database.Database)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("failed to close database pool", "error", closeErr)
		}
	}()

	taskStore := postgres.NewTaskStore(db, appLogger)
	router := api.NewRouter(taskStore, appLogger)

	return startHTTPServer(context.Background(), cfg.Server, router, appLogger)
}
