package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/mhalvorsen/taskdesk/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx database/sql driver
)

// setupDatabase establishes a pooled connection to the database.
// The pool replaces the per-request connect/teardown of earlier designs
// while keeping each operation on a single short-lived connection lease.
// Returns the pool if successful, or an error if the database is
// unreachable or rejects the configured credentials.
func setupDatabase(cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool with reasonable defaults
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established",
		"host", cfg.Database.Host,
		"database", cfg.Database.Database)
	return db, nil
}
