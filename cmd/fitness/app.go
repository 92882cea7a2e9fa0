package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"

	"github.com/mohamadkhanafer/fitnessapp/internal/client/healthkit"
	"github.com/mohamadkhanafer/fitnessapp/internal/config"
	"github.com/mohamadkhanafer/fitnessapp/internal/migrations"
	"github.com/mohamadkhanafer/fitnessapp/internal/paths"
	"github.com/mohamadkhanafer/fitnessapp/internal/repository"
	"github.com/mohamadkhanafer/fitnessapp/internal/storage"
)

// openRepository opens the configured database, applies pending
// migrations, and wraps it in the repository layer. The caller owns the
// returned *sql.DB.
func openRepository(ctx context.Context, cfg config.Config) (*sql.DB, *repository.Repository, error) {
	dsn := cfg.Database.DSN
	if dsn == "" && cfg.Database.Driver == "sqlite" {
		if _, err := paths.EnsureDir(); err != nil {
			return nil, nil, err
		}
		path, err := paths.DB()
		if err != nil {
			return nil, nil, err
		}
		dsn = path
	}

	db, dialect, err := storage.Open(ctx, storage.Config{
		Driver: cfg.Database.Driver,
		DSN:    dsn,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrations.Apply(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return db, repository.New(db, dialect), nil
}

func newBridgeClient(cfg config.Config, logger *slog.Logger) (*healthkit.Client, error) {
	if cfg.Bridge.BaseURL == "" {
		return nil, fmt.Errorf("BRIDGE_BASE_URL is not set")
	}
	if cfg.Bridge.Token == "" {
		return nil, fmt.Errorf("BRIDGE_TOKEN is not set")
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Bridge.Token})
	return healthkit.New(cfg.Bridge.BaseURL, tokenSource,
		healthkit.WithLogger(logger),
		healthkit.WithTimeout(cfg.Bridge.Timeout),
	), nil
}
