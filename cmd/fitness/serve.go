package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mohamadkhanafer/fitnessapp/internal/config"
	xredis "github.com/mohamadkhanafer/fitnessapp/internal/redis"
	"github.com/mohamadkhanafer/fitnessapp/internal/server"
	"github.com/mohamadkhanafer/fitnessapp/internal/storage"
	"github.com/mohamadkhanafer/fitnessapp/internal/xslog"
	"github.com/mohamadkhanafer/fitnessapp/internal/xsync"
)

const (
	snapshotTTL     = 15 * time.Minute
	shutdownTimeout = 30 * time.Second
)

// newLogger writes human-readable logs during local development and
// JSON everywhere else.
func newLogger(cfg config.Config) *slog.Logger {
	if cfg.Env.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: xslog.FromEnv().ToSlog(),
		}))
	}
	return xslog.NewLoggerFromEnv(os.Stdout)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, repo, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	bridgeClient, err := newBridgeClient(cfg, logger)
	if err != nil {
		return err
	}
	syncService := xsync.NewService(bridgeClient, repo, logger)

	opts := []server.Option{
		server.WithWindowDays(cfg.WindowDays),
		server.WithBaselineThreshold(cfg.BaselineThreshold),
	}
	if cfg.Redis.URL != "" {
		redisClient, err := xredis.New(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("failed to initialize redis client: %w", err)
		}
		logger.InfoContext(ctx, "snapshot cache enabled")
		opts = append(opts, server.WithSnapshotCache(
			storage.NewSnapshotCache(redisClient, snapshotTTL)))
	}

	srv := server.New(repo, syncService, logger, opts...)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "starting server",
			xslog.Version(),
			slog.String("port", cfg.Port),
			slog.String("env", cfg.Env.String()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.InfoContext(ctx, "shutdown signal received, shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.InfoContext(ctx, "server stopped")
	return nil
}
