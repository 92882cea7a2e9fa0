package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mohamadkhanafer/fitnessapp/internal/config"
	"github.com/mohamadkhanafer/fitnessapp/internal/insights"
	"github.com/mohamadkhanafer/fitnessapp/internal/xsync"
)

func syncCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull daily summaries from the HealthKit bridge",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

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

			service := xsync.NewService(bridgeClient, repo, logger)
			if err := service.Sync(ctx, days); err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}

			fmt.Printf("Synced the last %d days.\n", days)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", insights.DefaultWindowDays, "number of trailing days to sync")
	return cmd
}
