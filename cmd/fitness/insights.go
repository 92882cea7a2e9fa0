package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mohamadkhanafer/fitnessapp/internal/config"
	"github.com/mohamadkhanafer/fitnessapp/internal/health"
	"github.com/mohamadkhanafer/fitnessapp/internal/insights"
	"github.com/mohamadkhanafer/fitnessapp/internal/xsync"
)

// staleAfter is how old stored history may be before the insights
// command refreshes it from the bridge.
const staleAfter = 6 * time.Hour

func insightsCmd() *cobra.Command {
	var (
		days      int
		threshold int
	)

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Generate insight cards from locally stored records",
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

			var service *xsync.Service
			if cfg.Bridge.BaseURL != "" {
				bridgeClient, err := newBridgeClient(cfg, logger)
				if err != nil {
					return err
				}
				service = xsync.NewService(bridgeClient, repo, logger)
				if err := service.EnsureFresh(ctx, days, staleAfter); err != nil {
					return fmt.Errorf("refresh failed: %w", err)
				}
			} else {
				service = xsync.NewService(nil, repo, logger)
			}

			records, err := service.Window(ctx, days)
			if err != nil {
				return fmt.Errorf("failed to load records: %w", err)
			}

			snap := insights.Compute(records, threshold)
			if snap == nil {
				fmt.Println("No records stored yet. Run `fitness sync` first.")
				return nil
			}

			printSnapshot(snap)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", insights.DefaultWindowDays, "number of trailing days to evaluate")
	cmd.Flags().IntVar(&threshold, "threshold", insights.DefaultBaselineThreshold,
		"minimum days with readings before a baseline forms")
	return cmd
}

func printSnapshot(snap *insights.Snapshot) {
	fmt.Printf("Insights for %s\n\n", snap.Day)

	if len(snap.Cards) == 0 {
		fmt.Println("Nothing noteworthy today.")
		return
	}

	for _, card := range snap.Cards {
		fmt.Printf("%s [%s]\n", card.Title, card.Confidence)
		fmt.Printf("  %s\n\n", card.Explanation)
	}

	for _, metric := range health.Metrics {
		delta := snap.Deltas.Value(metric)
		if delta == nil {
			continue
		}
		fmt.Printf("%s: %+.1f vs baseline\n", metric.DisplayName(), *delta)
	}
}
