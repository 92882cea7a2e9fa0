// Package xsync pulls daily summaries from the HealthKit bridge into
// local storage and materializes trailing windows of daily records for
// the insight pipeline.
package xsync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mohamadkhanafer/fitnessapp/internal/client/healthkit"
	"github.com/mohamadkhanafer/fitnessapp/internal/health"
	"github.com/mohamadkhanafer/fitnessapp/internal/insights"
	"github.com/mohamadkhanafer/fitnessapp/internal/repository"
	"github.com/mohamadkhanafer/fitnessapp/internal/xslog"
)

const fetchPageSize = 25

type Service struct {
	client *healthkit.Client
	repo   *repository.Repository
	logger *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

func NewService(client *healthkit.Client, repo *repository.Repository, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Sync fetches the trailing window of daily summaries from the bridge,
// one resource per goroutine, merges them into per-day records, and
// upserts the batch. The last-sync timestamp advances only on success.
func (s *Service) Sync(ctx context.Context, days int) error {
	end := s.now()
	start := end.AddDate(0, 0, -(days - 1))

	var (
		sleeps     []healthkit.SleepSummary
		hearts     []healthkit.HeartSummary
		activities []healthkit.ActivitySummary
		workouts   []healthkit.Workout
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sleeps, err = s.fetchSleep(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		hearts, err = s.fetchHeart(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		activities, err = s.fetchActivity(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		workouts, err = s.fetchWorkouts(gctx, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("fetching daily summaries: %w", err)
	}

	records := mergeDaily(start, end, sleeps, hearts, activities, workouts)

	if err := s.repo.Records.UpsertBatch(ctx, records); err != nil {
		return fmt.Errorf("storing daily records: %w", err)
	}
	if err := s.repo.SyncState.UpdateBackfillWatermark(ctx, start); err != nil {
		s.logger.WarnContext(ctx, "failed to update backfill watermark", xslog.Error(err))
	}
	if days >= insights.DefaultWindowDays {
		if err := s.repo.SyncState.MarkBackfillComplete(ctx); err != nil {
			return fmt.Errorf("marking backfill complete: %w", err)
		}
	}
	if err := s.repo.SyncState.UpdateLastSync(ctx, s.now()); err != nil {
		return fmt.Errorf("updating last sync: %w", err)
	}

	s.logger.InfoContext(ctx, "sync complete",
		xslog.Days(days),
		xslog.Count(len(records)),
		xslog.Start(start),
		xslog.End(end),
	)
	return nil
}

// EnsureFresh syncs only when the stored history is older than maxAge.
// Until the initial full-window backfill has completed it always syncs,
// widening the request to the full window so the backfill can finish.
func (s *Service) EnsureFresh(ctx context.Context, days int, maxAge time.Duration) error {
	state, err := s.repo.SyncState.Get(ctx)
	if err != nil {
		return fmt.Errorf("reading sync state: %w", err)
	}
	if !state.BackfillComplete {
		if days < insights.DefaultWindowDays {
			days = insights.DefaultWindowDays
		}
		return s.Sync(ctx, days)
	}
	if state.LastSync != nil && s.now().Sub(*state.LastSync) < maxAge {
		return nil
	}
	return s.Sync(ctx, days)
}

// Today returns the current day key, the same key Window uses for its
// most recent day.
func (s *Service) Today() string {
	return s.now().Format(health.DayLayout)
}

// Window materializes the trailing window as exactly one record per
// calendar day, ascending, padding days with no stored data with an
// all-absent record.
func (s *Service) Window(ctx context.Context, days int) ([]health.DailyRecord, error) {
	end := s.now()
	start := end.AddDate(0, 0, -(days - 1))

	stored, err := s.repo.Records.GetRange(ctx,
		start.Format(health.DayLayout), end.Format(health.DayLayout))
	if err != nil {
		return nil, fmt.Errorf("reading daily records: %w", err)
	}

	byDay := make(map[string]health.DailyRecord, len(stored))
	for _, record := range stored {
		byDay[record.Day] = record
	}

	records := make([]health.DailyRecord, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := d.Format(health.DayLayout)
		if record, ok := byDay[day]; ok {
			records = append(records, record)
			continue
		}
		records = append(records, health.DailyRecord{Day: day})
	}
	return records, nil
}

func (s *Service) fetchSleep(ctx context.Context, start, end time.Time) ([]healthkit.SleepSummary, error) {
	var all []healthkit.SleepSummary
	params := &healthkit.ListParams{Start: &start, End: &end, Limit: fetchPageSize}

	for {
		resp, err := s.client.Sleep.List(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Records...)
		if !resp.HasMore() {
			break
		}
		params.NextToken = resp.NextToken
	}
	return all, nil
}

func (s *Service) fetchHeart(ctx context.Context, start, end time.Time) ([]healthkit.HeartSummary, error) {
	var all []healthkit.HeartSummary
	params := &healthkit.ListParams{Start: &start, End: &end, Limit: fetchPageSize}

	for {
		resp, err := s.client.Heart.List(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Records...)
		if !resp.HasMore() {
			break
		}
		params.NextToken = resp.NextToken
	}
	return all, nil
}

func (s *Service) fetchActivity(ctx context.Context, start, end time.Time) ([]healthkit.ActivitySummary, error) {
	var all []healthkit.ActivitySummary
	params := &healthkit.ListParams{Start: &start, End: &end, Limit: fetchPageSize}

	for {
		resp, err := s.client.Activity.List(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Records...)
		if !resp.HasMore() {
			break
		}
		params.NextToken = resp.NextToken
	}
	return all, nil
}

func (s *Service) fetchWorkouts(ctx context.Context, start, end time.Time) ([]healthkit.Workout, error) {
	var all []healthkit.Workout
	params := &healthkit.ListParams{Start: &start, End: &end, Limit: fetchPageSize}

	for {
		resp, err := s.client.Workout.List(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Records...)
		if !resp.HasMore() {
			break
		}
		params.NextToken = resp.NextToken
	}
	return all, nil
}
