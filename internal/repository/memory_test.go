package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/mohamadkhanafer/fitnessapp/internal/health"
)

func TestMemoryRecordsRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemory()

	records := []health.DailyRecord{
		{Day: "2026-08-03", Steps: ptr(7000)},
		{Day: "2026-08-01", SleepMinutes: ptr(420), Sources: map[health.Metric]string{health.MetricSleepMinutes: "Apple Watch"}},
		{Day: "2026-08-02", HRVMilli: ptr(55)},
	}
	if err := repo.Records.UpsertBatch(ctx, records); err != nil {
		t.Fatalf("UpsertBatch() error = %v", err)
	}

	got, err := repo.Records.GetRange(ctx, "2026-08-01", "2026-08-02")
	if err != nil {
		t.Fatalf("GetRange() error = %v", err)
	}
	want := []health.DailyRecord{records[1], records[2]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetRange() mismatch (-want +got):\n%s", diff)
	}

	missing, err := repo.Records.Get(ctx, "2026-08-09")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if missing != nil {
		t.Errorf("Get(missing day) = %v, want nil", missing)
	}
}

func TestMemoryUpsertOverwrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemory()

	if err := repo.Records.Upsert(ctx, &health.DailyRecord{Day: "2026-08-01", Steps: ptr(1000)}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Records.Upsert(ctx, &health.DailyRecord{Day: "2026-08-01", Steps: ptr(9000), WorkoutCount: 2}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Records.Get(ctx, "2026-08-01")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || *got.Steps != 9000 || got.WorkoutCount != 2 {
		t.Errorf("Get() = %+v, want overwritten record", got)
	}
}

func TestMemorySyncState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewMemory()

	state, err := repo.SyncState.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if state.BackfillComplete || state.LastSync != nil {
		t.Errorf("fresh state = %+v, want zero value", state)
	}

	syncTime := time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC)
	if err := repo.SyncState.UpdateLastSync(ctx, syncTime); err != nil {
		t.Fatal(err)
	}
	if err := repo.SyncState.MarkBackfillComplete(ctx); err != nil {
		t.Fatal(err)
	}

	state, err = repo.SyncState.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !state.BackfillComplete {
		t.Error("BackfillComplete = false, want true")
	}
	if state.LastSync == nil || !state.LastSync.Equal(syncTime) {
		t.Errorf("LastSync = %v, want %v", state.LastSync, syncTime)
	}
}

func ptr(f float64) *float64 { return &f }
