package insights

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mohamadkhanafer/fitnessapp/internal/health"
)

func TestComputeBaselinesEmptyBatch(t *testing.T) {
	t.Parallel()

	got := ComputeBaselines(nil, DefaultBaselineThreshold)
	if diff := cmp.Diff(health.BaselineSet{}, got); diff != "" {
		t.Errorf("empty batch baselines mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeBaselinesThresholdBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		sampleCount int
		wantPresent bool
	}{
		{name: "six samples is below threshold", sampleCount: 6, wantPresent: false},
		{name: "seven samples meets threshold", sampleCount: 7, wantPresent: true},
		{name: "full window", sampleCount: 28, wantPresent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			batch := make([]health.DailyRecord, 28)
			for i := range batch {
				batch[i] = health.DailyRecord{Day: day(i)}
				if i < tt.sampleCount {
					batch[i].SleepMinutes = ptr(400 + float64(i))
				}
			}

			got := ComputeBaselines(batch, DefaultBaselineThreshold)
			if (got.SleepMinutes != nil) != tt.wantPresent {
				t.Errorf("sleep baseline present = %v, want %v", got.SleepMinutes != nil, tt.wantPresent)
			}
		})
	}
}

func TestComputeBaselinesPerMetricIndependence(t *testing.T) {
	t.Parallel()

	// Sleep has 7 samples, HRV only 3. Only sleep gets a baseline.
	batch := make([]health.DailyRecord, 10)
	for i := range batch {
		batch[i] = health.DailyRecord{Day: day(i)}
		if i < 7 {
			batch[i].SleepMinutes = ptr(420)
		}
		if i < 3 {
			batch[i].HRVMilli = ptr(55)
		}
	}

	got := ComputeBaselines(batch, DefaultBaselineThreshold)
	if got.SleepMinutes == nil {
		t.Error("sleep baseline absent, want present")
	}
	if got.HRVMilli != nil {
		t.Errorf("hrv baseline = %v, want absent", *got.HRVMilli)
	}
	for _, m := range []health.Metric{health.MetricRestingHeartRate, health.MetricSteps, health.MetricActiveEnergy, health.MetricWorkoutMinutes} {
		if v := got.Value(m); v != nil {
			t.Errorf("%s baseline = %v, want absent", m, *v)
		}
	}
}

func TestComputeBaselinesMedianOfSamples(t *testing.T) {
	t.Parallel()

	// Exactly 7 sleep samples in a 28-record batch: baseline is their
	// median regardless of where in the window they fall.
	values := []float64{300, 500, 420, 380, 460, 440, 410}
	batch := make([]health.DailyRecord, 28)
	for i := range batch {
		batch[i] = health.DailyRecord{Day: day(i)}
	}
	for i, v := range values {
		batch[i*4].SleepMinutes = ptr(v)
	}

	got := ComputeBaselines(batch, DefaultBaselineThreshold)
	if got.SleepMinutes == nil {
		t.Fatal("sleep baseline absent, want present")
	}
	if *got.SleepMinutes != 420 {
		t.Errorf("sleep baseline = %v, want 420", *got.SleepMinutes)
	}
}

func TestComputeBaselinesDefaultsThreshold(t *testing.T) {
	t.Parallel()

	batch := make([]health.DailyRecord, 6)
	for i := range batch {
		batch[i] = health.DailyRecord{Day: day(i), Steps: ptr(8000)}
	}

	// Threshold <= 0 falls back to the default of 7, so 6 samples is
	// not enough.
	got := ComputeBaselines(batch, 0)
	if got.Steps != nil {
		t.Errorf("steps baseline = %v, want absent", *got.Steps)
	}

	got = ComputeBaselines(batch, 6)
	if got.Steps == nil {
		t.Error("steps baseline absent with explicit threshold 6, want present")
	}
}

func day(i int) string {
	return fmt.Sprintf("2026-08-%02d", i+1)
}

func ptr(f float64) *float64 { return &f }
