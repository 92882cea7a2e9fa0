// Package insights is the aggregation engine: it reduces a trailing
// window of daily records into per-metric baselines, scores the most
// recent day against those baselines, and generates insight cards.
// Every operation is a stateless pure function and safe for concurrent
// use with disjoint inputs.
package insights

import (
	"github.com/mohamadkhanafer/fitnessapp/internal/health"
	"github.com/mohamadkhanafer/fitnessapp/internal/stats"
)

const (
	// DefaultWindowDays is the trailing window a baseline is normally
	// computed over.
	DefaultWindowDays = 28

	// DefaultBaselineThreshold is the minimum number of days in the
	// window that must carry a reading before a metric gets a baseline.
	DefaultBaselineThreshold = 7
)

// ComputeBaselines reduces a batch of daily records into one baseline
// set. Each metric is processed independently: its baseline is the
// median of all non-absent readings across the batch, or absent when
// fewer than threshold days had a reading. A threshold <= 0 falls back
// to DefaultBaselineThreshold. An empty batch yields an all-absent set.
func ComputeBaselines(batch []health.DailyRecord, threshold int) health.BaselineSet {
	if threshold <= 0 {
		threshold = DefaultBaselineThreshold
	}

	return health.BaselineSet{
		SleepMinutes:     baselineFor(batch, health.MetricSleepMinutes, threshold),
		HRVMilli:         baselineFor(batch, health.MetricHRVMilli, threshold),
		RestingHeartRate: baselineFor(batch, health.MetricRestingHeartRate, threshold),
		Steps:            baselineFor(batch, health.MetricSteps, threshold),
		ActiveEnergyKcal: baselineFor(batch, health.MetricActiveEnergy, threshold),
		WorkoutMinutes:   baselineFor(batch, health.MetricWorkoutMinutes, threshold),
	}
}

func baselineFor(batch []health.DailyRecord, m health.Metric, threshold int) *float64 {
	values := make([]float64, 0, len(batch))
	for i := range batch {
		if v := batch[i].Value(m); v != nil {
			values = append(values, *v)
		}
	}
	if len(values) < threshold {
		return nil
	}
	return stats.Median(values)
}
