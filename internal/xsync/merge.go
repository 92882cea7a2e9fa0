package xsync

import (
	"time"

	"github.com/mohamadkhanafer/fitnessapp/internal/client/healthkit"
	"github.com/mohamadkhanafer/fitnessapp/internal/health"
)

// mergeDaily folds the per-resource summaries into one DailyRecord per
// calendar day in [start, end], ascending. Day keys follow the bridge's
// own calendar-day convention; the batch stays consistent because every
// summary series comes from the same export. Days with no data at all
// still yield an all-absent record.
func mergeDaily(
	start, end time.Time,
	sleeps []healthkit.SleepSummary,
	hearts []healthkit.HeartSummary,
	activities []healthkit.ActivitySummary,
	workouts []healthkit.Workout,
) []health.DailyRecord {
	sleepByDay := make(map[string]healthkit.SleepSummary, len(sleeps))
	for _, s := range sleeps {
		sleepByDay[s.Date] = s
	}
	heartByDay := make(map[string]healthkit.HeartSummary, len(hearts))
	for _, h := range hearts {
		heartByDay[h.Date] = h
	}
	activityByDay := make(map[string]healthkit.ActivitySummary, len(activities))
	for _, a := range activities {
		activityByDay[a.Date] = a
	}

	type workoutAgg struct {
		minutes float64
		count   int
		source  string
	}
	workoutByDay := make(map[string]workoutAgg)
	for _, w := range workouts {
		day := w.Start.Format(health.DayLayout)
		agg := workoutByDay[day]
		agg.minutes += w.DurationMinutes
		agg.count++
		agg.source = w.Source
		workoutByDay[day] = agg
	}

	var records []health.DailyRecord
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := d.Format(health.DayLayout)
		record := health.DailyRecord{Day: day}
		sources := make(map[health.Metric]string)

		if s, ok := sleepByDay[day]; ok {
			minutes := s.AsleepMinutes
			record.SleepMinutes = &minutes
			sources[health.MetricSleepMinutes] = s.Source
		}
		if h, ok := heartByDay[day]; ok {
			record.HRVMilli = h.HRVSDNNMilli
			record.RestingHeartRate = h.RestingHeartRate
			if h.HRVSDNNMilli != nil {
				sources[health.MetricHRVMilli] = h.Source
			}
			if h.RestingHeartRate != nil {
				sources[health.MetricRestingHeartRate] = h.Source
			}
		}
		if a, ok := activityByDay[day]; ok {
			record.Steps = a.Steps
			record.ActiveEnergyKcal = a.ActiveEnergyKcal
			if a.Steps != nil {
				sources[health.MetricSteps] = a.Source
			}
			if a.ActiveEnergyKcal != nil {
				sources[health.MetricActiveEnergy] = a.Source
			}
		}
		if w, ok := workoutByDay[day]; ok {
			minutes := w.minutes
			record.WorkoutMinutes = &minutes
			record.WorkoutCount = w.count
			sources[health.MetricWorkoutMinutes] = w.source
		}

		if len(sources) > 0 {
			record.Sources = sources
		}
		records = append(records, record)
	}
	return records
}
