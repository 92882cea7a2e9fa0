package insights

import "github.com/mohamadkhanafer/fitnessapp/internal/health"

// ComputeDeltas subtracts the baseline from one day's record, metric by
// metric. A delta is present iff both sides are present; either side
// missing forces the delta absent. Total, never fails.
func ComputeDeltas(record health.DailyRecord, baselines health.BaselineSet) health.DeltaSet {
	return health.DeltaSet{
		SleepMinutes:     sub(record.SleepMinutes, baselines.SleepMinutes),
		HRVMilli:         sub(record.HRVMilli, baselines.HRVMilli),
		RestingHeartRate: sub(record.RestingHeartRate, baselines.RestingHeartRate),
		Steps:            sub(record.Steps, baselines.Steps),
		ActiveEnergyKcal: sub(record.ActiveEnergyKcal, baselines.ActiveEnergyKcal),
		WorkoutMinutes:   sub(record.WorkoutMinutes, baselines.WorkoutMinutes),
	}
}

func sub(value, baseline *float64) *float64 {
	if value == nil || baseline == nil {
		return nil
	}
	d := *value - *baseline
	return &d
}
