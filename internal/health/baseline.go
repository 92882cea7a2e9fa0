package health

// BaselineSet holds one windowed reference value per metric.
// A field is nil when fewer than the minimum number of days in the
// window carried a reading for that metric. Workout count has no
// baseline.
type BaselineSet struct {
	SleepMinutes     *float64 `json:"sleep_minutes"`
	HRVMilli         *float64 `json:"hrv_milli"`
	RestingHeartRate *float64 `json:"resting_heart_rate"`
	Steps            *float64 `json:"steps"`
	ActiveEnergyKcal *float64 `json:"active_energy_kcal"`
	WorkoutMinutes   *float64 `json:"workout_minutes"`
}

// Value returns the baseline for m, or nil if absent.
func (b *BaselineSet) Value(m Metric) *float64 {
	switch m {
	case MetricSleepMinutes:
		return b.SleepMinutes
	case MetricHRVMilli:
		return b.HRVMilli
	case MetricRestingHeartRate:
		return b.RestingHeartRate
	case MetricSteps:
		return b.Steps
	case MetricActiveEnergy:
		return b.ActiveEnergyKcal
	case MetricWorkoutMinutes:
		return b.WorkoutMinutes
	default:
		return nil
	}
}

// DeltaSet holds the signed difference of one day's record against a
// baseline set. A field is present iff both inputs were present;
// absence on either side is infectious.
type DeltaSet struct {
	SleepMinutes     *float64 `json:"sleep_minutes"`
	HRVMilli         *float64 `json:"hrv_milli"`
	RestingHeartRate *float64 `json:"resting_heart_rate"`
	Steps            *float64 `json:"steps"`
	ActiveEnergyKcal *float64 `json:"active_energy_kcal"`
	WorkoutMinutes   *float64 `json:"workout_minutes"`
}

// Value returns the delta for m, or nil if absent.
func (d *DeltaSet) Value(m Metric) *float64 {
	switch m {
	case MetricSleepMinutes:
		return d.SleepMinutes
	case MetricHRVMilli:
		return d.HRVMilli
	case MetricRestingHeartRate:
		return d.RestingHeartRate
	case MetricSteps:
		return d.Steps
	case MetricActiveEnergy:
		return d.ActiveEnergyKcal
	case MetricWorkoutMinutes:
		return d.WorkoutMinutes
	default:
		return nil
	}
}
