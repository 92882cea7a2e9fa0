package health

// DayLayout is the calendar-day key format used everywhere a record,
// baseline, or cache entry is keyed by day.
const DayLayout = "2006-01-02"

// Metric identifies one tracked measurement.
type Metric string

const (
	MetricSleepMinutes     Metric = "sleep_minutes"
	MetricHRVMilli         Metric = "hrv_milli"
	MetricRestingHeartRate Metric = "resting_heart_rate"
	MetricSteps            Metric = "steps"
	MetricActiveEnergy     Metric = "active_energy_kcal"
	MetricWorkoutMinutes   Metric = "workout_minutes"
)

// Metrics lists every baseline-tracked metric in canonical order.
// The order is load-bearing: the notable-change detector breaks ties
// by first encounter in this list.
var Metrics = []Metric{
	MetricSleepMinutes,
	MetricHRVMilli,
	MetricRestingHeartRate,
	MetricSteps,
	MetricActiveEnergy,
	MetricWorkoutMinutes,
}

// DisplayName returns the user-facing name of the metric.
func (m Metric) DisplayName() string {
	switch m {
	case MetricSleepMinutes:
		return "sleep duration"
	case MetricHRVMilli:
		return "HRV"
	case MetricRestingHeartRate:
		return "resting heart rate"
	case MetricSteps:
		return "steps"
	case MetricActiveEnergy:
		return "active energy"
	case MetricWorkoutMinutes:
		return "workout time"
	default:
		return string(m)
	}
}

// DailyRecord is one calendar day of measurements. A nil field means
// the metric was not measured that day; zero is a real reading.
// Records are value-like and never mutated after construction.
type DailyRecord struct {
	Day              string   `json:"day"`
	SleepMinutes     *float64 `json:"sleep_minutes"`
	HRVMilli         *float64 `json:"hrv_milli"`
	RestingHeartRate *float64 `json:"resting_heart_rate"`
	Steps            *float64 `json:"steps"`
	ActiveEnergyKcal *float64 `json:"active_energy_kcal"`
	WorkoutMinutes   *float64 `json:"workout_minutes"`
	WorkoutCount     int      `json:"workout_count"`

	// Sources labels where each metric came from (device, app).
	// Informational only; never consulted by any computation.
	Sources map[Metric]string `json:"sources,omitempty"`
}

// Value returns the record's reading for m, or nil if not measured.
func (r *DailyRecord) Value(m Metric) *float64 {
	switch m {
	case MetricSleepMinutes:
		return r.SleepMinutes
	case MetricHRVMilli:
		return r.HRVMilli
	case MetricRestingHeartRate:
		return r.RestingHeartRate
	case MetricSteps:
		return r.Steps
	case MetricActiveEnergy:
		return r.ActiveEnergyKcal
	case MetricWorkoutMinutes:
		return r.WorkoutMinutes
	default:
		return nil
	}
}
