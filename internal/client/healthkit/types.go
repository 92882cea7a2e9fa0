package healthkit

import "time"

// Daily summaries and workouts as exported by the phone-side bridge.
// The bridge aggregates raw HealthKit samples into one row per
// calendar day (device-local day boundaries) before export.

type SleepSummary struct {
	Date          string  `json:"date"`
	AsleepMinutes float64 `json:"asleep_minutes"`
	InBedMinutes  float64 `json:"in_bed_minutes"`
	Source        string  `json:"source"`
}

type HeartSummary struct {
	Date             string   `json:"date"`
	HRVSDNNMilli     *float64 `json:"hrv_sdnn_milli"`
	RestingHeartRate *float64 `json:"resting_heart_rate"`
	Source           string   `json:"source"`
}

type ActivitySummary struct {
	Date             string   `json:"date"`
	Steps            *float64 `json:"steps"`
	ActiveEnergyKcal *float64 `json:"active_energy_kcal"`
	Source           string   `json:"source"`
}

type Workout struct {
	ID              string    `json:"id"`
	ActivityType    string    `json:"activity_type"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes float64   `json:"duration_minutes"`
	EnergyKcal      *float64  `json:"energy_kcal"`
	Source          string    `json:"source"`
}
