package insights

import "github.com/mohamadkhanafer/fitnessapp/internal/health"

// Snapshot is the full computed artifact for one day: the day's record,
// the baselines of its window, the deltas, and the generated cards.
type Snapshot struct {
	Day       string               `json:"day"`
	Record    health.DailyRecord   `json:"record"`
	Baselines health.BaselineSet   `json:"baselines"`
	Deltas    health.DeltaSet      `json:"deltas"`
	Cards     []health.InsightCard `json:"cards"`
}

// Compute runs the whole pipeline over a chronologically ordered batch:
// baselines over the batch, deltas and cards for the most recent
// record. Returns nil for an empty batch.
func Compute(batch []health.DailyRecord, threshold int) *Snapshot {
	if len(batch) == 0 {
		return nil
	}

	record := batch[len(batch)-1]
	baselines := ComputeBaselines(batch, threshold)
	deltas := ComputeDeltas(record, baselines)

	return &Snapshot{
		Day:       record.Day,
		Record:    record,
		Baselines: baselines,
		Deltas:    deltas,
		Cards:     GenerateInsights(record, deltas, baselines),
	}
}
