package insights

import (
	"fmt"
	"math"
	"strings"

	"github.com/mohamadkhanafer/fitnessapp/internal/health"
)

// MaxInsights caps the number of cards one generation pass may return.
const MaxInsights = 3

// Detector thresholds, all relative to the windowed baseline.
const (
	sleepGainMinutes = 30.0
	hrvGainMilli     = 2.0
	restingHRDropBPM = -3.0
	stepsShift       = 2000.0
	energyShiftKcal  = 100.0
)

type detectorInput struct {
	record    health.DailyRecord
	deltas    health.DeltaSet
	baselines health.BaselineSet
}

// A detector is a (predicate, builder) pair. Detectors run in fixed
// order; each may contribute at most one card. build is only called
// when applies returned true, and may still decline by returning nil.
type detector struct {
	applies func(in detectorInput) bool
	build   func(in detectorInput) *health.InsightCard
}

var detectors = []detector{
	{applies: recoverySignalsApply, build: recoverySignalsBuild},
	{applies: activityLoadApply, build: activityLoadBuild},
	{applies: notableChangeApply, build: notableChangeBuild},
}

// GenerateInsights evaluates the rule-based detectors against one
// day's record, its deltas, and the baselines the deltas came from.
// The returned list holds at most MaxInsights cards in generation
// order; it is empty when no detector fired.
func GenerateInsights(record health.DailyRecord, deltas health.DeltaSet, baselines health.BaselineSet) []health.InsightCard {
	confidence := scoreConfidence(record)

	cards := make([]health.InsightCard, 0, MaxInsights)
	for _, d := range detectors {
		in := detectorInput{record: record, deltas: deltas, baselines: baselines}
		if !d.applies(in) {
			continue
		}
		card := d.build(in)
		if card == nil {
			continue
		}
		card.Confidence = confidence
		cards = append(cards, *card)
	}

	if len(cards) > MaxInsights {
		cards = cards[:MaxInsights]
	}
	return cards
}

// scoreConfidence grades data completeness from raw record presence of
// the three recovery metrics, not from delta or baseline presence.
func scoreConfidence(record health.DailyRecord) health.Confidence {
	present := 0
	for _, v := range []*float64{record.SleepMinutes, record.HRVMilli, record.RestingHeartRate} {
		if v != nil {
			present++
		}
	}
	switch present {
	case 3:
		return health.ConfidenceHigh
	case 2:
		return health.ConfidenceMedium
	default:
		return health.ConfidenceLow
	}
}

func recoverySignalsApply(in detectorInput) bool {
	return in.deltas.SleepMinutes != nil &&
		in.deltas.HRVMilli != nil &&
		in.deltas.RestingHeartRate != nil
}

func recoverySignalsBuild(in detectorInput) *health.InsightCard {
	var signals []string
	if *in.deltas.SleepMinutes > sleepGainMinutes {
		signals = append(signals, "improved sleep")
	}
	if *in.deltas.HRVMilli > hrvGainMilli {
		signals = append(signals, "elevated HRV")
	}
	if *in.deltas.RestingHeartRate < restingHRDropBPM {
		signals = append(signals, "lower resting HR")
	}
	if len(signals) == 0 {
		return nil
	}

	return &health.InsightCard{
		Type:  health.InsightRecoverySignals,
		Title: "Recovery signals",
		Explanation: fmt.Sprintf(
			"Compared with your %d-day baseline, today shows %s.",
			DefaultWindowDays, strings.Join(signals, ", ")),
	}
}

func activityLoadApply(in detectorInput) bool {
	return in.deltas.Steps != nil && in.deltas.ActiveEnergyKcal != nil
}

func activityLoadBuild(in detectorInput) *health.InsightCard {
	// High and low marks are evaluated independently. The bands are
	// disjoint per metric, but a mixed-direction card across steps and
	// energy is possible and emitted as-is.
	var marks []string
	if *in.deltas.Steps > stepsShift {
		marks = append(marks, "higher step count")
	}
	if *in.deltas.Steps < -stepsShift {
		marks = append(marks, "lower step count")
	}
	if *in.deltas.ActiveEnergyKcal > energyShiftKcal {
		marks = append(marks, "more energy burn")
	}
	if *in.deltas.ActiveEnergyKcal < -energyShiftKcal {
		marks = append(marks, "less energy burn")
	}
	if len(marks) == 0 {
		return nil
	}

	return &health.InsightCard{
		Type:  health.InsightActivityLoad,
		Title: "Activity & load",
		Explanation: fmt.Sprintf(
			"Relative to your %d-day baseline: %s.",
			DefaultWindowDays, strings.Join(marks, ", ")),
	}
}

func notableChangeApply(detectorInput) bool { return true }

func notableChangeBuild(in detectorInput) *health.InsightCard {
	var best health.Metric
	var bestDelta float64
	found := false

	// Strict greater-than keeps the earliest metric on ties.
	for _, m := range health.Metrics {
		d := in.deltas.Value(m)
		if d == nil {
			continue
		}
		if !found || math.Abs(*d) > math.Abs(bestDelta) {
			best = m
			bestDelta = *d
			found = true
		}
	}
	if !found {
		return nil
	}

	direction := "higher"
	if bestDelta < 0 {
		direction = "lower"
	}

	return &health.InsightCard{
		Type:  health.InsightNotableChange,
		Title: "Notable change",
		Explanation: fmt.Sprintf(
			"Your %s was %s than your %d-day baseline, the largest shift across your tracked metrics.",
			best.DisplayName(), direction, DefaultWindowDays),
	}
}
