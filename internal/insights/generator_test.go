package insights

import (
	"strings"
	"testing"

	"github.com/mohamadkhanafer/fitnessapp/internal/health"
)

func TestScoreConfidence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record health.DailyRecord
		want   health.Confidence
	}{
		{
			name: "all three recovery metrics present",
			record: health.DailyRecord{
				SleepMinutes:     ptr(420),
				HRVMilli:         ptr(55),
				RestingHeartRate: ptr(52),
			},
			want: health.ConfidenceHigh,
		},
		{
			name: "two of three present",
			record: health.DailyRecord{
				SleepMinutes: ptr(420),
				HRVMilli:     ptr(55),
			},
			want: health.ConfidenceMedium,
		},
		{
			name:   "one present",
			record: health.DailyRecord{RestingHeartRate: ptr(52)},
			want:   health.ConfidenceLow,
		},
		{
			name:   "none present",
			record: health.DailyRecord{Steps: ptr(9000)},
			want:   health.ConfidenceLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := scoreConfidence(tt.record); got != tt.want {
				t.Errorf("scoreConfidence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecoverySignalsGating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		deltas   health.DeltaSet
		wantCard bool
		wantText []string
	}{
		{
			name: "all three deltas present and all thresholds crossed",
			deltas: health.DeltaSet{
				SleepMinutes:     ptr(31),
				HRVMilli:         ptr(3),
				RestingHeartRate: ptr(-4),
			},
			wantCard: true,
			wantText: []string{"improved sleep", "elevated HRV", "lower resting HR"},
		},
		{
			name: "thresholds are strict",
			deltas: health.DeltaSet{
				SleepMinutes:     ptr(30),
				HRVMilli:         ptr(2),
				RestingHeartRate: ptr(-3),
			},
			wantCard: false,
		},
		{
			name: "missing resting HR delta suppresses the card",
			deltas: health.DeltaSet{
				SleepMinutes: ptr(120),
				HRVMilli:     ptr(10),
			},
			wantCard: false,
		},
		{
			name: "single signal",
			deltas: health.DeltaSet{
				SleepMinutes:     ptr(45),
				HRVMilli:         ptr(0),
				RestingHeartRate: ptr(0),
			},
			wantCard: true,
			wantText: []string{"improved sleep"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cards := GenerateInsights(health.DailyRecord{}, tt.deltas, health.BaselineSet{})
			card := findCard(cards, health.InsightRecoverySignals)
			if (card != nil) != tt.wantCard {
				t.Fatalf("recovery card present = %v, want %v (cards: %v)", card != nil, tt.wantCard, cards)
			}
			for _, text := range tt.wantText {
				if !strings.Contains(card.Explanation, text) {
					t.Errorf("explanation %q missing %q", card.Explanation, text)
				}
			}
		})
	}
}

func TestActivityLoadMixedDirections(t *testing.T) {
	t.Parallel()

	// Scenario C: lower steps and more energy burn in the same card.
	deltas := health.DeltaSet{
		Steps:            ptr(-2500),
		ActiveEnergyKcal: ptr(150),
	}

	cards := GenerateInsights(health.DailyRecord{}, deltas, health.BaselineSet{})
	card := findCard(cards, health.InsightActivityLoad)
	if card == nil {
		t.Fatalf("no activity card in %v", cards)
	}
	if !strings.Contains(card.Explanation, "lower step count, more energy burn") {
		t.Errorf("explanation = %q, want mixed-direction marks in mark order", card.Explanation)
	}

	notable := findCard(cards, health.InsightNotableChange)
	if notable == nil {
		t.Fatal("no notable-change card")
	}
	if !strings.Contains(notable.Explanation, "steps") || !strings.Contains(notable.Explanation, "lower") {
		t.Errorf("notable change = %q, want lower steps (|−2500| > |150|)", notable.Explanation)
	}
}

func TestActivityLoadGating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		deltas   health.DeltaSet
		wantCard bool
	}{
		{
			name:     "within bands emits nothing",
			deltas:   health.DeltaSet{Steps: ptr(500), ActiveEnergyKcal: ptr(50)},
			wantCard: false,
		},
		{
			name:     "energy delta missing suppresses the card",
			deltas:   health.DeltaSet{Steps: ptr(5000)},
			wantCard: false,
		},
		{
			name:     "steps delta missing suppresses the card",
			deltas:   health.DeltaSet{ActiveEnergyKcal: ptr(500)},
			wantCard: false,
		},
		{
			name:     "one mark is enough",
			deltas:   health.DeltaSet{Steps: ptr(2001), ActiveEnergyKcal: ptr(0)},
			wantCard: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cards := GenerateInsights(health.DailyRecord{}, tt.deltas, health.BaselineSet{})
			card := findCard(cards, health.InsightActivityLoad)
			if (card != nil) != tt.wantCard {
				t.Errorf("activity card present = %v, want %v", card != nil, tt.wantCard)
			}
		})
	}
}

func TestNotableChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		deltas   health.DeltaSet
		wantCard bool
		wantText []string
	}{
		{
			name:     "no deltas no card",
			deltas:   health.DeltaSet{},
			wantCard: false,
		},
		{
			name:     "largest absolute delta wins",
			deltas:   health.DeltaSet{SleepMinutes: ptr(10), Steps: ptr(-300)},
			wantCard: true,
			wantText: []string{"steps", "lower"},
		},
		{
			name:     "tie broken by metric order",
			deltas:   health.DeltaSet{HRVMilli: ptr(5), RestingHeartRate: ptr(-5)},
			wantCard: true,
			wantText: []string{"HRV", "higher"},
		},
		{
			name:     "zero delta counts as higher",
			deltas:   health.DeltaSet{WorkoutMinutes: ptr(0)},
			wantCard: true,
			wantText: []string{"workout time", "higher"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cards := GenerateInsights(health.DailyRecord{}, tt.deltas, health.BaselineSet{})
			card := findCard(cards, health.InsightNotableChange)
			if (card != nil) != tt.wantCard {
				t.Fatalf("notable card present = %v, want %v", card != nil, tt.wantCard)
			}
			for _, text := range tt.wantText {
				if !strings.Contains(card.Explanation, text) {
					t.Errorf("explanation %q missing %q", card.Explanation, text)
				}
			}
		})
	}
}

func TestGenerateInsightsCapAndOrder(t *testing.T) {
	t.Parallel()

	// Every detector fires: recovery first, then activity, then the
	// notable change, and never more than MaxInsights cards.
	deltas := health.DeltaSet{
		SleepMinutes:     ptr(60),
		HRVMilli:         ptr(5),
		RestingHeartRate: ptr(-5),
		Steps:            ptr(3000),
		ActiveEnergyKcal: ptr(200),
	}

	cards := GenerateInsights(health.DailyRecord{}, deltas, health.BaselineSet{})
	if len(cards) != MaxInsights {
		t.Fatalf("len(cards) = %d, want %d", len(cards), MaxInsights)
	}

	wantOrder := []health.InsightType{
		health.InsightRecoverySignals,
		health.InsightActivityLoad,
		health.InsightNotableChange,
	}
	for i, want := range wantOrder {
		if cards[i].Type != want {
			t.Errorf("cards[%d].Type = %v, want %v", i, cards[i].Type, want)
		}
	}
}

func TestGenerateInsightsEmptyRecord(t *testing.T) {
	t.Parallel()

	cards := GenerateInsights(health.DailyRecord{Day: "2026-08-28"}, health.DeltaSet{}, health.BaselineSet{})
	if len(cards) != 0 {
		t.Errorf("cards = %v, want empty", cards)
	}
}

func TestGenerateInsightsConfidenceOnEveryCard(t *testing.T) {
	t.Parallel()

	record := health.DailyRecord{
		SleepMinutes: ptr(450),
		HRVMilli:     ptr(58),
	}
	deltas := health.DeltaSet{
		Steps:            ptr(3000),
		ActiveEnergyKcal: ptr(150),
	}

	cards := GenerateInsights(record, deltas, health.BaselineSet{})
	if len(cards) == 0 {
		t.Fatal("want at least one card")
	}
	for _, card := range cards {
		if card.Confidence != health.ConfidenceMedium {
			t.Errorf("card %v confidence = %v, want medium", card.Type, card.Confidence)
		}
	}
}

// Scenario A from the product brief: a fully populated 28-day window
// whose most recent day crosses every recovery threshold.
func TestComputeFullWindowRecovery(t *testing.T) {
	t.Parallel()

	batch := make([]health.DailyRecord, 28)
	for i := range batch {
		batch[i] = health.DailyRecord{
			Day:              day(i),
			SleepMinutes:     ptr(420),
			HRVMilli:         ptr(55),
			RestingHeartRate: ptr(55),
			Steps:            ptr(8000),
			ActiveEnergyKcal: ptr(500),
			WorkoutMinutes:   ptr(30),
		}
	}
	// Most recent day: sleep +31, HRV +3, resting HR -4.
	last := &batch[27]
	last.SleepMinutes = ptr(451)
	last.HRVMilli = ptr(58)
	last.RestingHeartRate = ptr(51)

	snap := Compute(batch, DefaultBaselineThreshold)
	if snap == nil {
		t.Fatal("Compute returned nil for non-empty batch")
	}

	card := findCard(snap.Cards, health.InsightRecoverySignals)
	if card == nil {
		t.Fatalf("no recovery card in %v", snap.Cards)
	}
	for _, text := range []string{"improved sleep", "elevated HRV", "lower resting HR"} {
		if !strings.Contains(card.Explanation, text) {
			t.Errorf("explanation %q missing %q", card.Explanation, text)
		}
	}
	if card.Confidence != health.ConfidenceHigh {
		t.Errorf("confidence = %v, want high", card.Confidence)
	}
}

// Scenario B: a short sparse history yields no baselines, no deltas,
// and no cards.
func TestComputeSparseWindow(t *testing.T) {
	t.Parallel()

	batch := make([]health.DailyRecord, 5)
	for i := range batch {
		batch[i] = health.DailyRecord{Day: day(i), SleepMinutes: ptr(400)}
	}

	snap := Compute(batch, DefaultBaselineThreshold)
	if snap == nil {
		t.Fatal("Compute returned nil for non-empty batch")
	}
	if snap.Baselines.SleepMinutes != nil {
		t.Errorf("sleep baseline = %v, want absent with 5 samples", *snap.Baselines.SleepMinutes)
	}
	if len(snap.Cards) != 0 {
		t.Errorf("cards = %v, want empty", snap.Cards)
	}
}

func TestComputeEmptyBatch(t *testing.T) {
	t.Parallel()

	if snap := Compute(nil, DefaultBaselineThreshold); snap != nil {
		t.Errorf("Compute(nil) = %v, want nil", snap)
	}
}

func findCard(cards []health.InsightCard, typ health.InsightType) *health.InsightCard {
	for i := range cards {
		if cards[i].Type == typ {
			return &cards[i]
		}
	}
	return nil
}
