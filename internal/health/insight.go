package health

type InsightType string

const (
	InsightRecoverySignals InsightType = "recovery-signals"
	InsightActivityLoad    InsightType = "activity-load"
	InsightNotableChange   InsightType = "notable-change"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// InsightCard is one generated, user-facing observation. Cards are
// built fresh on every generation pass; list order is generation order.
type InsightCard struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Explanation string      `json:"explanation"`
	Confidence  Confidence  `json:"confidence"`
}
