package model

// Metrics is a derived snapshot of a context window. It is always
// recomputed from the selected items and never edited by hand.
type Metrics struct {
	TotalTokens      int     `json:"totalTokens"`
	EstimatedCost    float64 `json:"estimatedCost"`
	EstimatedLatency float64 `json:"estimatedLatency"`
	CacheHitRate     float64 `json:"cacheHitRate"`
	AccuracyScore    int     `json:"accuracyScore"`
}

// FeedbackType classifies a feedback entry.
type FeedbackType string

const (
	FeedbackWarning  FeedbackType = "warning"
	FeedbackInsight  FeedbackType = "insight"
	FeedbackTip      FeedbackType = "tip"
	FeedbackTradeoff FeedbackType = "tradeoff"
)

// Severity ranks how urgent a feedback entry is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Feedback is one rule-derived observation about the current context
// window. The whole list is replaced on every recomputation.
type Feedback struct {
	Type         FeedbackType `json:"type"`
	Message      string       `json:"message"`
	Severity     Severity     `json:"severity"`
	RelatedItems []string     `json:"relatedItems,omitempty"`
}
