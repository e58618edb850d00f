// Package metrics derives the quantitative snapshot of a context window.
// The formulas are illustrative heuristics, not a pricing model.
package metrics

import (
	"fmt"
	"math"

	"github.com/nhle/context-game/internal/model"
)

const (
	// CostPerMillionTokens is the illustrative input price in dollars.
	CostPerMillionTokens = 3.0

	// LatencyPerThousandTokens is the illustrative latency in seconds.
	LatencyPerThousandTokens = 0.05

	// TokenBudget is the context window size the token gauge is drawn against.
	TokenBudget = 200_000

	baselineAccuracy  = 85
	underProvisioned  = 1000
	underPenalty      = 20
	contextRotTokens  = 150_000
	contextRotPenalty = 15
	memoryFileBonus   = 5
	minAccuracy       = 0
	maxAccuracy       = 100
)

// Compute returns the metrics for items. It is pure and independent of the
// order of items.
func Compute(items []model.ContextItem) model.Metrics {
	total := 0
	cacheable := 0
	hasMemory := false
	for _, it := range items {
		total += it.TokenCount
		if it.Cacheable {
			cacheable += it.TokenCount
		}
		if it.Type == model.ItemTypeMemoryFile {
			hasMemory = true
		}
	}

	hitRate := 0.0
	if total > 0 {
		hitRate = float64(cacheable) / float64(total)
	}

	return model.Metrics{
		TotalTokens:      total,
		EstimatedCost:    float64(total) / 1_000_000 * CostPerMillionTokens,
		EstimatedLatency: float64(total) / 1000 * LatencyPerThousandTokens,
		CacheHitRate:     hitRate,
		AccuracyScore:    accuracy(total, hasMemory),
	}
}

// accuracy applies the additive penalties and bonus to the baseline and
// clamps the result.
func accuracy(total int, hasMemory bool) int {
	score := baselineAccuracy
	if total < underProvisioned {
		score -= underPenalty
	}
	if total > contextRotTokens {
		score -= contextRotPenalty
	}
	if hasMemory {
		score += memoryFileBonus
	}
	return max(minAccuracy, min(maxAccuracy, score))
}

// BudgetUsage returns the fraction of TokenBudget used, capped at 1.
func BudgetUsage(m model.Metrics) float64 {
	return math.Min(1, float64(m.TotalTokens)/TokenBudget)
}

// FormatCost renders a cost in dollars. Costs below one cent are shown
// scaled by 1000 with a cent sign.
func FormatCost(cost float64) string {
	if cost < 0.01 {
		return fmt.Sprintf("$%.2f¢", cost*1000)
	}
	return fmt.Sprintf("$%.3f", cost)
}

// FormatLatency renders seconds, switching to milliseconds below one second.
func FormatLatency(seconds float64) string {
	if seconds < 1 {
		return fmt.Sprintf("%.0fms", seconds*1000)
	}
	return fmt.Sprintf("%.1fs", seconds)
}

// FormatPercent renders a [0,1] fraction as a rounded percentage.
func FormatPercent(fraction float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(fraction*100)))
}

// FormatTokens renders a token count with thousands separators.
func FormatTokens(n int) string {
	if n < 0 {
		return "-" + FormatTokens(-n)
	}
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
