// Package feedback evaluates a context window against a fixed, ordered list
// of heuristic rules and reports warnings, insights, tips and tradeoffs.
package feedback

import (
	"fmt"
	"math"

	"github.com/nhle/context-game/internal/metrics"
	"github.com/nhle/context-game/internal/model"
)

// Thresholds used by the rules.
const (
	MaxTools            = 5
	LargeContextTokens  = 100_000
	HighCacheRate       = 0.7
	LowCacheRate        = 0.3
	LowCacheMinItems    = 3
	RealtimeMaxLatency  = 3.0
	RealtimeTightTokens = 5000
	LargeDocTokens      = 10_000
	TradeoffTokens      = 50_000
)

// Input is the snapshot a rule evaluates. Rules must not modify it.
type Input struct {
	Items    []model.ContextItem
	Metrics  model.Metrics
	Category model.TaskCategory
}

// Rule is a named predicate that yields at most one feedback entry.
type Rule struct {
	Name string
	Eval func(in Input) (model.Feedback, bool)
}

// Rule names, in evaluation order.
const (
	RuleToolCount           = "tool-count"
	RuleLargeContext        = "large-context"
	RuleCacheRate           = "cache-rate"
	RuleRealtimeLatency     = "realtime-latency"
	RuleRealtimeTight       = "realtime-tight"
	RuleMissingSystemPrompt = "missing-system-prompt"
	RuleLargeDocs           = "large-docs"
	RuleLongRunningTradeoff = "longrunning-tradeoff"
)

// Rules is the fixed evaluation order. Output order follows it.
var Rules = []Rule{
	{Name: RuleToolCount, Eval: toolCount},
	{Name: RuleLargeContext, Eval: largeContext},
	{Name: RuleCacheRate, Eval: cacheRate},
	{Name: RuleRealtimeLatency, Eval: realtimeLatency},
	{Name: RuleRealtimeTight, Eval: realtimeTight},
	{Name: RuleMissingSystemPrompt, Eval: missingSystemPrompt},
	{Name: RuleLargeDocs, Eval: largeDocs},
	{Name: RuleLongRunningTradeoff, Eval: longRunningTradeoff},
}

// Generate evaluates every rule in order against items and their
// precomputed metrics. An empty result is valid.
func Generate(items []model.ContextItem, m model.Metrics, category model.TaskCategory) []model.Feedback {
	return Apply(Rules, Input{Items: items, Metrics: m, Category: category})
}

// Evaluate computes metrics for items and then runs Generate.
func Evaluate(items []model.ContextItem, category model.TaskCategory) []model.Feedback {
	return Generate(items, metrics.Compute(items), category)
}

// Apply runs rules in order and concatenates the entries that fire.
func Apply(rules []Rule, in Input) []model.Feedback {
	out := []model.Feedback{}
	for _, r := range rules {
		if fb, ok := r.Eval(in); ok {
			out = append(out, fb)
		}
	}
	return out
}

// Fired returns the names of the rules that produce an entry for in.
func Fired(in Input) []string {
	var names []string
	for _, r := range Rules {
		if _, ok := r.Eval(in); ok {
			names = append(names, r.Name)
		}
	}
	return names
}

func idsOfType(items []model.ContextItem, t model.ItemType) []string {
	var ids []string
	for _, it := range items {
		if it.Type == t {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

func hasType(items []model.ContextItem, t model.ItemType) bool {
	for _, it := range items {
		if it.Type == t {
			return true
		}
	}
	return false
}

func toolCount(in Input) (model.Feedback, bool) {
	tools := idsOfType(in.Items, model.ItemTypeTool)
	if len(tools) <= MaxTools {
		return model.Feedback{}, false
	}
	return model.Feedback{
		Type: model.FeedbackWarning,
		Message: fmt.Sprintf(
			"You have %d tools. Too many tools may create decision ambiguity for the agent.",
			len(tools),
		),
		Severity:     model.SeverityMedium,
		RelatedItems: tools,
	}, true
}

func largeContext(in Input) (model.Feedback, bool) {
	if in.Metrics.TotalTokens <= LargeContextTokens {
		return model.Feedback{}, false
	}
	return model.Feedback{
		Type:     model.FeedbackTip,
		Message:  "Large context detected. Consider message compaction or memory files to reduce tokens by ~40%.",
		Severity: model.SeverityMedium,
	}, true
}

// cacheRate covers both the high and the low cache branches; they are
// mutually exclusive.
func cacheRate(in Input) (model.Feedback, bool) {
	rate := in.Metrics.CacheHitRate
	switch {
	case rate > HighCacheRate:
		return model.Feedback{
			Type: model.FeedbackInsight,
			Message: fmt.Sprintf(
				"Excellent cache utilization (%d%%)! This will significantly reduce costs.",
				int(math.Round(rate*100)),
			),
			Severity: model.SeverityLow,
		}, true
	case rate < LowCacheRate && len(in.Items) > LowCacheMinItems:
		return model.Feedback{
			Type:     model.FeedbackTip,
			Message:  "Low cache utilization. Consider marking static items (system prompt, instructions) as cacheable.",
			Severity: model.SeverityMedium,
		}, true
	}
	return model.Feedback{}, false
}

func realtimeLatency(in Input) (model.Feedback, bool) {
	if in.Category != model.CategoryRealtime || in.Metrics.EstimatedLatency <= RealtimeMaxLatency {
		return model.Feedback{}, false
	}
	return model.Feedback{
		Type: model.FeedbackWarning,
		Message: fmt.Sprintf(
			"High latency (~%.1fs) for real-time use case. Consider reducing context size.",
			in.Metrics.EstimatedLatency,
		),
		Severity: model.SeverityHigh,
	}, true
}

func realtimeTight(in Input) (model.Feedback, bool) {
	if in.Category != model.CategoryRealtime || in.Metrics.TotalTokens >= RealtimeTightTokens {
		return model.Feedback{}, false
	}
	return model.Feedback{
		Type:     model.FeedbackInsight,
		Message:  "Tight context optimized for low latency. Good for real-time applications!",
		Severity: model.SeverityLow,
	}, true
}

func missingSystemPrompt(in Input) (model.Feedback, bool) {
	if len(in.Items) == 0 || hasType(in.Items, model.ItemTypeSystemPrompt) {
		return model.Feedback{}, false
	}
	return model.Feedback{
		Type:     model.FeedbackWarning,
		Message:  "No system prompt detected. Agents typically need instructions to perform well.",
		Severity: model.SeverityHigh,
	}, true
}

func largeDocs(in Input) (model.Feedback, bool) {
	if hasType(in.Items, model.ItemTypeMemoryFile) {
		return model.Feedback{}, false
	}
	var docs []string
	for _, it := range in.Items {
		if it.Type == model.ItemTypeDoc && it.TokenCount > LargeDocTokens {
			docs = append(docs, it.ID)
		}
	}
	if len(docs) == 0 {
		return model.Feedback{}, false
	}
	return model.Feedback{
		Type: model.FeedbackTip,
		Message: fmt.Sprintf(
			"You have %d large document(s). Consider using memory files to pre-compute and condense key information.",
			len(docs),
		),
		Severity:     model.SeverityMedium,
		RelatedItems: docs,
	}, true
}

func longRunningTradeoff(in Input) (model.Feedback, bool) {
	if in.Category != model.CategoryLongRunning || in.Metrics.TotalTokens <= TradeoffTokens {
		return model.Feedback{}, false
	}
	return model.Feedback{
		Type: model.FeedbackTradeoff,
		Message: fmt.Sprintf(
			"Current config: High accuracy (%d%%), higher cost ($%.3f), medium latency. Good for accuracy-critical tasks.",
			in.Metrics.AccuracyScore,
			in.Metrics.EstimatedCost,
		),
		Severity: model.SeverityLow,
	}, true
}
