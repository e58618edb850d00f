package metricsview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/context-game/internal/metrics"
	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/ui/metricsview"
	"github.com/nhle/context-game/tests/testutil"
)

func TestView_ShowsEveryMetric(t *testing.T) {
	m := metricsview.New(50, 8)
	mt := metrics.Compute([]model.ContextItem{
		testutil.Item("sys", model.ItemTypeSystemPrompt, 2000, true),
	})
	m.SetMetrics(mt)

	out := m.View()
	for _, label := range []string{"Performance Metrics", "Tokens", "Est. Cost", "Est. Latency", "Cache Rate", "Accuracy"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, metrics.FormatTokens(2000))
	assert.Contains(t, out, metrics.FormatPercent(mt.CacheHitRate))
	assert.Equal(t, mt, m.Metrics())
}
