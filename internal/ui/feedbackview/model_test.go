package feedbackview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/ui/feedbackview"
)

func TestView_EmptyHints(t *testing.T) {
	m := feedbackview.New(120, 20)

	m.SetFeedback(nil, true)
	assert.Contains(t, m.View(), "Add items to your context window")

	m.SetFeedback(nil, false)
	assert.Contains(t, m.View(), "No issues found")
}

func TestView_Entries(t *testing.T) {
	m := feedbackview.New(120, 20)
	m.SetFeedback([]model.Feedback{{
		Type:         model.FeedbackWarning,
		Severity:     model.SeverityHigh,
		Message:      "Too many tools.",
		RelatedItems: []string{"tool-1", "tool-2"},
	}}, false)

	out := m.View()
	assert.Contains(t, out, "AI Feedback & Analysis")
	assert.Contains(t, out, "WARNING")
	assert.Contains(t, out, "high")
	assert.Contains(t, out, "Too many tools.")
	assert.Contains(t, out, "related: tool-1, tool-2")
	assert.Len(t, m.Entries(), 1)
}
