// Package feedbackview renders the feedback pane: one entry per fired
// rule with its type, severity and message.
package feedbackview

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/theme"
	"github.com/nhle/context-game/internal/ui"
)

const emptyText = "Add items to your context window to receive feedback on your configuration..."

// Model is the feedback pane.
type Model struct {
	entries  []model.Feedback
	empty    bool
	viewport viewport.Model
	width    int
	height   int
}

// New creates a feedback pane.
func New(width, height int) Model {
	m := Model{viewport: viewport.New(0, 0), empty: true}
	m.SetSize(width, height)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update forwards scrolling messages to the viewport.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// SetFeedback replaces the entries. windowEmpty selects the hint shown
// when there are no entries.
func (m *Model) SetFeedback(entries []model.Feedback, windowEmpty bool) {
	m.entries = entries
	m.empty = windowEmpty
	m.viewport.SetContent(m.renderEntries())
	m.viewport.GotoTop()
}

// Entries returns the displayed entries.
func (m Model) Entries() []model.Feedback { return m.entries }

// ScrollUp scrolls the entries by n lines.
func (m *Model) ScrollUp(n int) { m.viewport.LineUp(n) }

// ScrollDown scrolls the entries by n lines.
func (m *Model) ScrollDown(n int) { m.viewport.LineDown(n) }

// SetSize updates the pane dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	r := ui.Rect{Width: width, Height: height}
	m.viewport.Width = r.InnerWidth()
	m.viewport.Height = r.ListHeight()
	m.viewport.SetContent(m.renderEntries())
}

// View renders the feedback pane.
func (m Model) View() string {
	title := theme.PaneTitleStyle.Render("AI Feedback & Analysis")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View())
	return ui.RenderPane(theme.PaneStyle, ui.Rect{Width: m.width, Height: m.height}, content)
}

func (m Model) renderEntries() string {
	width := max(m.viewport.Width, 1)
	hint := lipgloss.NewStyle().Width(width).Foreground(theme.ColorGray).Italic(true)

	if len(m.entries) == 0 {
		if m.empty {
			return hint.Render(emptyText)
		}
		return hint.Render("No issues found with this configuration.")
	}

	blocks := make([]string, 0, len(m.entries))
	for _, fb := range m.entries {
		blocks = append(blocks, renderEntry(fb, width))
	}
	return strings.Join(blocks, "\n\n")
}

func renderEntry(fb model.Feedback, width int) string {
	head := theme.FeedbackIcon(fb.Type) + " " +
		theme.FeedbackStyle(fb.Type).Render(strings.ToUpper(string(fb.Type))) + " " +
		theme.SeverityStyle(fb.Severity).Render("●") + " " +
		theme.DimmedStyle.Render(string(fb.Severity))

	body := lipgloss.NewStyle().
		Width(width).
		PaddingLeft(2).
		Render(fb.Message)

	if len(fb.RelatedItems) > 0 {
		related := theme.DimmedStyle.
			Width(width).
			PaddingLeft(2).
			Render("related: " + strings.Join(fb.RelatedItems, ", "))
		return lipgloss.JoinVertical(lipgloss.Left, head, body, related)
	}
	return lipgloss.JoinVertical(lipgloss.Left, head, body)
}
