// Package metricsview renders the performance metrics pane with gauges
// for the token budget, cache rate and accuracy.
package metricsview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/context-game/internal/metrics"
	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/theme"
	"github.com/nhle/context-game/internal/ui"
)

const labelWidth = 13

// Model is the metrics pane.
type Model struct {
	metrics model.Metrics
	gauge   progress.Model
	width   int
	height  int
}

// New creates a metrics pane.
func New(width, height int) Model {
	m := Model{
		gauge: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.SetSize(width, height)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the pane is redrawn from SetMetrics.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// SetMetrics replaces the displayed metrics.
func (m *Model) SetMetrics(mt model.Metrics) {
	m.metrics = mt
}

// Metrics returns the displayed metrics.
func (m Model) Metrics() model.Metrics { return m.metrics }

// SetSize updates the pane dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	r := ui.Rect{Width: width, Height: height}
	m.gauge.Width = max(r.InnerWidth()-labelWidth-9, 4)
}

// View renders the metrics pane.
func (m Model) View() string {
	mt := m.metrics
	lines := []string{
		theme.PaneTitleStyle.Render("Performance Metrics"),
		m.row("Tokens", metrics.FormatTokens(mt.TotalTokens), m.gauge.ViewAs(metrics.BudgetUsage(mt))),
		m.row("Est. Cost", metrics.FormatCost(mt.EstimatedCost), ""),
		m.row("Est. Latency", metrics.FormatLatency(mt.EstimatedLatency), ""),
		m.row("Cache Rate", metrics.FormatPercent(mt.CacheHitRate), m.gauge.ViewAs(mt.CacheHitRate)),
		m.row("Accuracy", fmt.Sprintf("%d%%", mt.AccuracyScore), m.gauge.ViewAs(float64(mt.AccuracyScore)/100)),
	}

	return ui.RenderPane(theme.PaneStyle, ui.Rect{Width: m.width, Height: m.height}, strings.Join(lines, "\n"))
}

func (m Model) row(label, value, gauge string) string {
	l := theme.DimmedStyle.Width(labelWidth).Render(label)
	v := lipgloss.NewStyle().Bold(true).Width(8).Render(value)
	if gauge == "" {
		return l + v
	}
	return l + v + " " + gauge
}
