package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/context-game/internal/keys"
	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/theme"
)

// Model is the help overlay view: key bindings, mouse gestures and the
// legend of item and feedback markers.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	width  int
	height int
}

// New creates a new help view model.
func New(keys *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the help overlay.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)
	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginTop(1)

	m.help.Width = m.width - 4
	m.help.ShowAll = true

	mouse := theme.HelpStyle.Render(strings.Join([]string{
		"click an available item to add it",
		"drag an available item onto the context window to add it",
		"drag a context item onto another to reorder",
		"scroll the feedback pane with the wheel",
	}, "\n"))

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Keyboard Shortcuts"),
		m.help.View(m.keys),
		sectionStyle.Render("Mouse"),
		mouse,
		sectionStyle.Render("Legend"),
		legend(),
	)

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Height(m.height - 4).
		Render(content)
}

func legend() string {
	var types []string
	for _, t := range model.ItemTypes {
		types = append(types, lipgloss.NewStyle().Foreground(theme.ItemColor(t)).Render("▌")+" "+t.Label())
	}

	var fb []string
	for _, t := range []model.FeedbackType{
		model.FeedbackWarning, model.FeedbackInsight, model.FeedbackTip, model.FeedbackTradeoff,
	} {
		fb = append(fb, theme.FeedbackIcon(t)+" "+theme.FeedbackStyle(t).Render(string(t)))
	}

	var sev []string
	for _, s := range []model.Severity{model.SeverityLow, model.SeverityMedium, model.SeverityHigh} {
		sev = append(sev, theme.SeverityStyle(s).Render("●")+" "+string(s))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(types[:len(types)/2], "   "),
		strings.Join(types[len(types)/2:], "   "),
		strings.Join(fb, "   "),
		strings.Join(sev, "   ")+"   ⚡ cacheable",
	)
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
