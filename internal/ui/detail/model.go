package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/context-game/internal/keys"
	"github.com/nhle/context-game/internal/metrics"
	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/theme"
)

// BackMsg signals the parent to navigate back to the main view.
type BackMsg struct{}

// ToggleMsg asks the parent to add the item to the window, or remove it
// when it is already selected.
type ToggleMsg struct {
	ItemID   string
	Selected bool
}

// Model is the context item detail view.
type Model struct {
	item        *model.ContextItem
	selected    bool
	showContent bool
	viewport    viewport.Model
	keys        *keys.KeyMap
	width       int
	height      int
}

// New creates a new detail view model.
func New(keys *keys.KeyMap, showContent bool, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport:    vp,
		keys:        keys,
		showContent: showContent,
		width:       width,
		height:      height,
	}
}

// Init returns the initial command for the detail view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Detail):
			return m, func() tea.Msg {
				return BackMsg{}
			}

		case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.Remove):
			if m.item == nil {
				return m, nil
			}
			id, selected := m.item.ID, m.selected
			return m, func() tea.Msg {
				return ToggleMsg{ItemID: id, Selected: selected}
			}
		}
	}

	// Delegate to viewport for scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	if m.item == nil {
		emptyStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray)
		return emptyStyle.Render("No item selected")
	}

	return theme.DetailPanelStyle.
		Width(m.width - 2).
		Render(m.viewport.View())
}

// renderContent builds the full detail content string for the viewport.
func (m Model) renderContent() string {
	if m.item == nil {
		return ""
	}

	it := m.item
	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	sections = append(sections, titleStyle.Render(it.Name))

	typeBadge := theme.ItemTypeStyle(it.Type).Render(strings.ToUpper(it.Type.Label()))
	state := theme.DimmedStyle.Render("available")
	if m.selected {
		state = lipgloss.NewStyle().Foreground(theme.ColorGreen).Render("in context window")
	}
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, typeBadge, "  ", state))
	sections = append(sections, "")

	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	valStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite)

	cacheable := "no"
	if it.Cacheable {
		cacheable = "yes"
	}
	cost := float64(it.TokenCount) / 1_000_000 * metrics.CostPerMillionTokens

	for _, row := range [][2]string{
		{"ID:", it.ID},
		{"Tokens:", metrics.FormatTokens(it.TokenCount)},
		{"Cacheable:", cacheable},
		{"Cost:", metrics.FormatCost(cost)},
	} {
		sections = append(sections, fmt.Sprintf("%-11s %s", metaStyle.Render(row[0]), valStyle.Render(row[1])))
	}

	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	separator := sepStyle.Render(strings.Repeat("─", max(min(m.width-6, 80), 0)))
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	bodyStyle := lipgloss.NewStyle().Width(max(m.width-6, 10))

	sections = append(sections, "", separator, "", headerStyle.Render("Description"))
	desc := it.Description
	if desc == "" {
		desc = lipgloss.NewStyle().
			Foreground(theme.ColorGray).
			Italic(true).
			Render("No description")
	}
	sections = append(sections, bodyStyle.Render(desc))

	if m.showContent && it.Content != "" {
		sections = append(sections, "", separator, "", headerStyle.Render("Content"))
		sections = append(sections, bodyStyle.Render(highlightContent(*it)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetItem updates the item being displayed and re-renders the content.
func (m *Model) SetItem(item model.ContextItem, selected bool) {
	m.item = &item
	m.selected = selected
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// Item returns the displayed item, if any.
func (m Model) Item() (model.ContextItem, bool) {
	if m.item == nil {
		return model.ContextItem{}, false
	}
	return *m.item, true
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 6
	m.viewport.Height = height - 4
	if m.item != nil {
		m.viewport.SetContent(m.renderContent())
	}
}
