// Package taskselect is the scenario picker shown with T.
package taskselect

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/theme"
)

// SelectedMsg is dispatched when the user picks a task.
type SelectedMsg struct {
	TaskID string
}

// CancelMsg is dispatched when the user closes the picker.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	taskID string
}

// Model is the Bubble Tea model for the task picker.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	tasks  []model.Task
	width  int
	height int
}

// New creates a task picker model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start builds the form over tasks with current preselected.
func (m *Model) Start(tasks []model.Task, current string) tea.Cmd {
	m.tasks = tasks
	m.fb.taskID = current
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the picker.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		m.form = nil
		return m, func() tea.Msg { return CancelMsg{} }
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		id := m.fb.taskID
		m.form = nil
		return m, func() tea.Msg { return SelectedMsg{TaskID: id} }
	}
	if m.form.State == huh.StateAborted {
		m.form = nil
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the picker.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("Select Scenario") + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// Active reports whether the form is open.
func (m Model) Active() bool { return m.form != nil }

// SetSize updates the picker dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil {
		m.form = m.form.WithWidth(m.formWidth()).WithHeight(m.formHeight())
	}
}

func (m *Model) buildForm() *huh.Form {
	opts := make([]huh.Option[string], 0, len(m.tasks))
	for _, t := range m.tasks {
		opts = append(opts, huh.NewOption(optionLabel(t), t.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Scenario").
				Options(opts...).
				Value(&m.fb.taskID).
				DescriptionFunc(func() string {
					return m.describe(m.fb.taskID)
				}, &m.fb.taskID),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m *Model) describe(id string) string {
	for _, t := range m.tasks {
		if t.ID != id {
			continue
		}
		desc := "Goal: " + t.Description
		if oc := t.OptimalConfig; oc != nil {
			desc += fmt.Sprintf("\nTarget: %d-%d tokens, cache rate ≥ %.0f%%",
				oc.TokenRange[0], oc.TokenRange[1], oc.CacheRateMin*100)
		}
		return desc
	}
	return ""
}

func optionLabel(t model.Task) string {
	return fmt.Sprintf("%s (%s, %d items)", t.Name, t.Category, len(t.AvailableItems))
}

func (m *Model) formWidth() int {
	return max(m.width-4, 20)
}

func (m *Model) formHeight() int {
	return max(m.height-4, 8)
}
