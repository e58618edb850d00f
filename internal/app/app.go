package app

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/context-game/internal/interaction"
	"github.com/nhle/context-game/internal/keys"
	"github.com/nhle/context-game/internal/logging"
	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/report"
	"github.com/nhle/context-game/internal/session"
	"github.com/nhle/context-game/internal/theme"
	"github.com/nhle/context-game/internal/ui"
	"github.com/nhle/context-game/internal/ui/command"
	"github.com/nhle/context-game/internal/ui/contextview"
	"github.com/nhle/context-game/internal/ui/detail"
	"github.com/nhle/context-game/internal/ui/drag"
	"github.com/nhle/context-game/internal/ui/feedbackview"
	helpview "github.com/nhle/context-game/internal/ui/help"
	"github.com/nhle/context-game/internal/ui/itemlist"
	"github.com/nhle/context-game/internal/ui/metricsview"
	"github.com/nhle/context-game/internal/ui/palette"
	"github.com/nhle/context-game/internal/ui/taskselect"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewMain ViewState = iota
	ViewTaskSelect
	ViewDetail
	ViewHelp
	ViewCommand
)

// Focus identifies the pane receiving list keys on the main view.
type Focus int

const (
	FocusPalette Focus = iota
	FocusWindow
)

// Options configures the root model.
type Options struct {
	AddPolicy    interaction.AddPolicy
	ShowContent  bool
	PaletteWidth int
	Logger       *slog.Logger
}

// Model is the root Bubble Tea model. It owns the game session, routes
// input between views and keeps every pane in sync with the session
// snapshot.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	paletteWidth int
	keys         *keys.KeyMap
	logger       *slog.Logger

	session  *session.Session
	resolver *interaction.Resolver
	drag     *drag.Recognizer
	focus    Focus

	palette     palette.Model
	window      contextview.Model
	metrics     metricsview.Model
	feedback    feedbackview.Model
	detail      detail.Model
	helpView    helpview.Model
	commandView command.Model
	taskSelect  taskselect.Model

	fingerprint string
	status      string
	statusLevel slog.Level
	statusSeq   int
	ready       bool
}

// New creates the root model over s.
func New(s *session.Session, opts Options) Model {
	k := keys.DefaultKeyMap()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("session_id", s.ID())

	m := Model{
		currentView:  ViewMain,
		paletteWidth: opts.PaletteWidth,
		keys:         k,
		logger:       logger,
		session:      s,
		resolver:     interaction.New(s, opts.AddPolicy),
		drag:         drag.New(s.Contains),
		palette:      palette.New(k, 40, 20),
		window:       contextview.New(k, 40, 20),
		metrics:      metricsview.New(30, 8),
		feedback:     feedbackview.New(30, 12),
		detail:       detail.New(k, opts.ShowContent, 80, 24),
		helpView:     helpview.New(k, 80, 24),
		commandView:  command.New(80, 24),
		taskSelect:   taskselect.New(80, 24),
	}
	m.palette.SetFocused(true)
	m.refresh()
	return m
}

// Init sets the terminal title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Context Engineering Game")
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.layout.PaletteWidth = m.paletteWidth
		m.ready = true
		m.resize()
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case logging.RecordMsg:
		return m, m.flash(msg.Level, msg.Summary)

	case logging.FadeMsg:
		if msg.Seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case palette.AddItemMsg:
		out := m.resolver.Click(msg.ItemID)
		m.logger.Debug("click", "item_id", msg.ItemID, "outcome", out.String())
		m.refresh()
		return m, nil

	case contextview.RemoveItemMsg:
		m.session.Remove(msg.ItemID)
		m.refresh()
		return m, nil

	case contextview.MoveItemMsg:
		m.moveItem(msg.ItemID, msg.OntoID)
		return m, nil

	case contextview.ClearMsg:
		m.session.Clear()
		m.refresh()
		return m, nil

	case itemlist.OpenDetailMsg:
		m.openDetail(msg.Item)
		return m, nil

	case detail.ToggleMsg:
		if msg.Selected {
			m.session.Remove(msg.ItemID)
		} else {
			m.resolver.Click(msg.ItemID)
		}
		m.refresh()
		if it, ok := m.detail.Item(); ok {
			m.detail.SetItem(it, m.session.Contains(it.ID))
		}
		return m, nil

	case detail.BackMsg:
		m.currentView = ViewMain
		return m, nil

	case taskselect.SelectedMsg:
		m.currentView = ViewMain
		return m, m.switchTask(msg.TaskID)

	case taskselect.CancelMsg:
		m.currentView = ViewMain
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		return m, m.executeCommand(string(msg))

	case command.CancelMsg:
		m.currentView = m.previousView
		return m, nil

	case tea.MouseMsg:
		if m.currentView == ViewMain {
			m.handleMouse(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Text input and forms own every other key.
		if m.currentView == ViewCommand || m.currentView == ViewTaskSelect {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.currentView == ViewMain {
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.Help):
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}
			m.previousView = m.currentView
			m.currentView = ViewHelp
			return m, nil

		case key.Matches(msg, m.keys.Command):
			m.previousView = m.currentView
			m.currentView = ViewCommand
			return m, m.commandView.Focus()

		case key.Matches(msg, m.keys.Back):
			switch m.currentView {
			case ViewHelp:
				m.currentView = m.previousView
				return m, nil
			case ViewMain:
				m.cancelDrag()
				return m, nil
			}

		case key.Matches(msg, m.keys.Tasks):
			if m.currentView == ViewMain {
				return m, m.openTaskSelect()
			}

		case key.Matches(msg, m.keys.Focus):
			if m.currentView == ViewMain {
				m.toggleFocus()
				return m, nil
			}
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewMain:
		if m.focus == FocusWindow {
			m.window, cmd = m.window.Update(msg)
		} else {
			m.palette, cmd = m.palette.Update(msg)
		}
	case ViewTaskSelect:
		m.taskSelect, cmd = m.taskSelect.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	task := m.session.Task()
	header := m.layout.RenderHeader(
		"Context Engineering Game · "+task.Name,
		m.headerStatus(),
	)
	content := m.renderContent()

	style := theme.StatusBarStyle
	text := m.keyHints()
	if m.status != "" {
		text = m.status
		switch {
		case m.statusLevel >= slog.LevelError:
			style = theme.ErrorStyle
		case m.statusLevel >= slog.LevelWarn:
			style = theme.WarnStyle
		}
	}
	statusBar := m.layout.RenderStatusBar(style, text)

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewTaskSelect:
		return m.taskSelect.View()
	case ViewDetail:
		return m.detail.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	default:
		side := lipgloss.JoinVertical(lipgloss.Left, m.metrics.View(), m.feedback.View())
		return lipgloss.JoinHorizontal(lipgloss.Top, m.palette.View(), m.window.View(), side)
	}
}

// headerStatus shows the task category and a short configuration
// fingerprint.
func (m Model) headerStatus() string {
	task := m.session.Task()
	status := string(task.Category)
	if len(m.fingerprint) >= 8 {
		status += " · " + m.fingerprint[:8]
	}
	return status
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | tab complete | esc back"
	case ViewDetail:
		return "esc back | enter add | d remove | j/k scroll"
	case ViewTaskSelect:
		return "enter select | esc cancel"
	default:
		if m.focus == FocusWindow {
			return "q quit | ? help | tab palette | d remove | K/J move | c clear | T tasks"
		}
		return "q quit | ? help | tab window | enter add | i detail | T tasks | : command"
	}
}

// CurrentView reports the active view.
func (m Model) CurrentView() ViewState { return m.currentView }

// Focus reports which main pane has keyboard focus.
func (m Model) Focus() Focus { return m.focus }

// Status returns the status bar message, or "" when key hints are shown.
func (m Model) Status() string { return m.status }

// Session returns the game session.
func (m Model) Session() *session.Session { return m.session }

// refresh pushes the session snapshot into every pane.
func (m *Model) refresh() {
	snap := m.session.Snapshot()

	m.palette.SetItems(m.session.Available())
	m.window.SetItems(snap.Items)
	m.metrics.SetMetrics(snap.Metrics)
	m.feedback.SetFeedback(snap.Feedback, len(snap.Items) == 0)

	fp, err := report.Fingerprint(snap.Task.ID, m.session.IDs())
	if err != nil {
		m.logger.Error("fingerprint failed", "error", err)
	}
	m.fingerprint = fp

	var taskIDs []string
	for _, t := range m.session.Catalog().Tasks() {
		taskIDs = append(taskIDs, t.ID)
	}
	itemIDs := make([]string, 0, len(snap.Task.AvailableItems))
	for _, it := range snap.Task.AvailableItems {
		itemIDs = append(itemIDs, it.ID)
	}
	m.commandView.SetItemIDs(taskIDs, itemIDs)
}

// resize recomputes pane geometry after a terminal resize.
func (m *Model) resize() {
	panes := m.layout.Panes()
	m.palette.SetSize(panes.Palette.Width, panes.Palette.Height)
	m.window.SetSize(panes.Window.Width, panes.Window.Height)
	m.metrics.SetSize(panes.Metrics.Width, panes.Metrics.Height)
	m.feedback.SetSize(panes.Feedback.Width, panes.Feedback.Height)

	w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
	m.detail.SetSize(w, h)
	m.helpView.SetSize(w, h)
	m.commandView.SetSize(w, h)
	m.taskSelect.SetSize(w, h)
}

func (m *Model) toggleFocus() {
	if m.focus == FocusPalette {
		m.focus = FocusWindow
	} else {
		m.focus = FocusPalette
	}
	m.palette.SetFocused(m.focus == FocusPalette)
	m.window.SetFocused(m.focus == FocusWindow)
}

func (m *Model) openDetail(it model.ContextItem) {
	m.previousView = m.currentView
	m.currentView = ViewDetail
	m.detail.SetItem(it, m.session.Contains(it.ID))
}

func (m *Model) openTaskSelect() tea.Cmd {
	m.previousView = m.currentView
	m.currentView = ViewTaskSelect
	return m.taskSelect.Start(m.session.Catalog().Tasks(), m.session.Task().ID)
}

// moveItem swaps the keyboard-selected item into onto's position. The
// cursor follows the moved item.
func (m *Model) moveItem(id, onto string) {
	ids := m.session.IDs()
	if !m.session.Move(slices.Index(ids, id), slices.Index(ids, onto)) {
		m.logger.Warn("move rejected", "item_id", id, "onto_id", onto)
	}
	m.refresh()
	m.window.SelectID(id)
}

// switchTask activates id with an empty window, even when id is already
// the active scenario.
func (m *Model) switchTask(id string) tea.Cmd {
	if err := m.session.SetTask(id); err != nil {
		return m.flash(slog.LevelWarn, err.Error())
	}
	m.cancelDrag()
	m.refresh()
	return m.flash(slog.LevelInfo, fmt.Sprintf("scenario: %s", m.session.Task().Name))
}

// flash shows text in the status bar until FadeDelay passes.
func (m *Model) flash(level slog.Level, text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusLevel = level
	return logging.FadeAfter(m.statusSeq)
}
