package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/context-game/internal/theme"
)

// CommandMsg is emitted when the user executes a command.
type CommandMsg string

// CancelMsg is emitted when the user closes the palette without a command.
type CancelMsg struct{}

// Command names.
const (
	Task   = "task"
	Tasks  = "tasks"
	Add    = "add"
	Remove = "remove"
	Clear  = "clear"
	Report = "report"
	Help   = "help"
	Quit   = "quit"
)

// Names lists every command, for completion and the palette hint.
var Names = []string{Task, Tasks, Add, Remove, Clear, Report, Help, Quit}

var takesArg = map[string]bool{Task: true, Add: true, Remove: true}

var aliases = map[string]string{
	"q":   Quit,
	"rm":  Remove,
	"del": Remove,
	"?":   Help,
}

// ErrUnknownCommand is returned by Parse for a name not in Names.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a parsed palette line.
type Command struct {
	Name string
	Arg  string
}

// Parse splits a palette line into a command and its argument.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty", ErrUnknownCommand)
	}

	name := strings.ToLower(fields[0])
	if alias, ok := aliases[name]; ok {
		name = alias
	}

	known := false
	for _, n := range Names {
		if n == name {
			known = true
			break
		}
	}
	if !known {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	cmd := Command{Name: name}
	if len(fields) > 1 {
		cmd.Arg = fields[1]
	}
	if takesArg[name] && cmd.Arg == "" {
		return Command{}, fmt.Errorf("%s: missing id", name)
	}
	if len(fields) > 2 {
		return Command{}, fmt.Errorf("%s: too many arguments", name)
	}
	return cmd, nil
}

// Model is the command palette view.
type Model struct {
	input  textinput.Model
	width  int
	height int
}

// New creates a new command palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "type a command..."
	ti.Prompt = ": "
	ti.ShowSuggestions = true
	ti.SetSuggestions(Names)
	ti.Focus()
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			cmd := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if cmd != "" {
				return m, func() tea.Msg {
					return CommandMsg(cmd)
				}
			}
			return m, func() tea.Msg { return CancelMsg{} }

		case "esc":
			m.input.Reset()
			return m, func() tea.Msg { return CancelMsg{} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// SetItemIDs adds "<command> <id>" completions for the given ids.
func (m *Model) SetItemIDs(taskIDs, itemIDs []string) {
	suggestions := append([]string(nil), Names...)
	for _, id := range taskIDs {
		suggestions = append(suggestions, Task+" "+id)
	}
	for _, id := range itemIDs {
		suggestions = append(suggestions, Add+" "+id, Remove+" "+id)
	}
	m.input.SetSuggestions(suggestions)
}

// View renders the command palette.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	title := titleStyle.Render("Command Palette")
	input := m.input.View()
	hint := theme.HelpStyle.Render(strings.Join(Names, " · "))

	content := lipgloss.JoinVertical(lipgloss.Left, title, input, "", hint)

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Render(content)
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}
