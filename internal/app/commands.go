package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/context-game/internal/report"
	"github.com/nhle/context-game/internal/ui/command"
)

// executeCommand handles a line from the command palette.
func (m *Model) executeCommand(line string) tea.Cmd {
	c, err := command.Parse(line)
	if err != nil {
		return m.flash(slog.LevelWarn, err.Error())
	}
	m.logger.Debug("command", "name", c.Name, "arg", c.Arg)

	switch c.Name {
	case command.Task:
		return m.switchTask(c.Arg)

	case command.Tasks:
		return m.openTaskSelect()

	case command.Add:
		if m.session.Contains(c.Arg) {
			return m.flash(slog.LevelWarn, fmt.Sprintf("add: %s is already in the window", c.Arg))
		}
		if !m.session.AddByID(c.Arg) {
			return m.flash(slog.LevelWarn, fmt.Sprintf("add: no item %q in this scenario", c.Arg))
		}
		m.refresh()
		return nil

	case command.Remove:
		if !m.session.Remove(c.Arg) {
			return m.flash(slog.LevelWarn, fmt.Sprintf("remove: %s is not in the window", c.Arg))
		}
		m.refresh()
		return nil

	case command.Clear:
		m.session.Clear()
		m.refresh()
		return nil

	case command.Report:
		r, err := report.Build(m.session.Snapshot())
		if err != nil {
			m.logger.Error("report failed", "error", err)
			return m.flash(slog.LevelError, err.Error())
		}
		return m.flash(slog.LevelInfo, fmt.Sprintf("%s · %d items · %d tokens · %s",
			r.TaskID, len(r.Items), r.Metrics.TotalTokens, r.Fingerprint))

	case command.Help:
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return nil

	case command.Quit:
		return tea.Quit
	}

	return nil
}
