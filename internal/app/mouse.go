package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/context-game/internal/interaction"
	"github.com/nhle/context-game/internal/ui/drag"
)

// wheelStep is the number of feedback lines scrolled per wheel notch.
const wheelStep = 3

// hitTest maps a screen cell to the pane and item row beneath it.
func (m Model) hitTest(x, y int) drag.Hit {
	panes := m.layout.Panes()

	switch {
	case panes.Palette.Contains(x, y):
		hit := drag.Hit{Zone: drag.ZonePalette}
		if it, ok := m.palette.ItemAt(panes.Palette.Row(y)); ok {
			hit.ItemID = it.ID
		}
		return hit

	case panes.Window.Contains(x, y):
		hit := drag.Hit{Zone: drag.ZoneWindow}
		if it, ok := m.window.ItemAt(panes.Window.Row(y)); ok {
			hit.ItemID = it.ID
		}
		return hit
	}

	return drag.Hit{}
}

// handleMouse feeds the drag recognizer and applies the gestures it
// reports.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown) {
		if m.layout.Panes().Feedback.Contains(msg.X, msg.Y) {
			if msg.Button == tea.MouseButtonWheelUp {
				m.feedback.ScrollUp(wheelStep)
			} else {
				m.feedback.ScrollDown(wheelStep)
			}
		}
		return
	}

	ev, ok := m.drag.Handle(msg, m.hitTest(msg.X, msg.Y))
	if ok {
		switch ev.Kind {
		case drag.KindClick:
			m.click(ev)
		case drag.KindOver:
			out := m.resolver.HandleDragOver(ev.DragOver())
			m.logger.Debug("drag over",
				"active_id", ev.ActiveID, "over_id", ev.OverID, "outcome", out.String())
			if out != interaction.OutcomeNone {
				m.refresh()
			}
		case drag.KindEnd:
			m.endDrag(ev.DragEnd())
		}
	}

	m.syncDrag()
}

// click handles a press and release on the same row.
func (m *Model) click(ev drag.Event) {
	switch ev.Zone {
	case drag.ZonePalette:
		out := m.resolver.Click(ev.ActiveID)
		m.logger.Debug("click", "item_id", ev.ActiveID, "outcome", out.String())
		m.refresh()
	case drag.ZoneWindow:
		if m.focus != FocusWindow {
			m.toggleFocus()
		}
		m.window.SelectID(ev.ActiveID)
	}
}

// endDrag resolves a mouse drop.
func (m *Model) endDrag(ev interaction.DragEnd) {
	out, err := m.resolver.HandleDragEnd(ev)
	if err != nil {
		m.logger.Error("drop rejected",
			"active_id", ev.ActiveID, "over_id", ev.OverID, "error", err)
	} else {
		m.logger.Debug("drag end",
			"active_id", ev.ActiveID, "over_id", ev.OverID, "outcome", out.String())
	}
	m.refresh()
}

// cancelDrag abandons the current gesture.
func (m *Model) cancelDrag() {
	m.drag.Cancel()
	m.syncDrag()
}

// syncDrag mirrors the recognizer state into the list highlights.
func (m *Model) syncDrag() {
	id := ""
	if m.drag.Dragging() {
		id = m.drag.ActiveID()
	}
	m.palette.SetDragID(id)
	m.window.SetDragID(id)
	m.window.SetDropActive(m.drag.Dragging() && m.drag.OverID() != "")
}
