// Package contextview renders the context window pane: the ordered
// selection of items, reorderable by keyboard or drag.
package contextview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/context-game/internal/keys"
	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/ui/itemlist"
)

// RemoveItemMsg asks the parent to remove the item from the window.
type RemoveItemMsg struct {
	ItemID string
}

// MoveItemMsg asks the parent to move ItemID to the position of OntoID.
// It is resolved like a drag released over the neighbouring row.
type MoveItemMsg struct {
	ItemID string
	OntoID string
}

// ClearMsg asks the parent to empty the window.
type ClearMsg struct{}

const emptyText = "Drag items here or click items on the left"

// Model is the context window pane.
type Model struct {
	items itemlist.Model
	keys  *keys.KeyMap
}

// New creates a context window pane.
func New(k *keys.KeyMap, width, height int) Model {
	m := Model{
		items: itemlist.New("", emptyText, true, width, height),
		keys:  k,
	}
	m.SetItems(nil)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles keys while the window has focus.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.MoveUp):
		return m, m.moveCmd(-1)

	case key.Matches(keyMsg, m.keys.MoveDown):
		return m, m.moveCmd(1)

	case key.Matches(keyMsg, m.keys.Up):
		m.items.CursorUp()

	case key.Matches(keyMsg, m.keys.Down):
		m.items.CursorDown()

	case key.Matches(keyMsg, m.keys.Remove):
		it, ok := m.items.Selected()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return RemoveItemMsg{ItemID: it.ID}
		}

	case key.Matches(keyMsg, m.keys.Clear):
		if m.items.Len() == 0 {
			return m, nil
		}
		return m, func() tea.Msg { return ClearMsg{} }

	case key.Matches(keyMsg, m.keys.Detail):
		it, ok := m.items.Selected()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return itemlist.OpenDetailMsg{Item: it}
		}
	}

	return m, nil
}

// moveCmd targets the neighbour delta rows away from the cursor.
func (m Model) moveCmd(delta int) tea.Cmd {
	items := m.items.Items()
	from := m.items.Index()
	to := from + delta
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil
	}
	moved, onto := items[from].ID, items[to].ID
	return func() tea.Msg {
		return MoveItemMsg{ItemID: moved, OntoID: onto}
	}
}

// SetItems replaces the window contents.
func (m *Model) SetItems(items []model.ContextItem) {
	m.items.SetItems(items)
	m.items.SetTitle(fmt.Sprintf("Context Window (%d items)", len(items)))
}

// Items returns the listed items in window order.
func (m Model) Items() []model.ContextItem { return m.items.Items() }

// Selected returns the item under the cursor.
func (m Model) Selected() (model.ContextItem, bool) { return m.items.Selected() }

// ItemAt maps a list row to an item.
func (m Model) ItemAt(row int) (model.ContextItem, bool) { return m.items.ItemAt(row) }

// SelectID moves the cursor to id.
func (m *Model) SelectID(id string) { m.items.SelectID(id) }

// SetFocused toggles keyboard focus.
func (m *Model) SetFocused(focused bool) { m.items.SetFocused(focused) }

// SetDragID marks the item being dragged.
func (m *Model) SetDragID(id string) { m.items.SetDragID(id) }

// SetDropActive highlights the window as a drop target.
func (m *Model) SetDropActive(active bool) { m.items.SetDropActive(active) }

// SetSize updates the pane dimensions.
func (m *Model) SetSize(width, height int) { m.items.SetSize(width, height) }

// View renders the context window pane.
func (m Model) View() string { return m.items.View() }
