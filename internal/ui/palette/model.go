package palette

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/context-game/internal/keys"
	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/ui/itemlist"
)

// AddItemMsg asks the parent to add the item to the context window.
type AddItemMsg struct {
	ItemID string
}

const emptyText = "Every item is in the context window."

// Model is the palette of available items not yet in the window.
type Model struct {
	items itemlist.Model
	keys  *keys.KeyMap
}

// New creates a palette pane.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		items: itemlist.New("Available Items", emptyText, false, width, height),
		keys:  k,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles keys while the palette has focus.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.items.CursorUp()

	case key.Matches(keyMsg, m.keys.Down):
		m.items.CursorDown()

	case key.Matches(keyMsg, m.keys.Add):
		it, ok := m.items.Selected()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return AddItemMsg{ItemID: it.ID}
		}

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

// SetItems replaces the available items.
func (m *Model) SetItems(items []model.ContextItem) {
	m.items.SetItems(items)
	m.items.SetTitle(fmt.Sprintf("Available Items (%d)", len(items)))
}

// Items returns the listed items.
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

// SetSize updates the pane dimensions.
func (m *Model) SetSize(width, height int) { m.items.SetSize(width, height) }

// View renders the palette pane.
func (m Model) View() string { return m.items.View() }
