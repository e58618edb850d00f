// Package itemlist is the scrolling list of context items shared by the
// palette and the context window panes.
package itemlist

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/theme"
	"github.com/nhle/context-game/internal/ui"
)

// Model is a framed pane holding a list of context items. Width and
// height are the outer pane dimensions.
type Model struct {
	list     list.Model
	delegate Delegate
	title    string
	empty    string
	drop     bool
	width    int
	height   int
}

// New creates an item list pane.
func New(title, empty string, numbered bool, width, height int) Model {
	d := Delegate{Numbered: numbered}
	l := list.New([]list.Item{}, d, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	m := Model{
		list:     l,
		delegate: d,
		title:    title,
		empty:    empty,
	}
	m.SetSize(width, height)
	return m
}

// SetItems replaces the listed items. The cursor stays on the same index,
// clamped to the new length.
func (m *Model) SetItems(items []model.ContextItem) {
	idx := m.list.Index()
	li := make([]list.Item, len(items))
	for i, it := range items {
		li[i] = Item{ContextItem: it}
	}
	m.list.SetItems(li)
	if len(li) > 0 {
		m.list.Select(min(idx, len(li)-1))
	}
}

// Items returns the listed items in order.
func (m Model) Items() []model.ContextItem {
	out := make([]model.ContextItem, 0, len(m.list.Items()))
	for _, li := range m.list.Items() {
		if it, ok := li.(Item); ok {
			out = append(out, it.ContextItem)
		}
	}
	return out
}

// Len returns the number of items.
func (m Model) Len() int { return len(m.list.Items()) }

// Selected returns the item under the cursor.
func (m Model) Selected() (model.ContextItem, bool) {
	it, ok := m.list.SelectedItem().(Item)
	if !ok {
		return model.ContextItem{}, false
	}
	return it.ContextItem, true
}

// Index returns the cursor position.
func (m Model) Index() int { return m.list.Index() }

// Select moves the cursor to index i.
func (m *Model) Select(i int) { m.list.Select(i) }

// SelectID moves the cursor to the item with id, if listed.
func (m *Model) SelectID(id string) {
	for i, li := range m.list.Items() {
		if it, ok := li.(Item); ok && it.ID == id {
			m.list.Select(i)
			return
		}
	}
}

// CursorUp moves the cursor one row up.
func (m *Model) CursorUp() { m.list.CursorUp() }

// CursorDown moves the cursor one row down.
func (m *Model) CursorDown() { m.list.CursorDown() }

// ItemAt maps a visible list row to its item, accounting for paging.
func (m Model) ItemAt(row int) (model.ContextItem, bool) {
	if row < 0 || row >= m.list.Paginator.PerPage {
		return model.ContextItem{}, false
	}
	i := m.list.Paginator.Page*m.list.Paginator.PerPage + row
	items := m.list.Items()
	if i >= len(items) {
		return model.ContextItem{}, false
	}
	it, ok := items[i].(Item)
	return it.ContextItem, ok
}

// SetFocused toggles cursor highlighting and the focused border.
func (m *Model) SetFocused(focused bool) {
	m.delegate.Focused = focused
	m.list.SetDelegate(m.delegate)
}

// Focused reports whether the pane has keyboard focus.
func (m Model) Focused() bool { return m.delegate.Focused }

// SetDragID marks the item being dragged.
func (m *Model) SetDragID(id string) {
	m.delegate.DragID = id
	m.list.SetDelegate(m.delegate)
}

// SetDropActive highlights the pane as a drop target.
func (m *Model) SetDropActive(active bool) { m.drop = active }

// SetTitle changes the pane heading.
func (m *Model) SetTitle(title string) { m.title = title }

// SetSize updates the pane dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	r := ui.Rect{Width: width, Height: height}
	m.list.SetSize(r.InnerWidth(), r.ListHeight())
}

// View renders the framed pane.
func (m Model) View() string {
	title := theme.PaneTitleStyle.Render(m.title)

	body := m.list.View()
	if m.Len() == 0 {
		body = lipgloss.NewStyle().
			Width(max(m.width-4, 0)).
			Foreground(theme.ColorGray).
			Italic(true).
			Render(m.empty)
	}

	style := theme.PaneStyle
	switch {
	case m.drop:
		style = theme.DropZoneStyle
	case m.delegate.Focused:
		style = theme.FocusedPaneStyle
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, body)
	return ui.RenderPane(style, ui.Rect{Width: m.width, Height: m.height}, content)
}

// OpenDetailMsg asks the parent to show the detail view for Item.
type OpenDetailMsg struct {
	Item model.ContextItem
}
