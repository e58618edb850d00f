package itemlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/context-game/internal/metrics"
	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/theme"
)

// Item wraps a model.ContextItem so it can be used in a bubbles/list.
type Item struct {
	model.ContextItem
}

// FilterValue returns the string used for fuzzy filtering.
func (i Item) FilterValue() string { return i.Name }

// Title returns the item name for the list.
func (i Item) Title() string { return i.Name }

// Description returns a short summary line for the list.
func (i Item) Description() string {
	parts := []string{i.Type.Label(), metrics.FormatTokens(i.TokenCount) + " tokens"}
	if i.Cacheable {
		parts = append(parts, "cacheable")
	}
	return strings.Join(parts, " | ")
}

// Delegate renders one context item per line: a colored type marker, the
// name and the token count.
type Delegate struct {
	// Numbered prefixes each row with its 1-based position.
	Numbered bool

	// Focused controls whether the cursor row is highlighted.
	Focused bool

	// DragID is the id being dragged, rendered with the drag style.
	DragID string
}

// Height returns the number of lines each item takes.
func (d Delegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d Delegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d Delegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single list item line.
func (d Delegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	item, ok := li.(Item)
	if !ok {
		return
	}

	width := m.Width()
	marker := lipgloss.NewStyle().Foreground(theme.ItemColor(item.Type)).Render("▌")

	prefix := ""
	if d.Numbered {
		prefix = fmt.Sprintf("%d. ", index+1)
	}

	cache := " "
	if item.Cacheable {
		cache = "⚡"
	}
	tokens := theme.DimmedStyle.Render(fmt.Sprintf("%7s %s", metrics.FormatTokens(item.TokenCount), cache))

	// The marker and the style's left padding take three cells.
	lineWidth := max(width-3, 0)
	name := truncate(prefix+item.Name, lineWidth-lipgloss.Width(tokens)-1)
	gap := max(lineWidth-lipgloss.Width(tokens)-lipgloss.Width(name), 1)

	line := name + strings.Repeat(" ", gap) + tokens

	var style lipgloss.Style
	switch {
	case d.DragID != "" && d.DragID == item.ID:
		style = theme.DraggingItemStyle
	case d.Focused && index == m.Index():
		style = theme.SelectedItemStyle
	default:
		style = theme.ListItemStyle
	}

	fmt.Fprint(w, marker+style.Render(line))
}

// truncate shortens s to at most n cells, adding an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > n {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
