package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/context-game/internal/theme"
)

// ListTop is the number of rows between a pane's top edge and its first
// list row: the border and the title line.
const ListTop = 2

// Minimum pane widths.
const (
	minPaletteWidth = 24
	minSideWidth    = 30
	metricsHeight   = 8
)

// Rect is a screen region in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Row returns the list row under y, counting from the first row below the
// pane title, or -1 when y is outside the list area.
func (r Rect) Row(y int) int {
	row := y - r.Y - ListTop
	if row < 0 || row >= r.ListHeight() {
		return -1
	}
	return row
}

// ListHeight is the number of list rows that fit in the pane.
func (r Rect) ListHeight() int {
	return max(r.Height-ListTop-1, 0)
}

// InnerWidth is the text width inside the border and padding.
func (r Rect) InnerWidth() int {
	return max(r.Width-4, 0)
}

// Panes holds the four main regions of the game screen.
type Panes struct {
	Palette  Rect
	Window   Rect
	Metrics  Rect
	Feedback Rect
}

// Layout manages the multi-panel terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
	PaletteWidth    int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return max(l.Height-l.HeaderHeight-l.StatusBarHeight, 0)
}

// Panes splits the content area into palette, window, metrics and
// feedback regions. The palette takes PaletteWidth columns (a third of the
// screen when zero), the right column a third, and the window the rest.
func (l Layout) Panes() Panes {
	top := l.HeaderHeight
	height := l.ContentHeight()

	palette := l.PaletteWidth
	if palette <= 0 {
		palette = l.Width / 3
	}
	palette = max(palette, minPaletteWidth)

	side := max(l.Width/3, minSideWidth)
	window := l.Width - palette - side
	if window < minPaletteWidth {
		// Narrow terminal: shrink the outer columns evenly.
		palette = l.Width / 3
		side = l.Width / 3
		window = l.Width - palette - side
	}

	metrics := min(metricsHeight, height)

	return Panes{
		Palette:  Rect{X: 0, Y: top, Width: palette, Height: height},
		Window:   Rect{X: palette, Y: top, Width: window, Height: height},
		Metrics:  Rect{X: palette + window, Y: top, Width: side, Height: metrics},
		Feedback: Rect{X: palette + window, Y: top + metrics, Width: side, Height: height - metrics},
	}
}

// RenderPane frames content to exactly fill r.
func RenderPane(style lipgloss.Style, r Rect, content string) string {
	return style.
		Width(max(r.Width-2, 0)).
		Height(max(r.Height-2, 0)).
		MaxHeight(r.Height).
		Render(content)
}

// RenderHeader renders the top header bar with a title and a right
// aligned status.
func (l Layout) RenderHeader(title string, status string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	statusRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(status)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(statusRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		statusRendered,
	)
}

// RenderStatusBar renders the bottom status bar. style is normally
// theme.StatusBarStyle, or a warning style for log lines.
func (l Layout) RenderStatusBar(style lipgloss.Style, text string) string {
	rendered := style.Render(text)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}
