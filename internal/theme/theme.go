package theme

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/context-game/internal/model"
)

// palette is the set of colors every style is built from.
type palette struct {
	Blue, Teal, Green, Yellow, Red, Orange, Magenta lipgloss.AdaptiveColor
	Gray, White, Subtle, Border                     lipgloss.AdaptiveColor
}

// Adaptive color pairs (dark terminal value, light terminal value).
var defaultPalette = palette{
	Blue:    lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"},
	Teal:    lipgloss.AdaptiveColor{Dark: "#38D9A9", Light: "#2C7A7B"},
	Green:   lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"},
	Yellow:  lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"},
	Red:     lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"},
	Orange:  lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"},
	Magenta: lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"},
	Gray:    lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"},
	White:   lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"},
	Subtle:  lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"},
	Border:  lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"},
}

// monoPalette keeps only foreground, gray and border tones. Focus and
// drop targets stay readable through border shape and weight.
var monoPalette = palette{
	Blue:    defaultPalette.White,
	Teal:    defaultPalette.White,
	Green:   defaultPalette.White,
	Yellow:  defaultPalette.White,
	Red:     defaultPalette.White,
	Orange:  defaultPalette.White,
	Magenta: defaultPalette.White,
	Gray:    defaultPalette.Gray,
	White:   defaultPalette.White,
	Subtle:  defaultPalette.Subtle,
	Border:  defaultPalette.Border,
}

// ErrUnknownTheme is returned by Apply for a name with no palette.
var ErrUnknownTheme = errors.New("unknown theme")

// Current palette colors. Apply reassigns them.
var (
	ColorBlue    lipgloss.AdaptiveColor
	ColorTeal    lipgloss.AdaptiveColor
	ColorGreen   lipgloss.AdaptiveColor
	ColorYellow  lipgloss.AdaptiveColor
	ColorRed     lipgloss.AdaptiveColor
	ColorOrange  lipgloss.AdaptiveColor
	ColorMagenta lipgloss.AdaptiveColor
	ColorGray    lipgloss.AdaptiveColor
	ColorWhite   lipgloss.AdaptiveColor
	ColorSubtle  lipgloss.AdaptiveColor
	ColorBorder  lipgloss.AdaptiveColor
)

var (
	// HeaderStyle is used for top-level section headers and the application title.
	HeaderStyle lipgloss.Style

	// StatusBarStyle is used for the bottom status bar.
	StatusBarStyle lipgloss.Style

	// DetailPanelStyle wraps the detail view content area.
	DetailPanelStyle lipgloss.Style

	// PaneStyle frames one of the four main panes.
	PaneStyle lipgloss.Style

	// FocusedPaneStyle frames the pane that receives keyboard input.
	FocusedPaneStyle lipgloss.Style

	// DropZoneStyle frames the context window while something is dragged
	// over it.
	DropZoneStyle lipgloss.Style

	// PaneTitleStyle is the heading inside each pane.
	PaneTitleStyle lipgloss.Style

	// ListItemStyle is the base style for items in a list.
	ListItemStyle lipgloss.Style

	// SelectedItemStyle highlights the currently focused list item.
	SelectedItemStyle lipgloss.Style

	// DraggingItemStyle marks the item being dragged.
	DraggingItemStyle lipgloss.Style

	// HelpStyle is used for keyboard shortcut hints and help text.
	HelpStyle lipgloss.Style

	// DimmedStyle is used for secondary text such as token counts.
	DimmedStyle lipgloss.Style

	// WarnStyle and ErrorStyle color log lines in the status bar.
	WarnStyle  lipgloss.Style
	ErrorStyle lipgloss.Style
)

func init() {
	use(defaultPalette)
}

// Apply switches every color and style to the named theme. It must run
// before any view is built, since views copy styles when constructed.
func Apply(name string) error {
	switch name {
	case model.ThemeDefault, "":
		use(defaultPalette)
	case model.ThemeMono:
		use(monoPalette)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return nil
}

func use(p palette) {
	ColorBlue = p.Blue
	ColorTeal = p.Teal
	ColorGreen = p.Green
	ColorYellow = p.Yellow
	ColorRed = p.Red
	ColorOrange = p.Orange
	ColorMagenta = p.Magenta
	ColorGray = p.Gray
	ColorWhite = p.White
	ColorSubtle = p.Subtle
	ColorBorder = p.Border

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWhite).
		Background(ColorBlue).
		Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(ColorSubtle).
		Padding(0, 1)

	DetailPanelStyle = lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PaneStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	FocusedPaneStyle = PaneStyle.BorderForeground(ColorOrange)

	DropZoneStyle = PaneStyle.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorGreen)

	PaneTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWhite)

	ListItemStyle = lipgloss.NewStyle().
		PaddingLeft(2)

	SelectedItemStyle = lipgloss.NewStyle().
		PaddingLeft(1).
		Bold(true).
		Foreground(ColorBlue).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorBlue)

	DraggingItemStyle = lipgloss.NewStyle().
		PaddingLeft(1).
		Italic(true).
		Foreground(ColorOrange).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorOrange)

	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorGray).
		Italic(true)

	DimmedStyle = lipgloss.NewStyle().
		Foreground(ColorGray)

	WarnStyle = StatusBarStyle.Foreground(ColorYellow)
	ErrorStyle = StatusBarStyle.Foreground(ColorRed).Bold(true)
}

// ItemColor returns the accent color for an item type.
func ItemColor(t model.ItemType) lipgloss.AdaptiveColor {
	switch t {
	case model.ItemTypeSystemPrompt, model.ItemTypeUserMessage,
		model.ItemTypeInstructions, model.ItemTypeDomainKnowledge:
		return ColorBlue
	case model.ItemTypeDoc:
		return ColorTeal
	case model.ItemTypeTool:
		return ColorOrange
	case model.ItemTypeMemoryFile:
		return ColorMagenta
	default:
		return ColorGray
	}
}

// ItemTypeStyle returns a color-coded badge style for an item type.
func ItemTypeStyle(t model.ItemType) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ItemColor(t))
}

// FeedbackIcon returns the marker shown before a feedback entry.
func FeedbackIcon(t model.FeedbackType) string {
	switch t {
	case model.FeedbackWarning:
		return "⚠️"
	case model.FeedbackInsight:
		return "💡"
	case model.FeedbackTip:
		return "✨"
	case model.FeedbackTradeoff:
		return "⚖️"
	default:
		return "•"
	}
}

// FeedbackStyle returns the label style for a feedback type.
func FeedbackStyle(t model.FeedbackType) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch t {
	case model.FeedbackWarning:
		return base.Foreground(ColorRed)
	case model.FeedbackInsight:
		return base.Foreground(ColorBlue)
	case model.FeedbackTip:
		return base.Foreground(ColorGreen)
	case model.FeedbackTradeoff:
		return base.Foreground(ColorMagenta)
	default:
		return base.Foreground(ColorGray)
	}
}

// SeverityStyle returns the color of the severity dot.
func SeverityStyle(s model.Severity) lipgloss.Style {
	base := lipgloss.NewStyle()

	switch s {
	case model.SeverityLow:
		return base.Foreground(ColorGreen)
	case model.SeverityMedium:
		return base.Foreground(ColorYellow)
	case model.SeverityHigh:
		return base.Foreground(ColorRed)
	default:
		return base.Foreground(ColorGray)
	}
}

// CategoryStyle returns a color-coded style for a task category label.
func CategoryStyle(c model.TaskCategory) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch c {
	case model.CategoryRealtime:
		return base.Foreground(ColorRed)
	case model.CategoryLongRunning:
		return base.Foreground(ColorMagenta)
	case model.CategoryBatch:
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}
