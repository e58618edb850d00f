package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nhle/context-game/internal/ui"
)

func TestPanes_CoverContentArea(t *testing.T) {
	l := ui.NewLayout(120, 40)
	l.PaletteWidth = 40
	p := l.Panes()

	assert.Equal(t, ui.Rect{X: 0, Y: 1, Width: 40, Height: 38}, p.Palette)
	assert.Equal(t, 40, p.Window.X)
	assert.Equal(t, 120, p.Palette.Width+p.Window.Width+p.Metrics.Width)
	assert.Equal(t, p.Metrics.X, p.Feedback.X)
	assert.Equal(t, 38, p.Metrics.Height+p.Feedback.Height)
}

func TestPanes_DefaultPaletteWidth(t *testing.T) {
	p := ui.NewLayout(150, 40).Panes()
	assert.Equal(t, 50, p.Palette.Width)
}

func TestRect_Row(t *testing.T) {
	r := ui.Rect{X: 0, Y: 1, Width: 40, Height: 10}

	assert.Equal(t, -1, r.Row(1), "border")
	assert.Equal(t, -1, r.Row(2), "title")
	assert.Equal(t, 0, r.Row(3))
	assert.Equal(t, 6, r.Row(9))
	assert.Equal(t, -1, r.Row(10), "bottom border")
	assert.Equal(t, 7, r.ListHeight())
}

func TestRect_Contains(t *testing.T) {
	r := ui.Rect{X: 10, Y: 5, Width: 3, Height: 2}
	assert.True(t, r.Contains(10, 5))
	assert.True(t, r.Contains(12, 6))
	assert.False(t, r.Contains(13, 6))
	assert.False(t, r.Contains(10, 7))
	assert.False(t, r.Contains(9, 5))
}
