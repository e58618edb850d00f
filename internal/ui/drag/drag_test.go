package drag_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/context-game/internal/interaction"
	"github.com/nhle/context-game/internal/ui/drag"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}
}

func members(ids ...string) func(string) bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(id string) bool { return set[id] }
}

var (
	paletteDoc = drag.Hit{Zone: drag.ZonePalette, ItemID: "doc"}
	windowSys  = drag.Hit{Zone: drag.ZoneWindow, ItemID: "sys"}
	windowMem  = drag.Hit{Zone: drag.ZoneWindow, ItemID: "mem"}
	windowGap  = drag.Hit{Zone: drag.ZoneWindow}
	nowhere    = drag.Hit{}
)

func TestClick(t *testing.T) {
	r := drag.New(members())

	_, ok := r.Handle(press(5, 4), paletteDoc)
	assert.False(t, ok)
	assert.Equal(t, "doc", r.ActiveID())

	ev, ok := r.Handle(release(5, 4), paletteDoc)
	require.True(t, ok)
	assert.Equal(t, drag.KindClick, ev.Kind)
	assert.Equal(t, drag.ZonePalette, ev.Zone)
	assert.Equal(t, "doc", ev.ActiveID)
	assert.Equal(t, "", r.ActiveID())
}

func TestClick_ReleasedElsewhereIsNothing(t *testing.T) {
	r := drag.New(members())
	r.Handle(press(5, 4), paletteDoc)

	_, ok := r.Handle(release(5, 5), drag.Hit{Zone: drag.ZonePalette, ItemID: "sys"})
	assert.False(t, ok)
}

func TestPressOnEmptySpaceIgnored(t *testing.T) {
	r := drag.New(members())
	r.Handle(press(1, 1), nowhere)

	_, ok := r.Handle(motion(50, 5), windowGap)
	assert.False(t, ok)
	_, ok = r.Handle(release(50, 5), windowGap)
	assert.False(t, ok)
}

func TestPaletteToWindow(t *testing.T) {
	r := drag.New(members())
	r.Handle(press(5, 4), paletteDoc)

	// Motion within the palette starts the drag but has no target.
	_, ok := r.Handle(motion(6, 4), paletteDoc)
	assert.False(t, ok)
	assert.True(t, r.Dragging())

	ev, ok := r.Handle(motion(50, 6), windowGap)
	require.True(t, ok)
	assert.Equal(t, drag.KindOver, ev.Kind)
	assert.Equal(t, interaction.DragOver{ActiveID: "doc", OverID: interaction.DropZoneID}, ev.DragOver())

	// The palette item is not a member, so rows also report the drop zone
	// and repeated motion over the same target is coalesced.
	_, ok = r.Handle(motion(50, 7), windowSys)
	assert.False(t, ok)

	ev, ok = r.Handle(release(50, 7), windowSys)
	require.True(t, ok)
	assert.Equal(t, drag.KindEnd, ev.Kind)
	assert.Equal(t, interaction.DragEnd{ActiveID: "doc", OverID: interaction.DropZoneID}, ev.DragEnd())
	assert.False(t, r.Dragging())
}

func TestWindowReorder(t *testing.T) {
	r := drag.New(members("sys", "mem"))
	r.Handle(press(50, 4), windowSys)

	ev, ok := r.Handle(motion(50, 5), windowMem)
	require.True(t, ok)
	assert.Equal(t, "mem", ev.OverID)

	ev, ok = r.Handle(release(50, 5), windowMem)
	require.True(t, ok)
	assert.Equal(t, interaction.DragEnd{ActiveID: "sys", OverID: "mem"}, ev.DragEnd())
}

func TestReleaseOutsideHasNoTarget(t *testing.T) {
	r := drag.New(members("sys"))
	r.Handle(press(50, 4), windowSys)
	r.Handle(motion(50, 5), windowMem)

	ev, ok := r.Handle(motion(5, 5), paletteDoc)
	require.True(t, ok)
	assert.Equal(t, "", ev.OverID)

	ev, ok = r.Handle(release(5, 5), nowhere)
	require.True(t, ok)
	assert.Equal(t, drag.KindEnd, ev.Kind)
	assert.Equal(t, "", ev.OverID)
}

func TestOtherButtonsIgnored(t *testing.T) {
	r := drag.New(members())

	_, ok := r.Handle(tea.MouseMsg{X: 5, Y: 4, Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, paletteDoc)
	assert.False(t, ok)
	assert.Equal(t, "", r.ActiveID())

	_, ok = r.Handle(tea.MouseMsg{X: 5, Y: 4, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}, paletteDoc)
	assert.False(t, ok)
}

func TestHoverMotionWithoutButtonIgnored(t *testing.T) {
	r := drag.New(members())
	r.Handle(press(5, 4), paletteDoc)

	_, ok := r.Handle(tea.MouseMsg{X: 50, Y: 6, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion}, windowGap)
	assert.False(t, ok)
	assert.False(t, r.Dragging())
}

func TestCancel(t *testing.T) {
	r := drag.New(members())
	r.Handle(press(5, 4), paletteDoc)
	r.Handle(motion(50, 6), windowGap)
	r.Cancel()

	_, ok := r.Handle(release(50, 6), windowGap)
	assert.False(t, ok)
}
