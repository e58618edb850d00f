package app_test

import (
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/context-game/internal/app"
	"github.com/nhle/context-game/internal/interaction"
	"github.com/nhle/context-game/internal/logging"
	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/session"
	"github.com/nhle/context-game/internal/ui/command"
	"github.com/nhle/context-game/internal/ui/contextview"
	"github.com/nhle/context-game/internal/ui/taskselect"
	"github.com/nhle/context-game/tests/testutil"
)

// With a 120x40 terminal and a 30 column palette the palette spans
// x 0..29 and the window x 30..79. List rows start at y 3.
const (
	paletteX = 5
	windowX  = 40
	sideX    = 100
	firstRow = 3
)

func newModel(t *testing.T, policy interaction.AddPolicy) app.Model {
	t.Helper()

	other := testutil.Task("other", model.CategoryBatch,
		testutil.Item("p", model.ItemTypeSystemPrompt, 100, false),
	)
	cat := testutil.NewTestCatalog(t, testutil.SampleTask(), other)
	logger := slog.New(slog.DiscardHandler)
	s := session.New(cat, logger)

	m := app.New(s, app.Options{AddPolicy: policy, PaletteWidth: 30, Logger: logger})
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func update(t *testing.T, m app.Model, msg tea.Msg) app.Model {
	t.Helper()
	next, _ := m.Update(msg)
	am, ok := next.(app.Model)
	require.True(t, ok)
	return am
}

func updateCmd(t *testing.T, m app.Model, msg tea.Msg) (app.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(app.Model)
	require.True(t, ok)
	return am, cmd
}

// keyThrough sends a key and feeds the message its command produces back
// into the model.
func keyThrough(t *testing.T, m app.Model, k tea.KeyMsg) app.Model {
	t.Helper()
	m, cmd := updateCmd(t, m, k)
	require.NotNil(t, cmd, "key %q produced no command", k.String())
	return update(t, m, cmd())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func click(t *testing.T, m app.Model, x, y int) app.Model {
	t.Helper()
	m = update(t, m, press(x, y))
	return update(t, m, release(x, y))
}

func TestView_RendersPanes(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)

	out := m.View()
	assert.Contains(t, out, "Context Engineering Game")
	assert.Contains(t, out, "Task sample")
	assert.Contains(t, out, "Available Items (5)")
	assert.Contains(t, out, "Context Window (0 items)")
	assert.Contains(t, out, "Performance Metrics")
	assert.Contains(t, out, "AI Feedback & Analysis")
}

func TestView_LoadingBeforeSize(t *testing.T) {
	cat := testutil.NewTestCatalog(t, testutil.SampleTask())
	m := app.New(session.New(cat, nil), app.Options{})
	assert.Equal(t, "Loading...", m.View())
}

func TestMouse_ClickAddsPaletteItem(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)

	m = click(t, m, paletteX, firstRow)
	assert.Equal(t, []string{"sys"}, m.Session().IDs())

	// The palette shrinks, so the same row now holds the next item.
	m = click(t, m, paletteX, firstRow)
	assert.Equal(t, []string{"sys", "doc"}, m.Session().IDs())
	assert.Contains(t, m.View(), "Context Window (2 items)")
}

func TestMouse_DragOntoWindowAddsOnHover(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)

	m = update(t, m, press(paletteX, firstRow+1))
	m = update(t, m, motion(windowX, 10))
	assert.Equal(t, []string{"doc"}, m.Session().IDs(), "added while hovering")

	m = update(t, m, release(windowX, 10))
	assert.Equal(t, []string{"doc"}, m.Session().IDs())
}

func TestMouse_DragOntoWindowAddsOnDrop(t *testing.T) {
	m := newModel(t, interaction.AddOnDrop)

	m = update(t, m, press(paletteX, firstRow+1))
	m = update(t, m, motion(windowX, 10))
	assert.Empty(t, m.Session().IDs())

	m = update(t, m, release(windowX, 10))
	assert.Equal(t, []string{"doc"}, m.Session().IDs())
}

func TestMouse_DropOutsideWindowDoesNothing(t *testing.T) {
	m := newModel(t, interaction.AddOnDrop)

	m = update(t, m, press(paletteX, firstRow))
	m = update(t, m, motion(sideX, 10))
	m = update(t, m, release(sideX, 10))
	assert.Empty(t, m.Session().IDs())
}

func TestMouse_DragReordersWindow(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)
	for range 3 {
		m = click(t, m, paletteX, firstRow)
	}
	require.Equal(t, []string{"sys", "doc", "mem"}, m.Session().IDs())

	m = update(t, m, press(windowX, firstRow))
	m = update(t, m, motion(windowX, firstRow+2))
	m = update(t, m, release(windowX, firstRow+2))

	assert.Equal(t, []string{"doc", "mem", "sys"}, m.Session().IDs())
}

func TestMouse_ClickWindowFocusesIt(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)
	m = click(t, m, paletteX, firstRow)

	m = click(t, m, windowX, firstRow)
	assert.Equal(t, app.FocusWindow, m.Focus())
	assert.Equal(t, []string{"sys"}, m.Session().IDs())
}

func TestKeys_AddMoveRemove(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)

	m = keyThrough(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = keyThrough(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []string{"sys", "doc"}, m.Session().IDs())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, app.FocusWindow, m.Focus())

	m = keyThrough(t, m, runes("J"))
	assert.Equal(t, []string{"doc", "sys"}, m.Session().IDs())

	// The cursor follows the moved item.
	m = keyThrough(t, m, runes("d"))
	assert.Equal(t, []string{"doc"}, m.Session().IDs())

	m = keyThrough(t, m, runes("c"))
	assert.Empty(t, m.Session().IDs())
}

func TestKeys_MoveStaleItemKeepsOrder(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)
	m = update(t, m, command.CommandMsg("add sys"))
	m = update(t, m, command.CommandMsg("add doc"))

	m = update(t, m, contextview.MoveItemMsg{ItemID: "mem", OntoID: "sys"})
	assert.Equal(t, []string{"sys", "doc"}, m.Session().IDs())

	m = update(t, m, contextview.MoveItemMsg{ItemID: "doc", OntoID: "sys"})
	assert.Equal(t, []string{"doc", "sys"}, m.Session().IDs())
}

func TestKeys_HelpToggle(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)

	m = update(t, m, runes("?"))
	assert.Equal(t, app.ViewHelp, m.CurrentView())
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, app.ViewMain, m.CurrentView())
}

func TestKeys_Quit(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)

	_, cmd := updateCmd(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCommand_Executes(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)

	m = update(t, m, runes(":"))
	require.Equal(t, app.ViewCommand, m.CurrentView())

	m = update(t, m, command.CommandMsg("add mem"))
	assert.Equal(t, app.ViewMain, m.CurrentView())
	assert.Equal(t, []string{"mem"}, m.Session().IDs())

	m = update(t, m, command.CommandMsg("remove mem"))
	assert.Empty(t, m.Session().IDs())

	m = update(t, m, command.CommandMsg("task other"))
	assert.Equal(t, "other", m.Session().Task().ID)
}

func TestCommand_ErrorsFlashStatus(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)

	m, cmd := updateCmd(t, m, command.CommandMsg("bogus"))
	assert.NotNil(t, cmd)
	assert.Contains(t, m.Status(), "unknown command")

	m = update(t, m, command.CommandMsg("add nope"))
	assert.Contains(t, m.Status(), "nope")
	assert.Empty(t, m.Session().IDs())
}

func TestCommand_ReportShowsFingerprint(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)
	m = update(t, m, command.CommandMsg("add sys"))

	m = update(t, m, command.CommandMsg("report"))
	assert.Contains(t, m.Status(), "sample · 1 items · 2000 tokens")
}

func TestTaskSelect(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)
	m = update(t, m, command.CommandMsg("add sys"))

	m = update(t, m, runes("T"))
	assert.Equal(t, app.ViewTaskSelect, m.CurrentView())

	m = update(t, m, taskselect.SelectedMsg{TaskID: "other"})
	assert.Equal(t, app.ViewMain, m.CurrentView())
	assert.Equal(t, "other", m.Session().Task().ID)
	assert.Empty(t, m.Session().IDs())
	assert.Contains(t, m.View(), "Available Items (1)")

	m = update(t, m, taskselect.SelectedMsg{TaskID: "missing"})
	assert.Equal(t, "other", m.Session().Task().ID)
	assert.Contains(t, m.Status(), "unknown task")
}

func TestTaskSelect_SameTaskResetsWindow(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)
	m = update(t, m, command.CommandMsg("add sys"))
	m = update(t, m, command.CommandMsg("add doc"))
	require.Len(t, m.Session().IDs(), 2)

	m = update(t, m, taskselect.SelectedMsg{TaskID: m.Session().Task().ID})
	assert.Equal(t, "sample", m.Session().Task().ID)
	assert.Empty(t, m.Session().IDs())
	assert.Equal(t, 0, m.Session().Snapshot().Metrics.TotalTokens)
}

func TestStatus_LogRecordsFade(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)

	m, cmd := updateCmd(t, m, logging.RecordMsg{Summary: "drop rejected", Level: slog.LevelError})
	assert.NotNil(t, cmd)
	assert.Equal(t, "drop rejected", m.Status())

	m = update(t, m, logging.FadeMsg{Seq: 0})
	assert.Equal(t, "drop rejected", m.Status(), "stale fade ignored")

	m = update(t, m, logging.FadeMsg{Seq: 1})
	assert.Empty(t, m.Status())
}

func TestDetail_ToggleFromDetail(t *testing.T) {
	m := newModel(t, interaction.AddOnHover)

	m = keyThrough(t, m, runes("i"))
	require.Equal(t, app.ViewDetail, m.CurrentView())
	assert.Contains(t, m.View(), "Item sys")

	m = keyThrough(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"sys"}, m.Session().IDs())
	assert.Contains(t, m.View(), "in context window")

	m = keyThrough(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.Session().IDs())

	m = keyThrough(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, app.ViewMain, m.CurrentView())
}
