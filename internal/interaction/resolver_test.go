package interaction_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/context-game/internal/interaction"
	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/window"
	"github.com/nhle/context-game/tests/testutil"
)

// fakeTarget is a window backed by a task catalog that counts mutations.
type fakeTarget struct {
	task      model.Task
	win       *window.Collection
	adds      int
	reorders  int
	reorderFn func(ids []string) error
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{task: testutil.SampleTask(), win: &window.Collection{}}
}

func (f *fakeTarget) Contains(id string) bool { return f.win.Contains(id) }
func (f *fakeTarget) IDs() []string           { return f.win.IDs() }

func (f *fakeTarget) AddByID(id string) bool {
	it, ok := f.task.Item(id)
	if !ok {
		return false
	}
	if f.win.Add(it) {
		f.adds++
		return true
	}
	return false
}

func (f *fakeTarget) Reorder(ids []string) error {
	f.reorders++
	if f.reorderFn != nil {
		return f.reorderFn(ids)
	}
	return f.win.Reorder(ids)
}

func TestClick_AddsOnce(t *testing.T) {
	target := newFakeTarget()
	r := interaction.New(target, interaction.AddOnHover)

	assert.Equal(t, interaction.OutcomeAdded, r.Click("sys"))
	assert.Equal(t, interaction.OutcomeNone, r.Click("sys"))
	assert.Equal(t, []string{"sys"}, target.IDs())
	assert.Equal(t, 1, target.adds)
}

func TestClick_UnknownID(t *testing.T) {
	target := newFakeTarget()
	r := interaction.New(target, interaction.AddOnHover)

	assert.Equal(t, interaction.OutcomeNone, r.Click("nope"))
	assert.Empty(t, target.IDs())
}

func TestDragOver_EagerAddOnHover(t *testing.T) {
	target := newFakeTarget()
	r := interaction.New(target, interaction.AddOnHover)

	out := r.HandleDragOver(interaction.DragOver{ActiveID: "doc", OverID: interaction.DropZoneID})
	assert.Equal(t, interaction.OutcomeAdded, out)
	assert.Equal(t, []string{"doc"}, target.IDs())

	// Repeated hover events while still dragging do nothing more.
	for i := 0; i < 3; i++ {
		out = r.HandleDragOver(interaction.DragOver{ActiveID: "doc", OverID: interaction.DropZoneID})
		assert.Equal(t, interaction.OutcomeNone, out)
	}
	assert.Equal(t, 1, target.adds)
}

func TestDragOver_Ignored(t *testing.T) {
	cases := map[string]interaction.DragOver{
		"no target":        {ActiveID: "doc"},
		"over itself":      {ActiveID: "doc", OverID: "doc"},
		"over other item":  {ActiveID: "doc", OverID: "sys"},
		"over palette":     {ActiveID: "doc", OverID: "palette"},
		"unknown dragged":  {ActiveID: "ghost", OverID: interaction.DropZoneID},
		"drop zone itself": {ActiveID: interaction.DropZoneID, OverID: interaction.DropZoneID},
	}

	for name, ev := range cases {
		t.Run(name, func(t *testing.T) {
			target := newFakeTarget()
			r := interaction.New(target, interaction.AddOnHover)
			assert.Equal(t, interaction.OutcomeNone, r.HandleDragOver(ev))
			assert.Empty(t, target.IDs())
		})
	}
}

func TestDragOver_DropPolicyDefersAdd(t *testing.T) {
	target := newFakeTarget()
	r := interaction.New(target, interaction.AddOnDrop)

	assert.Equal(t, interaction.OutcomeNone,
		r.HandleDragOver(interaction.DragOver{ActiveID: "doc", OverID: interaction.DropZoneID}))
	assert.Empty(t, target.IDs())

	out, err := r.HandleDragEnd(interaction.DragEnd{ActiveID: "doc", OverID: interaction.DropZoneID})
	require.NoError(t, err)
	assert.Equal(t, interaction.OutcomeAdded, out)
	assert.Equal(t, []string{"doc"}, target.IDs())
}

func TestDragEnd_ReordersMembers(t *testing.T) {
	target := newFakeTarget()
	r := interaction.New(target, interaction.AddOnHover)
	for _, id := range []string{"sys", "doc", "mem", "tool-a"} {
		r.Click(id)
	}

	out, err := r.HandleDragEnd(interaction.DragEnd{ActiveID: "sys", OverID: "mem"})
	require.NoError(t, err)
	assert.Equal(t, interaction.OutcomeReordered, out)
	assert.Equal(t, []string{"doc", "mem", "sys", "tool-a"}, target.IDs())

	out, err = r.HandleDragEnd(interaction.DragEnd{ActiveID: "tool-a", OverID: "doc"})
	require.NoError(t, err)
	assert.Equal(t, interaction.OutcomeReordered, out)
	assert.Equal(t, []string{"tool-a", "doc", "mem", "sys"}, target.IDs())
}

func TestDragEnd_NoOps(t *testing.T) {
	cases := map[string]interaction.DragEnd{
		"cancelled":          {ActiveID: "sys"},
		"onto itself":        {ActiveID: "sys", OverID: "sys"},
		"target not member":  {ActiveID: "sys", OverID: "tool-b"},
		"dragged not member": {ActiveID: "tool-b", OverID: "sys"},
		"onto drop zone":     {ActiveID: "sys", OverID: interaction.DropZoneID},
	}

	for name, ev := range cases {
		t.Run(name, func(t *testing.T) {
			target := newFakeTarget()
			r := interaction.New(target, interaction.AddOnHover)
			r.Click("sys")
			r.Click("doc")

			out, err := r.HandleDragEnd(ev)
			require.NoError(t, err)
			assert.Equal(t, interaction.OutcomeNone, out)
			assert.Equal(t, []string{"sys", "doc"}, target.IDs())
			assert.Equal(t, 0, target.reorders)
		})
	}
}

func TestDragEnd_SurfacesRejectedPermutation(t *testing.T) {
	target := newFakeTarget()
	r := interaction.New(target, interaction.AddOnHover)
	r.Click("sys")
	r.Click("doc")

	target.reorderFn = func([]string) error { return window.ErrNotPermutation }

	out, err := r.HandleDragEnd(interaction.DragEnd{ActiveID: "doc", OverID: "sys"})
	assert.Equal(t, interaction.OutcomeNone, out)
	assert.True(t, errors.Is(err, window.ErrNotPermutation))
}

func TestParseAddPolicy(t *testing.T) {
	p, err := interaction.ParseAddPolicy("hover")
	require.NoError(t, err)
	assert.Equal(t, interaction.AddOnHover, p)

	p, err = interaction.ParseAddPolicy("")
	require.NoError(t, err)
	assert.Equal(t, interaction.AddOnHover, p)

	p, err = interaction.ParseAddPolicy("drop")
	require.NoError(t, err)
	assert.Equal(t, interaction.AddOnDrop, p)
	assert.Equal(t, "drop", p.String())

	_, err = interaction.ParseAddPolicy("release")
	assert.Error(t, err)
}
