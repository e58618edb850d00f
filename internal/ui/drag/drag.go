// Package drag recognizes press, motion and release mouse sequences as
// clicks and drags between the palette and the context window.
package drag

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/context-game/internal/interaction"
)

// Threshold is the distance in cells the pointer must travel after a
// press before the gesture counts as a drag.
const Threshold = 1

// Zone identifies the screen region under the pointer.
type Zone int

const (
	ZoneNone Zone = iota
	ZonePalette
	ZoneWindow
)

// Hit is the result of hit-testing a pointer position. ItemID is empty
// when the pointer is over a zone but not over an item row.
type Hit struct {
	Zone   Zone
	ItemID string
}

// Kind is the type of a recognized gesture event.
type Kind int

const (
	KindClick Kind = iota + 1
	KindOver
	KindEnd
)

// Event is a recognized gesture. For KindClick, Zone is where the click
// happened. For KindOver and KindEnd, OverID is empty when the pointer is
// not over a valid target.
type Event struct {
	Kind     Kind
	Zone     Zone
	ActiveID string
	OverID   string
}

// DragOver converts the event for the resolver.
func (e Event) DragOver() interaction.DragOver {
	return interaction.DragOver{ActiveID: e.ActiveID, OverID: e.OverID}
}

// DragEnd converts the event for the resolver.
func (e Event) DragEnd() interaction.DragEnd {
	return interaction.DragEnd{ActiveID: e.ActiveID, OverID: e.OverID}
}

// Recognizer tracks one gesture at a time. The zero value is not usable;
// create one with New.
type Recognizer struct {
	member func(id string) bool

	pressed  bool
	dragging bool
	source   Hit
	startX   int
	startY   int
	lastOver string
}

// New creates a recognizer. member reports whether an id is currently in
// the context window; it decides between row targets and the drop zone.
func New(member func(id string) bool) *Recognizer {
	return &Recognizer{member: member}
}

// Dragging reports whether a drag is in progress.
func (r *Recognizer) Dragging() bool { return r.dragging }

// ActiveID returns the id being pressed or dragged, or "".
func (r *Recognizer) ActiveID() string {
	if !r.pressed {
		return ""
	}
	return r.source.ItemID
}

// OverID returns the target of the last DragOver event.
func (r *Recognizer) OverID() string { return r.lastOver }

// Cancel abandons the current gesture without emitting an event.
func (r *Recognizer) Cancel() { r.reset() }

// Handle feeds one mouse message and the hit-test result for its
// position. It reports a gesture event when one is recognized.
func (r *Recognizer) Handle(msg tea.MouseMsg, hit Hit) (Event, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return Event{}, false
		}
		r.reset()
		if hit.ItemID == "" || hit.Zone == ZoneNone {
			return Event{}, false
		}
		r.pressed = true
		r.source = hit
		r.startX, r.startY = msg.X, msg.Y
		return Event{}, false

	case tea.MouseActionMotion:
		if !r.pressed || msg.Button != tea.MouseButtonLeft {
			return Event{}, false
		}
		if !r.dragging {
			if distance(r.startX, r.startY, msg.X, msg.Y) < Threshold {
				return Event{}, false
			}
			r.dragging = true
		}
		over := r.target(hit)
		if over == r.lastOver {
			return Event{}, false
		}
		r.lastOver = over
		return Event{Kind: KindOver, Zone: hit.Zone, ActiveID: r.source.ItemID, OverID: over}, true

	case tea.MouseActionRelease:
		if !r.pressed {
			return Event{}, false
		}
		defer r.reset()

		if !r.dragging {
			if hit == r.source {
				return Event{Kind: KindClick, Zone: hit.Zone, ActiveID: r.source.ItemID}, true
			}
			return Event{}, false
		}
		return Event{Kind: KindEnd, Zone: hit.Zone, ActiveID: r.source.ItemID, OverID: r.target(hit)}, true
	}

	return Event{}, false
}

// target maps a hit to a resolver target id. Inside the window a member
// being dragged targets the row under the pointer; anything else targets
// the drop zone.
func (r *Recognizer) target(hit Hit) string {
	if hit.Zone != ZoneWindow {
		return ""
	}
	if hit.ItemID != "" && r.member != nil && r.member(r.source.ItemID) {
		return hit.ItemID
	}
	return interaction.DropZoneID
}

func (r *Recognizer) reset() {
	r.pressed = false
	r.dragging = false
	r.source = Hit{}
	r.lastOver = ""
}

func distance(x0, y0, x1, y1 int) int {
	return max(abs(x1-x0), abs(y1-y0))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
