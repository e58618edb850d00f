// Package interaction resolves click and drag gestures into context window
// operations. The gesture recognizer is treated as a black box that reports
// which element is being dragged and which element, if any, it is over.
package interaction

import (
	"fmt"

	"github.com/nhle/context-game/internal/window"
)

// DropZoneID is the target id of the context window drop zone.
const DropZoneID = "context"

// AddPolicy selects when an item dragged from the palette joins the window.
type AddPolicy int

const (
	// AddOnHover adds the item as soon as it is dragged over the drop
	// zone, before it is released.
	AddOnHover AddPolicy = iota

	// AddOnDrop adds the item only when it is released over the drop zone.
	AddOnDrop
)

// ParseAddPolicy maps the config spelling ("hover" or "drop") to a policy.
func ParseAddPolicy(s string) (AddPolicy, error) {
	switch s {
	case "", "hover":
		return AddOnHover, nil
	case "drop":
		return AddOnDrop, nil
	default:
		return AddOnHover, fmt.Errorf("unknown add policy %q", s)
	}
}

// String returns the config spelling of the policy.
func (p AddPolicy) String() string {
	if p == AddOnDrop {
		return "drop"
	}
	return "hover"
}

// DragOver is reported repeatedly while an element is dragged above a
// candidate target. OverID is empty when nothing is under the pointer.
type DragOver struct {
	ActiveID string
	OverID   string
}

// DragEnd is reported once when the dragged element is released. OverID
// is empty when the drag was released outside any valid zone.
type DragEnd struct {
	ActiveID string
	OverID   string
}

// Outcome describes what a gesture did to the window.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeAdded
	OutcomeReordered
)

// String returns a short name for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeReordered:
		return "reordered"
	default:
		return "none"
	}
}

// Target is the window the resolver operates on. AddByID must look the
// id up in the active task's catalog and ignore unknown ids.
type Target interface {
	Contains(id string) bool
	IDs() []string
	AddByID(id string) bool
	Reorder(ids []string) error
}

// Resolver turns gestures into Target operations.
type Resolver struct {
	target Target
	policy AddPolicy
}

// New creates a resolver operating on target.
func New(target Target, policy AddPolicy) *Resolver {
	return &Resolver{target: target, policy: policy}
}

// Policy returns the active add policy.
func (r *Resolver) Policy() AddPolicy {
	return r.policy
}

// SetPolicy changes the add policy.
func (r *Resolver) SetPolicy(p AddPolicy) {
	r.policy = p
}

// Click adds the item if it is not already in the window.
func (r *Resolver) Click(id string) Outcome {
	if r.target.Contains(id) {
		return OutcomeNone
	}
	if r.target.AddByID(id) {
		return OutcomeAdded
	}
	return OutcomeNone
}

// HandleDragOver applies the hover policy: a palette item dragged over the
// drop zone is added immediately under AddOnHover.
func (r *Resolver) HandleDragOver(ev DragOver) Outcome {
	if ev.OverID == "" || ev.ActiveID == ev.OverID {
		return OutcomeNone
	}
	if r.policy != AddOnHover {
		return OutcomeNone
	}
	return r.addFromPalette(ev.ActiveID, ev.OverID)
}

// HandleDragEnd reorders two window members, moving the dragged item to
// the target's index. Under AddOnDrop it also adds palette items released
// over the drop zone. The error is non-nil only when the window rejects
// the computed permutation, which indicates a bug.
func (r *Resolver) HandleDragEnd(ev DragEnd) (Outcome, error) {
	if ev.OverID == "" {
		return OutcomeNone, nil
	}

	if r.policy == AddOnDrop && ev.ActiveID != ev.OverID {
		if out := r.addFromPalette(ev.ActiveID, ev.OverID); out != OutcomeNone {
			return out, nil
		}
	}

	if ev.ActiveID == ev.OverID {
		return OutcomeNone, nil
	}
	if !r.target.Contains(ev.ActiveID) || !r.target.Contains(ev.OverID) {
		return OutcomeNone, nil
	}

	ids := r.target.IDs()
	from, to := indexOf(ids, ev.ActiveID), indexOf(ids, ev.OverID)
	if from < 0 || to < 0 {
		return OutcomeNone, nil
	}

	if err := r.target.Reorder(window.ArrayMove(ids, from, to)); err != nil {
		return OutcomeNone, fmt.Errorf("drag end %s onto %s: %w", ev.ActiveID, ev.OverID, err)
	}
	return OutcomeReordered, nil
}

// addFromPalette adds activeID when it is not in the window and overID is
// the drop zone.
func (r *Resolver) addFromPalette(activeID, overID string) Outcome {
	if overID != DropZoneID || r.target.Contains(activeID) {
		return OutcomeNone
	}
	if r.target.AddByID(activeID) {
		return OutcomeAdded
	}
	return OutcomeNone
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
