// Package window implements the context window: the ordered,
// duplicate-free collection of items currently selected for a task.
package window

import (
	"errors"
	"fmt"

	"github.com/nhle/context-game/internal/model"
)

// ErrNotPermutation is returned by Reorder when the supplied ids are not a
// permutation of the ids currently in the collection. It signals a caller
// bug, not a user gesture that should be ignored.
var ErrNotPermutation = errors.New("reorder: not a permutation of the current items")

// Collection is an ordered sequence of context items with unique ids.
// The zero value is an empty, ready to use collection.
type Collection struct {
	items []model.ContextItem
}

// New returns a collection holding items in order. Items whose id repeats
// an earlier entry are dropped.
func New(items ...model.ContextItem) *Collection {
	c := &Collection{}
	for _, it := range items {
		c.Add(it)
	}
	return c
}

// Add appends item to the end of the collection. It returns false and
// leaves the collection unchanged if an item with the same id is present.
func (c *Collection) Add(item model.ContextItem) bool {
	if c.Contains(item.ID) {
		return false
	}
	c.items = append(c.items, item)
	return true
}

// Remove deletes the item with the given id, preserving the order of the
// remaining items. It returns false if no such item exists.
func (c *Collection) Remove(id string) bool {
	idx := c.IndexOf(id)
	if idx < 0 {
		return false
	}
	next := make([]model.ContextItem, 0, len(c.items)-1)
	next = append(next, c.items[:idx]...)
	next = append(next, c.items[idx+1:]...)
	c.items = next
	return true
}

// Reorder replaces the sequence with the items named by ids, in that
// order. ids must be a permutation of the current id set; otherwise
// ErrNotPermutation is returned and the collection is unchanged.
func (c *Collection) Reorder(ids []string) error {
	if len(ids) != len(c.items) {
		return fmt.Errorf("%w: got %d ids for %d items", ErrNotPermutation, len(ids), len(c.items))
	}

	byID := make(map[string]model.ContextItem, len(c.items))
	for _, it := range c.items {
		byID[it.ID] = it
	}

	next := make([]model.ContextItem, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("%w: duplicate id %q", ErrNotPermutation, id)
		}
		it, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: unknown id %q", ErrNotPermutation, id)
		}
		seen[id] = true
		next = append(next, it)
	}

	c.items = next
	return nil
}

// Move splices the item at index from to index to. It returns false when
// either index is out of range or the indices are equal.
func (c *Collection) Move(from, to int) bool {
	if from == to || from < 0 || to < 0 || from >= len(c.items) || to >= len(c.items) {
		return false
	}
	c.items = ArrayMove(c.items, from, to)
	return true
}

// Clear empties the collection.
func (c *Collection) Clear() {
	c.items = nil
}

// Items returns a copy of the items in order.
func (c *Collection) Items() []model.ContextItem {
	out := make([]model.ContextItem, len(c.items))
	copy(out, c.items)
	return out
}

// IDs returns the item ids in order.
func (c *Collection) IDs() []string {
	ids := make([]string, len(c.items))
	for i, it := range c.items {
		ids[i] = it.ID
	}
	return ids
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.items)
}

// Contains reports whether an item with the given id is present.
func (c *Collection) Contains(id string) bool {
	return c.IndexOf(id) >= 0
}

// IndexOf returns the position of the item with the given id, or -1.
func (c *Collection) IndexOf(id string) int {
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// ArrayMove returns a new slice with the element at from moved to to and
// every other element kept in relative order. Out of range indices return
// an unmodified copy.
func ArrayMove[T any](s []T, from, to int) []T {
	out := make([]T, len(s))
	copy(out, s)
	if from < 0 || to < 0 || from >= len(s) || to >= len(s) || from == to {
		return out
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}
