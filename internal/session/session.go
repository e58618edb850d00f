// Package session holds the state of one game: the active task, the
// selected context window and the metrics and feedback derived from it.
package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nhle/context-game/internal/catalog"
	"github.com/nhle/context-game/internal/feedback"
	"github.com/nhle/context-game/internal/metrics"
	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/window"
)

// ErrUnknownTask is returned when a task id is not in the catalog.
var ErrUnknownTask = errors.New("unknown task")

// Snapshot is the derived view of the session after the last mutation.
// Metrics and Feedback are always computed from exactly Items.
type Snapshot struct {
	Task     model.Task
	Items    []model.ContextItem
	Metrics  model.Metrics
	Feedback []model.Feedback
}

// Session owns the context window for the active task. It is not safe
// for concurrent use; the UI drives it from a single goroutine.
type Session struct {
	id      string
	catalog *catalog.Catalog
	task    model.Task
	coll    *window.Collection
	snap    Snapshot
	logger  *slog.Logger
}

// New creates a session over catalog with the first task active.
func New(cat *catalog.Catalog, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		id:      uuid.New().String(),
		catalog: cat,
		coll:    &window.Collection{},
	}
	s.logger = logger.With("session_id", s.id)
	if first, ok := cat.First(); ok {
		s.task = first
	}
	s.recompute("init")
	return s
}

// ID returns the session identifier used in logs and reports.
func (s *Session) ID() string { return s.id }

// Catalog returns the catalog the session draws tasks from.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// Task returns the active task.
func (s *Session) Task() model.Task { return s.task }

// SetTask switches the active task and empties the window.
func (s *Session) SetTask(id string) error {
	t, ok := s.catalog.Task(id)
	if !ok {
		return fmt.Errorf("set task %q: %w", id, ErrUnknownTask)
	}
	s.task = t
	s.coll.Clear()
	s.recompute("set_task")
	return nil
}

// Add appends item to the window. It reports whether the window changed.
func (s *Session) Add(item model.ContextItem) bool {
	if !s.coll.Add(item) {
		return false
	}
	s.recompute("add")
	return true
}

// AddByID adds the active task's item with the given id. Unknown ids are
// ignored.
func (s *Session) AddByID(id string) bool {
	item, ok := s.task.Item(id)
	if !ok {
		s.logger.Debug("ignoring unknown item", "task_id", s.task.ID, "item_id", id)
		return false
	}
	return s.Add(item)
}

// Remove drops the item with id from the window.
func (s *Session) Remove(id string) bool {
	if !s.coll.Remove(id) {
		return false
	}
	s.recompute("remove")
	return true
}

// Reorder replaces the window order with ids, which must be a
// permutation of the current members.
func (s *Session) Reorder(ids []string) error {
	if err := s.coll.Reorder(ids); err != nil {
		s.logger.Error("reorder rejected", "task_id", s.task.ID, "error", err)
		return err
	}
	s.recompute("reorder")
	return nil
}

// Move relocates the member at from to index to.
func (s *Session) Move(from, to int) bool {
	if !s.coll.Move(from, to) {
		return false
	}
	s.recompute("move")
	return true
}

// Clear empties the window.
func (s *Session) Clear() {
	if s.coll.Len() == 0 {
		return
	}
	s.coll.Clear()
	s.recompute("clear")
}

// Contains reports whether id is in the window.
func (s *Session) Contains(id string) bool { return s.coll.Contains(id) }

// IDs returns the window member ids in order.
func (s *Session) IDs() []string { return s.coll.IDs() }

// Len returns the window size.
func (s *Session) Len() int { return s.coll.Len() }

// Available returns the active task's items that are not in the window,
// in catalog order.
func (s *Session) Available() []model.ContextItem {
	var out []model.ContextItem
	for _, it := range s.task.AvailableItems {
		if !s.coll.Contains(it.ID) {
			out = append(out, it)
		}
	}
	return out
}

// Snapshot returns the state after the last mutation.
func (s *Session) Snapshot() Snapshot { return s.snap }

func (s *Session) recompute(op string) {
	items := s.coll.Items()
	m := metrics.Compute(items)
	s.snap = Snapshot{
		Task:     s.task,
		Items:    items,
		Metrics:  m,
		Feedback: feedback.Generate(items, m, s.task.Category),
	}
	s.logger.Debug("window updated",
		"op", op,
		"task_id", s.task.ID,
		"items", len(items),
		"total_tokens", m.TotalTokens,
		"feedback", len(s.snap.Feedback),
	)
}
