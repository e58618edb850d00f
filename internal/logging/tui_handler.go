package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RecordMsg delivers a log record to the Bubble Tea model for display in
// the status bar.
type RecordMsg struct {
	Summary string
	Level   slog.Level
}

// FadeMsg clears the log line from the status bar. Seq matches the
// RecordMsg it belongs to so a newer record is not cleared early.
type FadeMsg struct {
	Seq int
}

// FadeDelay is how long a log line stays in the status bar.
const FadeDelay = 5 * time.Second

// FadeAfter returns a command that emits FadeMsg{seq} after FadeDelay.
func FadeAfter(seq int) tea.Cmd {
	return tea.Tick(FadeDelay, func(time.Time) tea.Msg {
		return FadeMsg{Seq: seq}
	})
}

// Sender receives messages from outside the Bubble Tea event loop.
// *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// sink is shared by a handler and everything derived from it, so one
// SetProgram call reaches every derived handler.
type sink struct {
	mu     sync.RWMutex
	sender Sender
}

func (s *sink) load() Sender {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sender
}

// TUIHandler is a slog.Handler that routes records into a running Bubble
// Tea program. Records that arrive before SetProgram are dropped.
type TUIHandler struct {
	level slog.Leveler
	sink  *sink
	attrs []string
	group string
}

// NewTUIHandler creates a handler delivering records at or above level.
func NewTUIHandler(level slog.Leveler) *TUIHandler {
	return &TUIHandler{level: level, sink: &sink{}}
}

// SetProgram sets the receiver of log messages. Safe to call from any
// goroutine.
func (h *TUIHandler) SetProgram(s Sender) {
	h.sink.mu.Lock()
	h.sink.sender = s
	h.sink.mu.Unlock()
}

func (h *TUIHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats the record as "message (key=value, ...)" and sends it.
// Delivery runs on its own goroutine because records are usually raised
// inside Update, where a blocking Program.Send never returns.
func (h *TUIHandler) Handle(_ context.Context, record slog.Record) error {
	sender := h.sink.load()
	if sender == nil {
		return nil
	}

	parts := append([]string(nil), h.attrs...)
	record.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, h.format(attr))
		return true
	})

	summary := record.Message
	if len(parts) > 0 {
		summary += " (" + strings.Join(parts, ", ") + ")"
	}

	go sender.Send(RecordMsg{Summary: summary, Level: record.Level})
	return nil
}

func (h *TUIHandler) format(attr slog.Attr) string {
	key := attr.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	return fmt.Sprintf("%s=%s", key, attr.Value)
}

func (h *TUIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]string(nil), h.attrs...)
	for _, attr := range attrs {
		next.attrs = append(next.attrs, h.format(attr))
	}
	return &next
}

func (h *TUIHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	next.group = name
	return &next
}
