// Package report renders a session snapshot as canonical JSON for
// scripting and comparison.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gowebpki/jcs"

	"github.com/nhle/context-game/internal/feedback"
	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/session"
)

// Report is the headless summary of a configured context window.
type Report struct {
	TaskID      string             `json:"taskId"`
	TaskName    string             `json:"taskName"`
	Category    model.TaskCategory `json:"category"`
	Items       []string           `json:"items"`
	Metrics     model.Metrics      `json:"metrics"`
	Feedback    []model.Feedback   `json:"feedback"`
	Rules       []string           `json:"rules"`
	Fingerprint string             `json:"fingerprint"`
}

type configuration struct {
	TaskID string   `json:"taskId"`
	Items  []string `json:"items"`
}

// Build summarises snap. The fingerprint covers only the task id and the
// ordered item ids.
func Build(snap session.Snapshot) (Report, error) {
	ids := make([]string, 0, len(snap.Items))
	for _, it := range snap.Items {
		ids = append(ids, it.ID)
	}

	fp, err := Fingerprint(snap.Task.ID, ids)
	if err != nil {
		return Report{}, err
	}

	rules := feedback.Fired(feedback.Input{
		Items:    snap.Items,
		Metrics:  snap.Metrics,
		Category: snap.Task.Category,
	})
	if rules == nil {
		rules = []string{}
	}

	fb := snap.Feedback
	if fb == nil {
		fb = []model.Feedback{}
	}

	return Report{
		TaskID:      snap.Task.ID,
		TaskName:    snap.Task.Name,
		Category:    snap.Task.Category,
		Items:       ids,
		Metrics:     snap.Metrics,
		Feedback:    fb,
		Rules:       rules,
		Fingerprint: fp,
	}, nil
}

// Fingerprint returns the sha256 hex digest of the RFC 8785 canonical form
// of a task id and item order.
func Fingerprint(taskID string, itemIDs []string) (string, error) {
	if itemIDs == nil {
		itemIDs = []string{}
	}
	raw, err := json.Marshal(configuration{TaskID: taskID, Items: itemIDs})
	if err != nil {
		return "", fmt.Errorf("marshal configuration: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("canonicalize configuration: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Write encodes r as canonical JSON followed by a newline.
func Write(w io.Writer, r Report) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return fmt.Errorf("canonicalize report: %w", err)
	}
	if _, err := w.Write(append(canonical, '\n')); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
