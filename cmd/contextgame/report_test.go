package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportArgs(t *testing.T, extra ...string) []string {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "missing.yaml")
	return append([]string{"--config", cfg, "--log-level", "error"}, extra...)
}

func TestRunReport(t *testing.T) {
	var out bytes.Buffer
	err := runReport(reportArgs(t,
		"--task", "customer-service",
		"--items", "cs-system,cs-order-lookup",
	), &out)
	require.NoError(t, err)

	var got struct {
		TaskID      string   `json:"taskId"`
		Items       []string `json:"items"`
		Fingerprint string   `json:"fingerprint"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "customer-service", got.TaskID)
	assert.Equal(t, []string{"cs-system", "cs-order-lookup"}, got.Items)
	assert.Len(t, got.Fingerprint, 64)
}

func TestRunReport_FingerprintStable(t *testing.T) {
	args := []string{"--task", "code-review", "--items", "cr-system,cr-diff"}

	var a, b bytes.Buffer
	require.NoError(t, runReport(reportArgs(t, args...), &a))
	require.NoError(t, runReport(reportArgs(t, args...), &b))
	assert.Equal(t, a.String(), b.String())
}

func TestRunReport_OrderCheck(t *testing.T) {
	var out bytes.Buffer
	err := runReport(reportArgs(t,
		"--task", "customer-service",
		"--items", "cs-system,nope",
		"--order-check",
	), &out)
	assert.ErrorContains(t, err, "order check")
	assert.Empty(t, out.String())
}

func TestRunReport_UnknownTask(t *testing.T) {
	err := runReport(reportArgs(t, "--task", "nope"), &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown task")
}

func TestRunReport_CustomCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`tasks:
  - id: tiny
    name: Tiny
    description: one item
    category: batch
    availableItems:
      - id: only
        type: doc
        name: Only
        tokenCount: 10
`), 0o644))

	var out bytes.Buffer
	require.NoError(t, runReport(reportArgs(t, "--catalog", path, "--items", "only"), &out))
	assert.Contains(t, out.String(), `"taskId":"tiny"`)
}

func TestRun_UnexpectedArgument(t *testing.T) {
	err := run([]string{"--config", filepath.Join(t.TempDir(), "c.yaml"), "extra"})
	assert.ErrorContains(t, err, "unexpected argument")
}
