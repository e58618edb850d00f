package testutil

import (
	"fmt"
	"testing"

	"github.com/nhle/context-game/internal/catalog"
	"github.com/nhle/context-game/internal/model"
)

// Item builds a context item with the given id, type and token count.
// The name is derived from the id.
func Item(id string, typ model.ItemType, tokens int, cacheable bool) model.ContextItem {
	return model.ContextItem{
		ID:          id,
		Type:        typ,
		Name:        "Item " + id,
		Description: "fixture item " + id,
		Content:     "content of " + id,
		TokenCount:  tokens,
		Cacheable:   cacheable,
	}
}

// Tools builds n tool items with ids tool-1..tool-n.
func Tools(n int, tokens int) []model.ContextItem {
	items := make([]model.ContextItem, n)
	for i := range items {
		items[i] = Item(fmt.Sprintf("tool-%d", i+1), model.ItemTypeTool, tokens, false)
	}
	return items
}

// Task builds a task with the given category and available items.
func Task(id string, category model.TaskCategory, items ...model.ContextItem) model.Task {
	return model.Task{
		ID:             id,
		Name:           "Task " + id,
		Description:    "fixture task " + id,
		Category:       category,
		AvailableItems: items,
	}
}

// SampleTask returns a realtime task with a small, mixed item set:
// sys (system_prompt, 2000, cacheable), doc (doc, 12000), mem
// (memory_file, 1500, cacheable), tool-a and tool-b (tool, 300 each).
func SampleTask() model.Task {
	return Task("sample", model.CategoryRealtime,
		Item("sys", model.ItemTypeSystemPrompt, 2000, true),
		Item("doc", model.ItemTypeDoc, 12000, false),
		Item("mem", model.ItemTypeMemoryFile, 1500, true),
		Item("tool-a", model.ItemTypeTool, 300, false),
		Item("tool-b", model.ItemTypeTool, 300, false),
	)
}

// NewTestCatalog builds a catalog from tasks, failing the test on error.
func NewTestCatalog(t *testing.T, tasks ...model.Task) *catalog.Catalog {
	t.Helper()

	c, err := catalog.New(tasks)
	if err != nil {
		t.Fatalf("creating test catalog: %v", err)
	}

	return c
}
