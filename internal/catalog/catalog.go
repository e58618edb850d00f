// Package catalog loads the read-only set of tasks and their candidate
// context items. Catalog files are YAML or JSON and are checked against an
// embedded JSON Schema before they are decoded.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/kaptinlin/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/nhle/context-game/internal/model"
)

// ErrInvalidCatalog is wrapped by every validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed default.yaml
var defaultCatalog []byte

//go:embed schema.json
var schemaJSON []byte

// Catalog is an ordered, immutable set of tasks.
type Catalog struct {
	tasks []model.Task
	byID  map[string]int
}

type document struct {
	Tasks []model.Task `json:"tasks"`
}

// New builds a catalog from tasks after semantic validation.
func New(tasks []model.Task) (*Catalog, error) {
	if err := validate(tasks); err != nil {
		return nil, err
	}
	c := &Catalog{
		tasks: make([]model.Task, len(tasks)),
		byID:  make(map[string]int, len(tasks)),
	}
	copy(c.tasks, tasks)
	for i, t := range c.tasks {
		c.byID[t.ID] = i
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	c, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalog file from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog data. JSON input is accepted since
// it is valid YAML.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}

	// The schema validator and the typed decode both work on JSON.
	normalized, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: normalize: %v", ErrInvalidCatalog, err)
	}

	if err := validateSchema(normalized); err != nil {
		return nil, err
	}

	var doc document
	dec := json.NewDecoder(bytes.NewReader(normalized))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	return New(doc.Tasks)
}

func validateSchema(data []byte) error {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	schema, err := compiler.Compile(schemaJSON)
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	result := schema.ValidateJSON(data)
	if result.IsValid() {
		return nil
	}
	return fmt.Errorf("%w: schema validation failed: %v", ErrInvalidCatalog, result.Errors)
}

func validate(tasks []model.Task) error {
	if len(tasks) == 0 {
		return fmt.Errorf("%w: no tasks", ErrInvalidCatalog)
	}

	taskIDs := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if t.ID == "" {
			return fmt.Errorf("%w: task with empty id", ErrInvalidCatalog)
		}
		if taskIDs[t.ID] {
			return fmt.Errorf("%w: duplicate task id %q", ErrInvalidCatalog, t.ID)
		}
		taskIDs[t.ID] = true

		if !model.ValidTaskCategory(t.Category) {
			return fmt.Errorf("%w: task %q: unknown category %q", ErrInvalidCatalog, t.ID, t.Category)
		}

		itemIDs := make(map[string]bool, len(t.AvailableItems))
		for _, it := range t.AvailableItems {
			switch {
			case it.ID == "":
				return fmt.Errorf("%w: task %q: item with empty id", ErrInvalidCatalog, t.ID)
			case itemIDs[it.ID]:
				return fmt.Errorf("%w: task %q: duplicate item id %q", ErrInvalidCatalog, t.ID, it.ID)
			case !model.ValidItemType(it.Type):
				return fmt.Errorf("%w: item %q: unknown type %q", ErrInvalidCatalog, it.ID, it.Type)
			case it.TokenCount < 0:
				return fmt.Errorf("%w: item %q: negative token count", ErrInvalidCatalog, it.ID)
			}
			itemIDs[it.ID] = true
		}

		if oc := t.OptimalConfig; oc != nil {
			if oc.TokenRange[0] > oc.TokenRange[1] {
				return fmt.Errorf("%w: task %q: token range %v is inverted", ErrInvalidCatalog, t.ID, oc.TokenRange)
			}
			for _, id := range oc.RequiredItems {
				if !itemIDs[id] {
					return fmt.Errorf("%w: task %q: required item %q is not available", ErrInvalidCatalog, t.ID, id)
				}
			}
		}
	}
	return nil
}

// Tasks returns the tasks in catalog order.
func (c *Catalog) Tasks() []model.Task {
	out := make([]model.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Task returns the task with the given id.
func (c *Catalog) Task(id string) (model.Task, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Task{}, false
	}
	return c.tasks[i], true
}

// First returns the first task in catalog order.
func (c *Catalog) First() (model.Task, bool) {
	if len(c.tasks) == 0 {
		return model.Task{}, false
	}
	return c.tasks[0], true
}

// Len returns the number of tasks.
func (c *Catalog) Len() int { return len(c.tasks) }
