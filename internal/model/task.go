package model

// TaskCategory determines which latency- or cost-sensitive rules apply
// to a task.
type TaskCategory string

const (
	CategoryRealtime    TaskCategory = "realtime"
	CategoryLongRunning TaskCategory = "longrunning"
	CategoryBatch       TaskCategory = "batch"
)

// ValidTaskCategory reports whether c is a known task category.
func ValidTaskCategory(c TaskCategory) bool {
	switch c {
	case CategoryRealtime, CategoryLongRunning, CategoryBatch:
		return true
	}
	return false
}

// OptimalConfig is advisory metadata describing a good configuration
// for a task. It is carried and displayed but no rule scores against it.
type OptimalConfig struct {
	TokenRange    [2]int   `json:"tokenRange" yaml:"tokenRange"`
	CacheRateMin  float64  `json:"cacheRateMin" yaml:"cacheRateMin"`
	RequiredItems []string `json:"requiredItems" yaml:"requiredItems"`
}

// Task is a scenario the user builds a context window for.
type Task struct {
	// ID is the unique identifier of the task within the catalog.
	ID string `json:"id" yaml:"id"`

	// Name is the short display name (e.g. "Financial Analysis").
	Name string `json:"name" yaml:"name"`

	// Description states the goal of the scenario.
	Description string `json:"description" yaml:"description"`

	// Category selects the task-specific feedback rules.
	Category TaskCategory `json:"category" yaml:"category"`

	// AvailableItems is the fixed candidate set for this task.
	AvailableItems []ContextItem `json:"availableItems" yaml:"availableItems"`

	// OptimalConfig is optional and inert.
	OptimalConfig *OptimalConfig `json:"optimalConfig,omitempty" yaml:"optimalConfig,omitempty"`
}

// Item returns the catalog item with the given id.
func (t Task) Item(id string) (ContextItem, bool) {
	for _, it := range t.AvailableItems {
		if it.ID == id {
			return it, true
		}
	}
	return ContextItem{}, false
}
