package model

// ItemType classifies a context item offered to an agent.
type ItemType string

const (
	ItemTypeSystemPrompt    ItemType = "system_prompt"
	ItemTypeUserMessage     ItemType = "user_message"
	ItemTypeDoc             ItemType = "doc"
	ItemTypeTool            ItemType = "tool"
	ItemTypeMemoryFile      ItemType = "memory_file"
	ItemTypeInstructions    ItemType = "instructions"
	ItemTypeDomainKnowledge ItemType = "domain_knowledge"
	ItemTypeMessageHistory  ItemType = "message_history"
)

// ItemTypes lists every known item type in display order.
var ItemTypes = []ItemType{
	ItemTypeSystemPrompt,
	ItemTypeUserMessage,
	ItemTypeDoc,
	ItemTypeTool,
	ItemTypeMemoryFile,
	ItemTypeInstructions,
	ItemTypeDomainKnowledge,
	ItemTypeMessageHistory,
}

// ValidItemType reports whether t is a known item type.
func ValidItemType(t ItemType) bool {
	switch t {
	case ItemTypeSystemPrompt, ItemTypeUserMessage, ItemTypeDoc, ItemTypeTool,
		ItemTypeMemoryFile, ItemTypeInstructions, ItemTypeDomainKnowledge,
		ItemTypeMessageHistory:
		return true
	}
	return false
}

// Label returns a short human-readable label for the item type.
func (t ItemType) Label() string {
	switch t {
	case ItemTypeSystemPrompt:
		return "system prompt"
	case ItemTypeUserMessage:
		return "user message"
	case ItemTypeDoc:
		return "document"
	case ItemTypeTool:
		return "tool"
	case ItemTypeMemoryFile:
		return "memory file"
	case ItemTypeInstructions:
		return "instructions"
	case ItemTypeDomainKnowledge:
		return "domain knowledge"
	case ItemTypeMessageHistory:
		return "message history"
	default:
		return string(t)
	}
}

// ContextItem is a single unit of context that can be placed in the
// context window. Items are immutable once catalogued; only whether
// they are selected changes.
type ContextItem struct {
	// ID is the stable unique identifier within a task's catalog.
	ID string `json:"id" yaml:"id"`

	// Type is the item category tag.
	Type ItemType `json:"type" yaml:"type"`

	// Name is the display name.
	Name string `json:"name" yaml:"name"`

	// Description explains what the item contributes.
	Description string `json:"description" yaml:"description"`

	// Content is the opaque payload. It is never interpreted.
	Content string `json:"content" yaml:"content"`

	// TokenCount is the number of tokens the item costs when selected.
	TokenCount int `json:"tokenCount" yaml:"tokenCount"`

	// Cacheable marks items whose tokens are reusable across calls.
	Cacheable bool `json:"cacheable" yaml:"cacheable"`
}
