package detail

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/nhle/context-game/internal/model"
)

// contentLanguage picks a chroma lexer for an item's content, or "" for
// plain text. Tool signatures read as annotated Python.
func contentLanguage(it model.ContextItem) string {
	trimmed := strings.TrimSpace(it.Content)
	switch {
	case strings.HasPrefix(trimmed, "{"), strings.HasPrefix(trimmed, "["):
		return "json"
	case it.Type == model.ItemTypeTool:
		return "python"
	case it.Type == model.ItemTypeDoc, it.Type == model.ItemTypeInstructions:
		return "markdown"
	}
	return ""
}

// highlightContent returns ANSI-highlighted content, or the content
// unchanged when no lexer applies or highlighting fails.
func highlightContent(it model.ContextItem) string {
	lang := contentLanguage(it)
	if lang == "" {
		return it.Content
	}
	var b strings.Builder
	if err := quick.Highlight(&b, it.Content, lang, "terminal256", "monokai"); err != nil {
		return it.Content
	}
	return strings.TrimRight(b.String(), "\n")
}
