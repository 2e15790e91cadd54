package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/DnzzL/dishnow/internal/recipe"
)

// prompt is the fixed instruction block prepended to acquired content. The
// normalization rules here are the primary mechanism; recipe.Normalize backs
// them up at the boundary.
const prompt = `Task: Extract a recipe from the provided content and format it as JSON using the schema below. Ignore irrelevant text (ads, comments, etc.).

Rules:
 - Normalize units: Convert "tbsp" -> "tablespoon", "oz" -> "ounce", etc.
 - Quantities: Use floats (e.g., 0.5 for "½").
 - Time: Convert "1 hour 30 mins" -> 90 (total minutes).
 - Instructions: Split into logical steps (1 sentence per step).

Content:
`

// Engine turns acquired content into a Recipe through a schema-constrained
// model call. Implementations do not retry; failures surface as *ExtractionError.
type Engine interface {
	Name() string
	Extract(ctx context.Context, content string) (*recipe.Recipe, error)
}

// ExtractionError is a model-call or generation failure.
type ExtractionError struct {
	Engine string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract (%s): %v", e.Engine, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Engines holds the configured providers; Get picks one by config name.
type Engines struct {
	Gemini  Engine
	Mistral Engine
}

func (e *Engines) Get(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gemini":
		return e.Gemini, nil
	case "mistral", "":
		return e.Mistral, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q; use 'gemini' or 'mistral'", name)
	}
}

func buildPrompt(content string) string {
	return prompt + content
}

// stripCodeFences removes a ```json wrapper some models emit around JSON
// output even when asked not to.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
