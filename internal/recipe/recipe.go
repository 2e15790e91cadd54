package recipe

import (
	"github.com/google/generative-ai-go/genai"
)

// SourceImageUpload marks recipes that came in as a photo instead of a URL.
const SourceImageUpload = "image-upload"

// Ingredient is one line of the ingredient list. Quantity is nil when the
// source gives none ("salt to taste"). Unit holds the full word, never the
// abbreviation ("tablespoon", not "tbsp").
type Ingredient struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity"`
	Unit     string   `json:"unit"`
	Notes    string   `json:"notes,omitempty"`
}

// Recipe is the canonical extraction output. All times are minutes.
type Recipe struct {
	Title            string       `json:"title"`
	Description      string       `json:"description,omitempty"`
	Servings         int          `json:"servings"`
	PrepTimeMinutes  int          `json:"prep_time_minutes"`
	CookTimeMinutes  int          `json:"cook_time_minutes"`
	TotalTimeMinutes int          `json:"total_time_minutes"`
	Ingredients      []Ingredient `json:"ingredients"`
	Instructions     []string     `json:"instructions"`
	Tags             []string     `json:"tags,omitempty"`
	Source           string       `json:"source,omitempty"`
	Author           string       `json:"author,omitempty"`
}

// GenSchema is the Recipe shape as a Gemini response schema, so generation is
// constrained to it. Keep in sync with JSONSchema and Validate.
func GenSchema() *genai.Schema {
	ingredient := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":     {Type: genai.TypeString},
			"quantity": {Type: genai.TypeNumber, Nullable: true},
			"unit":     {Type: genai.TypeString},
			"notes":    {Type: genai.TypeString},
		},
		Required: []string{"name", "quantity", "unit"},
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":              {Type: genai.TypeString, Description: "Recipe title"},
			"description":        {Type: genai.TypeString},
			"servings":           {Type: genai.TypeInteger},
			"prep_time_minutes":  {Type: genai.TypeInteger},
			"cook_time_minutes":  {Type: genai.TypeInteger},
			"total_time_minutes": {Type: genai.TypeInteger},
			"ingredients":        {Type: genai.TypeArray, Items: ingredient},
			"instructions":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"tags": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Tags like 'vegan', 'gluten-free', 'dessert', etc.",
			},
		},
		Required: []string{
			"title", "servings",
			"prep_time_minutes", "cook_time_minutes", "total_time_minutes",
			"ingredients", "instructions",
		},
	}
}

// JSONSchema is the same shape as a plain JSON-schema document, for providers
// that take one in the request body (Mistral response_format).
func JSONSchema() map[string]any {
	ingredient := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":     map[string]any{"type": "string"},
			"quantity": map[string]any{"type": []string{"number", "null"}},
			"unit":     map[string]any{"type": "string"},
			"notes":    map[string]any{"type": "string"},
		},
		"required":             []string{"name", "quantity", "unit"},
		"additionalProperties": false,
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":              map[string]any{"type": "string", "description": "Recipe title"},
			"description":        map[string]any{"type": "string"},
			"servings":           map[string]any{"type": "integer"},
			"prep_time_minutes":  map[string]any{"type": "integer"},
			"cook_time_minutes":  map[string]any{"type": "integer"},
			"total_time_minutes": map[string]any{"type": "integer"},
			"ingredients":        map[string]any{"type": "array", "items": ingredient},
			"instructions":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"tags":               map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []string{
			"title", "servings",
			"prep_time_minutes", "cook_time_minutes", "total_time_minutes",
			"ingredients", "instructions",
		},
		"additionalProperties": false,
	}
}
