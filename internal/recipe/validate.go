package recipe

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError lists every field that violates the schema, not just the
// first one, so the request boundary can report them all at once.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "recipe validation: " + strings.Join(e.Violations, "; ")
}

// Validate checks a Recipe against the schema constraints. It is used as the
// post-generation boundary check; the same shape constrains generation itself
// (GenSchema/JSONSchema). Returns nil or a *ValidationError.
func Validate(r *Recipe) error {
	var v []string

	if strings.TrimSpace(r.Title) == "" {
		v = append(v, "title must not be empty")
	}
	if r.Servings <= 0 {
		v = append(v, fmt.Sprintf("servings must be a positive integer, got %d", r.Servings))
	}
	if r.PrepTimeMinutes < 0 {
		v = append(v, fmt.Sprintf("prep_time_minutes cannot be negative, got %d", r.PrepTimeMinutes))
	}
	if r.CookTimeMinutes < 0 {
		v = append(v, fmt.Sprintf("cook_time_minutes cannot be negative, got %d", r.CookTimeMinutes))
	}
	if r.TotalTimeMinutes < 0 {
		v = append(v, fmt.Sprintf("total_time_minutes cannot be negative, got %d", r.TotalTimeMinutes))
	}
	for i, ing := range r.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			v = append(v, fmt.Sprintf("ingredients[%d].name must not be empty", i))
		}
		if ing.Quantity != nil {
			if q := *ing.Quantity; math.IsNaN(q) || math.IsInf(q, 0) {
				v = append(v, fmt.Sprintf("ingredients[%d].quantity must be a real number", i))
			}
		}
	}
	for i, step := range r.Instructions {
		if strings.TrimSpace(step) == "" {
			v = append(v, fmt.Sprintf("instructions[%d] must not be empty", i))
		}
	}

	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Violations: v}
}
