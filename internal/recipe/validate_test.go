package recipe

import (
	"errors"
	"strings"
	"testing"
)

func validRecipe() *Recipe {
	q := 0.5
	return &Recipe{
		Title:            "Shakshuka",
		Servings:         2,
		PrepTimeMinutes:  10,
		CookTimeMinutes:  20,
		TotalTimeMinutes: 30,
		Ingredients: []Ingredient{
			{Name: "olive oil", Quantity: &q, Unit: "tablespoon"},
			{Name: "eggs", Quantity: ptr(4.0), Unit: ""},
		},
		Instructions: []string{"Heat the oil.", "Crack in the eggs."},
	}
}

func ptr(f float64) *float64 { return &f }

func TestValidateOK(t *testing.T) {
	if err := Validate(validRecipe()); err != nil {
		t.Fatalf("valid recipe rejected: %v", err)
	}
}

func TestValidateViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Recipe)
		want   string
	}{
		{"empty title", func(r *Recipe) { r.Title = "  " }, "title"},
		{"zero servings", func(r *Recipe) { r.Servings = 0 }, "servings"},
		{"negative servings", func(r *Recipe) { r.Servings = -3 }, "servings"},
		{"negative prep time", func(r *Recipe) { r.PrepTimeMinutes = -1 }, "prep_time_minutes"},
		{"negative cook time", func(r *Recipe) { r.CookTimeMinutes = -5 }, "cook_time_minutes"},
		{"negative total time", func(r *Recipe) { r.TotalTimeMinutes = -90 }, "total_time_minutes"},
		{"unnamed ingredient", func(r *Recipe) { r.Ingredients[0].Name = "" }, "ingredients[0].name"},
		{"blank instruction", func(r *Recipe) { r.Instructions[1] = " " }, "instructions[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecipe()
			tt.mutate(r)
			err := Validate(r)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateEnumeratesAllViolations(t *testing.T) {
	r := validRecipe()
	r.Title = ""
	r.Servings = 0
	r.CookTimeMinutes = -1

	err := Validate(r)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(ve.Violations) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(ve.Violations), ve.Violations)
	}
}
