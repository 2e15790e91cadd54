package recipe

import (
	"math"
	"testing"
)

func TestNormalizeUnit(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"tbsp", "tablespoon"},
		{"Tbsp.", "tablespoon"},
		{"tsp", "teaspoon"},
		{"oz", "ounce"},
		{"lb", "pound"},
		{"lbs", "pound"},
		{"g", "gram"},
		{"kg", "kilogram"},
		{"ml", "milliliter"},
		{"l", "liter"},
		{"c", "cup"},
		{"cup", "cup"},
		{"tablespoon", "tablespoon"},
		{" Pinch ", "pinch"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeUnit(tt.in); got != tt.want {
			t.Errorf("NormalizeUnit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0.5", 0.5, true},
		{"½", 0.5, true},
		{"¾", 0.75, true},
		{"⅓", 1.0 / 3, true},
		{"3/4", 0.75, true},
		{"1 1/2", 1.5, true},
		{"1½", 1.5, true},
		{"2", 2, true},
		{"", 0, false},
		{"a pinch", 0, false},
		{"1/0", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseQuantity(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseQuantity(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseQuantity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"90", 90, true},
		{"1 hour 30 mins", 90, true},
		{"1 hour", 60, true},
		{"2 hours 15 minutes", 135, true},
		{"45 min", 45, true},
		{"2h", 120, true},
		{"1h 5m", 65, true},
		{"overnight", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseMinutes(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseMinutes(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeFillsTotalTime(t *testing.T) {
	r := validRecipe()
	r.TotalTimeMinutes = 0
	Normalize(r)
	if r.TotalTimeMinutes != 30 {
		t.Fatalf("total_time_minutes = %d, want 30", r.TotalTimeMinutes)
	}
}

func TestNormalizeExpandsUnitsAndTrims(t *testing.T) {
	r := validRecipe()
	r.Title = "  Shakshuka "
	r.Ingredients[0].Unit = "tbsp"
	r.Instructions[0] = " Heat the oil. "
	Normalize(r)

	if r.Title != "Shakshuka" {
		t.Errorf("title = %q", r.Title)
	}
	if r.Ingredients[0].Unit != "tablespoon" {
		t.Errorf("unit = %q, want tablespoon", r.Ingredients[0].Unit)
	}
	if r.Instructions[0] != "Heat the oil." {
		t.Errorf("instruction = %q", r.Instructions[0])
	}
}

func TestNormalizeKeepsNegativeTimes(t *testing.T) {
	r := validRecipe()
	r.CookTimeMinutes = -10
	Normalize(r)
	if r.CookTimeMinutes != -10 {
		t.Fatal("Normalize must not silently correct semantic violations")
	}
	if Validate(r) == nil {
		t.Fatal("negative cook time must still fail validation")
	}
}
