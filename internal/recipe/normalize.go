package recipe

import (
	"regexp"
	"strconv"
	"strings"
)

// unitNames maps common abbreviations to full unit words. The prompt already
// asks the model for full words; this map backs the boundary check when it
// slips one through anyway.
var unitNames = map[string]string{
	"tbsp":  "tablespoon",
	"tbs":   "tablespoon",
	"tbsps": "tablespoon",
	"tsp":   "teaspoon",
	"tsps":  "teaspoon",
	"oz":    "ounce",
	"fl oz": "fluid ounce",
	"lb":    "pound",
	"lbs":   "pound",
	"g":     "gram",
	"gr":    "gram",
	"kg":    "kilogram",
	"mg":    "milligram",
	"ml":    "milliliter",
	"l":     "liter",
	"c":     "cup",
	"qt":    "quart",
	"pt":    "pint",
	"gal":   "gallon",
	"pkg":   "package",
	"doz":   "dozen",
}

// vulgar fraction code points and their values.
var vulgarFractions = map[rune]float64{
	'½': 0.5, '⅓': 1.0 / 3, '⅔': 2.0 / 3,
	'¼': 0.25, '¾': 0.75,
	'⅕': 0.2, '⅖': 0.4, '⅗': 0.6, '⅘': 0.8,
	'⅙': 1.0 / 6, '⅚': 5.0 / 6,
	'⅛': 0.125, '⅜': 0.375, '⅝': 0.625, '⅞': 0.875,
}

// NormalizeUnit expands a unit abbreviation to its full word. Unknown units
// pass through lowercased and trimmed of a trailing dot ("Tbsp." → "tablespoon").
func NormalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	u = strings.TrimSuffix(u, ".")
	if full, ok := unitNames[u]; ok {
		return full
	}
	return u
}

// ParseQuantity converts a textual quantity to a float: "0.5", "½", "1 1/2",
// "3/4". Returns false when no number can be read.
func ParseQuantity(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// leading whole number, as in "1 ½" or "1 1/2"
	var whole float64
	if i := strings.IndexAny(s, " ½⅓⅔¼¾⅕⅖⅗⅘⅙⅚⅛⅜⅝⅞"); i > 0 {
		if w, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64); err == nil {
			whole = w
			s = strings.TrimSpace(s[i:])
		}
	}

	runes := []rune(s)
	if len(runes) == 1 {
		if f, ok := vulgarFractions[runes[0]]; ok {
			return whole + f, true
		}
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN == nil && errD == nil && d != 0 {
			return whole + n/d, true
		}
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return whole + f, true
}

var durationPart = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(hours?|hrs?|h|minutes?|mins?|m)\b`)

// ParseMinutes flattens a duration expression to total minutes:
// "1 hour 30 mins" → 90, "45 min" → 45, "2h" → 120. A bare number is taken
// as minutes already. Returns false when nothing numeric is found.
func ParseMinutes(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}

	total := 0.0
	found := false
	for _, m := range durationPart.FindAllStringSubmatch(s, -1) {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		found = true
		switch strings.ToLower(m[2])[0] {
		case 'h':
			total += n * 60
		default:
			total += n
		}
	}
	if !found {
		return 0, false
	}
	return int(total + 0.5), true
}

// Normalize tidies a model-produced Recipe in place before validation: trims
// text fields, expands unit abbreviations, and fills total_time_minutes from
// prep+cook when the model left it zero. It never invents or corrects
// semantic values beyond that — a negative time stays negative and fails
// validation downstream.
func Normalize(r *Recipe) {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)

	for i := range r.Ingredients {
		r.Ingredients[i].Name = strings.TrimSpace(r.Ingredients[i].Name)
		r.Ingredients[i].Unit = NormalizeUnit(r.Ingredients[i].Unit)
		r.Ingredients[i].Notes = strings.TrimSpace(r.Ingredients[i].Notes)
	}
	for i := range r.Instructions {
		r.Instructions[i] = strings.TrimSpace(r.Instructions[i])
	}
	for i := range r.Tags {
		r.Tags[i] = strings.TrimSpace(r.Tags[i])
	}

	if r.TotalTimeMinutes == 0 && r.PrepTimeMinutes+r.CookTimeMinutes > 0 {
		r.TotalTimeMinutes = r.PrepTimeMinutes + r.CookTimeMinutes
	}
}
