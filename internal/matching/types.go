// Package matching implements the ingredient matching and recipe
// safety-filtering engine. Everything in this package is a pure,
// synchronous function over in-memory data: callers load pantry and recipe
// snapshots up front, and every result is a complete value with no hidden
// state, so the package is safe to use concurrently without coordination.
package matching

import (
	"time"

	"github.com/google/uuid"
)

// RequiredIngredient is a single ingredient requirement parsed from recipe
// text. Quantity stays a string because recipe quantities are frequently
// fractional or approximate ("1/2", "1 1/2").
type RequiredIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// InventoryItem is one entry of the read-only pantry snapshot the
// comparator consumes. The engine never mutates inventory; duplicate names
// with different quantities or units are allowed and handled.
type InventoryItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// AvailableIngredient records a required ingredient that was found in the
// pantry, together with the matched inventory entry as evidence.
type AvailableIngredient struct {
	Name      string        `json:"name"`
	Inventory InventoryItem `json:"inventory"`
}

// IngredientComparison classifies each required ingredient as available or
// missing. Every required name appears in exactly one of the two lists, so
// len(Available)+len(Missing) always equals TotalRequired.
type IngredientComparison struct {
	Available     []AvailableIngredient `json:"available"`
	Missing       []string              `json:"missing"`
	TotalRequired int                   `json:"total_required"`
}

// RecipeIngredient is the tagged variant for the two shapes a stored recipe
// ingredient may take: free text or a structured entry. Exactly one of Text
// and Item is expected to be set.
type RecipeIngredient struct {
	Text     string `json:"text,omitempty"`
	Item     string `json:"item,omitempty"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Canonical resolves either shape into a canonical requirement. This is the
// only place the union is branched on; every consumer works with the
// canonical form.
func (ri RecipeIngredient) Canonical() RequiredIngredient {
	if ri.Item != "" {
		return RequiredIngredient{
			Name:     ri.Item,
			Quantity: ri.Quantity,
			Unit:     ri.Unit,
			Notes:    ri.Notes,
		}
	}
	return RequiredIngredient{Name: ri.Text}
}

// FreeTextIngredient wraps a bare string ingredient in the tagged variant.
func FreeTextIngredient(text string) RecipeIngredient {
	return RecipeIngredient{Text: text}
}

// Recipe is the engine's read-only view of a saved recipe. Optional macro
// fields are pointers so "absent" and "zero" stay distinct for the numeric
// diet rules.
type Recipe struct {
	ID              uuid.UUID          `json:"id"`
	Title           string             `json:"title"`
	Ingredients     []RecipeIngredient `json:"ingredients"`
	Instructions    []string           `json:"instructions"`
	Tags            []string           `json:"tags,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	PrepTimeMinutes int                `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes int                `json:"cook_time_minutes,omitempty"`
	Servings        int                `json:"servings,omitempty"`
	Calories        *float64           `json:"calories,omitempty"`
	Protein         *float64           `json:"protein,omitempty"`
	Carbs           *float64           `json:"carbs,omitempty"`
	Fats            *float64           `json:"fats,omitempty"`
	Difficulty      string             `json:"difficulty,omitempty"`
}

// AllergenCheckResult reports whether a recipe is free of the given
// allergens and which allergen terms matched, in input order.
type AllergenCheckResult struct {
	Safe           bool     `json:"safe"`
	FoundAllergens []string `json:"found_allergens"`
}

// DietCheckResult reports dietary-restriction compatibility and the
// restrictions that were violated, deduplicated, in input order.
type DietCheckResult struct {
	Compatible bool     `json:"compatible"`
	Violations []string `json:"violations"`
}

// SafetyFilterResult is the combined allergen and diet filter outcome for a
// recipe collection.
type SafetyFilterResult struct {
	FilteredRecipes []Recipe `json:"filtered_recipes"`
	RemovedCount    int      `json:"removed_count"`
}
