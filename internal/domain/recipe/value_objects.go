package recipe

import (
	"github.com/platewise/v1/internal/matching"
)

// Ingredient is a recipe line item. Exactly one of Text or Item is
// set: Text carries an unparsed free-text line, Item a resolved name
// with optional quantity and unit. The two shapes coexist in one list
// because imports and manual entry both happen.
type Ingredient struct {
	Text string

	Item     string
	Quantity string
	Unit     string
	Notes    string
}

// Validate checks the ingredient carries exactly one shape.
func (i Ingredient) Validate() error {
	if i.Text == "" && i.Item == "" {
		return ErrIngredientEmpty
	}
	if i.Text != "" && i.Item != "" {
		return ErrIngredientAmbiguous
	}
	return nil
}

// toMatching converts to the engine's wire shape.
func (i Ingredient) toMatching() matching.RecipeIngredient {
	return matching.RecipeIngredient{
		Text:     i.Text,
		Item:     i.Item,
		Quantity: i.Quantity,
		Unit:     i.Unit,
		Notes:    i.Notes,
	}
}

// Macros holds per-serving macro data. Fields are pointers because
// missing data is meaningful: carb and fat diet rules skip recipes
// whose relevant value is unknown instead of guessing.
type Macros struct {
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fats     *float64
}

// Validate rejects negative macro values.
func (m Macros) Validate() error {
	for _, v := range []*float64{m.Calories, m.Protein, m.Carbs, m.Fats} {
		if v != nil && *v < 0 {
			return ErrNegativeMacro
		}
	}
	return nil
}

// DifficultyLevel represents recipe difficulty
type DifficultyLevel string

const (
	DifficultyUnset  DifficultyLevel = ""
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// Valid reports whether the level is a known value. Unset is valid.
func (d DifficultyLevel) Valid() bool {
	switch d {
	case DifficultyUnset, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
