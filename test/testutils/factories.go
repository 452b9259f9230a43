// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/pantry"
	"github.com/platewise/v1/internal/domain/recipe"
)

// RecipeFactory builds recipe entities for tests
type RecipeFactory struct {
	counter int
}

// NewRecipeFactory creates a recipe factory
func NewRecipeFactory() *RecipeFactory {
	return &RecipeFactory{}
}

// Simple builds a minimal valid recipe
func (f *RecipeFactory) Simple(ownerID uuid.UUID) *recipe.Recipe {
	f.counter++
	r, err := recipe.NewRecipe(ownerID, fmt.Sprintf("Test Recipe %d", f.counter))
	if err != nil {
		panic(err)
	}
	r.Events()
	return r
}

// WithIngredients builds a recipe with structured ingredient names
func (f *RecipeFactory) WithIngredients(ownerID uuid.UUID, title string, items ...string) *recipe.Recipe {
	r, err := recipe.NewRecipe(ownerID, title)
	if err != nil {
		panic(err)
	}
	for _, item := range items {
		if err := r.AddIngredient(recipe.Ingredient{Item: item}); err != nil {
			panic(err)
		}
	}
	r.Events()
	return r
}

// Tagged builds a recipe carrying the given tags
func (f *RecipeFactory) Tagged(ownerID uuid.UUID, title string, tags ...string) *recipe.Recipe {
	r := f.WithIngredients(ownerID, title)
	for _, tag := range tags {
		if err := r.Tag(tag); err != nil {
			panic(err)
		}
	}
	r.Events()
	return r
}

// PantryFactory builds pantry items for tests
type PantryFactory struct{}

// NewPantryFactory creates a pantry factory
func NewPantryFactory() *PantryFactory {
	return &PantryFactory{}
}

// Item builds a stocked pantry item
func (f *PantryFactory) Item(ownerID uuid.UUID, name string) *pantry.Item {
	item, err := pantry.NewItem(ownerID, name, 1, "")
	if err != nil {
		panic(err)
	}
	item.Events()
	return item
}

// Stock builds one item per name for the same owner
func (f *PantryFactory) Stock(ownerID uuid.UUID, names ...string) []*pantry.Item {
	items := make([]*pantry.Item, 0, len(names))
	for _, name := range names {
		items = append(items, f.Item(ownerID, name))
	}
	return items
}
