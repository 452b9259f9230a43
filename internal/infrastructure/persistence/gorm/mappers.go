// Package gorm provides mapping between domain entities and GORM models
package gorm

import (
	"github.com/platewise/v1/internal/domain/pantry"
	"github.com/platewise/v1/internal/domain/recipe"
)

// RecipeToModel converts a domain recipe to a GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	ingredients := make(IngredientsJSON, 0, len(r.Ingredients()))
	for _, ing := range r.Ingredients() {
		ingredients = append(ingredients, IngredientJSON{
			Text:     ing.Text,
			Item:     ing.Item,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Notes:    ing.Notes,
		})
	}

	model := &RecipeModel{
		ID:              r.ID(),
		OwnerID:         r.OwnerID(),
		Title:           r.Title(),
		Ingredients:     ingredients,
		Instructions:    StringSlice(r.Instructions()),
		Tags:            StringSlice(r.Tags()),
		Notes:           r.Notes(),
		SourceText:      r.SourceText(),
		PrepTimeMinutes: r.PrepTimeMinutes(),
		CookTimeMinutes: r.CookTimeMinutes(),
		Servings:        r.Servings(),
		Difficulty:      string(r.Difficulty()),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}

	if m := r.Macros(); m != nil {
		model.Calories = m.Calories
		model.Protein = m.Protein
		model.Carbs = m.Carbs
		model.Fats = m.Fats
	}

	return model
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	ingredients := make([]recipe.Ingredient, 0, len(model.Ingredients))
	for _, ing := range model.Ingredients {
		ingredients = append(ingredients, recipe.Ingredient{
			Text:     ing.Text,
			Item:     ing.Item,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Notes:    ing.Notes,
		})
	}

	var macros *recipe.Macros
	if model.Calories != nil || model.Protein != nil || model.Carbs != nil || model.Fats != nil {
		macros = &recipe.Macros{
			Calories: model.Calories,
			Protein:  model.Protein,
			Carbs:    model.Carbs,
			Fats:     model.Fats,
		}
	}

	return recipe.Reconstruct(
		model.ID,
		model.OwnerID,
		model.Title,
		ingredients,
		[]string(model.Instructions),
		[]string(model.Tags),
		model.Notes,
		model.SourceText,
		model.PrepTimeMinutes,
		model.CookTimeMinutes,
		model.Servings,
		recipe.DifficultyLevel(model.Difficulty),
		macros,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// PantryItemToModel converts a domain pantry item to a GORM model
func PantryItemToModel(item *pantry.Item) *PantryItemModel {
	return &PantryItemModel{
		ID:        item.ID(),
		OwnerID:   item.OwnerID(),
		Name:      item.Name(),
		Quantity:  item.Quantity(),
		Unit:      item.Unit(),
		Category:  string(item.Category()),
		Notes:     item.Notes(),
		ExpiresAt: item.ExpiresAt(),
		CreatedAt: item.CreatedAt(),
		UpdatedAt: item.UpdatedAt(),
	}
}

// ModelToPantryItem converts a GORM model to a domain pantry item
func ModelToPantryItem(model *PantryItemModel) *pantry.Item {
	return pantry.Reconstruct(
		model.ID,
		model.OwnerID,
		model.Name,
		model.Quantity,
		model.Unit,
		pantry.Category(model.Category),
		model.Notes,
		model.ExpiresAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
