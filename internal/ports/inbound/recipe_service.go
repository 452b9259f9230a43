// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/matching"
)

// RecipeService defines the use cases for the recipe collection,
// including coverage and safety checks against the matching engine.
type RecipeService interface {
	// Commands - operations that modify state
	SaveRecipe(ctx context.Context, cmd SaveRecipeCommand) (*RecipeDTO, error)
	ImportRecipeText(ctx context.Context, cmd ImportRecipeTextCommand) (*RecipeDTO, error)
	UpdateRecipe(ctx context.Context, cmd UpdateRecipeCommand) (*RecipeDTO, error)
	TagRecipe(ctx context.Context, recipeID, userID uuid.UUID, tag string) error
	UntagRecipe(ctx context.Context, recipeID, userID uuid.UUID, tag string) error
	DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error

	// Queries - operations that read state
	GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*RecipeDTO, error)
	SearchRecipes(ctx context.Context, userID uuid.UUID, query SearchQuery) (*RecipeList, error)
	ListTags(ctx context.Context, userID uuid.UUID) ([]string, error)

	// Matching operations
	CheckCoverage(ctx context.Context, recipeID, userID uuid.UUID) (*CoverageReport, error)
	CheckCoverageForText(ctx context.Context, userID uuid.UUID, text string) (*CoverageReport, error)
	CheckSafety(ctx context.Context, cmd SafetyCheckCommand) (*SafetyReport, error)
	FilterSafeRecipes(ctx context.Context, userID uuid.UUID, cmd SafetyCheckCommand) (*RecipeList, error)
	ParseRecipeText(ctx context.Context, text string) ([]matching.RequiredIngredient, error)
	DetectRecipeContent(ctx context.Context, text string) (*DetectionResult, error)
}

// Command objects for operations

// SaveRecipeCommand contains data for saving a new recipe
type SaveRecipeCommand struct {
	OwnerID      uuid.UUID
	Title        string
	Ingredients  []IngredientCommand
	Instructions []string
	Tags         []string
	Notes        string
	PrepTime     int // minutes
	CookTime     int // minutes
	Servings     int
	Difficulty   recipe.DifficultyLevel
	Macros       *MacrosCommand
}

// ImportRecipeTextCommand creates a recipe from pasted free text
type ImportRecipeTextCommand struct {
	OwnerID uuid.UUID
	Title   string
	Text    string
}

// UpdateRecipeCommand contains data for updating a recipe.
// Nil fields are left unchanged.
type UpdateRecipeCommand struct {
	RecipeID     uuid.UUID
	UserID       uuid.UUID
	Title        *string
	Ingredients  *[]IngredientCommand
	Instructions *[]string
	Notes        *string
	PrepTime     *int
	CookTime     *int
	Servings     *int
	Difficulty   *recipe.DifficultyLevel
	Macros       *MacrosCommand
}

// IngredientCommand carries either a free-text line or a structured
// item, mirroring the domain's tagged variant.
type IngredientCommand struct {
	Text     string `json:"text,omitempty"`
	Item     string `json:"item,omitempty"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// MacrosCommand carries optional per-serving macro data
type MacrosCommand struct {
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fats     *float64 `json:"fats,omitempty"`
}

// SafetyCheckCommand names the allergens and dietary restrictions to
// screen against. For CheckSafety, RecipeID selects the recipe; for
// FilterSafeRecipes the whole collection is screened.
type SafetyCheckCommand struct {
	RecipeID     uuid.UUID `json:"recipe_id,omitempty"`
	UserID       uuid.UUID `json:"-"`
	Allergens    []string  `json:"allergens"`
	Restrictions []string  `json:"restrictions"`
}

// SearchQuery defines collection filter parameters
type SearchQuery struct {
	Text      string             `json:"text,omitempty"`
	Tags      []string           `json:"tags,omitempty"`
	DateFrom  *string            `json:"date_from,omitempty"` // RFC 3339
	DateTo    *string            `json:"date_to,omitempty"`
	SortBy    matching.SortOrder `json:"sort_by,omitempty"`
}

// Response DTOs

// RecipeDTO is the data transfer object for recipes
type RecipeDTO struct {
	ID           uuid.UUID               `json:"id"`
	OwnerID      uuid.UUID               `json:"owner_id"`
	Title        string                  `json:"title"`
	Ingredients  []IngredientCommand     `json:"ingredients"`
	Instructions []string                `json:"instructions"`
	Tags         []string                `json:"tags"`
	Notes        string                  `json:"notes,omitempty"`
	PrepTime     int                     `json:"prep_time"`
	CookTime     int                     `json:"cook_time"`
	TotalTime    int                     `json:"total_time"`
	Servings     int                     `json:"servings"`
	Difficulty   recipe.DifficultyLevel  `json:"difficulty,omitempty"`
	Macros       *MacrosCommand          `json:"macros,omitempty"`
	CreatedAt    string                  `json:"created_at"`
	UpdatedAt    string                  `json:"updated_at"`
}

// RecipeList for collection results
type RecipeList struct {
	Recipes      []RecipeDTO `json:"recipes"`
	Total        int         `json:"total"`
	RemovedCount int         `json:"removed_count,omitempty"`
}

// CoverageReport describes how much of a recipe the pantry covers
type CoverageReport struct {
	RecipeID        uuid.UUID `json:"recipe_id,omitempty"`
	Available       []string  `json:"available"`
	Missing         []string  `json:"missing"`
	TotalRequired   int       `json:"total_required"`
	CoveragePercent int       `json:"coverage_percent"`
}

// SafetyReport describes allergen and diet screening for one recipe
type SafetyReport struct {
	RecipeID       uuid.UUID `json:"recipe_id"`
	Safe           bool      `json:"safe"`
	FoundAllergens []string  `json:"found_allergens"`
	Compatible     bool      `json:"compatible"`
	Violations     []string  `json:"violations"`
}

// DetectionResult reports whether free text looks like a recipe
type DetectionResult struct {
	IsRecipe bool `json:"is_recipe"`
	Score    int  `json:"score"`
}
