package recipe

import "errors"

// Domain errors for recipe operations

var (
	// Entity validation errors
	ErrTitleRequired       = errors.New("recipe title is required")
	ErrTitleTooLong        = errors.New("recipe title must not exceed 200 characters")
	ErrEmptyInstruction    = errors.New("instruction step cannot be empty")
	ErrEmptyTag            = errors.New("tag cannot be empty")
	ErrInvalidServings     = errors.New("servings must be greater than 0")
	ErrNegativeTime        = errors.New("prep and cook times cannot be negative")
	ErrInvalidDifficulty   = errors.New("unknown difficulty level")
	ErrNegativeMacro       = errors.New("macro values cannot be negative")
	ErrIngredientEmpty     = errors.New("ingredient needs either text or an item name")
	ErrIngredientAmbiguous = errors.New("ingredient cannot carry both text and an item name")

	// Business rule violations
	ErrDuplicateTag = errors.New("recipe already carries this tag")

	// State errors
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotRecipeOwner = errors.New("only the recipe owner can perform this action")
)
