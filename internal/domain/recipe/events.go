package recipe

import (
	"time"

	"github.com/google/uuid"
)

// RecipeSavedEvent is raised when a recipe enters the collection
type RecipeSavedEvent struct {
	RecipeID uuid.UUID
	OwnerID  uuid.UUID
	Title    string
	SavedAt  time.Time
}

func (e RecipeSavedEvent) EventName() string {
	return "recipe.saved"
}

func (e RecipeSavedEvent) OccurredAt() time.Time {
	return e.SavedAt
}

// RecipeTaggedEvent is raised when a tag is added to a recipe
type RecipeTaggedEvent struct {
	RecipeID uuid.UUID
	Tag      string
	TaggedAt time.Time
}

func (e RecipeTaggedEvent) EventName() string {
	return "recipe.tagged"
}

func (e RecipeTaggedEvent) OccurredAt() time.Time {
	return e.TaggedAt
}

// RecipeDeletedEvent is raised when a recipe is removed
type RecipeDeletedEvent struct {
	RecipeID  uuid.UUID
	OwnerID   uuid.UUID
	DeletedAt time.Time
}

func (e RecipeDeletedEvent) EventName() string {
	return "recipe.deleted"
}

func (e RecipeDeletedEvent) OccurredAt() time.Time {
	return e.DeletedAt
}
