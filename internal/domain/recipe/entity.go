// Package recipe contains the core domain logic for saved recipes.
// This follows Domain-Driven Design principles with rich domain models.
package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/shared"
	"github.com/platewise/v1/internal/matching"
)

// Recipe is the aggregate root for a saved recipe. It carries the
// user-entered content plus the tags and macros the safety scanner
// relies on.
type Recipe struct {
	id      uuid.UUID
	ownerID uuid.UUID

	title        string
	ingredients  []Ingredient
	instructions []string
	tags         []string
	notes        string

	prepTimeMinutes int
	cookTimeMinutes int
	servings        int
	difficulty      DifficultyLevel
	macros          *Macros

	sourceText string

	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// NewRecipe creates a recipe with validation.
func NewRecipe(ownerID uuid.UUID, title string) (*Recipe, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	now := time.Now()
	recipe := &Recipe{
		id:        uuid.New(),
		ownerID:   ownerID,
		title:     strings.TrimSpace(title),
		createdAt: now,
		updatedAt: now,
		events:    []shared.DomainEvent{},
	}

	recipe.addEvent(RecipeSavedEvent{
		RecipeID: recipe.id,
		OwnerID:  ownerID,
		Title:    recipe.title,
		SavedAt:  now,
	})

	return recipe, nil
}

// NewRecipeFromText creates a recipe whose ingredients were extracted
// from pasted free text. The raw text is kept for re-parsing.
func NewRecipeFromText(ownerID uuid.UUID, title, sourceText string) (*Recipe, error) {
	recipe, err := NewRecipe(ownerID, title)
	if err != nil {
		return nil, err
	}
	recipe.sourceText = sourceText

	for _, req := range matching.ParseIngredients(sourceText) {
		recipe.ingredients = append(recipe.ingredients, Ingredient{
			Item:     req.Name,
			Quantity: req.Quantity,
			Unit:     req.Unit,
			Notes:    req.Notes,
		})
	}

	return recipe, nil
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// OwnerID returns the owning user's identifier
func (r *Recipe) OwnerID() uuid.UUID {
	return r.ownerID
}

// Title returns the recipe's title
func (r *Recipe) Title() string {
	return r.title
}

// Ingredients returns the recipe's ingredients
func (r *Recipe) Ingredients() []Ingredient {
	return r.ingredients
}

// Instructions returns the recipe's instruction steps
func (r *Recipe) Instructions() []string {
	return r.instructions
}

// Tags returns the recipe's tags
func (r *Recipe) Tags() []string {
	return r.tags
}

// Notes returns the recipe's free-form notes
func (r *Recipe) Notes() string {
	return r.notes
}

// PrepTimeMinutes returns the preparation time in minutes
func (r *Recipe) PrepTimeMinutes() int {
	return r.prepTimeMinutes
}

// CookTimeMinutes returns the cooking time in minutes
func (r *Recipe) CookTimeMinutes() int {
	return r.cookTimeMinutes
}

// Servings returns the number of servings
func (r *Recipe) Servings() int {
	return r.servings
}

// Difficulty returns the difficulty level
func (r *Recipe) Difficulty() DifficultyLevel {
	return r.difficulty
}

// Macros returns per-serving macro data, if recorded
func (r *Recipe) Macros() *Macros {
	return r.macros
}

// SourceText returns the raw text the recipe was parsed from, if any
func (r *Recipe) SourceText() string {
	return r.sourceText
}

// CreatedAt returns when the recipe was saved
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the recipe was last changed
func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// Rename changes the recipe title with validation.
func (r *Recipe) Rename(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	r.title = strings.TrimSpace(title)
	r.updatedAt = time.Now()
	return nil
}

// AddIngredient appends a validated ingredient.
func (r *Recipe) AddIngredient(ingredient Ingredient) error {
	if err := ingredient.Validate(); err != nil {
		return err
	}

	r.ingredients = append(r.ingredients, ingredient)
	r.updatedAt = time.Now()
	return nil
}

// ReplaceIngredients swaps in a full validated ingredient list.
func (r *Recipe) ReplaceIngredients(ingredients []Ingredient) error {
	for _, ing := range ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}

	r.ingredients = ingredients
	r.updatedAt = time.Now()
	return nil
}

// AddInstruction appends an instruction step.
func (r *Recipe) AddInstruction(step string) error {
	if strings.TrimSpace(step) == "" {
		return ErrEmptyInstruction
	}

	r.instructions = append(r.instructions, step)
	r.updatedAt = time.Now()
	return nil
}

// Tag adds a tag if the recipe does not already carry it. Comparison
// is case-insensitive, so "Vegan" and "vegan" are one tag.
func (r *Recipe) Tag(tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ErrEmptyTag
	}
	for _, existing := range r.tags {
		if strings.EqualFold(existing, tag) {
			return ErrDuplicateTag
		}
	}

	r.tags = append(r.tags, tag)
	r.updatedAt = time.Now()

	r.addEvent(RecipeTaggedEvent{
		RecipeID: r.id,
		Tag:      tag,
		TaggedAt: r.updatedAt,
	})

	return nil
}

// Untag removes a tag, case-insensitive. Removing an absent tag is a
// no-op.
func (r *Recipe) Untag(tag string) {
	kept := r.tags[:0]
	for _, existing := range r.tags {
		if !strings.EqualFold(existing, tag) {
			kept = append(kept, existing)
		}
	}
	if len(kept) != len(r.tags) {
		r.tags = kept
		r.updatedAt = time.Now()
	}
}

// SetNotes replaces the recipe's notes.
func (r *Recipe) SetNotes(notes string) {
	r.notes = notes
	r.updatedAt = time.Now()
}

// SetTiming records prep and cook times in minutes.
func (r *Recipe) SetTiming(prepMinutes, cookMinutes int) error {
	if prepMinutes < 0 || cookMinutes < 0 {
		return ErrNegativeTime
	}

	r.prepTimeMinutes = prepMinutes
	r.cookTimeMinutes = cookMinutes
	r.updatedAt = time.Now()
	return nil
}

// SetServings records the serving count.
func (r *Recipe) SetServings(servings int) error {
	if servings <= 0 {
		return ErrInvalidServings
	}

	r.servings = servings
	r.updatedAt = time.Now()
	return nil
}

// SetDifficulty records the difficulty level.
func (r *Recipe) SetDifficulty(level DifficultyLevel) error {
	if !level.Valid() {
		return ErrInvalidDifficulty
	}

	r.difficulty = level
	r.updatedAt = time.Now()
	return nil
}

// SetMacros records per-serving macro data. A nil value clears it,
// which puts the recipe back in the "unknown macros" bucket that
// carb and fat diet rules treat as compatible.
func (r *Recipe) SetMacros(macros *Macros) error {
	if macros != nil {
		if err := macros.Validate(); err != nil {
			return err
		}
	}

	r.macros = macros
	r.updatedAt = time.Now()
	return nil
}

// Snapshot converts the aggregate into the plain view the matching
// engine consumes. The engine never sees domain entities.
func (r *Recipe) Snapshot() matching.Recipe {
	view := matching.Recipe{
		ID:              r.id,
		Title:           r.title,
		Instructions:    append([]string(nil), r.instructions...),
		Tags:            append([]string(nil), r.tags...),
		Notes:           r.notes,
		CreatedAt:       r.createdAt,
		PrepTimeMinutes: r.prepTimeMinutes,
		CookTimeMinutes: r.cookTimeMinutes,
		Servings:        r.servings,
		Difficulty:      string(r.difficulty),
	}

	for _, ing := range r.ingredients {
		view.Ingredients = append(view.Ingredients, ing.toMatching())
	}

	if r.macros != nil {
		view.Calories = r.macros.Calories
		view.Protein = r.macros.Protein
		view.Carbs = r.macros.Carbs
		view.Fats = r.macros.Fats
	}

	return view
}

// MarkDeleted raises the deletion event before the recipe is removed.
func (r *Recipe) MarkDeleted() {
	r.addEvent(RecipeDeletedEvent{
		RecipeID:  r.id,
		OwnerID:   r.ownerID,
		DeletedAt: time.Now(),
	})
}

// addEvent adds a domain event to be dispatched
func (r *Recipe) addEvent(event shared.DomainEvent) {
	r.events = append(r.events, event)
}

// Events returns and clears pending domain events
func (r *Recipe) Events() []shared.DomainEvent {
	events := r.events
	r.events = []shared.DomainEvent{}
	return events
}

// Reconstruct rebuilds a recipe from persisted state without raising
// events. Only repositories should call this.
func Reconstruct(
	id, ownerID uuid.UUID,
	title string,
	ingredients []Ingredient,
	instructions, tags []string,
	notes, sourceText string,
	prepMinutes, cookMinutes, servings int,
	difficulty DifficultyLevel,
	macros *Macros,
	createdAt, updatedAt time.Time,
) *Recipe {
	return &Recipe{
		id:              id,
		ownerID:         ownerID,
		title:           title,
		ingredients:     ingredients,
		instructions:    instructions,
		tags:            tags,
		notes:           notes,
		sourceText:      sourceText,
		prepTimeMinutes: prepMinutes,
		cookTimeMinutes: cookMinutes,
		servings:        servings,
		difficulty:      difficulty,
		macros:          macros,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		events:          []shared.DomainEvent{},
	}
}

// validateTitle validates the recipe title
func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrTitleRequired
	}
	if len(trimmed) > 200 {
		return ErrTitleTooLong
	}
	return nil
}
