// Package recipe provides the application layer for the recipe
// collection. It implements the use cases defined in the inbound ports
// and drives the matching engine for coverage and safety checks.
package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/matching"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
)

const recipeCacheTTL = time.Hour

// RecipeService implements the recipe use cases
type RecipeService struct {
	recipeRepo outbound.RecipeRepository
	pantryRepo outbound.PantryRepository
	cache      outbound.CacheRepository
	scanner    *matching.Scanner
	filter     *matching.Filter
	detector   *matching.Detector
	logger     *zap.Logger
}

// NewRecipeService creates a new recipe service
func NewRecipeService(
	recipeRepo outbound.RecipeRepository,
	pantryRepo outbound.PantryRepository,
	cache outbound.CacheRepository,
	scanner *matching.Scanner,
	filter *matching.Filter,
	detector *matching.Detector,
	logger *zap.Logger,
) inbound.RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		pantryRepo: pantryRepo,
		cache:      cache,
		scanner:    scanner,
		filter:     filter,
		detector:   detector,
		logger:     logger.Named("recipe-service"),
	}
}

// SaveRecipe creates a new recipe
func (s *RecipeService) SaveRecipe(ctx context.Context, cmd inbound.SaveRecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Saving new recipe",
		zap.String("title", cmd.Title),
		zap.String("owner_id", cmd.OwnerID.String()),
	)

	entity, err := recipe.NewRecipe(cmd.OwnerID, cmd.Title)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.applyContent(entity, cmd); err != nil {
		return nil, err
	}

	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}

	s.drainEvents(entity)
	s.invalidateOwnerCaches(ctx, cmd.OwnerID)

	dto := s.entityToDTO(entity)
	s.logger.Info("Recipe saved",
		zap.String("recipe_id", dto.ID.String()),
		zap.Int("ingredients", len(dto.Ingredients)),
	)
	return dto, nil
}

// ImportRecipeText creates a recipe from pasted free text. Text that
// does not look like a recipe is rejected before anything is stored.
func (s *RecipeService) ImportRecipeText(ctx context.Context, cmd inbound.ImportRecipeTextCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Importing recipe from text",
		zap.String("owner_id", cmd.OwnerID.String()),
		zap.Int("text_length", len(cmd.Text)),
	)

	if !s.detector.IsRecipeContent(cmd.Text) {
		score := s.detector.Score(cmd.Text)
		return nil, errors.NewNotRecipeContentError(score, s.detector.Threshold())
	}

	entity, err := recipe.NewRecipeFromText(cmd.OwnerID, cmd.Title, cmd.Text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}

	s.drainEvents(entity)
	s.invalidateOwnerCaches(ctx, cmd.OwnerID)

	return s.entityToDTO(entity), nil
}

// UpdateRecipe updates an existing recipe
func (s *RecipeService) UpdateRecipe(ctx context.Context, cmd inbound.UpdateRecipeCommand) (*inbound.RecipeDTO, error) {
	entity, err := s.loadOwned(ctx, cmd.RecipeID, cmd.UserID, "update this recipe")
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if err := entity.Rename(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Ingredients != nil {
		ingredients := make([]recipe.Ingredient, 0, len(*cmd.Ingredients))
		for _, ic := range *cmd.Ingredients {
			ingredients = append(ingredients, commandToIngredient(ic))
		}
		if err := entity.ReplaceIngredients(ingredients); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Instructions != nil {
		for _, step := range *cmd.Instructions {
			if err := entity.AddInstruction(step); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
		}
	}
	if cmd.Notes != nil {
		entity.SetNotes(*cmd.Notes)
	}
	if cmd.PrepTime != nil || cmd.CookTime != nil {
		prep, cook := entity.PrepTimeMinutes(), entity.CookTimeMinutes()
		if cmd.PrepTime != nil {
			prep = *cmd.PrepTime
		}
		if cmd.CookTime != nil {
			cook = *cmd.CookTime
		}
		if err := entity.SetTiming(prep, cook); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Servings != nil {
		if err := entity.SetServings(*cmd.Servings); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Difficulty != nil {
		if err := entity.SetDifficulty(*cmd.Difficulty); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Macros != nil {
		if err := entity.SetMacros(commandToMacros(cmd.Macros)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update recipe", err)
	}

	s.drainEvents(entity)
	s.invalidateRecipeCache(ctx, cmd.RecipeID)
	s.invalidateOwnerCaches(ctx, entity.OwnerID())

	return s.entityToDTO(entity), nil
}

// TagRecipe adds a tag to a recipe
func (s *RecipeService) TagRecipe(ctx context.Context, recipeID, userID uuid.UUID, tag string) error {
	entity, err := s.loadOwned(ctx, recipeID, userID, "tag this recipe")
	if err != nil {
		return err
	}

	if err := entity.Tag(tag); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("update recipe tags", err)
	}

	s.drainEvents(entity)
	s.invalidateRecipeCache(ctx, recipeID)
	s.invalidateOwnerCaches(ctx, entity.OwnerID())
	return nil
}

// UntagRecipe removes a tag from a recipe
func (s *RecipeService) UntagRecipe(ctx context.Context, recipeID, userID uuid.UUID, tag string) error {
	entity, err := s.loadOwned(ctx, recipeID, userID, "untag this recipe")
	if err != nil {
		return err
	}

	entity.Untag(tag)

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("update recipe tags", err)
	}

	s.invalidateRecipeCache(ctx, recipeID)
	s.invalidateOwnerCaches(ctx, entity.OwnerID())
	return nil
}

// DeleteRecipe deletes a recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	entity, err := s.loadOwned(ctx, recipeID, userID, "delete this recipe")
	if err != nil {
		return err
	}

	entity.MarkDeleted()

	if err := s.recipeRepo.Delete(ctx, recipeID); err != nil {
		return errors.NewDatabaseError("delete recipe", err)
	}

	s.drainEvents(entity)
	s.invalidateRecipeCache(ctx, recipeID)
	s.invalidateOwnerCaches(ctx, entity.OwnerID())

	s.logger.Info("Recipe deleted", zap.String("recipe_id", recipeID.String()))
	return nil
}

// GetRecipeByID retrieves a recipe by ID
func (s *RecipeService) GetRecipeByID(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeDTO, error) {
	if cached := s.getCachedRecipe(ctx, recipeID); cached != nil {
		return cached, nil
	}

	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}

	dto := s.entityToDTO(entity)
	s.cacheRecipe(ctx, dto)
	return dto, nil
}

// SearchRecipes filters and sorts the owner's collection
func (s *RecipeService) SearchRecipes(ctx context.Context, userID uuid.UUID, query inbound.SearchQuery) (*inbound.RecipeList, error) {
	entities, err := s.recipeRepo.FindByOwnerID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipes", err)
	}

	filters, err := buildFilters(query)
	if err != nil {
		return nil, err
	}

	views := make([]matching.Recipe, 0, len(entities))
	byID := make(map[uuid.UUID]*recipe.Recipe, len(entities))
	for _, e := range entities {
		views = append(views, e.Snapshot())
		byID[e.ID()] = e
	}

	matched := s.filter.Apply(views, filters)

	dtos := make([]inbound.RecipeDTO, 0, len(matched))
	for _, view := range matched {
		dtos = append(dtos, *s.entityToDTO(byID[view.ID]))
	}

	return &inbound.RecipeList{Recipes: dtos, Total: len(dtos)}, nil
}

// ListTags returns the deduplicated tag set across the owner's collection
func (s *RecipeService) ListTags(ctx context.Context, userID uuid.UUID) ([]string, error) {
	key := tagsCacheKey(userID)
	if data, err := s.cache.Get(ctx, key); err == nil && data != nil {
		var tags []string
		if json.Unmarshal(data, &tags) == nil {
			return tags, nil
		}
	}

	entities, err := s.recipeRepo.FindByOwnerID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipes", err)
	}

	views := make([]matching.Recipe, 0, len(entities))
	for _, e := range entities {
		views = append(views, e.Snapshot())
	}
	tags := matching.CollectTags(views)

	if data, err := json.Marshal(tags); err == nil {
		if err := s.cache.Set(ctx, key, data, recipeCacheTTL); err != nil {
			s.logger.Warn("Failed to cache tags", zap.Error(err))
		}
	}
	return tags, nil
}

// CheckCoverage reports how much of a saved recipe the pantry covers
func (s *RecipeService) CheckCoverage(ctx context.Context, recipeID, userID uuid.UUID) (*inbound.CoverageReport, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}

	required := make([]matching.RequiredIngredient, 0, len(entity.Ingredients()))
	for _, ing := range entity.Snapshot().Ingredients {
		required = append(required, ing.Canonical())
	}

	report, err := s.coverageAgainstPantry(ctx, userID, required)
	if err != nil {
		return nil, err
	}
	report.RecipeID = recipeID
	return report, nil
}

// CheckCoverageForText parses pasted text and reports pantry coverage
// without saving anything
func (s *RecipeService) CheckCoverageForText(ctx context.Context, userID uuid.UUID, text string) (*inbound.CoverageReport, error) {
	required := matching.ParseIngredients(text)
	return s.coverageAgainstPantry(ctx, userID, required)
}

// CheckSafety screens one recipe against allergens and restrictions
func (s *RecipeService) CheckSafety(ctx context.Context, cmd inbound.SafetyCheckCommand) (*inbound.SafetyReport, error) {
	entity, err := s.recipeRepo.FindByID(ctx, cmd.RecipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(cmd.RecipeID.String())
	}

	view := entity.Snapshot()
	allergens := s.scanner.ContainsAllergens(view, cmd.Allergens)
	diet := s.scanner.MeetsDietaryRestrictions(view, cmd.Restrictions)

	return &inbound.SafetyReport{
		RecipeID:       cmd.RecipeID,
		Safe:           allergens.Safe,
		FoundAllergens: allergens.FoundAllergens,
		Compatible:     diet.Compatible,
		Violations:     diet.Violations,
	}, nil
}

// FilterSafeRecipes screens the whole collection and keeps only
// recipes passing both allergen and diet checks
func (s *RecipeService) FilterSafeRecipes(ctx context.Context, userID uuid.UUID, cmd inbound.SafetyCheckCommand) (*inbound.RecipeList, error) {
	entities, err := s.recipeRepo.FindByOwnerID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipes", err)
	}

	views := make([]matching.Recipe, 0, len(entities))
	byID := make(map[uuid.UUID]*recipe.Recipe, len(entities))
	for _, e := range entities {
		views = append(views, e.Snapshot())
		byID[e.ID()] = e
	}

	result := s.scanner.FilterSafe(views, cmd.Allergens, cmd.Restrictions)

	dtos := make([]inbound.RecipeDTO, 0, len(result.FilteredRecipes))
	for _, view := range result.FilteredRecipes {
		dtos = append(dtos, *s.entityToDTO(byID[view.ID]))
	}

	s.logger.Info("Safety filter applied",
		zap.String("owner_id", userID.String()),
		zap.Int("kept", len(dtos)),
		zap.Int("removed", result.RemovedCount),
	)

	return &inbound.RecipeList{
		Recipes:      dtos,
		Total:        len(dtos),
		RemovedCount: result.RemovedCount,
	}, nil
}

// ParseRecipeText extracts ingredients from free text
func (s *RecipeService) ParseRecipeText(ctx context.Context, text string) ([]matching.RequiredIngredient, error) {
	return matching.ParseIngredients(text), nil
}

// DetectRecipeContent scores free text for recipe-ness
func (s *RecipeService) DetectRecipeContent(ctx context.Context, text string) (*inbound.DetectionResult, error) {
	score := s.detector.Score(text)
	return &inbound.DetectionResult{
		IsRecipe: s.detector.IsRecipeContent(text),
		Score:    score,
	}, nil
}

// Helper methods

func (s *RecipeService) coverageAgainstPantry(ctx context.Context, userID uuid.UUID, required []matching.RequiredIngredient) (*inbound.CoverageReport, error) {
	items, err := s.pantryRepo.FindByOwnerID(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find pantry items", err)
	}

	inventory := make([]matching.InventoryItem, 0, len(items))
	for _, item := range items {
		inventory = append(inventory, matching.InventoryItem{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Unit:     item.Unit(),
		})
	}

	comparison := matching.CompareIngredients(required, inventory)

	available := make([]string, 0, len(comparison.Available))
	for _, a := range comparison.Available {
		available = append(available, a.Name)
	}

	return &inbound.CoverageReport{
		Available:       available,
		Missing:         comparison.Missing,
		TotalRequired:   comparison.TotalRequired,
		CoveragePercent: comparison.Coverage(),
	}, nil
}

func (s *RecipeService) loadOwned(ctx context.Context, recipeID, userID uuid.UUID, action string) (*recipe.Recipe, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if entity == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}
	if entity.OwnerID() != userID {
		return nil, errors.NewInsufficientPermissionsError(action)
	}
	return entity, nil
}

func (s *RecipeService) applyContent(entity *recipe.Recipe, cmd inbound.SaveRecipeCommand) error {
	for _, ic := range cmd.Ingredients {
		if err := entity.AddIngredient(commandToIngredient(ic)); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	for _, step := range cmd.Instructions {
		if err := entity.AddInstruction(step); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	for _, tag := range cmd.Tags {
		if err := entity.Tag(tag); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Notes != "" {
		entity.SetNotes(cmd.Notes)
	}
	if cmd.PrepTime != 0 || cmd.CookTime != 0 {
		if err := entity.SetTiming(cmd.PrepTime, cmd.CookTime); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Servings != 0 {
		if err := entity.SetServings(cmd.Servings); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Difficulty != "" {
		if err := entity.SetDifficulty(cmd.Difficulty); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Macros != nil {
		if err := entity.SetMacros(commandToMacros(cmd.Macros)); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	return nil
}

func (s *RecipeService) drainEvents(entity *recipe.Recipe) {
	for _, event := range entity.Events() {
		s.logger.Debug("Domain event",
			zap.String("event", event.EventName()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
}

// entityToDTO converts domain entity to DTO
func (s *RecipeService) entityToDTO(entity *recipe.Recipe) *inbound.RecipeDTO {
	ingredients := make([]inbound.IngredientCommand, 0, len(entity.Ingredients()))
	for _, ing := range entity.Ingredients() {
		ingredients = append(ingredients, inbound.IngredientCommand{
			Text:     ing.Text,
			Item:     ing.Item,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Notes:    ing.Notes,
		})
	}

	dto := &inbound.RecipeDTO{
		ID:           entity.ID(),
		OwnerID:      entity.OwnerID(),
		Title:        entity.Title(),
		Ingredients:  ingredients,
		Instructions: entity.Instructions(),
		Tags:         entity.Tags(),
		Notes:        entity.Notes(),
		PrepTime:     entity.PrepTimeMinutes(),
		CookTime:     entity.CookTimeMinutes(),
		TotalTime:    entity.PrepTimeMinutes() + entity.CookTimeMinutes(),
		Servings:     entity.Servings(),
		Difficulty:   entity.Difficulty(),
		CreatedAt:    entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt:    entity.UpdatedAt().Format(time.RFC3339),
	}

	if m := entity.Macros(); m != nil {
		dto.Macros = &inbound.MacrosCommand{
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fats:     m.Fats,
		}
	}
	return dto
}

func commandToIngredient(ic inbound.IngredientCommand) recipe.Ingredient {
	return recipe.Ingredient{
		Text:     ic.Text,
		Item:     ic.Item,
		Quantity: ic.Quantity,
		Unit:     ic.Unit,
		Notes:    ic.Notes,
	}
}

func commandToMacros(mc *inbound.MacrosCommand) *recipe.Macros {
	if mc == nil {
		return nil
	}
	return &recipe.Macros{
		Calories: mc.Calories,
		Protein:  mc.Protein,
		Carbs:    mc.Carbs,
		Fats:     mc.Fats,
	}
}

func buildFilters(query inbound.SearchQuery) (matching.Filters, error) {
	filters := matching.Filters{
		SearchQuery:  query.Text,
		SelectedTags: query.Tags,
		SortBy:       query.SortBy,
	}

	if query.DateFrom != nil || query.DateTo != nil {
		dr := &matching.DateRange{}
		if query.DateFrom != nil {
			t, err := time.Parse(time.RFC3339, *query.DateFrom)
			if err != nil {
				return filters, errors.NewValidationError("date_from must be RFC 3339")
			}
			dr.From = &t
		}
		if query.DateTo != nil {
			t, err := time.Parse(time.RFC3339, *query.DateTo)
			if err != nil {
				return filters, errors.NewValidationError("date_to must be RFC 3339")
			}
			dr.To = &t
		}
		filters.DateRange = dr
	}
	return filters, nil
}

// Cache operations

func recipeCacheKey(recipeID uuid.UUID) string {
	return fmt.Sprintf("recipe:%s", recipeID.String())
}

func tagsCacheKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("tags:%s", ownerID.String())
}

func (s *RecipeService) getCachedRecipe(ctx context.Context, recipeID uuid.UUID) *inbound.RecipeDTO {
	data, err := s.cache.Get(ctx, recipeCacheKey(recipeID))
	if err != nil || data == nil {
		return nil
	}

	var dto inbound.RecipeDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil
	}
	return &dto
}

func (s *RecipeService) cacheRecipe(ctx context.Context, dto *inbound.RecipeDTO) {
	data, err := json.Marshal(dto)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, recipeCacheKey(dto.ID), data, recipeCacheTTL); err != nil {
		s.logger.Warn("Failed to cache recipe", zap.Error(err))
	}
}

func (s *RecipeService) invalidateRecipeCache(ctx context.Context, recipeID uuid.UUID) {
	if err := s.cache.Delete(ctx, recipeCacheKey(recipeID)); err != nil {
		s.logger.Warn("Failed to invalidate recipe cache", zap.Error(err))
	}
}

func (s *RecipeService) invalidateOwnerCaches(ctx context.Context, ownerID uuid.UUID) {
	if err := s.cache.Delete(ctx, tagsCacheKey(ownerID)); err != nil {
		s.logger.Warn("Failed to invalidate tag cache", zap.Error(err))
	}
}
