package recipe

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for the Recipe entity
type RecipeTestSuite struct {
	suite.Suite
}

// TestRecipeCreation tests recipe creation scenarios
func (suite *RecipeTestSuite) TestRecipeCreation() {
	suite.Run("ValidRecipe_ShouldCreateSuccessfully", func() {
		// Arrange
		ownerID := uuid.New()

		// Act
		recipe, err := NewRecipe(ownerID, "Shakshuka")

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), recipe)

		assert.NotEqual(suite.T(), uuid.Nil, recipe.ID())
		assert.Equal(suite.T(), ownerID, recipe.OwnerID())
		assert.Equal(suite.T(), "Shakshuka", recipe.Title())
		assert.NotZero(suite.T(), recipe.CreatedAt())

		// Check domain events
		events := recipe.Events()
		require.Len(suite.T(), events, 1)

		saved, ok := events[0].(RecipeSavedEvent)
		assert.True(suite.T(), ok, "Should emit RecipeSavedEvent")
		assert.Equal(suite.T(), recipe.ID(), saved.RecipeID)
		assert.Equal(suite.T(), ownerID, saved.OwnerID)
	})

	suite.Run("EmptyTitle_ShouldReturnError", func() {
		recipe, err := NewRecipe(uuid.New(), "   ")

		assert.Nil(suite.T(), recipe)
		assert.Equal(suite.T(), ErrTitleRequired, err)
	})

	suite.Run("TitleTooLong_ShouldReturnError", func() {
		recipe, err := NewRecipe(uuid.New(), strings.Repeat("a", 201))

		assert.Nil(suite.T(), recipe)
		assert.Equal(suite.T(), ErrTitleTooLong, err)
	})
}

// TestRecipeFromText tests creation from pasted free text
func (suite *RecipeTestSuite) TestRecipeFromText() {
	suite.Run("IngredientsAreExtracted", func() {
		text := "Ingredients:\n2 cups flour\n1 tsp salt\n\nInstructions:\nMix and bake."

		recipe, err := NewRecipeFromText(uuid.New(), "Basic Bread", text)

		require.NoError(suite.T(), err)
		require.Len(suite.T(), recipe.Ingredients(), 2)
		assert.Equal(suite.T(), "flour", recipe.Ingredients()[0].Item)
		assert.Equal(suite.T(), "2", recipe.Ingredients()[0].Quantity)
		assert.Equal(suite.T(), "cups", recipe.Ingredients()[0].Unit)
		assert.Equal(suite.T(), text, recipe.SourceText())
	})

	suite.Run("UnparseableText_StillCreatesRecipe", func() {
		recipe, err := NewRecipeFromText(uuid.New(), "Mystery", "…")

		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), recipe.Ingredients())
	})
}

// TestRecipeModification tests recipe modification scenarios
func (suite *RecipeTestSuite) TestRecipeModification() {
	newRecipe := func() *Recipe {
		recipe, err := NewRecipe(uuid.New(), "Test Recipe")
		require.NoError(suite.T(), err)
		recipe.Events()
		return recipe
	}

	suite.Run("AddIngredient_Structured", func() {
		recipe := newRecipe()

		err := recipe.AddIngredient(Ingredient{Item: "flour", Quantity: "2", Unit: "cups"})

		require.NoError(suite.T(), err)
		assert.Len(suite.T(), recipe.Ingredients(), 1)
	})

	suite.Run("AddIngredient_FreeText", func() {
		recipe := newRecipe()

		err := recipe.AddIngredient(Ingredient{Text: "a splash of soy sauce"})

		require.NoError(suite.T(), err)
	})

	suite.Run("AddIngredient_BothShapes_ShouldReturnError", func() {
		recipe := newRecipe()

		err := recipe.AddIngredient(Ingredient{Text: "flour", Item: "flour"})

		assert.Equal(suite.T(), ErrIngredientAmbiguous, err)
		assert.Empty(suite.T(), recipe.Ingredients())
	})

	suite.Run("AddIngredient_NeitherShape_ShouldReturnError", func() {
		recipe := newRecipe()

		err := recipe.AddIngredient(Ingredient{Quantity: "2", Unit: "cups"})

		assert.Equal(suite.T(), ErrIngredientEmpty, err)
	})

	suite.Run("AddInstruction_Empty_ShouldReturnError", func() {
		recipe := newRecipe()

		err := recipe.AddInstruction("  ")

		assert.Equal(suite.T(), ErrEmptyInstruction, err)
	})

	suite.Run("SetTiming_Negative_ShouldReturnError", func() {
		recipe := newRecipe()

		err := recipe.SetTiming(-5, 10)

		assert.Equal(suite.T(), ErrNegativeTime, err)
	})

	suite.Run("SetServings_Zero_ShouldReturnError", func() {
		recipe := newRecipe()

		err := recipe.SetServings(0)

		assert.Equal(suite.T(), ErrInvalidServings, err)
	})

	suite.Run("SetDifficulty_Unknown_ShouldReturnError", func() {
		recipe := newRecipe()

		err := recipe.SetDifficulty(DifficultyLevel("nightmare"))

		assert.Equal(suite.T(), ErrInvalidDifficulty, err)
	})

	suite.Run("SetMacros_Negative_ShouldReturnError", func() {
		recipe := newRecipe()
		bad := -3.0

		err := recipe.SetMacros(&Macros{Carbs: &bad})

		assert.Equal(suite.T(), ErrNegativeMacro, err)
		assert.Nil(suite.T(), recipe.Macros())
	})
}

// TestRecipeTagging tests tag management
func (suite *RecipeTestSuite) TestRecipeTagging() {
	newRecipe := func() *Recipe {
		recipe, err := NewRecipe(uuid.New(), "Test Recipe")
		require.NoError(suite.T(), err)
		recipe.Events()
		return recipe
	}

	suite.Run("Tag_ShouldAddAndEmitEvent", func() {
		recipe := newRecipe()

		err := recipe.Tag("vegan")

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), []string{"vegan"}, recipe.Tags())

		events := recipe.Events()
		require.Len(suite.T(), events, 1)
		tagged, ok := events[0].(RecipeTaggedEvent)
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), "vegan", tagged.Tag)
	})

	suite.Run("Tag_DuplicateCaseInsensitive_ShouldReturnError", func() {
		recipe := newRecipe()
		require.NoError(suite.T(), recipe.Tag("Vegan"))

		err := recipe.Tag("vegan")

		assert.Equal(suite.T(), ErrDuplicateTag, err)
		assert.Len(suite.T(), recipe.Tags(), 1)
	})

	suite.Run("Untag_RemovesCaseInsensitive", func() {
		recipe := newRecipe()
		require.NoError(suite.T(), recipe.Tag("Quick"))
		require.NoError(suite.T(), recipe.Tag("dinner"))

		recipe.Untag("quick")

		assert.Equal(suite.T(), []string{"dinner"}, recipe.Tags())
	})

	suite.Run("Untag_AbsentTag_IsNoOp", func() {
		recipe := newRecipe()
		require.NoError(suite.T(), recipe.Tag("dinner"))

		recipe.Untag("breakfast")

		assert.Equal(suite.T(), []string{"dinner"}, recipe.Tags())
	})
}

// TestRecipeSnapshot tests conversion to the matching engine's view
func (suite *RecipeTestSuite) TestRecipeSnapshot() {
	suite.Run("AllFieldsCarryOver", func() {
		recipe, err := NewRecipe(uuid.New(), "Keto Omelette")
		require.NoError(suite.T(), err)

		require.NoError(suite.T(), recipe.AddIngredient(Ingredient{Item: "eggs", Quantity: "3"}))
		require.NoError(suite.T(), recipe.AddIngredient(Ingredient{Text: "a knob of butter"}))
		require.NoError(suite.T(), recipe.AddInstruction("Whisk the eggs."))
		require.NoError(suite.T(), recipe.Tag("keto"))
		require.NoError(suite.T(), recipe.SetTiming(5, 10))
		require.NoError(suite.T(), recipe.SetServings(1))
		require.NoError(suite.T(), recipe.SetDifficulty(DifficultyEasy))
		carbs := 4.0
		require.NoError(suite.T(), recipe.SetMacros(&Macros{Carbs: &carbs}))

		view := recipe.Snapshot()

		assert.Equal(suite.T(), recipe.ID(), view.ID)
		assert.Equal(suite.T(), "Keto Omelette", view.Title)
		require.Len(suite.T(), view.Ingredients, 2)
		assert.Equal(suite.T(), "eggs", view.Ingredients[0].Item)
		assert.Equal(suite.T(), "a knob of butter", view.Ingredients[1].Text)
		assert.Equal(suite.T(), []string{"keto"}, view.Tags)
		assert.Equal(suite.T(), 5, view.PrepTimeMinutes)
		assert.Equal(suite.T(), 10, view.CookTimeMinutes)
		assert.Equal(suite.T(), "easy", view.Difficulty)
		require.NotNil(suite.T(), view.Carbs)
		assert.Equal(suite.T(), 4.0, *view.Carbs)
		assert.Nil(suite.T(), view.Fats)
	})

	suite.Run("MissingMacros_StayNil", func() {
		recipe, err := NewRecipe(uuid.New(), "Mystery Stew")
		require.NoError(suite.T(), err)

		view := recipe.Snapshot()

		assert.Nil(suite.T(), view.Calories)
		assert.Nil(suite.T(), view.Carbs)
		assert.Nil(suite.T(), view.Fats)
	})

	suite.Run("SnapshotIsDetached", func() {
		recipe, err := NewRecipe(uuid.New(), "Salad")
		require.NoError(suite.T(), err)
		require.NoError(suite.T(), recipe.Tag("lunch"))

		view := recipe.Snapshot()
		view.Tags[0] = "mutated"

		assert.Equal(suite.T(), []string{"lunch"}, recipe.Tags())
	})
}

func TestReconstructRaisesNoEvents(t *testing.T) {
	now := time.Now()

	recipe := Reconstruct(
		uuid.New(), uuid.New(),
		"Leftover Fried Rice",
		[]Ingredient{{Item: "rice"}},
		[]string{"Fry the rice."}, []string{"dinner"},
		"", "",
		10, 15, 2,
		DifficultyEasy, nil,
		now, now,
	)

	assert.Equal(t, "Leftover Fried Rice", recipe.Title())
	assert.Empty(t, recipe.Events())
}

// TestRecipeTestSuite runs the recipe test suite
func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}
