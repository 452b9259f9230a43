package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIngredientsLabeledBlock(t *testing.T) {
	text := "Ingredients:\n- 2 cups flour\n- 1 tsp salt\n\nInstructions:\n1. Preheat oven to 350F"

	required := ParseIngredients(text)

	require.Len(t, required, 2)
	assert.Equal(t, RequiredIngredient{Name: "flour", Quantity: "2", Unit: "cups"}, required[0])
	assert.Equal(t, RequiredIngredient{Name: "salt", Quantity: "1", Unit: "tsp"}, required[1])
}

func TestParseIngredientsQuantityForms(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected RequiredIngredient
	}{
		{"Integer", "2 cups flour", RequiredIngredient{Name: "flour", Quantity: "2", Unit: "cups"}},
		{"Decimal", "1.5 kg potatoes", RequiredIngredient{Name: "potatoes", Quantity: "1.5", Unit: "kg"}},
		{"Fraction", "1/2 tsp salt", RequiredIngredient{Name: "salt", Quantity: "1/2", Unit: "tsp"}},
		{"MixedNumber", "1 1/2 cups sugar", RequiredIngredient{Name: "sugar", Quantity: "1 1/2", Unit: "cups"}},
		{"OfConnector", "2 tbsp of olive oil", RequiredIngredient{Name: "olive oil", Quantity: "2", Unit: "tbsp"}},
		{"SingularUnit", "1 cup milk", RequiredIngredient{Name: "milk", Quantity: "1", Unit: "cup"}},
		{"UppercaseUnit", "3 TBSP butter", RequiredIngredient{Name: "butter", Quantity: "3", Unit: "tbsp"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			required := ParseIngredients(tc.line)
			require.Len(t, required, 1)
			assert.Equal(t, tc.expected, required[0])
		})
	}
}

func TestParseIngredientsBulletMarkers(t *testing.T) {
	text := "Ingredients:\n- 1 cup rice\n* 2 cloves garlic\n• 1 tsp cumin\n3. 1 can beans"

	required := ParseIngredients(text)

	require.Len(t, required, 4)
	assert.Equal(t, "rice", required[0].Name)
	assert.Equal(t, "garlic", required[1].Name)
	assert.Equal(t, "cumin", required[2].Name)
	assert.Equal(t, "beans", required[3].Name)
}

func TestParseIngredientsBareNames(t *testing.T) {
	// No measurement token: the whole line (minus the bullet) is the name.
	text := "Ingredients:\n- salt\n- black pepper"

	required := ParseIngredients(text)

	require.Len(t, required, 2)
	assert.Equal(t, RequiredIngredient{Name: "salt"}, required[0])
	assert.Equal(t, RequiredIngredient{Name: "black pepper"}, required[1])
}

func TestParseIngredientsDiscardsInstructionLines(t *testing.T) {
	// No "Ingredients:" header, so the whole text is scanned. Lines with a
	// cooking verb and no measurement token must not leak into the result.
	text := "2 cups flour\nPreheat the oven\nWhisk until smooth\n1 tsp vanilla"

	required := ParseIngredients(text)

	require.Len(t, required, 2)
	assert.Equal(t, "flour", required[0].Name)
	assert.Equal(t, "vanilla", required[1].Name)
}

func TestParseIngredientsSkipsSectionHeaders(t *testing.T) {
	text := "Notes:\nsome note\nIngredients:\n- 1 cup oats\nDirections:\n1. Stir well"

	required := ParseIngredients(text)

	require.Len(t, required, 1)
	assert.Equal(t, "oats", required[0].Name)
}

func TestParseIngredientsEmbeddedMeasurement(t *testing.T) {
	required := ParseIngredients("Use 2 cups of flour")

	require.Len(t, required, 1)
	assert.Equal(t, "flour", required[0].Name)
	assert.Equal(t, "2", required[0].Quantity)
	assert.Equal(t, "cups", required[0].Unit)
}

func TestParseIngredientsNeverErrors(t *testing.T) {
	// Empty result is a result, not an error; callers surface a
	// parse-failed message instead of treating it as a zero-ingredient
	// recipe.
	tests := []struct {
		name string
		text string
	}{
		{"Empty", ""},
		{"OnlyWhitespace", "   \n\n  "},
		{"OnlyInstructions", "Preheat the oven.\nBake until golden.\nServe warm."},
		{"OnlyHeaders", "Ingredients:\nInstructions:"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, ParseIngredients(tc.text))
		})
	}
}

func BenchmarkParseIngredients(b *testing.B) {
	text := "Ingredients:\n- 2 cups flour\n- 1 tsp salt\n- 1/2 cup sugar\n- 3 tbsp butter\n\nInstructions:\n1. Preheat oven to 350F\n2. Mix everything"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseIngredients(text)
	}
}
