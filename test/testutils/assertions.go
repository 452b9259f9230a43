// Package testutils provides custom assertions and testing utilities
package testutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/v1/internal/domain/pantry"
	"github.com/platewise/v1/internal/domain/recipe"
)

// AssertRecipeEqual checks that two recipes carry the same state
func AssertRecipeEqual(t *testing.T, expected, actual *recipe.Recipe) {
	t.Helper()

	require.NotNil(t, actual)
	assert.Equal(t, expected.ID(), actual.ID())
	assert.Equal(t, expected.OwnerID(), actual.OwnerID())
	assert.Equal(t, expected.Title(), actual.Title())
	assert.Equal(t, expected.Ingredients(), actual.Ingredients())
	assert.Equal(t, expected.Instructions(), actual.Instructions())
	assert.ElementsMatch(t, expected.Tags(), actual.Tags())
	assert.Equal(t, expected.Notes(), actual.Notes())
	assert.Equal(t, expected.Servings(), actual.Servings())
	assert.Equal(t, expected.Difficulty(), actual.Difficulty())
	assert.Equal(t, expected.Macros(), actual.Macros())
}

// AssertPantryItemEqual checks that two pantry items carry the same state
func AssertPantryItemEqual(t *testing.T, expected, actual *pantry.Item) {
	t.Helper()

	require.NotNil(t, actual)
	assert.Equal(t, expected.ID(), actual.ID())
	assert.Equal(t, expected.OwnerID(), actual.OwnerID())
	assert.Equal(t, expected.Name(), actual.Name())
	assert.Equal(t, expected.Quantity(), actual.Quantity())
	assert.Equal(t, expected.Unit(), actual.Unit())
	assert.Equal(t, expected.Category(), actual.Category())
	assert.Equal(t, expected.ExpiresAt(), actual.ExpiresAt())
}

// DecodeJSONResponse decodes an httptest response body into target
func DecodeJSONResponse(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(target))
}
