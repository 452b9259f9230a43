package gorm_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	persistence "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
	"github.com/platewise/v1/test/testutils"
)

func TestRecipeRepository_CreateAndFindByID(t *testing.T) {
	db := testutils.NewTestDB(t)
	repo := persistence.NewRecipeRepository(db)
	ctx := context.Background()

	factory := testutils.NewRecipeFactory()
	ownerID := uuid.New()
	created := factory.WithIngredients(ownerID, "Shakshuka", "eggs", "tomatoes", "onion")

	require.NoError(t, repo.Create(ctx, created))

	found, err := repo.FindByID(ctx, created.ID())
	require.NoError(t, err)
	testutils.AssertRecipeEqual(t, created, found)
}

func TestRecipeRepository_FindByID_Missing(t *testing.T) {
	db := testutils.NewTestDB(t)
	repo := persistence.NewRecipeRepository(db)

	found, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRecipeRepository_Update(t *testing.T) {
	db := testutils.NewTestDB(t)
	repo := persistence.NewRecipeRepository(db)
	ctx := context.Background()

	factory := testutils.NewRecipeFactory()
	created := factory.Simple(uuid.New())
	require.NoError(t, repo.Create(ctx, created))

	require.NoError(t, created.Rename("Midnight Pasta"))
	require.NoError(t, created.Tag("dinner"))
	require.NoError(t, repo.Update(ctx, created))

	found, err := repo.FindByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Midnight Pasta", found.Title())
	assert.Contains(t, found.Tags(), "dinner")
}

func TestRecipeRepository_Delete(t *testing.T) {
	db := testutils.NewTestDB(t)
	repo := persistence.NewRecipeRepository(db)
	ctx := context.Background()

	created := testutils.NewRecipeFactory().Simple(uuid.New())
	require.NoError(t, repo.Create(ctx, created))
	require.NoError(t, repo.Delete(ctx, created.ID()))

	found, err := repo.FindByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRecipeRepository_Delete_Missing(t *testing.T) {
	db := testutils.NewTestDB(t)
	repo := persistence.NewRecipeRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestRecipeRepository_FindByOwnerID(t *testing.T) {
	db := testutils.NewTestDB(t)
	repo := persistence.NewRecipeRepository(db)
	ctx := context.Background()

	factory := testutils.NewRecipeFactory()
	ownerID := uuid.New()
	otherID := uuid.New()

	require.NoError(t, repo.Create(ctx, factory.Simple(ownerID)))
	require.NoError(t, repo.Create(ctx, factory.Simple(ownerID)))
	require.NoError(t, repo.Create(ctx, factory.Simple(otherID)))

	recipes, err := repo.FindByOwnerID(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	for _, r := range recipes {
		assert.Equal(t, ownerID, r.OwnerID())
	}
}
