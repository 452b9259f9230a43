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

func TestPantryRepository_CreateAndFindByID(t *testing.T) {
	db := testutils.NewTestDB(t)
	repo := persistence.NewPantryRepository(db)
	ctx := context.Background()

	created := testutils.NewPantryFactory().Item(uuid.New(), "Basmati Rice")
	require.NoError(t, repo.Create(ctx, created))

	found, err := repo.FindByID(ctx, created.ID())
	require.NoError(t, err)
	testutils.AssertPantryItemEqual(t, created, found)
}

func TestPantryRepository_DuplicateNames_Coexist(t *testing.T) {
	db := testutils.NewTestDB(t)
	repo := persistence.NewPantryRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	factory := testutils.NewPantryFactory()
	first := factory.Item(ownerID, "Tomatoes")
	second := factory.Item(ownerID, "Tomatoes")

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	items, err := repo.FindByOwnerID(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID(), items[1].ID())
}

func TestPantryRepository_Update(t *testing.T) {
	db := testutils.NewTestDB(t)
	repo := persistence.NewPantryRepository(db)
	ctx := context.Background()

	created := testutils.NewPantryFactory().Item(uuid.New(), "Flour")
	require.NoError(t, repo.Create(ctx, created))

	require.NoError(t, created.SetQuantity(2.5, "kg"))
	require.NoError(t, repo.Update(ctx, created))

	found, err := repo.FindByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, 2.5, found.Quantity())
	assert.Equal(t, "kg", found.Unit())
}

func TestPantryRepository_Delete(t *testing.T) {
	db := testutils.NewTestDB(t)
	repo := persistence.NewPantryRepository(db)
	ctx := context.Background()

	created := testutils.NewPantryFactory().Item(uuid.New(), "Butter")
	require.NoError(t, repo.Create(ctx, created))
	require.NoError(t, repo.Delete(ctx, created.ID()))

	found, err := repo.FindByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.Error(t, repo.Delete(ctx, created.ID()))
}

func TestPantryRepository_FindByOwnerID_SortedByName(t *testing.T) {
	db := testutils.NewTestDB(t)
	repo := persistence.NewPantryRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	factory := testutils.NewPantryFactory()
	for _, name := range []string{"Zucchini", "Apples", "Milk"} {
		require.NoError(t, repo.Create(ctx, factory.Item(ownerID, name)))
	}

	items, err := repo.FindByOwnerID(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Apples", items[0].Name())
	assert.Equal(t, "Milk", items[1].Name())
	assert.Equal(t, "Zucchini", items[2].Name())
}
