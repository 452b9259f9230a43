package pantry

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ItemTestSuite provides a test suite for the pantry Item entity
type ItemTestSuite struct {
	suite.Suite
}

// TestItemCreation tests item creation scenarios
func (suite *ItemTestSuite) TestItemCreation() {
	suite.Run("ValidItem_ShouldCreateSuccessfully", func() {
		// Arrange
		ownerID := uuid.New()

		// Act
		item, err := NewItem(ownerID, "olive oil", 500, "ml")

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), item)

		assert.NotEqual(suite.T(), uuid.Nil, item.ID())
		assert.Equal(suite.T(), ownerID, item.OwnerID())
		assert.Equal(suite.T(), "olive oil", item.Name())
		assert.Equal(suite.T(), 500.0, item.Quantity())
		assert.Equal(suite.T(), "ml", item.Unit())
		assert.Equal(suite.T(), CategoryOther, item.Category())
		assert.NotZero(suite.T(), item.CreatedAt())

		// Check domain events
		events := item.Events()
		assert.Len(suite.T(), events, 1)

		added, ok := events[0].(ItemAddedEvent)
		assert.True(suite.T(), ok, "Should emit ItemAddedEvent")
		assert.Equal(suite.T(), item.ID(), added.ItemID)
		assert.Equal(suite.T(), ownerID, added.OwnerID)
		assert.Equal(suite.T(), "pantry.item.added", added.EventName())
	})

	suite.Run("NameIsTrimmed", func() {
		item, err := NewItem(uuid.New(), "  flour  ", 1, "kg")

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "flour", item.Name())
	})

	suite.Run("EmptyName_ShouldReturnError", func() {
		item, err := NewItem(uuid.New(), "   ", 1, "kg")

		assert.Nil(suite.T(), item)
		assert.Equal(suite.T(), ErrNameRequired, err)
	})

	suite.Run("NameTooLong_ShouldReturnError", func() {
		item, err := NewItem(uuid.New(), strings.Repeat("a", 201), 1, "kg")

		assert.Nil(suite.T(), item)
		assert.Equal(suite.T(), ErrNameTooLong, err)
	})

	suite.Run("NegativeQuantity_ShouldReturnError", func() {
		item, err := NewItem(uuid.New(), "flour", -1, "kg")

		assert.Nil(suite.T(), item)
		assert.Equal(suite.T(), ErrNegativeQuantity, err)
	})

	suite.Run("ZeroQuantity_IsAllowed", func() {
		// Presence is what matters for matching; a depleted item may
		// legitimately sit at zero until restocked or removed.
		item, err := NewItem(uuid.New(), "flour", 0, "kg")

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 0.0, item.Quantity())
	})
}

// TestItemModification tests item modification scenarios
func (suite *ItemTestSuite) TestItemModification() {
	suite.Run("Rename_ShouldUpdateNameAndTimestamp", func() {
		item, err := NewItem(uuid.New(), "tomatos", 3, "pieces")
		require.NoError(suite.T(), err)
		item.Events()

		err = item.Rename("tomatoes")

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "tomatoes", item.Name())
	})

	suite.Run("Rename_InvalidName_ShouldReturnError", func() {
		item, err := NewItem(uuid.New(), "tomatoes", 3, "pieces")
		require.NoError(suite.T(), err)

		err = item.Rename("")

		assert.Equal(suite.T(), ErrNameRequired, err)
		assert.Equal(suite.T(), "tomatoes", item.Name())
	})

	suite.Run("SetQuantity_ShouldEmitQuantityChangedEvent", func() {
		item, err := NewItem(uuid.New(), "rice", 2, "kg")
		require.NoError(suite.T(), err)
		item.Events()

		err = item.SetQuantity(1.5, "kg")

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 1.5, item.Quantity())

		events := item.Events()
		require.Len(suite.T(), events, 1)
		changed, ok := events[0].(QuantityChangedEvent)
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), 2.0, changed.OldQuantity)
		assert.Equal(suite.T(), 1.5, changed.NewQuantity)
	})

	suite.Run("SetQuantity_Negative_ShouldReturnError", func() {
		item, err := NewItem(uuid.New(), "rice", 2, "kg")
		require.NoError(suite.T(), err)

		err = item.SetQuantity(-0.5, "kg")

		assert.Equal(suite.T(), ErrNegativeQuantity, err)
		assert.Equal(suite.T(), 2.0, item.Quantity())
	})

	suite.Run("Categorize_KnownCategory_ShouldSucceed", func() {
		item, err := NewItem(uuid.New(), "milk", 1, "l")
		require.NoError(suite.T(), err)

		err = item.Categorize(CategoryDairy)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), CategoryDairy, item.Category())
	})

	suite.Run("Categorize_UnknownCategory_ShouldReturnError", func() {
		item, err := NewItem(uuid.New(), "milk", 1, "l")
		require.NoError(suite.T(), err)

		err = item.Categorize(Category("garage"))

		assert.Equal(suite.T(), ErrInvalidCategory, err)
		assert.Equal(suite.T(), CategoryOther, item.Category())
	})
}

// TestItemExpiry tests expiry scenarios
func (suite *ItemTestSuite) TestItemExpiry() {
	suite.Run("NoExpiry_NeverExpired", func() {
		item, err := NewItem(uuid.New(), "salt", 1, "kg")
		require.NoError(suite.T(), err)

		assert.False(suite.T(), item.IsExpired(time.Now()))
	})

	suite.Run("PastExpiry_IsExpired", func() {
		item, err := NewItem(uuid.New(), "yogurt", 1, "cup")
		require.NoError(suite.T(), err)

		yesterday := time.Now().Add(-24 * time.Hour)
		item.SetExpiry(&yesterday)

		assert.True(suite.T(), item.IsExpired(time.Now()))
	})

	suite.Run("FutureExpiry_NotExpired", func() {
		item, err := NewItem(uuid.New(), "yogurt", 1, "cup")
		require.NoError(suite.T(), err)

		tomorrow := time.Now().Add(24 * time.Hour)
		item.SetExpiry(&tomorrow)

		assert.False(suite.T(), item.IsExpired(time.Now()))
	})
}

// TestItemRemoval tests removal event emission
func (suite *ItemTestSuite) TestItemRemoval() {
	suite.Run("MarkRemoved_ShouldEmitItemRemovedEvent", func() {
		item, err := NewItem(uuid.New(), "expired yogurt", 1, "cup")
		require.NoError(suite.T(), err)
		item.Events()

		item.MarkRemoved()

		events := item.Events()
		require.Len(suite.T(), events, 1)
		removed, ok := events[0].(ItemRemovedEvent)
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), item.ID(), removed.ItemID)
		assert.Equal(suite.T(), "expired yogurt", removed.Name)
	})

	suite.Run("Events_AreDrainedOnRead", func() {
		item, err := NewItem(uuid.New(), "flour", 1, "kg")
		require.NoError(suite.T(), err)

		first := item.Events()
		second := item.Events()

		assert.Len(suite.T(), first, 1)
		assert.Empty(suite.T(), second)
	})
}

func TestReconstructRaisesNoEvents(t *testing.T) {
	now := time.Now()

	item := Reconstruct(
		uuid.New(), uuid.New(),
		"canned beans", 4, "cans",
		CategoryCanned, "stock up when on sale",
		nil, now, now,
	)

	assert.Equal(t, "canned beans", item.Name())
	assert.Equal(t, CategoryCanned, item.Category())
	assert.Empty(t, item.Events())
}

// TestItemTestSuite runs the pantry item test suite
func TestItemTestSuite(t *testing.T) {
	suite.Run(t, new(ItemTestSuite))
}
