// Package sqlite provides SQLite database setup for local development
package sqlite

import (
	"fmt"

	"github.com/google/uuid"
	gormModels "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&gormModels.RecipeModel{},
		&gormModels.PantryItemModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the database with demo data for local development
func SeedDatabase(db *gorm.DB) error {
	var recipeCount int64
	db.Model(&gormModels.RecipeModel{}).Count(&recipeCount)
	if recipeCount > 0 {
		return nil // Already seeded
	}

	demoOwner := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	pantryItems := []gormModels.PantryItemModel{
		{OwnerID: demoOwner, Name: "Spaghetti", Quantity: 500, Unit: "g", Category: "grains"},
		{OwnerID: demoOwner, Name: "Eggs", Quantity: 6, Unit: "pieces", Category: "dairy"},
		{OwnerID: demoOwner, Name: "Parmesan", Quantity: 150, Unit: "g", Category: "dairy"},
		{OwnerID: demoOwner, Name: "Cherry Tomatoes", Quantity: 250, Unit: "g", Category: "produce"},
		{OwnerID: demoOwner, Name: "Olive Oil", Quantity: 1, Unit: "bottle", Category: "other"},
	}

	for _, item := range pantryItems {
		if err := db.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to create demo pantry item: %w", err)
		}
	}

	carbs := 72.0
	fats := 22.0
	demoRecipes := []gormModels.RecipeModel{
		{
			OwnerID: demoOwner,
			Title:   "Spaghetti Carbonara",
			Ingredients: gormModels.IngredientsJSON{
				{Item: "spaghetti", Quantity: "400", Unit: "g"},
				{Item: "eggs", Quantity: "4"},
				{Item: "parmesan", Quantity: "100", Unit: "g"},
				{Item: "pancetta", Quantity: "150", Unit: "g"},
			},
			Instructions: gormModels.StringSlice{
				"Boil the spaghetti in salted water until al dente",
				"Fry the pancetta until crispy",
				"Whisk eggs with grated parmesan",
				"Toss drained pasta with pancetta and egg mixture",
			},
			Tags:            gormModels.StringSlice{"dinner", "pasta"},
			PrepTimeMinutes: 10,
			CookTimeMinutes: 15,
			Servings:        4,
			Difficulty:      "medium",
			Carbs:           &carbs,
			Fats:            &fats,
		},
		{
			OwnerID: demoOwner,
			Title:   "Tomato Bruschetta",
			Ingredients: gormModels.IngredientsJSON{
				{Item: "cherry tomatoes", Quantity: "200", Unit: "g"},
				{Item: "bread", Quantity: "4", Unit: "slices"},
				{Item: "olive oil", Quantity: "2", Unit: "tbsp"},
				{Item: "basil"},
			},
			Instructions: gormModels.StringSlice{
				"Toast the bread slices",
				"Chop tomatoes and mix with olive oil and basil",
				"Spoon the mixture over the toast",
			},
			Tags:            gormModels.StringSlice{"snack", "vegetarian", "quick"},
			PrepTimeMinutes: 10,
			CookTimeMinutes: 5,
			Servings:        2,
			Difficulty:      "easy",
		},
	}

	for _, rec := range demoRecipes {
		if err := db.Create(&rec).Error; err != nil {
			return fmt.Errorf("failed to create demo recipe: %w", err)
		}
	}

	return nil
}
