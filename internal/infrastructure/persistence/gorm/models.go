// Package gorm provides GORM model definitions for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID      uuid.UUID `gorm:"type:char(36);primaryKey"`
	OwnerID uuid.UUID `gorm:"type:char(36);not null;index"`
	Title   string    `gorm:"type:varchar(255);not null;index"`

	// Recipe content
	Ingredients  IngredientsJSON `gorm:"type:json"`
	Instructions StringSlice     `gorm:"type:json"`
	Tags         StringSlice     `gorm:"type:json"`
	Notes        string          `gorm:"type:text"`
	SourceText   string          `gorm:"type:text"`

	// Timing (stored in minutes)
	PrepTimeMinutes int `gorm:"column:prep_time_minutes;default:0"`
	CookTimeMinutes int `gorm:"column:cook_time_minutes;default:0"`

	Servings   int    `gorm:"default:0"`
	Difficulty string `gorm:"type:varchar(20);index"`

	// Per-serving macros; nullable because missing data matters to
	// the diet rules
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fats     *float64

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// PantryItemModel represents the GORM model for pantry items
type PantryItemModel struct {
	ID      uuid.UUID `gorm:"type:char(36);primaryKey"`
	OwnerID uuid.UUID `gorm:"type:char(36);not null;index:idx_pantry_owner_name,priority:1"`
	Name    string    `gorm:"type:varchar(255);not null;index:idx_pantry_owner_name,priority:2"`

	Quantity float64 `gorm:"default:0"`
	Unit     string  `gorm:"type:varchar(50)"`
	Category string  `gorm:"type:varchar(50);index"`
	Notes    string  `gorm:"type:text"`

	ExpiresAt *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// IngredientJSON is the persisted shape of one recipe ingredient
type IngredientJSON struct {
	Text     string `json:"text,omitempty"`
	Item     string `json:"item,omitempty"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// IngredientsJSON custom type for handling ingredient lists in JSON
type IngredientsJSON []IngredientJSON

// Scan implements the sql.Scanner interface
func (i *IngredientsJSON) Scan(value interface{}) error {
	if value == nil {
		*i = IngredientsJSON{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("cannot scan %T into IngredientsJSON", value)
	}
}

// Value implements the driver.Valuer interface
func (i IngredientsJSON) Value() (driver.Value, error) {
	if len(i) == 0 {
		return "[]", nil
	}
	return json.Marshal(i)
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for PantryItemModel
func (p *PantryItemModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (RecipeModel) TableName() string {
	return "recipes"
}

func (PantryItemModel) TableName() string {
	return "pantry_items"
}
