package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/pantry"
	"github.com/platewise/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// PantryRepository implements the pantry repository interface using GORM
type PantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository creates a new pantry repository
func NewPantryRepository(db *gorm.DB) outbound.PantryRepository {
	return &PantryRepository{db: db}
}

// Create persists a new pantry item
func (r *PantryRepository) Create(ctx context.Context, item *pantry.Item) error {
	model := PantryItemToModel(item)

	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Update persists changes to an existing pantry item
func (r *PantryRepository) Update(ctx context.Context, item *pantry.Item) error {
	model := PantryItemToModel(item)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Delete removes a pantry item by ID (soft delete)
func (r *PantryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&PantryItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return pantry.ErrItemNotFound
	}

	return nil
}

// FindByID finds a pantry item by ID. Returns (nil, nil) when no row exists.
func (r *PantryRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.Item, error) {
	var model PantryItemModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToPantryItem(&model), nil
}

// FindByOwnerID finds all pantry items belonging to an owner, alphabetically
func (r *PantryRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*pantry.Item, error) {
	var models []PantryItemModel

	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*pantry.Item, len(models))
	for i, model := range models {
		items[i] = ModelToPantryItem(&model)
	}

	return items, nil
}
