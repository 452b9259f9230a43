package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/pantry"
)

// PantryService defines the use cases for inventory management
type PantryService interface {
	// Commands - operations that modify state
	AddItem(ctx context.Context, cmd AddItemCommand) (*PantryItemDTO, error)
	UpdateItem(ctx context.Context, cmd UpdateItemCommand) (*PantryItemDTO, error)
	RemoveItem(ctx context.Context, itemID, userID uuid.UUID) error

	// Queries - operations that read state
	GetItemByID(ctx context.Context, itemID uuid.UUID) (*PantryItemDTO, error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]PantryItemDTO, error)
	ListExpired(ctx context.Context, userID uuid.UUID) ([]PantryItemDTO, error)
}

// AddItemCommand contains data for stocking an ingredient
type AddItemCommand struct {
	OwnerID   uuid.UUID
	Name      string
	Quantity  float64
	Unit      string
	Category  pantry.Category
	Notes     string
	ExpiresAt *string // RFC 3339
}

// UpdateItemCommand contains data for changing a stocked item.
// Nil fields are left unchanged.
type UpdateItemCommand struct {
	ItemID    uuid.UUID
	UserID    uuid.UUID
	Name      *string
	Quantity  *float64
	Unit      *string
	Category  *pantry.Category
	Notes     *string
	ExpiresAt *string
}

// PantryItemDTO is the data transfer object for pantry items
type PantryItemDTO struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Name      string          `json:"name"`
	Quantity  float64         `json:"quantity"`
	Unit      string          `json:"unit,omitempty"`
	Category  pantry.Category `json:"category"`
	Notes     string          `json:"notes,omitempty"`
	ExpiresAt *string         `json:"expires_at,omitempty"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}
