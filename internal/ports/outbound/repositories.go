// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/pantry"
	"github.com/platewise/v1/internal/domain/recipe"
)

// RecipeRepository defines the interface for recipe persistence
type RecipeRepository interface {
	Create(ctx context.Context, recipe *recipe.Recipe) error
	Update(ctx context.Context, recipe *recipe.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*recipe.Recipe, error)
}

// PantryRepository defines the interface for pantry persistence
type PantryRepository interface {
	Create(ctx context.Context, item *pantry.Item) error
	Update(ctx context.Context, item *pantry.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*pantry.Item, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*pantry.Item, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Exists(ctx context.Context, key string) (bool, error)
}
