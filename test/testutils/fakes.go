// Package testutils provides in-memory fakes and factories for testing
package testutils

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/pantry"
	"github.com/platewise/v1/internal/domain/recipe"
)

// FakeRecipeRepository is an in-memory RecipeRepository
type FakeRecipeRepository struct {
	mu      sync.RWMutex
	recipes map[uuid.UUID]*recipe.Recipe

	// FailWith, when set, is returned by every call.
	FailWith error
}

// NewFakeRecipeRepository creates an empty in-memory recipe repository
func NewFakeRecipeRepository() *FakeRecipeRepository {
	return &FakeRecipeRepository{recipes: make(map[uuid.UUID]*recipe.Recipe)}
}

func (f *FakeRecipeRepository) Create(ctx context.Context, r *recipe.Recipe) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipes[r.ID()] = r
	return nil
}

func (f *FakeRecipeRepository) Update(ctx context.Context, r *recipe.Recipe) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipes[r.ID()] = r
	return nil
}

func (f *FakeRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.recipes, id)
	return nil
}

func (f *FakeRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.recipes[id], nil
}

func (f *FakeRecipeRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*recipe.Recipe, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*recipe.Recipe
	for _, r := range f.recipes {
		if r.OwnerID() == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

// FakePantryRepository is an in-memory PantryRepository
type FakePantryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*pantry.Item

	FailWith error
}

// NewFakePantryRepository creates an empty in-memory pantry repository
func NewFakePantryRepository() *FakePantryRepository {
	return &FakePantryRepository{items: make(map[uuid.UUID]*pantry.Item)}
}

func (f *FakePantryRepository) Create(ctx context.Context, item *pantry.Item) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID()] = item
	return nil
}

func (f *FakePantryRepository) Update(ctx context.Context, item *pantry.Item) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID()] = item
	return nil
}

func (f *FakePantryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

func (f *FakePantryRepository) FindByID(ctx context.Context, id uuid.UUID) (*pantry.Item, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.items[id], nil
}

func (f *FakePantryRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*pantry.Item, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*pantry.Item
	for _, item := range f.items {
		if item.OwnerID() == ownerID {
			out = append(out, item)
		}
	}
	return out, nil
}

// FakeCache is an in-memory CacheRepository. Entries never expire;
// tests that care about TTLs should not use it.
type FakeCache struct {
	mu    sync.RWMutex
	store map[string][]byte

	FailWith error
}

// NewFakeCache creates an empty in-memory cache
func NewFakeCache() *FakeCache {
	return &FakeCache{store: make(map[string][]byte)}
}

func (f *FakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	if f.FailWith != nil {
		return nil, f.FailWith
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.store[key], nil
}

func (f *FakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store[key] = value
	return nil
}

func (f *FakeCache) Delete(ctx context.Context, key string) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.store, key)
	return nil
}

func (f *FakeCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	if f.FailWith != nil {
		return f.FailWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.store {
		if strings.HasPrefix(key, prefix) {
			delete(f.store, key)
		}
	}
	return nil
}

func (f *FakeCache) Exists(ctx context.Context, key string) (bool, error) {
	if f.FailWith != nil {
		return false, f.FailWith
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.store[key]
	return ok, nil
}

// Len reports the number of cached entries
func (f *FakeCache) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.store)
}
