// Package pantry contains the domain logic for a user's ingredient
// inventory. It follows Domain-Driven Design principles with rich
// domain models.
package pantry

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/shared"
)

// Item is a single ingredient in a user's pantry. It is the aggregate
// root for inventory operations; quantities are advisory and presence
// alone is what recipe matching checks.
type Item struct {
	id      uuid.UUID
	ownerID uuid.UUID

	name     string
	quantity float64
	unit     string
	category Category
	notes    string

	expiresAt *time.Time
	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// NewItem creates a pantry item with validation.
func NewItem(ownerID uuid.UUID, name string, quantity float64, unit string) (*Item, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	now := time.Now()
	item := &Item{
		id:        uuid.New(),
		ownerID:   ownerID,
		name:      strings.TrimSpace(name),
		quantity:  quantity,
		unit:      strings.TrimSpace(unit),
		category:  CategoryOther,
		createdAt: now,
		updatedAt: now,
		events:    []shared.DomainEvent{},
	}

	item.addEvent(ItemAddedEvent{
		ItemID:  item.id,
		OwnerID: ownerID,
		Name:    item.name,
		AddedAt: now,
	})

	return item, nil
}

// ID returns the item's unique identifier
func (i *Item) ID() uuid.UUID {
	return i.id
}

// OwnerID returns the owning user's identifier
func (i *Item) OwnerID() uuid.UUID {
	return i.ownerID
}

// Name returns the ingredient name as the user entered it
func (i *Item) Name() string {
	return i.name
}

// Quantity returns the stocked amount
func (i *Item) Quantity() float64 {
	return i.quantity
}

// Unit returns the unit the quantity is expressed in
func (i *Item) Unit() string {
	return i.unit
}

// Category returns the storage category
func (i *Item) Category() Category {
	return i.category
}

// Notes returns free-form notes about the item
func (i *Item) Notes() string {
	return i.notes
}

// ExpiresAt returns the expiry date, if known
func (i *Item) ExpiresAt() *time.Time {
	return i.expiresAt
}

// CreatedAt returns when the item was first stocked
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// UpdatedAt returns when the item was last changed
func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

// Rename changes the ingredient name with validation.
func (i *Item) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	i.name = strings.TrimSpace(name)
	i.updatedAt = time.Now()
	return nil
}

// SetQuantity replaces the stocked amount.
func (i *Item) SetQuantity(quantity float64, unit string) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}

	old := i.quantity
	i.quantity = quantity
	i.unit = strings.TrimSpace(unit)
	i.updatedAt = time.Now()

	i.addEvent(QuantityChangedEvent{
		ItemID:      i.id,
		OldQuantity: old,
		NewQuantity: quantity,
		ChangedAt:   i.updatedAt,
	})

	return nil
}

// Categorize moves the item into a storage category.
func (i *Item) Categorize(category Category) error {
	if !category.Valid() {
		return ErrInvalidCategory
	}

	i.category = category
	i.updatedAt = time.Now()
	return nil
}

// SetNotes replaces the item's notes.
func (i *Item) SetNotes(notes string) {
	i.notes = notes
	i.updatedAt = time.Now()
}

// SetExpiry records when the item goes off. A nil value clears it.
func (i *Item) SetExpiry(expiresAt *time.Time) {
	i.expiresAt = expiresAt
	i.updatedAt = time.Now()
}

// IsExpired reports whether the item is past its expiry date.
func (i *Item) IsExpired(now time.Time) bool {
	return i.expiresAt != nil && i.expiresAt.Before(now)
}

// MarkRemoved raises the removal event before the item is deleted.
func (i *Item) MarkRemoved() {
	i.addEvent(ItemRemovedEvent{
		ItemID:    i.id,
		OwnerID:   i.ownerID,
		Name:      i.name,
		RemovedAt: time.Now(),
	})
}

// addEvent adds a domain event to be dispatched
func (i *Item) addEvent(event shared.DomainEvent) {
	i.events = append(i.events, event)
}

// Events returns and clears pending domain events
func (i *Item) Events() []shared.DomainEvent {
	events := i.events
	i.events = []shared.DomainEvent{}
	return events
}

// Reconstruct rebuilds an item from persisted state without raising
// events. Only repositories should call this.
func Reconstruct(
	id, ownerID uuid.UUID,
	name string,
	quantity float64,
	unit string,
	category Category,
	notes string,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:        id,
		ownerID:   ownerID,
		name:      name,
		quantity:  quantity,
		unit:      unit,
		category:  category,
		notes:     notes,
		expiresAt: expiresAt,
		createdAt: createdAt,
		updatedAt: updatedAt,
		events:    []shared.DomainEvent{},
	}
}

// validateName validates the ingredient name
func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	if len(trimmed) > 200 {
		return ErrNameTooLong
	}
	return nil
}
