package pantry

import (
	"time"

	"github.com/google/uuid"
)

// ItemAddedEvent is raised when an ingredient is stocked
type ItemAddedEvent struct {
	ItemID  uuid.UUID
	OwnerID uuid.UUID
	Name    string
	AddedAt time.Time
}

func (e ItemAddedEvent) EventName() string {
	return "pantry.item.added"
}

func (e ItemAddedEvent) OccurredAt() time.Time {
	return e.AddedAt
}

// QuantityChangedEvent is raised when a stocked amount changes
type QuantityChangedEvent struct {
	ItemID      uuid.UUID
	OldQuantity float64
	NewQuantity float64
	ChangedAt   time.Time
}

func (e QuantityChangedEvent) EventName() string {
	return "pantry.item.quantity_changed"
}

func (e QuantityChangedEvent) OccurredAt() time.Time {
	return e.ChangedAt
}

// ItemRemovedEvent is raised when an ingredient is taken out of the pantry
type ItemRemovedEvent struct {
	ItemID    uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	RemovedAt time.Time
}

func (e ItemRemovedEvent) EventName() string {
	return "pantry.item.removed"
}

func (e ItemRemovedEvent) OccurredAt() time.Time {
	return e.RemovedAt
}
