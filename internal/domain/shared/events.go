// Package shared holds domain building blocks used by every aggregate.
package shared

import "time"

// DomainEvent is something that happened in the domain and that other
// parts of the system may react to.
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// EventHandler handles a dispatched domain event.
type EventHandler func(event DomainEvent) error

// EventDispatcher routes domain events to registered handlers.
type EventDispatcher interface {
	Dispatch(event DomainEvent) error
	Register(eventName string, handler EventHandler)
}
