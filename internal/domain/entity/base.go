// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
// Entities guard their own invariants: construction validates fully and
// mutation happens only through named operations.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the pieces shared by every aggregate: identity, timestamps
// and the domain-event outbox. Aggregates embed it by value; mutation is
// exposed only through the owning aggregate's methods.
type Base struct {
	id        uuid.UUID
	createdAt time.Time
	updatedAt time.Time
	events    []DomainEvent
}

// newBase creates a Base with a fresh identity and current timestamps.
func newBase() Base {
	now := time.Now().UTC()

	return Base{id: uuid.New(), createdAt: now, updatedAt: now}
}

// restoreBase rebuilds a Base from persisted identity and timestamps.
func restoreBase(id uuid.UUID, createdAt, updatedAt time.Time) Base {
	return Base{id: id, createdAt: createdAt, updatedAt: updatedAt}
}

// ID returns the aggregate's unique identifier.
func (b *Base) ID() uuid.UUID {
	return b.id
}

// CreatedAt returns the creation timestamp.
func (b *Base) CreatedAt() time.Time {
	return b.createdAt
}

// UpdatedAt returns the timestamp of the last successful mutation.
func (b *Base) UpdatedAt() time.Time {
	return b.updatedAt
}

// touch bumps the modification timestamp. Called by the owning aggregate
// after a mutation has been validated and committed.
func (b *Base) touch() {
	b.updatedAt = time.Now().UTC()
}

// record appends a domain event to the outbox. The entity never drains its
// own outbox; a caller does so explicitly via ClearEvents.
func (b *Base) record(event DomainEvent) {
	b.events = append(b.events, event)
}

// Events returns a copy of the pending domain events.
func (b *Base) Events() []DomainEvent {
	out := make([]DomainEvent, len(b.events))
	copy(out, b.events)

	return out
}

// ClearEvents drains the outbox.
func (b *Base) ClearEvents() {
	b.events = nil
}
