package service

import (
	"context"

	"gsale/internal/domain/entity"
)

// EventPublisher defines the interface for publishing domain events to a message queue.
// Use cases drain an aggregate's outbox through this interface after the
// owning transaction has committed.
type EventPublisher interface {
	// Publish sends a single domain event for async processing.
	Publish(ctx context.Context, event entity.DomainEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
