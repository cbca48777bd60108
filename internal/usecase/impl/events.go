package impl

import (
	"context"
	"log/slog"

	"gsale/internal/domain/entity"
	"gsale/internal/domain/service"
)

// eventSource is satisfied by every aggregate carrying a domain-event outbox.
type eventSource interface {
	Events() []entity.DomainEvent
	ClearEvents()
}

// publishEvents drains the outboxes of the given aggregates after their
// transaction has committed. Publishing is best-effort: a failed publish is
// logged and never rolls back business state.
func publishEvents(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, sources ...eventSource) {
	for _, source := range sources {
		if source == nil {
			continue
		}
		for _, event := range source.Events() {
			if err := publisher.Publish(ctx, event); err != nil {
				logger.Warn("Failed to publish domain event",
					slog.String("event", event.EventType()),
					slog.Any("error", err))
			}
		}
		source.ClearEvents()
	}
}
