package shared

import "context"

// EventPublisher publishes domain events raised by aggregates. The in-process
// dispatcher and the durable transport both implement it.
type EventPublisher interface {
	// Publish publishes one or more domain events
	Publish(ctx context.Context, events ...DomainEvent) error
}
