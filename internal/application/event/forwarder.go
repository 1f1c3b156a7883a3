// Package event bridges in-process domain events to the durable transport.
// Every concrete event type gets a bus subscription that hands the event to
// the broker, so publishing stays a domain-level concern while delivery is
// infrastructure.
package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/ledgerhub/backend/internal/application/bus"
	"github.com/ledgerhub/backend/internal/domain/ledger"
	"github.com/ledgerhub/backend/internal/domain/party"
	"github.com/ledgerhub/backend/internal/domain/shared"
)

// Transport delivers domain events to an external broker
type Transport interface {
	Publish(ctx context.Context, events ...shared.DomainEvent) error
}

// Forwarder relays domain events from the bus to the transport
type Forwarder struct {
	transport Transport
	logger    *zap.Logger
}

// NewForwarder creates a forwarder over the given transport
func NewForwarder(transport Transport, logger *zap.Logger) *Forwarder {
	return &Forwarder{transport: transport, logger: logger}
}

// Register subscribes the forwarder to every event type the domain raises
func Register(b *bus.Bus, f *Forwarder) {
	subscribe[*party.PersonCreatedEvent](b, f)
	subscribe[*party.PersonUpdatedEvent](b, f)
	subscribe[*party.PersonActivationChangedEvent](b, f)
	subscribe[*ledger.AccountPayableCreatedEvent](b, f)
	subscribe[*ledger.AccountPayablePaidEvent](b, f)
	subscribe[*ledger.PayableInstallmentAddedEvent](b, f)
	subscribe[*ledger.AccountReceivableCreatedEvent](b, f)
	subscribe[*ledger.AccountReceivableReceivedEvent](b, f)
	subscribe[*ledger.ReceivableInstallmentAddedEvent](b, f)
}

func subscribe[E shared.DomainEvent](b *bus.Bus, f *Forwarder) {
	bus.RegisterEventHandler(b, func(ctx context.Context, event E) error {
		if err := f.transport.Publish(ctx, event); err != nil {
			f.logger.Error("failed to forward event",
				zap.String("event_type", event.EventType()),
				zap.String("event_id", event.EventID().String()),
				zap.Error(err))
			return err
		}
		f.logger.Debug("event forwarded",
			zap.String("event_type", event.EventType()),
			zap.String("aggregate_type", event.AggregateType()))
		return nil
	})
}
