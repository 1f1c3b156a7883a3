// Package bus provides the in-process dispatcher that routes commands,
// queries and events to their handlers. Handlers are registered with the
// right generic instantiation baked into a closure, so dispatch is a map
// lookup plus a direct call without reflective invocation.
package bus

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/ledgerhub/backend/internal/domain/shared"
)

// Dispatch wiring failures. These are configuration defects, never
// business-rule violations, so they are plain errors rather than results.
var (
	ErrNilMessage      = errors.New("bus: message must not be nil")
	ErrHandlerNotFound = errors.New("bus: handler not found")
	ErrNotAnEvent      = errors.New("bus: published object is not a domain event")
)

// dispatchKey routes by the exact runtime type of the message plus the
// declared response type. Dispatch is invariant: a handler registered for
// a base type never matches a derived message.
type dispatchKey struct {
	message  reflect.Type
	response reflect.Type
}

// Bus is the application dispatcher. It holds no mutable state after
// registration and is safe to share across concurrent callers.
type Bus struct {
	mu       sync.RWMutex
	commands map[dispatchKey]func(ctx context.Context, cmd any) (any, error)
	queries  map[dispatchKey]func(ctx context.Context, query any) (any, error)
	events   map[reflect.Type][]func(ctx context.Context, event any) error
}

// New creates an empty Bus
func New() *Bus {
	return &Bus{
		commands: make(map[dispatchKey]func(context.Context, any) (any, error)),
		queries:  make(map[dispatchKey]func(context.Context, any) (any, error)),
		events:   make(map[reflect.Type][]func(context.Context, any) error),
	}
}

// RegisterCommandHandler registers the single handler for command type C
// with response type R. Registering the same pair twice panics: that is a
// wiring defect, not a runtime condition.
func RegisterCommandHandler[C any, R any](b *Bus, handle func(ctx context.Context, cmd C) (R, error)) {
	key := dispatchKey{message: reflect.TypeFor[C](), response: reflect.TypeFor[R]()}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.commands[key]; exists {
		panic(fmt.Sprintf("bus: command handler already registered for %v -> %v", key.message, key.response))
	}
	b.commands[key] = func(ctx context.Context, cmd any) (any, error) {
		return handle(ctx, cmd.(C))
	}
}

// RegisterCommandHandlerNoResult registers a handler for the
// no-return-value command shape.
func RegisterCommandHandlerNoResult[C any](b *Bus, handle func(ctx context.Context, cmd C) error) {
	key := dispatchKey{message: reflect.TypeFor[C](), response: nil}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.commands[key]; exists {
		panic(fmt.Sprintf("bus: command handler already registered for %v", key.message))
	}
	b.commands[key] = func(ctx context.Context, cmd any) (any, error) {
		return nil, handle(ctx, cmd.(C))
	}
}

// RegisterQueryHandler registers the single handler for query type Q with
// response type R.
func RegisterQueryHandler[Q any, R any](b *Bus, handle func(ctx context.Context, query Q) (R, error)) {
	key := dispatchKey{message: reflect.TypeFor[Q](), response: reflect.TypeFor[R]()}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.queries[key]; exists {
		panic(fmt.Sprintf("bus: query handler already registered for %v -> %v", key.message, key.response))
	}
	b.queries[key] = func(ctx context.Context, query any) (any, error) {
		return handle(ctx, query.(Q))
	}
}

// RegisterEventHandler subscribes a handler to event type E. Any number of
// handlers may subscribe to the same event type.
func RegisterEventHandler[E any](b *Bus, handle func(ctx context.Context, event E) error) {
	key := reflect.TypeFor[E]()
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events[key] = append(b.events[key], func(ctx context.Context, event any) error {
		return handle(ctx, event.(E))
	})
}

// SendCommand dispatches a command expecting a response of type R. The
// handler's error is returned unchanged so callers can match domain
// errors.
func SendCommand[R any](ctx context.Context, b *Bus, cmd any) (R, error) {
	var zero R
	if cmd == nil {
		return zero, ErrNilMessage
	}
	key := dispatchKey{message: reflect.TypeOf(cmd), response: reflect.TypeFor[R]()}
	b.mu.RLock()
	handle, ok := b.commands[key]
	b.mu.RUnlock()
	if !ok {
		return zero, fmt.Errorf("%w: command %v -> %v", ErrHandlerNotFound, key.message, key.response)
	}
	out, err := handle(ctx, cmd)
	if err != nil {
		return zero, err
	}
	return out.(R), nil
}

// Send dispatches a command with no response value
func Send(ctx context.Context, b *Bus, cmd any) error {
	if cmd == nil {
		return ErrNilMessage
	}
	key := dispatchKey{message: reflect.TypeOf(cmd), response: nil}
	b.mu.RLock()
	handle, ok := b.commands[key]
	b.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: command %v", ErrHandlerNotFound, key.message)
	}
	_, err := handle(ctx, cmd)
	return err
}

// SendQuery dispatches a query expecting a response of type R
func SendQuery[R any](ctx context.Context, b *Bus, query any) (R, error) {
	var zero R
	if query == nil {
		return zero, ErrNilMessage
	}
	key := dispatchKey{message: reflect.TypeOf(query), response: reflect.TypeFor[R]()}
	b.mu.RLock()
	handle, ok := b.queries[key]
	b.mu.RUnlock()
	if !ok {
		return zero, fmt.Errorf("%w: query %v -> %v", ErrHandlerNotFound, key.message, key.response)
	}
	out, err := handle(ctx, query)
	if err != nil {
		return zero, err
	}
	return out.(R), nil
}

// PublishEvent fans the event out to every handler subscribed to its exact
// runtime type. All handlers are started before any failure is surfaced;
// siblings are never cancelled because one of them failed. Zero
// subscribers is a no-op.
func (b *Bus) PublishEvent(ctx context.Context, event shared.DomainEvent) error {
	if event == nil {
		return ErrNilMessage
	}
	key := reflect.TypeOf(event)
	b.mu.RLock()
	handlers := b.events[key]
	b.mu.RUnlock()
	if len(handlers) == 0 {
		return nil
	}

	errs := make([]error, len(handlers))
	var wg sync.WaitGroup
	for i, handle := range handlers {
		wg.Add(1)
		go func(i int, handle func(context.Context, any) error) {
			defer wg.Done()
			errs[i] = handle(ctx, event)
		}(i, handle)
	}
	wg.Wait()

	return errors.Join(errs...)
}

// Publish implements shared.EventPublisher over PublishEvent
func (b *Bus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	for _, event := range events {
		if err := b.PublishEvent(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// PublishAny is a compatibility shim for callers that lost the static
// event type. The object must already be a domain event.
func (b *Bus) PublishAny(ctx context.Context, v any) error {
	if v == nil {
		return ErrNilMessage
	}
	event, ok := v.(shared.DomainEvent)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotAnEvent, v)
	}
	return b.PublishEvent(ctx, event)
}

// Ensure Bus implements EventPublisher
var _ shared.EventPublisher = (*Bus)(nil)
