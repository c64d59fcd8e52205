// Package events fans persisted domain events out to in-process consumers
// such as the notification worker. Consumers see events strictly after the
// store accepted them; the dispatcher carries no business rules.
package events

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// Envelope wraps a persisted domain event with delivery metadata.
type Envelope struct {
	ID         string           `json:"id"`
	TicketID   domain.TicketID  `json:"ticket_id"`
	Kind       domain.EventKind `json:"kind"`
	OccurredAt time.Time        `json:"occurred_at"`
	Event      domain.Event     `json:"event"`
}

// Handler handles a published envelope.
type Handler func(context.Context, Envelope) error

// Dispatcher allows event publication and subscription.
type Dispatcher interface {
	Publish(ctx context.Context, envelope Envelope) error
	Subscribe(kind domain.EventKind, handler Handler)
}

// inMemoryDispatcher is a simple synchronous dispatcher.
type inMemoryDispatcher struct {
	mu        sync.RWMutex
	listeners map[domain.EventKind][]Handler
}

// NewInMemoryDispatcher creates a dispatcher instance.
func NewInMemoryDispatcher() Dispatcher {
	return &inMemoryDispatcher{
		listeners: make(map[domain.EventKind][]Handler),
	}
}

// Publish synchronously invokes handlers for the envelope's kind. Handler
// errors do not stop delivery to the remaining handlers.
func (d *inMemoryDispatcher) Publish(ctx context.Context, envelope Envelope) error {
	d.mu.RLock()
	handlers := append([]Handler{}, d.listeners[envelope.Kind]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		_ = handler(ctx, envelope)
	}
	return nil
}

// Subscribe registers a handler for the given event kind.
func (d *inMemoryDispatcher) Subscribe(kind domain.EventKind, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[kind] = append(d.listeners[kind], handler)
}
