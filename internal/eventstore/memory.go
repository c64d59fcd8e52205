package eventstore

import (
	"context"
	"sync"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// MemoryStore keeps event streams in memory. Used by tests and for local
// runs without Postgres; it honors the same ordering and version-conflict
// contract as the Postgres store.
type MemoryStore struct {
	mu      sync.RWMutex
	streams map[domain.TicketID][]domain.Event
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{streams: make(map[domain.TicketID][]domain.Event)}
}

// Append adds the batch atomically under the version check.
func (s *MemoryStore) Append(_ context.Context, ticketID domain.TicketID, expectedVersion int, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stream := s.streams[ticketID]
	if len(stream) != expectedVersion {
		return ErrVersionConflict
	}
	s.streams[ticketID] = append(stream, events...)
	return nil
}

// Load returns a copy of the ticket's stream in append order.
func (s *MemoryStore) Load(_ context.Context, ticketID domain.TicketID) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stream, ok := s.streams[ticketID]
	if !ok || len(stream) == 0 {
		return nil, ErrTicketNotFound
	}
	return append([]domain.Event(nil), stream...), nil
}

var _ Store = (*MemoryStore)(nil)
