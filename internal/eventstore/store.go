// Package eventstore persists the domain event log. The log is the source
// of truth: ticket state is a projection rebuilt via domain.EvolveAll.
package eventstore

import (
	"context"
	"errors"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// ErrVersionConflict signals that the expected version no longer matches
// the stored stream; the caller should reload and retry the command.
var ErrVersionConflict = errors.New("eventstore: version conflict")

// ErrTicketNotFound signals an empty stream for the requested ticket.
var ErrTicketNotFound = errors.New("eventstore: ticket not found")

// Store appends and loads per-ticket event streams. Implementations must
// guarantee per-ticket ordering and atomic append of a whole decided batch.
type Store interface {
	// Append writes the batch after verifying the stream currently holds
	// exactly expectedVersion events. Returns ErrVersionConflict otherwise.
	Append(ctx context.Context, ticketID domain.TicketID, expectedVersion int, events []domain.Event) error

	// Load returns the ticket's full history in append order. Returns
	// ErrTicketNotFound for an unknown ticket.
	Load(ctx context.Context, ticketID domain.TicketID) ([]domain.Event, error)
}
