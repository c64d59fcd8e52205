package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/eventstore"
	"github.com/spec-kit/helpdesk/internal/snapshot"
)

// TicketService is the single command producer around the lifecycle
// engine: it loads state, calls Decide, appends the decided batch, folds
// it back with EvolveAll and publishes the persisted events. No business
// rules live here.
type TicketService struct {
	store      eventstore.Store
	snapshots  *snapshot.Cache
	dispatcher events.Dispatcher
	ids        domain.IDGenerator
	logger     *zap.Logger
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Store      eventstore.Store
	Snapshots  *snapshot.Cache
	Dispatcher events.Dispatcher
	IDs        domain.IDGenerator
	Logger     *zap.Logger
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		store:      deps.Store,
		snapshots:  deps.Snapshots,
		dispatcher: deps.Dispatcher,
		ids:        deps.IDs,
		logger:     logger,
	}
}

// CreateTicket decides a CreateTicket command against the empty state and
// persists the resulting stream.
func (s *TicketService) CreateTicket(ctx context.Context, cmd domain.CreateTicket) (domain.TicketState, error) {
	decision := domain.Decide(cmd, domain.EmptyTicketState(), s.ids)
	if decision.IsErr() {
		return domain.TicketState{}, decision.UnwrapErr()
	}

	batch := decision.Unwrap()
	ticketID := batch[0].EventTicketID()
	if err := s.store.Append(ctx, ticketID, 0, batch); err != nil {
		return domain.TicketState{}, err
	}

	state := domain.EvolveAll(domain.EmptyTicketState(), batch)
	s.snapshots.Put(ctx, ticketID, state, len(batch))
	s.publish(ctx, batch)

	s.logger.Info("ticket created",
		zap.String("ticket_id", string(ticketID)),
		zap.Int("events", len(batch)))
	return state, nil
}

// Execute runs any non-create command against the ticket's current state.
// On a version conflict it reloads and retries once; Decide is
// deterministic, so the retry either repeats the decision against fresher
// state or yields a clean rejection.
func (s *TicketService) Execute(ctx context.Context, ticketID domain.TicketID, cmd domain.Command) (domain.TicketState, error) {
	state, version, err := s.currentState(ctx, ticketID)
	if err != nil {
		return domain.TicketState{}, err
	}

	state, err = s.executeOnce(ctx, ticketID, cmd, state, version)
	if errors.Is(err, eventstore.ErrVersionConflict) {
		s.logger.Debug("version conflict, retrying command",
			zap.String("ticket_id", string(ticketID)),
			zap.String("command", string(cmd.CommandKind())))
		state, version, err = s.replay(ctx, ticketID)
		if err != nil {
			return domain.TicketState{}, err
		}
		return s.executeOnce(ctx, ticketID, cmd, state, version)
	}
	return state, err
}

func (s *TicketService) executeOnce(ctx context.Context, ticketID domain.TicketID, cmd domain.Command, state domain.TicketState, version int) (domain.TicketState, error) {
	decision := domain.Decide(cmd, state, s.ids)
	if decision.IsErr() {
		return domain.TicketState{}, decision.UnwrapErr()
	}

	batch := decision.Unwrap()
	if len(batch) == 0 {
		// Idempotent no-op: nothing to persist or publish.
		return state, nil
	}

	if err := s.store.Append(ctx, ticketID, version, batch); err != nil {
		return domain.TicketState{}, err
	}

	next := domain.EvolveAll(state, batch)
	s.snapshots.Put(ctx, ticketID, next, version+len(batch))
	s.publish(ctx, batch)
	return next, nil
}

// GetTicket returns the current snapshot, preferring the cache and falling
// back to a full replay.
func (s *TicketService) GetTicket(ctx context.Context, ticketID domain.TicketID) (domain.TicketState, error) {
	state, _, err := s.currentState(ctx, ticketID)
	return state, err
}

// ListEvents returns the ticket's full history in order.
func (s *TicketService) ListEvents(ctx context.Context, ticketID domain.TicketID) ([]domain.Event, error) {
	return s.store.Load(ctx, ticketID)
}

func (s *TicketService) currentState(ctx context.Context, ticketID domain.TicketID) (domain.TicketState, int, error) {
	if state, version, ok := s.snapshots.Get(ctx, ticketID); ok {
		return state, version, nil
	}
	return s.replay(ctx, ticketID)
}

func (s *TicketService) replay(ctx context.Context, ticketID domain.TicketID) (domain.TicketState, int, error) {
	history, err := s.store.Load(ctx, ticketID)
	if err != nil {
		return domain.TicketState{}, 0, err
	}
	state := domain.EvolveAll(domain.EmptyTicketState(), history)
	s.snapshots.Put(ctx, ticketID, state, len(history))
	return state, len(history), nil
}

func (s *TicketService) publish(ctx context.Context, batch []domain.Event) {
	if s.dispatcher == nil {
		return
	}
	for _, event := range batch {
		envelope := events.Envelope{
			ID:         uuid.NewString(),
			TicketID:   event.EventTicketID(),
			Kind:       event.EventKind(),
			OccurredAt: event.EventOccurredAt(),
			Event:      event,
		}
		_ = s.dispatcher.Publish(ctx, envelope)
	}
}
