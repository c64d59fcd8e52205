package domain

import (
	"strings"

	"github.com/spec-kit/helpdesk/pkg/result"
)

// Decision is the outcome of validating one command: either the ordered
// events representing its effect, or a rejection.
type Decision = result.Result[[]Event, *DomainError]

// statusTransitions lists the legal edges between distinct statuses.
// Same-status requests are not edges; they succeed as no-ops.
var statusTransitions = map[Status][]Status{
	StatusNew:             {StatusOpen, StatusInProgress, StatusPendingCustomer, StatusClosed},
	StatusOpen:            {StatusInProgress, StatusPendingCustomer, StatusClosed},
	StatusInProgress:      {StatusOpen, StatusPendingCustomer, StatusClosed},
	StatusPendingCustomer: {StatusOpen, StatusInProgress, StatusClosed},
	StatusClosed:          {StatusOpen},
}

// CanTransition reports whether from→to is a legal edge for distinct
// statuses. It does not treat from==to as legal; callers handle the
// idempotent no-op themselves.
func CanTransition(from, to Status) bool {
	for _, candidate := range statusTransitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}

// Decide validates a command against the current state and produces the
// ordered events that represent it, including cascaded secondary effects.
// It is pure: no I/O, no clock, and the only nondeterminism is the injected
// id generator. A rejected command leaves everything untouched.
func Decide(cmd Command, state TicketState, ids IDGenerator) Decision {
	switch c := cmd.(type) {
	case CreateTicket:
		return decideCreate(c, ids)
	case TransitionStatus:
		return decideTransition(c, state)
	case AddComment:
		return decideAddComment(c, state, ids)
	case AssignTicket:
		return decideAssign(c, state)
	case CloseTicket:
		return decideClose(c, state)
	case ReopenTicket:
		return decideReopen(c, state)
	case ChangePriority:
		return decideChangePriority(c, state)
	case MergeTicket:
		return decideMerge(c, state)
	default:
		// Command is a sealed interface; reaching this arm means a new
		// kind was added without a Decide rule.
		panic("domain: unhandled command kind " + string(cmd.CommandKind()))
	}
}

func accept(events ...Event) Decision {
	return result.Ok[[]Event, *DomainError](events)
}

func reject(code ErrorCode, message string) Decision {
	return result.Err[[]Event, *DomainError](newError(code, message))
}

func decideCreate(cmd CreateTicket, ids IDGenerator) Decision {
	if strings.TrimSpace(cmd.Title) == "" {
		return reject(ErrTitleRequired, "ticket title must not be empty")
	}
	if cmd.ReporterID == nil {
		return reject(ErrReporterRequired, "ticket reporter is required")
	}

	priority := cmd.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	ticketID := ids.NewTicketID()
	created := TicketCreated{
		EventMeta:         EventMeta{TicketID: ticketID, ActorID: cmd.ActorID, OccurredAt: cmd.Timestamp},
		Title:             strings.TrimSpace(cmd.Title),
		Description:       strings.TrimSpace(cmd.Description),
		Priority:          priority,
		Type:              cmd.Type,
		ReporterID:        *cmd.ReporterID,
		CustomerID:        cmd.CustomerID,
		Sender:            cmd.Sender,
		OrderNumber:       cmd.OrderNumber,
		TrackingNumber:    cmd.TrackingNumber,
		ExternalMessageID: cmd.ExternalMessageID,
		ConversationID:    cmd.ConversationID,
		ShippingAddress:   cmd.ShippingAddress,
	}

	events := []Event{created}
	if cmd.AssigneeID != nil {
		events = append(events, TicketAssigned{
			EventMeta:  EventMeta{TicketID: ticketID, ActorID: cmd.ActorID, OccurredAt: cmd.Timestamp},
			AssigneeID: *cmd.AssigneeID,
		})
	}
	return accept(events...)
}

func decideTransition(cmd TransitionStatus, state TicketState) Decision {
	if cmd.To == state.Status {
		// Idempotent no-op, deliberately distinct from a rejection:
		// safe for callers to retry silently.
		return accept()
	}
	if state.MergedIntoTicketID != nil {
		return reject(ErrTicketAlreadyMerged, "merged tickets stay closed")
	}
	if !CanTransition(state.Status, cmd.To) {
		return reject(ErrInvalidStatusTransition,
			"cannot transition from "+string(state.Status)+" to "+string(cmd.To))
	}
	return accept(StatusTransitioned{
		EventMeta:  EventMeta{TicketID: cmd.TicketID, ActorID: cmd.ActorID, OccurredAt: cmd.Timestamp},
		FromStatus: state.Status,
		ToStatus:   cmd.To,
		Reason:     cmd.Reason,
	})
}

func decideAddComment(cmd AddComment, state TicketState, ids IDGenerator) Decision {
	if strings.TrimSpace(cmd.Text) == "" {
		return reject(ErrCommentEmpty, "comment text must not be empty")
	}

	events := []Event{CommentAdded{
		EventMeta:       EventMeta{TicketID: cmd.TicketID, ActorID: cmd.ActorID, OccurredAt: cmd.Timestamp},
		CommentID:       ids.NewCommentID(),
		Text:            cmd.Text,
		IsInternalNote:  cmd.IsInternalNote,
		IsFromCustomer:  cmd.IsFromCustomer,
		IsOutgoingReply: cmd.IsOutgoingReply,
	}}

	// A customer reply while waiting on the customer reopens the
	// conversation.
	if cmd.IsFromCustomer && state.Status == StatusPendingCustomer {
		events = append(events, StatusTransitioned{
			EventMeta:  EventMeta{TicketID: cmd.TicketID, ActorID: cmd.ActorID, OccurredAt: cmd.Timestamp},
			FromStatus: StatusPendingCustomer,
			ToStatus:   StatusOpen,
			Reason:     "customer_reply",
		})
	}
	return accept(events...)
}

func decideAssign(cmd AssignTicket, state TicketState) Decision {
	if state.AssigneeID != nil && *state.AssigneeID == cmd.AssigneeID {
		return reject(ErrSameAssignee, "ticket is already assigned to this agent")
	}

	events := []Event{TicketAssigned{
		EventMeta:  EventMeta{TicketID: cmd.TicketID, ActorID: cmd.ActorID, OccurredAt: cmd.Timestamp},
		AssigneeID: cmd.AssigneeID,
	}}

	// Assignment implicitly starts work on a fresh ticket.
	if state.Status == StatusNew {
		events = append(events, StatusTransitioned{
			EventMeta:  EventMeta{TicketID: cmd.TicketID, ActorID: cmd.ActorID, OccurredAt: cmd.Timestamp},
			FromStatus: StatusNew,
			ToStatus:   StatusInProgress,
			Reason:     "assigned",
		})
	}
	return accept(events...)
}

func decideClose(cmd CloseTicket, state TicketState) Decision {
	if state.Status == StatusClosed {
		return reject(ErrTicketAlreadyClosed, "ticket is already closed")
	}
	meta := EventMeta{TicketID: cmd.TicketID, ActorID: cmd.ActorID, OccurredAt: cmd.Timestamp}
	return accept(
		TicketClosed{EventMeta: meta, Reason: cmd.Reason},
		StatusTransitioned{EventMeta: meta, FromStatus: state.Status, ToStatus: StatusClosed, Reason: "closed"},
	)
}

func decideReopen(cmd ReopenTicket, state TicketState) Decision {
	if state.MergedIntoTicketID != nil {
		return reject(ErrTicketAlreadyMerged, "merged tickets stay closed")
	}
	if state.Status != StatusClosed {
		return reject(ErrTicketNotClosed, "only closed tickets can be reopened")
	}
	meta := EventMeta{TicketID: cmd.TicketID, ActorID: cmd.ActorID, OccurredAt: cmd.Timestamp}
	return accept(
		TicketReopened{EventMeta: meta, Reason: cmd.Reason},
		StatusTransitioned{EventMeta: meta, FromStatus: StatusClosed, ToStatus: StatusOpen, Reason: "reopened"},
	)
}

func decideChangePriority(cmd ChangePriority, state TicketState) Decision {
	if cmd.Priority == state.Priority {
		return reject(ErrSamePriority, "ticket already has this priority")
	}
	return accept(PriorityChanged{
		EventMeta:    EventMeta{TicketID: cmd.TicketID, ActorID: cmd.ActorID, OccurredAt: cmd.Timestamp},
		FromPriority: state.Priority,
		ToPriority:   cmd.Priority,
	})
}

func decideMerge(cmd MergeTicket, state TicketState) Decision {
	if cmd.TargetTicketID == state.ID {
		return reject(ErrCannotMergeIntoSelf, "ticket cannot be merged into itself")
	}
	if state.MergedIntoTicketID != nil {
		return reject(ErrTicketAlreadyMerged, "ticket has already been merged")
	}
	if state.Status == StatusClosed {
		return reject(ErrCannotMergeClosedTicket, "closed tickets cannot be merged")
	}
	meta := EventMeta{TicketID: cmd.TicketID, ActorID: cmd.ActorID, OccurredAt: cmd.Timestamp}
	return accept(
		TicketMerged{EventMeta: meta, TargetTicketID: cmd.TargetTicketID},
		TicketClosed{EventMeta: meta, Reason: "merged"},
	)
}
