package domain

import "time"

// EventKind discriminates event variants.
type EventKind string

const (
	EventTicketCreated      EventKind = "ticket_created"
	EventTicketAssigned     EventKind = "ticket_assigned"
	EventStatusTransitioned EventKind = "status_transitioned"
	EventCommentAdded       EventKind = "comment_added"
	EventTicketClosed       EventKind = "ticket_closed"
	EventTicketReopened     EventKind = "ticket_reopened"
	EventPriorityChanged    EventKind = "priority_changed"
	EventTicketMerged       EventKind = "ticket_merged"
)

// Event is an immutable fact that a validated change occurred; the unit of
// persistence and replay. Each event carries everything Evolve needs, so
// replay requires no external lookups. The set of implementations is
// closed: adding a kind requires a new arm in Evolve and the store codec.
type Event interface {
	EventKind() EventKind
	EventTicketID() TicketID
	EventOccurredAt() time.Time
	isEvent()
}

// EventMeta carries the fields every event shares.
type EventMeta struct {
	TicketID   TicketID  `json:"ticket_id"`
	ActorID    *UserID   `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (m EventMeta) EventTicketID() TicketID    { return m.TicketID }
func (m EventMeta) EventOccurredAt() time.Time { return m.OccurredAt }
func (EventMeta) isEvent()                     {}

// TicketCreated records the birth of a ticket with its full initial shape.
type TicketCreated struct {
	EventMeta
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	Priority          Priority    `json:"priority"`
	Type              *TicketType `json:"type,omitempty"`
	ReporterID        UserID      `json:"reporter_id"`
	CustomerID        *CustomerID `json:"customer_id,omitempty"`
	Sender            Sender      `json:"sender"`
	OrderNumber       *string     `json:"order_number,omitempty"`
	TrackingNumber    *string     `json:"tracking_number,omitempty"`
	ExternalMessageID *string     `json:"external_message_id,omitempty"`
	ConversationID    *string     `json:"conversation_id,omitempty"`
	ShippingAddress   *string     `json:"shipping_address,omitempty"`
}

func (TicketCreated) EventKind() EventKind { return EventTicketCreated }

// TicketAssigned records a change of assignee.
type TicketAssigned struct {
	EventMeta
	AssigneeID UserID `json:"assignee_id"`
}

func (TicketAssigned) EventKind() EventKind { return EventTicketAssigned }

// StatusTransitioned records a move along the status graph. This is the
// only event that changes Status during replay.
type StatusTransitioned struct {
	EventMeta
	FromStatus Status `json:"from_status"`
	ToStatus   Status `json:"to_status"`
	Reason     string `json:"reason,omitempty"`
}

func (StatusTransitioned) EventKind() EventKind { return EventStatusTransitioned }

// CommentAdded records a new entry in the ticket thread.
type CommentAdded struct {
	EventMeta
	CommentID       CommentID `json:"comment_id"`
	Text            string    `json:"text"`
	IsInternalNote  bool      `json:"is_internal_note"`
	IsFromCustomer  bool      `json:"is_from_customer"`
	IsOutgoingReply bool      `json:"is_outgoing_reply"`
}

func (CommentAdded) EventKind() EventKind { return EventCommentAdded }

// TicketClosed records closure bookkeeping. Status itself moves via the
// accompanying StatusTransitioned event.
type TicketClosed struct {
	EventMeta
	Reason string `json:"reason,omitempty"`
}

func (TicketClosed) EventKind() EventKind { return EventTicketClosed }

// TicketReopened records reopen bookkeeping; status moves via the
// accompanying StatusTransitioned event.
type TicketReopened struct {
	EventMeta
	Reason string `json:"reason,omitempty"`
}

func (TicketReopened) EventKind() EventKind { return EventTicketReopened }

// PriorityChanged records an SLA urgency change.
type PriorityChanged struct {
	EventMeta
	FromPriority Priority `json:"from_priority"`
	ToPriority   Priority `json:"to_priority"`
}

func (PriorityChanged) EventKind() EventKind { return EventPriorityChanged }

// TicketMerged records that this ticket was folded into another. Merging is
// terminal: replaying it forces the source ticket closed.
type TicketMerged struct {
	EventMeta
	TargetTicketID TicketID `json:"target_ticket_id"`
}

func (TicketMerged) EventKind() EventKind { return EventTicketMerged }
