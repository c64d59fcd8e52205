// Package domain implements the ticket lifecycle engine: a pure,
// deterministic, event-sourced core. Every state change flows through
// Decide, which validates a Command against the current TicketState and
// produces the ordered Events representing it, and Evolve, which folds
// those events back into state. The package performs no I/O and reads no
// clock; timestamps arrive on commands and events.
package domain

import "time"

// TicketID identifies a ticket. Opaque to the engine.
type TicketID string

// UserID identifies an actor, assignee or reporter. Opaque to the engine.
type UserID string

// CommentID identifies a comment. Opaque to the engine.
type CommentID string

// CustomerID identifies the customer a ticket belongs to. Opaque to the engine.
type CustomerID string

// Status enumerates ticket lifecycle states.
type Status string

const (
	StatusNew             Status = "new"
	StatusOpen            Status = "open"
	StatusInProgress      Status = "in_progress"
	StatusPendingCustomer Status = "pending_customer"
	StatusClosed          Status = "closed"
)

// Priority enumerates SLA urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// TicketType classifies what a ticket is about. Nullable on the aggregate;
// assigned by triage outside the engine.
type TicketType string

const (
	TypeQuestion   TicketType = "question"
	TypeOrderIssue TicketType = "order_issue"
	TypeShipping   TicketType = "shipping"
	TypeRefund     TicketType = "refund"
	TypeOther      TicketType = "other"
)

// Sender captures contact details of whoever originated the ticket,
// typically parsed from an inbound email.
type Sender struct {
	Email   *string `json:"email,omitempty"`
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
}

// TicketState is the aggregate snapshot for one ticket, derived entirely
// from its event history. Snapshots are values: Evolve returns a new one
// and never writes through the old.
type TicketState struct {
	ID                 TicketID    `json:"id"`
	Status             Status      `json:"status"`
	Priority           Priority    `json:"priority"`
	Type               *TicketType `json:"type,omitempty"`
	ReporterID         UserID      `json:"reporter_id"`
	AssigneeID         *UserID     `json:"assignee_id,omitempty"`
	CustomerID         *CustomerID `json:"customer_id,omitempty"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	Sender             Sender      `json:"sender"`
	OrderNumber        *string     `json:"order_number,omitempty"`
	TrackingNumber     *string     `json:"tracking_number,omitempty"`
	ExternalMessageID  *string     `json:"external_message_id,omitempty"`
	ConversationID     *string     `json:"conversation_id,omitempty"`
	ShippingAddress    *string     `json:"shipping_address,omitempty"`
	MergedIntoTicketID *TicketID   `json:"merged_into_ticket_id,omitempty"`
	CommentCount       int         `json:"comment_count"`
	HasFirstResponse   bool        `json:"has_first_response"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
	ClosedAt           *time.Time  `json:"closed_at,omitempty"`
	ReopenedAt         *time.Time  `json:"reopened_at,omitempty"`
}

// EmptyTicketState returns the zero snapshot a ticket's history is folded
// onto. It is meaningful only as the seed for a TicketCreated event.
func EmptyTicketState() TicketState {
	return TicketState{}
}

// IDGenerator supplies fresh identifiers to Decide. Injected as a
// capability so the engine stays deterministic and replayable in tests;
// production wires a UUID-backed implementation, tests a counter.
type IDGenerator interface {
	NewTicketID() TicketID
	NewCommentID() CommentID
}
