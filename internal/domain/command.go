package domain

import "time"

// CommandKind discriminates command variants.
type CommandKind string

const (
	CommandCreateTicket     CommandKind = "create_ticket"
	CommandTransitionStatus CommandKind = "transition_status"
	CommandAddComment       CommandKind = "add_comment"
	CommandAssignTicket     CommandKind = "assign_ticket"
	CommandCloseTicket      CommandKind = "close_ticket"
	CommandReopenTicket     CommandKind = "reopen_ticket"
	CommandChangePriority   CommandKind = "change_priority"
	CommandMergeTicket      CommandKind = "merge_ticket"
)

// Command is a requested, not yet validated, change to a ticket. The set of
// implementations is closed: adding a kind requires a new arm in Decide.
// ActorID is nil for system actors such as an inbound customer email;
// Timestamp is supplied by the caller, never read from a clock here.
type Command interface {
	CommandKind() CommandKind
	CommandActorID() *UserID
	CommandTimestamp() time.Time
	isCommand()
}

// CommandMeta carries the fields every command shares.
type CommandMeta struct {
	ActorID   *UserID
	Timestamp time.Time
}

func (m CommandMeta) CommandActorID() *UserID     { return m.ActorID }
func (m CommandMeta) CommandTimestamp() time.Time { return m.Timestamp }
func (CommandMeta) isCommand()                    {}

// CreateTicket opens a new ticket. ReporterID is nullable on the command so
// Decide can reject its absence rather than trusting the caller.
type CreateTicket struct {
	CommandMeta
	Title             string
	Description       string
	Priority          Priority
	Type              *TicketType
	ReporterID        *UserID
	AssigneeID        *UserID
	CustomerID        *CustomerID
	Sender            Sender
	OrderNumber       *string
	TrackingNumber    *string
	ExternalMessageID *string
	ConversationID    *string
	ShippingAddress   *string
}

func (CreateTicket) CommandKind() CommandKind { return CommandCreateTicket }

// TransitionStatus requests a move to another lifecycle status.
type TransitionStatus struct {
	CommandMeta
	TicketID TicketID
	To       Status
	Reason   string
}

func (TransitionStatus) CommandKind() CommandKind { return CommandTransitionStatus }

// AddComment appends a comment to the ticket thread.
type AddComment struct {
	CommandMeta
	TicketID        TicketID
	Text            string
	IsInternalNote  bool
	IsFromCustomer  bool
	IsOutgoingReply bool
}

func (AddComment) CommandKind() CommandKind { return CommandAddComment }

// AssignTicket hands the ticket to an agent.
type AssignTicket struct {
	CommandMeta
	TicketID   TicketID
	AssigneeID UserID
}

func (AssignTicket) CommandKind() CommandKind { return CommandAssignTicket }

// CloseTicket closes the ticket.
type CloseTicket struct {
	CommandMeta
	TicketID TicketID
	Reason   string
}

func (CloseTicket) CommandKind() CommandKind { return CommandCloseTicket }

// ReopenTicket reopens a closed ticket.
type ReopenTicket struct {
	CommandMeta
	TicketID TicketID
	Reason   string
}

func (ReopenTicket) CommandKind() CommandKind { return CommandReopenTicket }

// ChangePriority adjusts SLA urgency.
type ChangePriority struct {
	CommandMeta
	TicketID TicketID
	Priority Priority
}

func (ChangePriority) CommandKind() CommandKind { return CommandChangePriority }

// MergeTicket folds this ticket into another one and closes it.
type MergeTicket struct {
	CommandMeta
	TicketID       TicketID
	TargetTicketID TicketID
}

func (MergeTicket) CommandKind() CommandKind { return CommandMergeTicket }
