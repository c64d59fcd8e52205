package dto

import (
	"encoding/json"
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	Priority          domain.Priority    `json:"priority"`
	Type              *domain.TicketType `json:"type"`
	ReporterID        *string            `json:"reporter_id"`
	AssigneeID        *string            `json:"assignee_id"`
	CustomerID        *string            `json:"customer_id"`
	SenderEmail       *string            `json:"sender_email"`
	SenderName        *string            `json:"sender_name"`
	SenderPhone       *string            `json:"sender_phone"`
	SenderCompany     *string            `json:"sender_company"`
	OrderNumber       *string            `json:"order_number"`
	TrackingNumber    *string            `json:"tracking_number"`
	ExternalMessageID *string            `json:"external_message_id"`
	ConversationID    *string            `json:"conversation_id"`
	ShippingAddress   *string            `json:"shipping_address"`
}

// TransitionRequest payload.
type TransitionRequest struct {
	Status domain.Status `json:"status"`
	Reason string        `json:"reason"`
}

// CommentRequest payload.
type CommentRequest struct {
	Text            string `json:"text"`
	IsInternalNote  bool   `json:"is_internal_note"`
	IsFromCustomer  bool   `json:"is_from_customer"`
	IsOutgoingReply bool   `json:"is_outgoing_reply"`
}

// AssignRequest payload.
type AssignRequest struct {
	AssigneeID string `json:"assignee_id"`
}

// PriorityRequest payload.
type PriorityRequest struct {
	Priority domain.Priority `json:"priority"`
}

// MergeRequest payload.
type MergeRequest struct {
	TargetTicketID string `json:"target_ticket_id"`
}

// ReasonRequest payload shared by close and reopen.
type ReasonRequest struct {
	Reason string `json:"reason"`
}

// TicketResponse is the aggregate snapshot the API returns.
type TicketResponse struct {
	ID                 string             `json:"id"`
	Status             domain.Status      `json:"status"`
	Priority           domain.Priority    `json:"priority"`
	Type               *domain.TicketType `json:"type,omitempty"`
	ReporterID         string             `json:"reporter_id"`
	AssigneeID         *string            `json:"assignee_id,omitempty"`
	CustomerID         *string            `json:"customer_id,omitempty"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	OrderNumber        *string            `json:"order_number,omitempty"`
	TrackingNumber     *string            `json:"tracking_number,omitempty"`
	MergedIntoTicketID *string            `json:"merged_into_ticket_id,omitempty"`
	CommentCount       int                `json:"comment_count"`
	HasFirstResponse   bool               `json:"has_first_response"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	ClosedAt           *time.Time         `json:"closed_at,omitempty"`
}

// EventResponse is one replayed history entry.
type EventResponse struct {
	Kind       domain.EventKind `json:"kind"`
	OccurredAt time.Time        `json:"occurred_at"`
	Payload    json.RawMessage  `json:"payload"`
}

// FromState maps an aggregate snapshot to its API shape.
func FromState(state domain.TicketState) TicketResponse {
	resp := TicketResponse{
		ID:               string(state.ID),
		Status:           state.Status,
		Priority:         state.Priority,
		Type:             state.Type,
		ReporterID:       string(state.ReporterID),
		Title:            state.Title,
		Description:      state.Description,
		OrderNumber:      state.OrderNumber,
		TrackingNumber:   state.TrackingNumber,
		CommentCount:     state.CommentCount,
		HasFirstResponse: state.HasFirstResponse,
		CreatedAt:        state.CreatedAt,
		UpdatedAt:        state.UpdatedAt,
		ClosedAt:         state.ClosedAt,
	}
	if state.AssigneeID != nil {
		id := string(*state.AssigneeID)
		resp.AssigneeID = &id
	}
	if state.CustomerID != nil {
		id := string(*state.CustomerID)
		resp.CustomerID = &id
	}
	if state.MergedIntoTicketID != nil {
		id := string(*state.MergedIntoTicketID)
		resp.MergedIntoTicketID = &id
	}
	return resp
}
