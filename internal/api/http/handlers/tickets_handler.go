package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/eventstore"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/pkg/util"
)

// TicketsHandler translates HTTP requests into lifecycle commands. All
// validation of the change itself happens inside the engine; this layer
// owns parsing, auth and status mapping only.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}

	cmd := domain.CreateTicket{
		CommandMeta:       h.meta(c),
		Title:             req.Title,
		Description:       req.Description,
		Priority:          req.Priority,
		Type:              req.Type,
		ReporterID:        optionalUserID(req.ReporterID),
		AssigneeID:        optionalUserID(req.AssigneeID),
		CustomerID:        optionalCustomerID(req.CustomerID),
		OrderNumber:       req.OrderNumber,
		TrackingNumber:    req.TrackingNumber,
		ExternalMessageID: req.ExternalMessageID,
		ConversationID:    req.ConversationID,
		ShippingAddress:   req.ShippingAddress,
		Sender: domain.Sender{
			Email:   req.SenderEmail,
			Name:    req.SenderName,
			Phone:   req.SenderPhone,
			Company: req.SenderCompany,
		},
	}
	// A customer creating their own ticket is its reporter.
	if cmd.ReporterID == nil {
		if principal, ok := auth.PrincipalFromContext(c); ok {
			reporter := principal.UserID()
			cmd.ReporterID = &reporter
		}
	}

	state, err := h.service.CreateTicket(c.Context(), cmd)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromState(state)})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	state, err := h.service.GetTicket(c.Context(), domain.TicketID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromState(state)})
}

// ListEvents GET /tickets/:id/events.
func (h *TicketsHandler) ListEvents(c *fiber.Ctx) error {
	history, err := h.service.ListEvents(c.Context(), domain.TicketID(c.Params("id")))
	if err != nil {
		return err
	}
	items := make([]dto.EventResponse, 0, len(history))
	for _, event := range history {
		kind, payload, err := eventstore.Encode(event)
		if err != nil {
			return err
		}
		items = append(items, dto.EventResponse{
			Kind:       kind,
			OccurredAt: event.EventOccurredAt(),
			Payload:    payload,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// TransitionStatus POST /tickets/:id/status.
func (h *TicketsHandler) TransitionStatus(c *fiber.Ctx) error {
	var req dto.TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	return h.execute(c, domain.TransitionStatus{
		CommandMeta: h.meta(c),
		TicketID:    domain.TicketID(c.Params("id")),
		To:          req.Status,
		Reason:      req.Reason,
	})
}

// AddComment POST /tickets/:id/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	return h.execute(c, domain.AddComment{
		CommandMeta:     h.meta(c),
		TicketID:        domain.TicketID(c.Params("id")),
		Text:            req.Text,
		IsInternalNote:  req.IsInternalNote,
		IsFromCustomer:  req.IsFromCustomer,
		IsOutgoingReply: req.IsOutgoingReply,
	})
}

// AssignTicket POST /tickets/:id/assign.
func (h *TicketsHandler) AssignTicket(c *fiber.Ctx) error {
	var req dto.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.AssigneeID == "" {
		return util.NewValidationError("assignee_id required", nil)
	}
	return h.execute(c, domain.AssignTicket{
		CommandMeta: h.meta(c),
		TicketID:    domain.TicketID(c.Params("id")),
		AssigneeID:  domain.UserID(req.AssigneeID),
	})
}

// CloseTicket POST /tickets/:id/close.
func (h *TicketsHandler) CloseTicket(c *fiber.Ctx) error {
	var req dto.ReasonRequest
	_ = c.BodyParser(&req)
	return h.execute(c, domain.CloseTicket{
		CommandMeta: h.meta(c),
		TicketID:    domain.TicketID(c.Params("id")),
		Reason:      req.Reason,
	})
}

// ReopenTicket POST /tickets/:id/reopen.
func (h *TicketsHandler) ReopenTicket(c *fiber.Ctx) error {
	var req dto.ReasonRequest
	_ = c.BodyParser(&req)
	return h.execute(c, domain.ReopenTicket{
		CommandMeta: h.meta(c),
		TicketID:    domain.TicketID(c.Params("id")),
		Reason:      req.Reason,
	})
}

// ChangePriority POST /tickets/:id/priority.
func (h *TicketsHandler) ChangePriority(c *fiber.Ctx) error {
	var req dto.PriorityRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	return h.execute(c, domain.ChangePriority{
		CommandMeta: h.meta(c),
		TicketID:    domain.TicketID(c.Params("id")),
		Priority:    req.Priority,
	})
}

// MergeTicket POST /tickets/:id/merge.
func (h *TicketsHandler) MergeTicket(c *fiber.Ctx) error {
	var req dto.MergeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if req.TargetTicketID == "" {
		return util.NewValidationError("target_ticket_id required", nil)
	}
	return h.execute(c, domain.MergeTicket{
		CommandMeta:    h.meta(c),
		TicketID:       domain.TicketID(c.Params("id")),
		TargetTicketID: domain.TicketID(req.TargetTicketID),
	})
}

func (h *TicketsHandler) execute(c *fiber.Ctx, cmd domain.Command) error {
	state, err := h.service.Execute(c.Context(), domain.TicketID(c.Params("id")), cmd)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromState(state)})
}

// meta stamps commands with the authenticated actor (nil for unauthenticated
// system callers such as the inbound email pipeline) and the request time.
func (h *TicketsHandler) meta(c *fiber.Ctx) domain.CommandMeta {
	meta := domain.CommandMeta{Timestamp: time.Now().UTC()}
	if principal, ok := auth.PrincipalFromContext(c); ok {
		actor := principal.UserID()
		meta.ActorID = &actor
	}
	return meta
}

func optionalUserID(id *string) *domain.UserID {
	if id == nil || *id == "" {
		return nil
	}
	converted := domain.UserID(*id)
	return &converted
}

func optionalCustomerID(id *string) *domain.CustomerID {
	if id == nil || *id == "" {
		return nil
	}
	converted := domain.CustomerID(*id)
	return &converted
}
