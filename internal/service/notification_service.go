package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/config"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
)

// NotificationService handles emitting notifications for persisted domain
// events. It is strictly a consumer: rejections never reach it.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to the event kinds worth notifying on.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(domain.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(domain.EventTicketAssigned, n.handleTicketAssigned)
	n.dispatcher.Subscribe(domain.EventCommentAdded, n.handleCommentAdded)
	n.dispatcher.Subscribe(domain.EventTicketClosed, n.handleTicketClosed)
	n.dispatcher.Subscribe(domain.EventTicketMerged, n.handleTicketMerged)
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, envelope events.Envelope) error {
	n.logger.Info("TicketCreated", zap.String("ticket_id", string(envelope.TicketID)))
	n.sendEmailNotificationStub(ctx, envelope)
	n.sendWebhookNotificationStub(ctx, envelope)
	return nil
}

func (n *NotificationService) handleTicketAssigned(ctx context.Context, envelope events.Envelope) error {
	n.logger.Info("TicketAssigned", zap.String("ticket_id", string(envelope.TicketID)))
	n.sendWebhookNotificationStub(ctx, envelope)
	return nil
}

func (n *NotificationService) handleCommentAdded(ctx context.Context, envelope events.Envelope) error {
	comment, ok := envelope.Event.(domain.CommentAdded)
	if ok && comment.IsInternalNote {
		// Internal notes stay internal.
		return nil
	}
	n.logger.Info("CommentAdded", zap.String("ticket_id", string(envelope.TicketID)))
	n.sendEmailNotificationStub(ctx, envelope)
	return nil
}

func (n *NotificationService) handleTicketClosed(ctx context.Context, envelope events.Envelope) error {
	n.logger.Info("TicketClosed", zap.String("ticket_id", string(envelope.TicketID)))
	n.sendEmailNotificationStub(ctx, envelope)
	return nil
}

func (n *NotificationService) handleTicketMerged(ctx context.Context, envelope events.Envelope) error {
	n.logger.Info("TicketMerged", zap.String("ticket_id", string(envelope.TicketID)))
	n.sendWebhookNotificationStub(ctx, envelope)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, envelope events.Envelope) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("ticket_id", string(envelope.TicketID)),
		zap.String("kind", string(envelope.Kind)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, envelope events.Envelope) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("ticket_id", string(envelope.TicketID)),
		zap.String("kind", string(envelope.Kind)))
}
