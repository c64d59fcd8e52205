package service

import (
	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// uuidGenerator backs domain.IDGenerator with random UUIDs in production.
type uuidGenerator struct{}

// NewUUIDGenerator returns the production id generator.
func NewUUIDGenerator() domain.IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewTicketID() domain.TicketID {
	return domain.TicketID("tck_" + uuid.NewString())
}

func (uuidGenerator) NewCommentID() domain.CommentID {
	return domain.CommentID("cmt_" + uuid.NewString())
}
