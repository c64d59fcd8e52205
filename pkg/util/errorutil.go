package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/eventstore"
)

// APIError standardizes errors crossing the HTTP boundary.
type APIError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError constructs an APIError.
func NewAPIError(code, message string, status int, details map[string]any) *APIError {
	return &APIError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewAPIError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	return NewAPIError("NOT_FOUND", fmt.Sprintf("%s not found", resource), http.StatusNotFound, details)
}

func NewUnauthorized(message string) error {
	return NewAPIError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewAPIError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewAPIError("CONFLICT", message, http.StatusConflict, details)
}

func NewInternalError(err error) error {
	return &APIError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// domainErrorStatus maps engine rejection codes to HTTP statuses. Input
// validation codes read as 400; state conflicts as 409.
var domainErrorStatus = map[domain.ErrorCode]int{
	domain.ErrTitleRequired:           http.StatusBadRequest,
	domain.ErrReporterRequired:        http.StatusBadRequest,
	domain.ErrCommentEmpty:            http.StatusBadRequest,
	domain.ErrInvalidStatusTransition: http.StatusConflict,
	domain.ErrSameAssignee:            http.StatusConflict,
	domain.ErrTicketAlreadyClosed:     http.StatusConflict,
	domain.ErrTicketNotClosed:         http.StatusConflict,
	domain.ErrSamePriority:            http.StatusConflict,
	domain.ErrCannotMergeIntoSelf:     http.StatusConflict,
	domain.ErrTicketAlreadyMerged:     http.StatusConflict,
	domain.ErrCannotMergeClosedTicket: http.StatusConflict,
}

// ToAPIError converts any error into an APIError for the HTTP boundary.
// Domain rejections keep their stable code so clients can branch on it.
func ToAPIError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		status, ok := domainErrorStatus[domainErr.Code]
		if !ok {
			status = http.StatusUnprocessableEntity
		}
		return &APIError{
			Code:       string(domainErr.Code),
			Message:    domainErr.Message,
			HTTPStatus: status,
		}
	}

	if errors.Is(err, eventstore.ErrTicketNotFound) {
		return NewNotFound("ticket", nil).(*APIError)
	}
	if errors.Is(err, eventstore.ErrVersionConflict) {
		return NewConflict("ticket was modified concurrently, retry", nil).(*APIError)
	}

	return &APIError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// MapError converts generic errors to APIError.
func MapError(err error) error {
	return ToAPIError(err)
}
