package domain

// ErrorCode is the closed set of rejection codes callers may branch on.
// The accompanying message is for logs and UI only.
type ErrorCode string

const (
	ErrTitleRequired           ErrorCode = "TITLE_REQUIRED"
	ErrReporterRequired        ErrorCode = "REPORTER_REQUIRED"
	ErrInvalidStatusTransition ErrorCode = "INVALID_STATUS_TRANSITION"
	ErrSameAssignee            ErrorCode = "SAME_ASSIGNEE"
	ErrCommentEmpty            ErrorCode = "COMMENT_EMPTY"
	ErrTicketAlreadyClosed     ErrorCode = "TICKET_ALREADY_CLOSED"
	ErrTicketNotClosed         ErrorCode = "TICKET_NOT_CLOSED"
	ErrSamePriority            ErrorCode = "SAME_PRIORITY"
	ErrCannotMergeIntoSelf     ErrorCode = "CANNOT_MERGE_INTO_SELF"
	ErrTicketAlreadyMerged     ErrorCode = "TICKET_ALREADY_MERGED"
	ErrCannotMergeClosedTicket ErrorCode = "CANNOT_MERGE_CLOSED_TICKET"
)

// DomainError is a business-rule rejection produced by Decide. It leaves
// state and the event log untouched.
type DomainError struct {
	Code    ErrorCode
	Message string
}

func (e *DomainError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func newError(code ErrorCode, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}
