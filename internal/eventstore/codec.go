package eventstore

import (
	"encoding/json"
	"fmt"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// Encode serializes an event for storage as its kind tag plus JSON payload.
func Encode(event domain.Event) (domain.EventKind, []byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return "", nil, fmt.Errorf("encode %s: %w", event.EventKind(), err)
	}
	return event.EventKind(), payload, nil
}

// Decode rebuilds a stored event from its kind tag and JSON payload. An
// unknown kind is an error: the log must never be silently skipped.
func Decode(kind domain.EventKind, payload []byte) (domain.Event, error) {
	var (
		event domain.Event
		err   error
	)
	switch kind {
	case domain.EventTicketCreated:
		event, err = unmarshalAs[domain.TicketCreated](payload)
	case domain.EventTicketAssigned:
		event, err = unmarshalAs[domain.TicketAssigned](payload)
	case domain.EventStatusTransitioned:
		event, err = unmarshalAs[domain.StatusTransitioned](payload)
	case domain.EventCommentAdded:
		event, err = unmarshalAs[domain.CommentAdded](payload)
	case domain.EventTicketClosed:
		event, err = unmarshalAs[domain.TicketClosed](payload)
	case domain.EventTicketReopened:
		event, err = unmarshalAs[domain.TicketReopened](payload)
	case domain.EventPriorityChanged:
		event, err = unmarshalAs[domain.PriorityChanged](payload)
	case domain.EventTicketMerged:
		event, err = unmarshalAs[domain.TicketMerged](payload)
	default:
		return nil, fmt.Errorf("decode: unknown event kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return event, nil
}

func unmarshalAs[E domain.Event](payload []byte) (E, error) {
	var event E
	err := json.Unmarshal(payload, &event)
	return event, err
}
