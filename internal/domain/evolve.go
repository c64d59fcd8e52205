package domain

// Evolve applies one event to a snapshot and returns the next snapshot.
// The input state is never mutated; TicketState is passed and returned by
// value and pointer fields are replaced, not written through.
func Evolve(state TicketState, event Event) TicketState {
	switch e := event.(type) {
	case TicketCreated:
		return TicketState{
			ID:                e.TicketID,
			Status:            StatusNew,
			Priority:          e.Priority,
			Type:              e.Type,
			ReporterID:        e.ReporterID,
			CustomerID:        e.CustomerID,
			Title:             e.Title,
			Description:       e.Description,
			Sender:            e.Sender,
			OrderNumber:       e.OrderNumber,
			TrackingNumber:    e.TrackingNumber,
			ExternalMessageID: e.ExternalMessageID,
			ConversationID:    e.ConversationID,
			ShippingAddress:   e.ShippingAddress,
			CreatedAt:         e.OccurredAt,
			UpdatedAt:         e.OccurredAt,
		}

	case StatusTransitioned:
		state.Status = e.ToStatus
		state.UpdatedAt = e.OccurredAt
		return state

	case TicketAssigned:
		assignee := e.AssigneeID
		state.AssigneeID = &assignee
		state.UpdatedAt = e.OccurredAt
		return state

	case CommentAdded:
		state.CommentCount++
		if !e.IsInternalNote {
			state.HasFirstResponse = true
		}
		state.UpdatedAt = e.OccurredAt
		return state

	case PriorityChanged:
		state.Priority = e.ToPriority
		state.UpdatedAt = e.OccurredAt
		return state

	case TicketClosed:
		closedAt := e.OccurredAt
		state.ClosedAt = &closedAt
		state.UpdatedAt = e.OccurredAt
		return state

	case TicketReopened:
		reopenedAt := e.OccurredAt
		state.ReopenedAt = &reopenedAt
		state.ClosedAt = nil
		state.UpdatedAt = e.OccurredAt
		return state

	case TicketMerged:
		target := e.TargetTicketID
		state.MergedIntoTicketID = &target
		state.Status = StatusClosed
		state.UpdatedAt = e.OccurredAt
		return state

	default:
		// Event is a sealed interface; reaching this arm means a new kind
		// was added without an Evolve rule.
		panic("domain: unhandled event kind " + string(event.EventKind()))
	}
}

// EvolveAll left-folds Evolve over an ordered event sequence. Rebuilding a
// ticket from scratch is EvolveAll(EmptyTicketState(), history).
func EvolveAll(state TicketState, events []Event) TicketState {
	for _, event := range events {
		state = Evolve(state, event)
	}
	return state
}
