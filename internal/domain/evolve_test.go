package domain

import (
	"testing"
	"time"
)

func createdEvent() TicketCreated {
	return TicketCreated{
		EventMeta:   EventMeta{TicketID: "tck-1", OccurredAt: testTime},
		Title:       "Order never arrived",
		Description: "Ordered two weeks ago, still nothing.",
		Priority:    PriorityMedium,
		ReporterID:  "user-1",
	}
}

func TestEvolve_TicketCreatedInitializesState(t *testing.T) {
	state := Evolve(EmptyTicketState(), createdEvent())

	if state.ID != "tck-1" {
		t.Fatalf("id = %s, want tck-1", state.ID)
	}
	if state.Status != StatusNew {
		t.Fatalf("status = %s, want new", state.Status)
	}
	if state.ReporterID != "user-1" {
		t.Fatalf("reporter = %s, want user-1", state.ReporterID)
	}
	if state.CommentCount != 0 || state.HasFirstResponse {
		t.Fatalf("fresh ticket has comments: count=%d first=%v", state.CommentCount, state.HasFirstResponse)
	}
	if !state.CreatedAt.Equal(testTime) || !state.UpdatedAt.Equal(testTime) {
		t.Fatalf("timestamps = %v/%v, want %v", state.CreatedAt, state.UpdatedAt, testTime)
	}
}

func TestEvolve_StatusTransitionedUpdatesStatusAndTime(t *testing.T) {
	state := Evolve(EmptyTicketState(), createdEvent())
	later := testTime.Add(time.Hour)

	state = Evolve(state, StatusTransitioned{
		EventMeta:  EventMeta{TicketID: "tck-1", OccurredAt: later},
		FromStatus: StatusNew,
		ToStatus:   StatusOpen,
	})

	if state.Status != StatusOpen {
		t.Fatalf("status = %s, want open", state.Status)
	}
	if !state.UpdatedAt.Equal(later) {
		t.Fatalf("updatedAt = %v, want %v", state.UpdatedAt, later)
	}
	if !state.CreatedAt.Equal(testTime) {
		t.Fatalf("createdAt changed to %v", state.CreatedAt)
	}
}

func TestEvolve_TicketAssignedSetsAssignee(t *testing.T) {
	state := Evolve(EmptyTicketState(), createdEvent())
	state = Evolve(state, TicketAssigned{
		EventMeta:  EventMeta{TicketID: "tck-1", OccurredAt: testTime},
		AssigneeID: "agent-3",
	})
	if state.AssigneeID == nil || *state.AssigneeID != "agent-3" {
		t.Fatalf("assignee = %v, want agent-3", state.AssigneeID)
	}
}

func TestEvolve_CommentAddedCountsAndFlipsFirstResponse(t *testing.T) {
	state := Evolve(EmptyTicketState(), createdEvent())

	state = Evolve(state, CommentAdded{
		EventMeta:      EventMeta{TicketID: "tck-1", OccurredAt: testTime},
		CommentID:      "cmt-1",
		Text:           "note to self",
		IsInternalNote: true,
	})
	if state.CommentCount != 1 {
		t.Fatalf("count = %d, want 1", state.CommentCount)
	}
	if state.HasFirstResponse {
		t.Fatal("internal note flipped hasFirstResponse")
	}

	state = Evolve(state, CommentAdded{
		EventMeta:       EventMeta{TicketID: "tck-1", OccurredAt: testTime},
		CommentID:       "cmt-2",
		Text:            "We are on it.",
		IsOutgoingReply: true,
	})
	if state.CommentCount != 2 {
		t.Fatalf("count = %d, want 2", state.CommentCount)
	}
	if !state.HasFirstResponse {
		t.Fatal("public reply did not flip hasFirstResponse")
	}
}

func TestEvolve_PriorityChanged(t *testing.T) {
	state := Evolve(EmptyTicketState(), createdEvent())
	state = Evolve(state, PriorityChanged{
		EventMeta:    EventMeta{TicketID: "tck-1", OccurredAt: testTime},
		FromPriority: PriorityMedium,
		ToPriority:   PriorityUrgent,
	})
	if state.Priority != PriorityUrgent {
		t.Fatalf("priority = %s, want urgent", state.Priority)
	}
}

func TestEvolve_ClosedAndReopenedBookkeeping(t *testing.T) {
	state := Evolve(EmptyTicketState(), createdEvent())
	closeTime := testTime.Add(2 * time.Hour)

	state = Evolve(state, TicketClosed{EventMeta: EventMeta{TicketID: "tck-1", OccurredAt: closeTime}})
	if state.ClosedAt == nil || !state.ClosedAt.Equal(closeTime) {
		t.Fatalf("closedAt = %v, want %v", state.ClosedAt, closeTime)
	}
	// Status moves via the accompanying StatusTransitioned, not here.
	if state.Status != StatusNew {
		t.Fatalf("TicketClosed changed status to %s", state.Status)
	}

	reopenTime := closeTime.Add(time.Hour)
	state = Evolve(state, TicketReopened{EventMeta: EventMeta{TicketID: "tck-1", OccurredAt: reopenTime}})
	if state.ClosedAt != nil {
		t.Fatalf("closedAt = %v after reopen, want nil", state.ClosedAt)
	}
	if state.ReopenedAt == nil || !state.ReopenedAt.Equal(reopenTime) {
		t.Fatalf("reopenedAt = %v, want %v", state.ReopenedAt, reopenTime)
	}
}

func TestEvolve_TicketMergedForcesClosedStatus(t *testing.T) {
	state := Evolve(EmptyTicketState(), createdEvent())
	state.Status = StatusOpen

	state = Evolve(state, TicketMerged{
		EventMeta:      EventMeta{TicketID: "tck-1", OccurredAt: testTime},
		TargetTicketID: "tck-2",
	})

	if state.MergedIntoTicketID == nil || *state.MergedIntoTicketID != "tck-2" {
		t.Fatalf("mergedInto = %v, want tck-2", state.MergedIntoTicketID)
	}
	if state.Status != StatusClosed {
		t.Fatalf("status = %s, want closed", state.Status)
	}
}

func TestEvolve_DoesNotMutateInput(t *testing.T) {
	state := Evolve(EmptyTicketState(), createdEvent())
	before := state

	_ = Evolve(state, TicketAssigned{
		EventMeta:  EventMeta{TicketID: "tck-1", OccurredAt: testTime},
		AssigneeID: "agent-3",
	})
	_ = Evolve(state, CommentAdded{
		EventMeta: EventMeta{TicketID: "tck-1", OccurredAt: testTime},
		CommentID: "cmt-1",
		Text:      "hello",
	})

	if state != before {
		t.Fatalf("input state mutated:\n got %+v\nwant %+v", state, before)
	}
}

func TestEvolveAll_IncrementalFoldEqualsWholeFold(t *testing.T) {
	events := []Event{
		createdEvent(),
		TicketAssigned{EventMeta: EventMeta{TicketID: "tck-1", OccurredAt: testTime}, AssigneeID: "agent-3"},
		StatusTransitioned{EventMeta: EventMeta{TicketID: "tck-1", OccurredAt: testTime}, FromStatus: StatusNew, ToStatus: StatusInProgress},
		CommentAdded{EventMeta: EventMeta{TicketID: "tck-1", OccurredAt: testTime}, CommentID: "cmt-1", Text: "on it"},
		StatusTransitioned{EventMeta: EventMeta{TicketID: "tck-1", OccurredAt: testTime}, FromStatus: StatusInProgress, ToStatus: StatusPendingCustomer},
	}

	whole := EvolveAll(EmptyTicketState(), events)

	incremental := EmptyTicketState()
	incremental = EvolveAll(incremental, events[:2])
	incremental = EvolveAll(incremental, events[2:4])
	incremental = EvolveAll(incremental, events[4:])

	if whole != incremental {
		t.Fatalf("fold mismatch:\nwhole       %+v\nincremental %+v", whole, incremental)
	}
}

func TestEvolveAll_EmptySequenceIsIdentity(t *testing.T) {
	state := Evolve(EmptyTicketState(), createdEvent())
	if got := EvolveAll(state, nil); got != state {
		t.Fatalf("EvolveAll(state, nil) = %+v, want unchanged", got)
	}
}

func TestReplay_FullLifecycle(t *testing.T) {
	ids := &seqIDs{}
	history := []Event{}
	state := EmptyTicketState()

	step := func(cmd Command) {
		t.Helper()
		decision := Decide(cmd, state, ids)
		if decision.IsErr() {
			t.Fatalf("command %s rejected: %v", cmd.CommandKind(), decision.UnwrapErr())
		}
		history = append(history, decision.Unwrap()...)
		state = EvolveAll(state, decision.Unwrap())
	}

	reporter := UserID("user-1")
	step(CreateTicket{CommandMeta: systemMeta(), Title: "Wrong item shipped", ReporterID: &reporter})
	ticketID := state.ID
	step(AssignTicket{CommandMeta: agentMeta(), TicketID: ticketID, AssigneeID: "agent-5"})
	step(AddComment{CommandMeta: agentMeta(), TicketID: ticketID, Text: "Shipping a replacement.", IsOutgoingReply: true})
	step(TransitionStatus{CommandMeta: agentMeta(), TicketID: ticketID, To: StatusPendingCustomer})
	step(AddComment{CommandMeta: systemMeta(), TicketID: ticketID, Text: "Replacement arrived, thanks!", IsFromCustomer: true})
	step(CloseTicket{CommandMeta: agentMeta(), TicketID: ticketID})

	replayed := EvolveAll(EmptyTicketState(), history)
	if replayed != state {
		t.Fatalf("replay mismatch:\nlive    %+v\nreplayed %+v", state, replayed)
	}
	if replayed.Status != StatusClosed {
		t.Fatalf("final status = %s, want closed", replayed.Status)
	}
	if replayed.CommentCount != 2 || !replayed.HasFirstResponse {
		t.Fatalf("comments = %d first=%v, want 2/true", replayed.CommentCount, replayed.HasFirstResponse)
	}
}
