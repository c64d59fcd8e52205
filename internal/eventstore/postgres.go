package eventstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk/internal/domain"
)

const uniqueViolation = "23505"

// PostgresStore persists event streams in the ticket_events table, one row
// per event with a per-ticket sequence number. The (ticket_id, seq) primary
// key doubles as the optimistic-concurrency guard: two writers racing on
// the same expected version collide on the same seq and one loses.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore builds a store on top of an existing pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Append writes the whole batch in one transaction.
func (s *PostgresStore) Append(ctx context.Context, ticketID domain.TicketID, expectedVersion int, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var current int
	const versionQuery = `SELECT COALESCE(MAX(seq), 0) FROM ticket_events WHERE ticket_id=$1`
	if err := tx.QueryRow(ctx, versionQuery, ticketID).Scan(&current); err != nil {
		return fmt.Errorf("read stream version: %w", err)
	}
	if current != expectedVersion {
		return ErrVersionConflict
	}

	const insert = `
        INSERT INTO ticket_events (ticket_id, seq, kind, payload, occurred_at)
        VALUES ($1,$2,$3,$4,$5)`
	for i, event := range events {
		kind, payload, err := Encode(event)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, insert, ticketID, expectedVersion+i+1, kind, payload, event.EventOccurredAt()); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return ErrVersionConflict
			}
			return fmt.Errorf("append event %s: %w", kind, err)
		}
	}

	return tx.Commit(ctx)
}

// Load replays the ticket's stream in sequence order.
func (s *PostgresStore) Load(ctx context.Context, ticketID domain.TicketID) ([]domain.Event, error) {
	const query = `
        SELECT kind, payload FROM ticket_events
        WHERE ticket_id=$1 ORDER BY seq ASC`
	rows, err := s.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, fmt.Errorf("load stream: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var (
			kind    domain.EventKind
			payload []byte
		)
		if err := rows.Scan(&kind, &payload); err != nil {
			return nil, err
		}
		event, err := Decode(kind, payload)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrTicketNotFound
	}
	return events, nil
}

var _ Store = (*PostgresStore)(nil)
