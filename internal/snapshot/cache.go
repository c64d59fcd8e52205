// Package snapshot caches ticket state projections in Redis so hot tickets
// skip a full replay. The cache is advisory: losing it only costs an
// EvolveAll over the stream.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// Cache stores one record per ticket: the snapshot plus the stream version
// it was folded from.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

type record struct {
	Version int                `json:"version"`
	State   domain.TicketState `json:"state"`
}

// NewCache wraps a Redis client. A nil client disables caching; every Get
// misses and every Put is dropped.
func NewCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached snapshot and its version. ok is false on a miss
// or any Redis failure; callers fall back to replaying the stream.
func (c *Cache) Get(ctx context.Context, ticketID domain.TicketID) (domain.TicketState, int, bool) {
	if c == nil || c.client == nil {
		return domain.TicketState{}, 0, false
	}

	raw, err := c.client.Get(ctx, key(ticketID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("snapshot read failed", zap.String("ticket_id", string(ticketID)), zap.Error(err))
		}
		return domain.TicketState{}, 0, false
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		c.logger.Warn("snapshot decode failed", zap.String("ticket_id", string(ticketID)), zap.Error(err))
		return domain.TicketState{}, 0, false
	}
	return rec.State, rec.Version, true
}

// Put stores the snapshot at the given stream version. Failures are logged
// and swallowed; the event log remains the source of truth.
func (c *Cache) Put(ctx context.Context, ticketID domain.TicketID, state domain.TicketState, version int) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(record{Version: version, State: state})
	if err != nil {
		c.logger.Warn("snapshot encode failed", zap.String("ticket_id", string(ticketID)), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key(ticketID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("snapshot write failed", zap.String("ticket_id", string(ticketID)), zap.Error(err))
	}
}

func key(ticketID domain.TicketID) string {
	return "ticket:snapshot:" + string(ticketID)
}
