package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const counterTTL = 5 * time.Minute

// Counters is a read-through cache for per-user counts that are expensive
// to derive on every profile read (pending friend requests, unread
// notifications). A nil *Counters is valid and disables caching, so code
// paths never need to branch on whether Redis is configured.
type Counters struct {
	client *redis.Client
}

func NewCounters(client *redis.Client) *Counters {
	if client == nil {
		return nil
	}
	return &Counters{client: client}
}

func PendingRequestsKey(userID string) string {
	return fmt.Sprintf("qb:pending_requests:%s", userID)
}

func UnreadNotificationsKey(userID string) string {
	return fmt.Sprintf("qb:unread_notifications:%s", userID)
}

// Get returns the cached value and whether it was present. Cache errors
// are treated as misses.
func (c *Counters) Get(ctx context.Context, key string) (int64, bool) {
	if c == nil {
		return 0, false
	}
	v, err := c.client.Get(ctx, key).Int64()
	if err != nil {
		return 0, false
	}
	return v, true
}

func (c *Counters) Set(ctx context.Context, key string, value int64) {
	if c == nil {
		return
	}
	c.client.Set(ctx, key, value, counterTTL)
}

// Invalidate drops a cached count after a write that changes it. The next
// read repopulates from the database, which is the source of truth.
func (c *Counters) Invalidate(ctx context.Context, key string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, key)
}
