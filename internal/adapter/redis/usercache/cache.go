// Package usercache is a Redis cache-aside layer in front of the user store.
// Redis failures are logged and fall through to the store.
package usercache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/termstamps/internal/domain"
)

const keyPrefix = "termstamps:user:"

type userStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
}

// Cache serves user lookups from Redis and fills it from the store on miss.
// Not-found results are not cached.
type Cache struct {
	client redis.Cmdable
	next   userStore
	ttl    time.Duration
	log    *slog.Logger
}

// New creates a Cache.
func New(client redis.Cmdable, next userStore, ttl time.Duration, log *slog.Logger) *Cache {
	return &Cache{
		client: client,
		next:   next,
		ttl:    ttl,
		log:    log.With("component", "usercache"),
	}
}

func key(id int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, id)
}

// GetByID returns the user from the cache or the store.
func (c *Cache) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	raw, err := c.client.Get(ctx, key(id)).Bytes()
	switch {
	case err == nil:
		var u domain.User
		if jsonErr := json.Unmarshal(raw, &u); jsonErr == nil {
			return &u, nil
		}
		c.log.WarnContext(ctx, "drop undecodable cache entry", slog.Int64("user_id", id))
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "cache get failed", slog.Int64("user_id", id), slog.String("error", err.Error()))
	}

	u, err := c.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, []domain.User{*u})
	return u, nil
}

// GetByIDs returns the users that exist among ids. Cached users are served
// from Redis; the rest are fetched from the store in one call.
func (c *Cache) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = key(id)
	}

	users := make([]domain.User, 0, len(ids))
	missing := ids

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.log.WarnContext(ctx, "cache mget failed", slog.String("error", err.Error()))
	} else {
		missing = make([]int64, 0, len(ids))
		for i, v := range vals {
			s, ok := v.(string)
			if !ok {
				missing = append(missing, ids[i])
				continue
			}
			var u domain.User
			if err := json.Unmarshal([]byte(s), &u); err != nil {
				missing = append(missing, ids[i])
				continue
			}
			users = append(users, u)
		}
	}

	if len(missing) == 0 {
		return users, nil
	}

	fetched, err := c.next.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	c.store(ctx, fetched)

	return append(users, fetched...), nil
}

func (c *Cache) store(ctx context.Context, users []domain.User) {
	if len(users) == 0 {
		return
	}

	_, err := c.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, u := range users {
			b, err := json.Marshal(u)
			if err != nil {
				return err
			}
			p.Set(ctx, key(u.ID), b, c.ttl)
		}
		return nil
	})
	if err != nil {
		c.log.WarnContext(ctx, "cache fill failed", slog.Int("count", len(users)), slog.String("error", err.Error()))
	}
}

// Ping checks the Redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
