// Package cache fronts the recipient directory with a Redis read-through cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"coachdesk/internal/domain/notification"
	"coachdesk/internal/pkg/config"
	"coachdesk/internal/pkg/errs"
	"coachdesk/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 5 * time.Minute

	keyPrefix = "coachdesk:recipient:"
)

type cachedRecipient struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Directory is a shared.RecipientDirectory that consults Redis before the
// wrapped directory. Lookup failures are never cached, and Redis being down
// only costs the cache, never the lookup.
type Directory struct {
	next   shared.RecipientDirectory
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewDirectory(next shared.RecipientDirectory, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *Directory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Directory{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "directory_cache")),
	}
}

// NewClient returns nil when REDIS_URL is unset.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "invalid REDIS_URL")
	}
	return redis.NewClient(opt), nil
}

func (d *Directory) Resolve(ctx context.Context, recipientID string) (notification.Recipient, error) {
	key := keyPrefix + recipientID

	raw, err := d.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var c cachedRecipient
		if jsonErr := json.Unmarshal(raw, &c); jsonErr == nil {
			return notification.Recipient{ID: recipientID, Email: c.Email, DisplayName: c.DisplayName}, nil
		}
		d.logger.Warn("discarding unreadable cache entry", slog.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		d.logger.Warn("directory cache unavailable", slog.Any("error", err))
	}

	r, err := d.next.Resolve(ctx, recipientID)
	if err != nil {
		return notification.Recipient{}, err
	}

	payload, _ := json.Marshal(cachedRecipient{Email: r.Email, DisplayName: r.DisplayName})
	if err := d.rdb.Set(ctx, key, payload, d.ttl).Err(); err != nil {
		d.logger.Warn("failed to populate directory cache", slog.Any("error", err))
	}
	return r, nil
}
