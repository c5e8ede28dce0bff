package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RateLimitStore is a fixed-window request counter shared by every API
// instance. It satisfies echo's middleware.RateLimiterStore.
//
// Key format: ratelimit:<identifier>:<window_start_unix>
type RateLimitStore struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
	log    zerolog.Logger
	now    func() time.Time
}

// NewRateLimitStore allows limit requests per identifier in each window.
func NewRateLimitStore(client redis.Cmdable, limit int, window time.Duration, log zerolog.Logger) *RateLimitStore {
	if limit <= 0 {
		limit = 1
	}
	if window <= 0 {
		window = time.Second
	}
	return &RateLimitStore{client: client, limit: int64(limit), window: window, log: log, now: time.Now}
}

// Allow counts the request against the identifier's current window. Redis
// failures let the request through.
func (s *RateLimitStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	key := s.key(identifier)

	pipe := s.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warn().Err(err).Str("identifier", identifier).Msg("rate limit check failed, allowing request")
		return true, nil
	}

	return count.Val() <= s.limit, nil
}

func (s *RateLimitStore) key(identifier string) string {
	start := s.now().Truncate(s.window)
	return fmt.Sprintf("ratelimit:%s:%d", identifier, start.Unix())
}
