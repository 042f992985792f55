package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redisclient "poap-drops/internal/clients/redis"
	"poap-drops/internal/observability"

	"github.com/redis/go-redis/v9"
)

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// window records request timestamps per key
type window interface {
	// Count drops entries older than since and returns the remaining count and oldest entry
	Count(ctx context.Context, key string, since time.Time) (int, time.Time, error)
	Add(ctx context.Context, key string, at time.Time, ttl time.Duration) error
}

// Service rate limits operator API requests over a sliding one-minute window
type Service struct {
	window window
	limit  int
	period time.Duration
	logger *observability.Logger
	now    func() time.Time
}

// NewService creates a rate limiter allowing limit requests per minute per key.
// A disabled Redis client turns every check into an allow.
func NewService(client *redisclient.Client, limit int, logger *observability.Logger) *Service {
	s := &Service{
		limit:  limit,
		period: time.Minute,
		logger: logger,
		now:    time.Now,
	}
	if client.IsEnabled() {
		s.window = redisWindow{client: client.GetClient()}
	}
	return s
}

// CheckRateLimit checks if key is within its rate limit and records the request when it is
func (s *Service) CheckRateLimit(ctx context.Context, key string) (RateLimitResult, error) {
	now := s.now()
	if s.window == nil || s.limit <= 0 {
		return RateLimitResult{Allowed: true, Limit: s.limit, Remaining: s.limit, ResetAt: now.Add(s.period)}, nil
	}

	redisKey := fmt.Sprintf("rl:operator:%s", key)
	count, oldest, err := s.window.Count(ctx, redisKey, now.Add(-s.period))
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if count >= s.limit {
		resetAt := now.Add(s.period)
		if !oldest.IsZero() {
			resetAt = oldest.Add(s.period)
		}
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return RateLimitResult{
			Allowed:      false,
			Limit:        s.limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	// Keys outlive the window so the oldest entry is still there to compute Retry-After
	if err := s.window.Add(ctx, redisKey, now, 2*s.period); err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to add request: %w", err)
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - count - 1,
		ResetAt:   now.Add(s.period),
	}, nil
}

// redisWindow keeps request timestamps in a sorted set scored by unix millis
type redisWindow struct {
	client *redis.Client
}

func (w redisWindow) Count(ctx context.Context, key string, since time.Time) (int, time.Time, error) {
	if err := w.client.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(since.UnixMilli(), 10)).Err(); err != nil {
		return 0, time.Time{}, err
	}

	count, err := w.client.ZCard(ctx, key).Result()
	if err != nil {
		return 0, time.Time{}, err
	}
	if count == 0 {
		return 0, time.Time{}, nil
	}

	oldest, err := w.client.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil || len(oldest) == 0 {
		return int(count), time.Time{}, nil
	}
	return int(count), time.UnixMilli(int64(oldest[0].Score)), nil
}

func (w redisWindow) Add(ctx context.Context, key string, at time.Time, ttl time.Duration) error {
	ms := at.UnixMilli()
	pipe := w.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(ms), Member: strconv.FormatInt(at.UnixNano(), 10)})
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}
