package poap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"poap-drops/internal/clients/redis"
)

// TokenCache stores the shared POAP token
type TokenCache interface {
	Get(ctx context.Context) (Token, bool, error)
	Set(ctx context.Context, token Token) error
}

// MemoryTokenCache keeps the token in process memory
type MemoryTokenCache struct {
	mu    sync.RWMutex
	token Token
}

func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{}
}

func (c *MemoryTokenCache) Get(_ context.Context) (Token, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.token.AccessToken != "", nil
}

func (c *MemoryTokenCache) Set(_ context.Context, token Token) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	return nil
}

// tokenKey is the Redis key shared by every instance
const tokenKey = "poap:access_token"

// RedisTokenCache shares the token across instances through Redis
type RedisTokenCache struct {
	client *redis.Client
}

func NewRedisTokenCache(client *redis.Client) *RedisTokenCache {
	return &RedisTokenCache{client: client}
}

func (c *RedisTokenCache) Get(ctx context.Context) (Token, bool, error) {
	raw, err := c.client.Get(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, redis.ErrCacheMiss) {
			return Token{}, false, nil
		}
		return Token{}, false, fmt.Errorf("failed to read token: %w", err)
	}

	var token Token
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		return Token{}, false, fmt.Errorf("failed to decode token: %w", err)
	}
	return token, true, nil
}

func (c *RedisTokenCache) Set(ctx context.Context, token Token) error {
	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	return c.client.Set(ctx, tokenKey, string(raw), ttl)
}
