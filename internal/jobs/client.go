package jobs

import (
	"context"
	"errors"
	"fmt"

	"poap-drops/internal/config"
	"poap-drops/internal/observability"

	"github.com/hibiken/asynq"
)

// ErrBackfillAlreadyQueued is returned when a backfill for the drop is still pending
var ErrBackfillAlreadyQueued = errors.New("backfill already queued")

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(opt asynq.RedisConnOpt, logger *observability.Logger) *Client {
	return &Client{
		client: asynq.NewClient(opt),
		logger: logger,
	}
}

// RedisOpt builds the asynq connection options for cfg
func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueInstagramBackfill enqueues a historical backfill for a drop
func (c *Client) EnqueueInstagramBackfill(ctx context.Context, payload InstagramBackfillPayload) (string, error) {
	task, err := NewInstagramBackfillTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create backfill task", err)
		return "", fmt.Errorf("failed to create backfill task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			return "", ErrBackfillAlreadyQueued
		}
		c.logger.Error(ctx, "failed to enqueue backfill task", err)
		return "", fmt.Errorf("failed to enqueue backfill task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued backfill task: %s (queue: %s)", info.ID, info.Queue))
	return info.ID, nil
}
