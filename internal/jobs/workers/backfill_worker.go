package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"poap-drops/internal/instagram/processor"
	"poap-drops/internal/jobs"
	"poap-drops/internal/observability"
	"poap-drops/internal/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

//go:generate mockgen -source=backfill_worker.go -destination=mocks_test.go -package=workers

// Backfiller runs a historical backfill for one drop
type Backfiller interface {
	ProcessHistoricalMessagesForDrop(ctx context.Context, dropID uuid.UUID) (processor.BackfillResult, error)
}

// BackfillWorker handles instagram backfill jobs
type BackfillWorker struct {
	backfiller Backfiller
	logger     *observability.Logger
}

// NewBackfillWorker creates a new backfill worker
func NewBackfillWorker(backfiller Backfiller, logger *observability.Logger) *BackfillWorker {
	return &BackfillWorker{
		backfiller: backfiller,
		logger:     logger,
	}
}

// ProcessBackfillTask processes a backfill task (for Asynq)
func (w *BackfillWorker) ProcessBackfillTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.InstagramBackfillPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal backfill job payload", err)
		return fmt.Errorf("failed to unmarshal backfill job payload: %w: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "drop_id", Value: payload.DropID.String()})

	result, err := w.backfiller.ProcessHistoricalMessagesForDrop(ctx, payload.DropID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			w.logger.Warn(ctx, "backfill requested for unknown drop")
			return fmt.Errorf("drop not found: %w", asynq.SkipRetry)
		}
		w.logger.Error(ctx, "backfill failed", err)
		return fmt.Errorf("backfill failed: %w", err)
	}

	w.logger.Info(ctx, fmt.Sprintf("backfill job done: processed=%d delivered=%d failed=%d",
		result.Processed, result.Delivered, result.Failed))
	return nil
}
