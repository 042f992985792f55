package processor

import (
	"context"
	"fmt"
	"time"

	"poap-drops/internal/observability"

	"github.com/google/uuid"
)

// BackfillResult summarises one backfill run
type BackfillResult struct {
	Processed int `json:"processed"`
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}

// ProcessHistoricalMessagesForDrop processes the story replies that arrived
// before the drop was configured, oldest first. Runs are not transactional:
// an interrupted run leaves the rest unprocessed for the next one.
func (p *Processor) ProcessHistoricalMessagesForDrop(ctx context.Context, dropID uuid.UUID) (BackfillResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "drop_id", Value: dropID.String()})

	var result BackfillResult

	drop, err := p.store.GetDropByID(ctx, dropID)
	if err != nil {
		return result, fmt.Errorf("failed to load drop: %w", err)
	}
	if !drop.IsActive || drop.InstagramStoryID == nil || *drop.InstagramStoryID == "" {
		p.logger.Info(ctx, "drop has no active story, skipping backfill")
		return result, nil
	}

	details, err := p.store.GetDropDetails(ctx, drop)
	if err != nil {
		return result, fmt.Errorf("failed to load drop details: %w", err)
	}

	messages, err := p.store.GetUnprocessedInstagramMessagesByStory(ctx, *drop.InstagramStoryID)
	if err != nil {
		return result, fmt.Errorf("failed to load unprocessed messages: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("backfilling %d instagram messages", len(messages)))

	for i, msg := range messages {
		if i > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(p.messageDelay):
			}
		}

		res := p.ProcessMessage(ctx, msg, details)
		switch {
		case !res.Processed:
			result.Failed++
			observability.RecordBackfillMessage("error")
		case res.Outcome == OutcomeDelivered:
			result.Processed++
			result.Delivered++
			observability.RecordBackfillMessage("delivered")
		case res.Outcome == OutcomeFailed:
			result.Processed++
			result.Failed++
			observability.RecordBackfillMessage("failed")
		default:
			result.Processed++
			observability.RecordBackfillMessage("skipped")
		}
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "processed", Value: result.Processed},
		observability.Field{Key: "delivered", Value: result.Delivered},
		observability.Field{Key: "failed", Value: result.Failed},
	), "backfill finished")

	return result, nil
}
