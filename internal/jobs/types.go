package jobs

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeInstagramBackfill = "instagram:backfill"
)

// Queue names
const (
	QueueHigh   = "high"
	QueueMedium = "medium"
	QueueLow    = "low"
)

// backfillUniqueTTL collapses repeated backfill requests for one drop
const backfillUniqueTTL = time.Minute

// InstagramBackfillPayload identifies the drop whose historical replies get processed
type InstagramBackfillPayload struct {
	DropID uuid.UUID `json:"drop_id"`
}

// NewInstagramBackfillTask creates a backfill task. Only one task per drop can
// be pending within backfillUniqueTTL.
func NewInstagramBackfillTask(payload InstagramBackfillPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeInstagramBackfill, data,
		asynq.Queue(QueueMedium),
		asynq.MaxRetry(3),
		asynq.Unique(backfillUniqueTTL),
	), nil
}
