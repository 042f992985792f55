package handler

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"poap-drops/internal/instagram/processor"
	"poap-drops/internal/jobs"
	"poap-drops/internal/ledger"
	"poap-drops/internal/store"

	"github.com/google/uuid"
)

// MessageStore persists inbound messages and resolves their drops
type MessageStore interface {
	CreateInstagramMessage(ctx context.Context, params store.CreateInstagramMessageParams) (store.InstagramMessage, error)
	GetActiveDropByStoryID(ctx context.Context, storyID string) (store.Drop, error)
	GetDropByID(ctx context.Context, dropID uuid.UUID) (store.Drop, error)
	GetDropDetails(ctx context.Context, drop store.Drop) (store.DropDetails, error)
}

// MessageProcessor handles a stored story reply
type MessageProcessor interface {
	ProcessMessage(ctx context.Context, msg store.InstagramMessage, drop store.DropDetails) processor.ProcessResult
}

// BackfillEnqueuer schedules historical backfills
type BackfillEnqueuer interface {
	EnqueueInstagramBackfill(ctx context.Context, payload jobs.InstagramBackfillPayload) (string, error)
}

// DeliveryLister pages through a drop's deliveries
type DeliveryLister interface {
	ListByDrop(ctx context.Context, dropID uuid.UUID, limit, offset int) (ledger.Page, error)
}

// LiveFeed streams a drop's update payloads until ctx is done
type LiveFeed interface {
	Updates(ctx context.Context, dropID uuid.UUID) (<-chan []byte, error)
}
