package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	DB() *sqlx.DB
	Close() error

	// Drop operations
	GetDropByID(ctx context.Context, dropID uuid.UUID) (Drop, error)
	GetActiveDropByStoryID(ctx context.Context, storyID string) (Drop, error)
	GetInstagramAccountByID(ctx context.Context, accountID uuid.UUID) (InstagramAccount, error)
	GetDropMessages(ctx context.Context, dropID uuid.UUID) (InstagramDropMessages, error)
	GetDropDetails(ctx context.Context, drop Drop) (DropDetails, error)

	// Instagram message operations
	CreateInstagramMessage(ctx context.Context, params CreateInstagramMessageParams) (InstagramMessage, error)
	UpdateInstagramMessageUsername(ctx context.Context, messageID uuid.UUID, username string) error
	MarkInstagramMessageProcessed(ctx context.Context, messageID uuid.UUID, dropID uuid.UUID) error
	GetUnprocessedInstagramMessagesByStory(ctx context.Context, storyID string) ([]InstagramMessage, error)

	// Instagram delivery operations
	CreateInstagramDelivery(ctx context.Context, params CreateInstagramDeliveryParams) (InstagramDelivery, error)
	GetInstagramDeliveryByRecipient(ctx context.Context, dropID uuid.UUID, recipientType, recipientValue string) (InstagramDelivery, error)
	GetDeliveredInstagramDeliveryBySender(ctx context.Context, dropID uuid.UUID, senderID string) (InstagramDelivery, error)
	MarkInstagramDeliveryDelivered(ctx context.Context, deliveryID uuid.UUID, poapLink string) (InstagramDelivery, error)
	MarkInstagramDeliveryFailed(ctx context.Context, deliveryID uuid.UUID, errorMessage string) (InstagramDelivery, error)
	ListInstagramDeliveriesByDrop(ctx context.Context, dropID uuid.UUID, limit, offset int) ([]InstagramDelivery, error)
	CountInstagramDeliveriesByDrop(ctx context.Context, dropID uuid.UUID) (int, error)
}

// Ensure Store implements Storer
var _ Storer = (*Store)(nil)
