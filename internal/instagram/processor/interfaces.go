package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"poap-drops/internal/clients/poap"
	"poap-drops/internal/ledger"
	"poap-drops/internal/recipient"
	"poap-drops/internal/store"

	"github.com/google/uuid"
)

// MessageStore defines the database operations required by Processor
type MessageStore interface {
	GetDropByID(ctx context.Context, dropID uuid.UUID) (store.Drop, error)
	GetDropDetails(ctx context.Context, drop store.Drop) (store.DropDetails, error)
	UpdateInstagramMessageUsername(ctx context.Context, messageID uuid.UUID, username string) error
	MarkInstagramMessageProcessed(ctx context.Context, messageID uuid.UUID, dropID uuid.UUID) error
	GetUnprocessedInstagramMessagesByStory(ctx context.Context, storyID string) ([]store.InstagramMessage, error)
}

// DeliveryLedger records POAP deliveries
type DeliveryLedger interface {
	FindExisting(ctx context.Context, dropID uuid.UUID, recipientType recipient.Type, value string) (*store.InstagramDelivery, error)
	FindExistingForSender(ctx context.Context, dropID uuid.UUID, senderID string) (*store.InstagramDelivery, error)
	Create(ctx context.Context, params ledger.CreateParams) (store.InstagramDelivery, error)
	MarkDelivered(ctx context.Context, deliveryID uuid.UUID, poapLink string) (store.InstagramDelivery, error)
	MarkFailed(ctx context.Context, deliveryID uuid.UUID, errorMessage string) (store.InstagramDelivery, error)
}

// ClaimClient mints POAPs
type ClaimClient interface {
	DeliverPOAP(ctx context.Context, eventID int64, secretCode string, r recipient.Recipient, sendEmail bool) poap.DeliveryResult
}

// OwnershipChecker tells whether an identifier already holds an event's POAP
type OwnershipChecker interface {
	HasPOAP(ctx context.Context, recipientValue string, eventID int64) (bool, error)
}

// UserLookup resolves Instagram handles
type UserLookup interface {
	GetUsername(ctx context.Context, accessToken, userID string) (string, error)
}

// Replier sends replies to Instagram users
type Replier interface {
	Send(ctx context.Context, accessToken, recipientID, text string) bool
}

// EventEmitter notifies dashboards and the delivery event stream
type EventEmitter interface {
	EmitDropUpdate(ctx context.Context, dropID uuid.UUID, updateType string)
	PublishDeliveryEvent(ctx context.Context, eventType string, delivery store.InstagramDelivery)
}

// AlertNotifier pages the operator
type AlertNotifier interface {
	NotifyPoapsExhausted(ctx context.Context, drop store.Drop)
}
