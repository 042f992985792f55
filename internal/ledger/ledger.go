// Package ledger records one POAP delivery per identifier and per claiming user.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"poap-drops/internal/recipient"
	"poap-drops/internal/store"

	"github.com/google/uuid"
)

var (
	// ErrAlreadyClaimed is returned when a concurrent request recorded the same delivery first
	ErrAlreadyClaimed = errors.New("already claimed")
	// ErrInvalidTransition is returned when a delivery already reached a terminal status
	ErrInvalidTransition = errors.New("invalid delivery status transition")
)

// DeliveryStore is the persistence the ledger relies on
type DeliveryStore interface {
	CreateInstagramDelivery(ctx context.Context, params store.CreateInstagramDeliveryParams) (store.InstagramDelivery, error)
	GetInstagramDeliveryByRecipient(ctx context.Context, dropID uuid.UUID, recipientType, recipientValue string) (store.InstagramDelivery, error)
	GetDeliveredInstagramDeliveryBySender(ctx context.Context, dropID uuid.UUID, senderID string) (store.InstagramDelivery, error)
	MarkInstagramDeliveryDelivered(ctx context.Context, deliveryID uuid.UUID, poapLink string) (store.InstagramDelivery, error)
	MarkInstagramDeliveryFailed(ctx context.Context, deliveryID uuid.UUID, errorMessage string) (store.InstagramDelivery, error)
	ListInstagramDeliveriesByDrop(ctx context.Context, dropID uuid.UUID, limit, offset int) ([]store.InstagramDelivery, error)
	CountInstagramDeliveriesByDrop(ctx context.Context, dropID uuid.UUID) (int, error)
}

// CreateParams describes a new pending delivery
type CreateParams struct {
	DropID    uuid.UUID
	MessageID uuid.UUID
	SenderID  string
	Recipient recipient.Recipient
}

// Ledger is the delivery record of every drop. Storage unique constraints are
// what keep deliveries at-most-once; the lookups only short-circuit the common case.
type Ledger struct {
	store DeliveryStore
}

func New(store DeliveryStore) *Ledger {
	return &Ledger{store: store}
}

// FindExisting returns the delivery recorded for an identifier under a drop, or nil
func (l *Ledger) FindExisting(ctx context.Context, dropID uuid.UUID, recipientType recipient.Type, value string) (*store.InstagramDelivery, error) {
	delivery, err := l.store.GetInstagramDeliveryByRecipient(ctx, dropID, string(recipientType), value)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find delivery by recipient: %w", err)
	}
	return &delivery, nil
}

// FindExistingForSender returns the most recent successful delivery of a sender under a drop, or nil
func (l *Ledger) FindExistingForSender(ctx context.Context, dropID uuid.UUID, senderID string) (*store.InstagramDelivery, error) {
	delivery, err := l.store.GetDeliveredInstagramDeliveryBySender(ctx, dropID, senderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find delivery by sender: %w", err)
	}
	return &delivery, nil
}

// Create records a pending delivery. Losing a uniqueness race yields ErrAlreadyClaimed.
func (l *Ledger) Create(ctx context.Context, params CreateParams) (store.InstagramDelivery, error) {
	delivery, err := l.store.CreateInstagramDelivery(ctx, store.CreateInstagramDeliveryParams{
		DropID:         params.DropID,
		MessageID:      params.MessageID,
		SenderID:       params.SenderID,
		RecipientType:  string(params.Recipient.Type),
		RecipientValue: params.Recipient.Value,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return store.InstagramDelivery{}, ErrAlreadyClaimed
		}
		return store.InstagramDelivery{}, fmt.Errorf("failed to create delivery: %w", err)
	}
	return delivery, nil
}

// MarkDelivered moves a pending delivery to delivered
func (l *Ledger) MarkDelivered(ctx context.Context, deliveryID uuid.UUID, poapLink string) (store.InstagramDelivery, error) {
	delivery, err := l.store.MarkInstagramDeliveryDelivered(ctx, deliveryID, poapLink)
	if err != nil {
		if errors.Is(err, store.ErrDeliveryNotPending) {
			return store.InstagramDelivery{}, ErrInvalidTransition
		}
		return store.InstagramDelivery{}, fmt.Errorf("failed to mark delivery delivered: %w", err)
	}
	return delivery, nil
}

// MarkFailed moves a pending delivery to failed
func (l *Ledger) MarkFailed(ctx context.Context, deliveryID uuid.UUID, errorMessage string) (store.InstagramDelivery, error) {
	delivery, err := l.store.MarkInstagramDeliveryFailed(ctx, deliveryID, errorMessage)
	if err != nil {
		if errors.Is(err, store.ErrDeliveryNotPending) {
			return store.InstagramDelivery{}, ErrInvalidTransition
		}
		return store.InstagramDelivery{}, fmt.Errorf("failed to mark delivery failed: %w", err)
	}
	return delivery, nil
}

// Page is one page of a drop's deliveries
type Page struct {
	Deliveries []store.InstagramDelivery `json:"deliveries"`
	Total      int                       `json:"total"`
	Limit      int                       `json:"limit"`
	Offset     int                       `json:"offset"`
}

// ListByDrop returns a page of deliveries for a drop, newest first
func (l *Ledger) ListByDrop(ctx context.Context, dropID uuid.UUID, limit, offset int) (Page, error) {
	deliveries, err := l.store.ListInstagramDeliveriesByDrop(ctx, dropID, limit, offset)
	if err != nil {
		return Page{}, fmt.Errorf("failed to list deliveries: %w", err)
	}

	total, err := l.store.CountInstagramDeliveriesByDrop(ctx, dropID)
	if err != nil {
		return Page{}, fmt.Errorf("failed to count deliveries: %w", err)
	}

	return Page{
		Deliveries: deliveries,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}
