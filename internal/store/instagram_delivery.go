package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrDeliveryNotPending is returned when a terminal delivery is asked to transition again
var ErrDeliveryNotPending = errors.New("delivery is not pending")

// CreateInstagramDeliveryParams represents parameters for recording a pending delivery
type CreateInstagramDeliveryParams struct {
	DropID         uuid.UUID
	MessageID      uuid.UUID
	SenderID       string
	RecipientType  string
	RecipientValue string
}

const instagramDeliveryColumns = `id, drop_id, message_id, sender_id, recipient_type, recipient_value, delivery_status, poap_link, error_message, delivered_at, created_at, updated_at`

const sqlCreateInstagramDelivery = `
INSERT INTO instagram_deliveries (drop_id, message_id, sender_id, recipient_type, recipient_value, delivery_status)
VALUES ($1, $2, $3, $4, $5, 'pending')
RETURNING ` + instagramDeliveryColumns

// CreateInstagramDelivery records a pending delivery. Returns ErrDuplicate when the
// recipient or the message already has a delivery under the drop.
func (s *Store) CreateInstagramDelivery(ctx context.Context, params CreateInstagramDeliveryParams) (InstagramDelivery, error) {
	var delivery InstagramDelivery
	err := s.db.GetContext(ctx, &delivery, sqlCreateInstagramDelivery,
		params.DropID,
		params.MessageID,
		params.SenderID,
		params.RecipientType,
		params.RecipientValue)
	if err != nil {
		if isUniqueViolation(err) {
			return InstagramDelivery{}, ErrDuplicate
		}
		s.logger.Error(ctx, "failed to create instagram delivery", err)
		return InstagramDelivery{}, fmt.Errorf("failed to create instagram delivery: %w", err)
	}
	return delivery, nil
}

const sqlGetInstagramDeliveryByRecipient = `
SELECT ` + instagramDeliveryColumns + `
FROM instagram_deliveries
WHERE drop_id = $1 AND recipient_type = $2 AND recipient_value = $3
`

// GetInstagramDeliveryByRecipient finds the delivery of an identifier under a drop, whatever its status
func (s *Store) GetInstagramDeliveryByRecipient(ctx context.Context, dropID uuid.UUID, recipientType, recipientValue string) (InstagramDelivery, error) {
	var delivery InstagramDelivery
	err := s.db.GetContext(ctx, &delivery, sqlGetInstagramDeliveryByRecipient, dropID, recipientType, recipientValue)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InstagramDelivery{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get instagram delivery by recipient", err)
		return InstagramDelivery{}, fmt.Errorf("failed to get instagram delivery by recipient: %w", err)
	}
	return delivery, nil
}

const sqlGetDeliveredInstagramDeliveryBySender = `
SELECT ` + instagramDeliveryColumns + `
FROM instagram_deliveries
WHERE drop_id = $1 AND sender_id = $2 AND delivery_status = 'delivered'
ORDER BY delivered_at DESC
LIMIT 1
`

// GetDeliveredInstagramDeliveryBySender finds the most recent successful delivery a sender received under a drop
func (s *Store) GetDeliveredInstagramDeliveryBySender(ctx context.Context, dropID uuid.UUID, senderID string) (InstagramDelivery, error) {
	var delivery InstagramDelivery
	err := s.db.GetContext(ctx, &delivery, sqlGetDeliveredInstagramDeliveryBySender, dropID, senderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InstagramDelivery{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get instagram delivery by sender", err)
		return InstagramDelivery{}, fmt.Errorf("failed to get instagram delivery by sender: %w", err)
	}
	return delivery, nil
}

const sqlMarkInstagramDeliveryDelivered = `
UPDATE instagram_deliveries
SET delivery_status = 'delivered', poap_link = $2, delivered_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND delivery_status = 'pending'
RETURNING ` + instagramDeliveryColumns

// MarkInstagramDeliveryDelivered moves a pending delivery to delivered
func (s *Store) MarkInstagramDeliveryDelivered(ctx context.Context, deliveryID uuid.UUID, poapLink string) (InstagramDelivery, error) {
	var delivery InstagramDelivery
	err := s.db.GetContext(ctx, &delivery, sqlMarkInstagramDeliveryDelivered, deliveryID, poapLink)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InstagramDelivery{}, ErrDeliveryNotPending
		}
		s.logger.Error(ctx, "failed to mark instagram delivery delivered", err)
		return InstagramDelivery{}, fmt.Errorf("failed to mark instagram delivery delivered: %w", err)
	}
	return delivery, nil
}

const sqlMarkInstagramDeliveryFailed = `
UPDATE instagram_deliveries
SET delivery_status = 'failed', error_message = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND delivery_status = 'pending'
RETURNING ` + instagramDeliveryColumns

// MarkInstagramDeliveryFailed moves a pending delivery to failed
func (s *Store) MarkInstagramDeliveryFailed(ctx context.Context, deliveryID uuid.UUID, errorMessage string) (InstagramDelivery, error) {
	var delivery InstagramDelivery
	err := s.db.GetContext(ctx, &delivery, sqlMarkInstagramDeliveryFailed, deliveryID, errorMessage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return InstagramDelivery{}, ErrDeliveryNotPending
		}
		s.logger.Error(ctx, "failed to mark instagram delivery failed", err)
		return InstagramDelivery{}, fmt.Errorf("failed to mark instagram delivery failed: %w", err)
	}
	return delivery, nil
}

const sqlListInstagramDeliveriesByDrop = `
SELECT ` + instagramDeliveryColumns + `
FROM instagram_deliveries
WHERE drop_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// ListInstagramDeliveriesByDrop returns a page of deliveries for a drop, newest first
func (s *Store) ListInstagramDeliveriesByDrop(ctx context.Context, dropID uuid.UUID, limit, offset int) ([]InstagramDelivery, error) {
	deliveries := []InstagramDelivery{}
	err := s.db.SelectContext(ctx, &deliveries, sqlListInstagramDeliveriesByDrop, dropID, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list instagram deliveries", err)
		return nil, fmt.Errorf("failed to list instagram deliveries: %w", err)
	}
	return deliveries, nil
}

const sqlCountInstagramDeliveriesByDrop = `
SELECT COUNT(*)
FROM instagram_deliveries
WHERE drop_id = $1
`

// CountInstagramDeliveriesByDrop returns the number of deliveries recorded for a drop
func (s *Store) CountInstagramDeliveriesByDrop(ctx context.Context, dropID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountInstagramDeliveriesByDrop, dropID)
	if err != nil {
		s.logger.Error(ctx, "failed to count instagram deliveries", err)
		return 0, fmt.Errorf("failed to count instagram deliveries: %w", err)
	}
	return count, nil
}
