package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"poap-drops/internal/clients/kafka"
	"poap-drops/internal/observability"
	"poap-drops/internal/store"

	"github.com/google/uuid"
)

// Drop update types pushed to live dashboards
const (
	UpdateTypeCollector      = "collector"
	UpdateTypeDeliveryFailed = "delivery_failed"
)

// Delivery event types written to the event stream
const (
	EventDeliveryDelivered = "delivery.delivered"
	EventDeliveryFailed    = "delivery.failed"
)

// PubSub publishes live updates
type PubSub interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	IsEnabled() bool
}

// EventProducer writes events to the delivery stream
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// DropUpdate is the payload streamed to dashboards watching a drop
type DropUpdate struct {
	DropID    string `json:"drop_id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

// DropChannel returns the pub/sub channel carrying a drop's live updates
func DropChannel(dropID uuid.UUID) string {
	return fmt.Sprintf("drop-updates:%s", dropID)
}

// Publisher fans drop activity out to live dashboards and the delivery event
// stream. Every method is best-effort: failures are logged, never returned.
type Publisher struct {
	pubsub   PubSub
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a publisher. Either sink may be nil.
func NewPublisher(pubsub PubSub, producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		pubsub:   pubsub,
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// EmitDropUpdate notifies dashboards watching dropID
func (p *Publisher) EmitDropUpdate(ctx context.Context, dropID uuid.UUID, updateType string) {
	if p.pubsub == nil || !p.pubsub.IsEnabled() {
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "drop_id", Value: dropID.String()},
		observability.Field{Key: "update_type", Value: updateType},
	)

	payload, err := json.Marshal(DropUpdate{
		DropID:    dropID.String(),
		Type:      updateType,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to marshal drop update", err)
		return
	}

	if err := p.pubsub.Publish(ctx, DropChannel(dropID), payload); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish drop update", err)
	}
}

// PublishDeliveryEvent writes a delivery transition to the event stream
func (p *Publisher) PublishDeliveryEvent(ctx context.Context, eventType string, delivery store.InstagramDelivery) {
	if p.producer == nil {
		return
	}

	data := map[string]interface{}{
		"delivery_id":     delivery.ID.String(),
		"message_id":      delivery.MessageID.String(),
		"sender_id":       delivery.SenderID,
		"recipient_type":  delivery.RecipientType,
		"recipient_value": delivery.RecipientValue,
		"delivery_status": delivery.DeliveryStatus,
	}
	if delivery.PoapLink != nil {
		data["poap_link"] = *delivery.PoapLink
	}
	if delivery.ErrorMessage != nil {
		data["error_message"] = *delivery.ErrorMessage
	}

	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		DropID:    delivery.DropID.String(),
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}

	if err := p.producer.PublishEvent(ctx, event); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish delivery event", err)
	}
}
