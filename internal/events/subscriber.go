package events

import (
	"context"
	"errors"

	"poap-drops/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLiveUpdatesDisabled is returned when no pub/sub backend is configured
var ErrLiveUpdatesDisabled = errors.New("live updates disabled")

// PubSubSubscriber opens pub/sub subscriptions
type PubSubSubscriber interface {
	Subscribe(ctx context.Context, channels ...string) (*redis.PubSub, error)
	IsEnabled() bool
}

// Subscriber turns a drop's pub/sub channel into a stream of raw update payloads
type Subscriber struct {
	pubsub PubSubSubscriber
	logger *observability.Logger
}

func NewSubscriber(pubsub PubSubSubscriber, logger *observability.Logger) *Subscriber {
	return &Subscriber{pubsub: pubsub, logger: logger}
}

// Updates streams payloads published for dropID until ctx is done. The
// returned channel is closed when the subscription ends.
func (s *Subscriber) Updates(ctx context.Context, dropID uuid.UUID) (<-chan []byte, error) {
	if s.pubsub == nil || !s.pubsub.IsEnabled() {
		return nil, ErrLiveUpdatesDisabled
	}

	sub, err := s.pubsub.Subscribe(ctx, DropChannel(dropID))
	if err != nil {
		return nil, err
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					s.logger.Warn(ctx, "drop update subscription closed")
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
