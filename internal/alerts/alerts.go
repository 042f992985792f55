package alerts

import (
	"context"
	"fmt"
	"html"
	"time"

	"poap-drops/internal/observability"
	"poap-drops/internal/store"
)

// dedupeWindow bounds how often one drop can page the operator
const dedupeWindow = 24 * time.Hour

// Locker claims a key once per window
type Locker interface {
	SetNX(ctx context.Context, key, value string, expiration time.Duration) (bool, error)
}

// Mailer sends an email
type Mailer interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// Notifier emails the operator when a drop runs out of mintable codes
type Notifier struct {
	locker    Locker
	mailer    Mailer
	sender    string
	recipient string
	logger    *observability.Logger
}

// NewNotifier creates a notifier. A nil mailer disables sending; a nil locker disables deduplication.
func NewNotifier(locker Locker, mailer Mailer, sender, recipient string, logger *observability.Logger) *Notifier {
	return &Notifier{
		locker:    locker,
		mailer:    mailer,
		sender:    sender,
		recipient: recipient,
		logger:    logger,
	}
}

func exhaustedKey(drop store.Drop) string {
	return fmt.Sprintf("alerts:poaps-exhausted:%s", drop.ID)
}

// NotifyPoapsExhausted alerts the operator at most once per drop per window
func (n *Notifier) NotifyPoapsExhausted(ctx context.Context, drop store.Drop) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "drop_id", Value: drop.ID.String()},
		observability.Field{Key: "poap_event_id", Value: drop.PoapEventID},
	)

	if n.mailer == nil {
		n.logger.Warn(ctx, "drop ran out of POAPs, alert email not configured")
		return
	}

	if n.locker != nil {
		first, err := n.locker.SetNX(ctx, exhaustedKey(drop), time.Now().UTC().Format(time.RFC3339), dedupeWindow)
		if err != nil {
			// Fall through and alert without deduplication
			n.logger.WarnWithError(ctx, "failed to deduplicate exhaustion alert", err)
		} else if !first {
			return
		}
	}

	subject := fmt.Sprintf("POAPs exhausted for drop %q", drop.Name)
	body := fmt.Sprintf(
		"<p>The drop <strong>%s</strong> (POAP event %d) has no unclaimed codes left.</p>"+
			"<p>Replies keep failing until more codes are added to the event.</p>",
		html.EscapeString(drop.Name), drop.PoapEventID,
	)

	if _, err := n.mailer.SendEmail(ctx, n.sender, n.recipient, subject, body); err != nil {
		n.logger.Error(ctx, "failed to send exhaustion alert", err)
		return
	}
	n.logger.Info(ctx, "sent exhaustion alert")
}
