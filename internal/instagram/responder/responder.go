package responder

import (
	"context"
	"strings"

	"poap-drops/internal/observability"
)

// RecipientPlaceholder is replaced by the submitted identifier in reply templates
const RecipientPlaceholder = "{{recipient}}"

// GenericFailureMessage is sent when a claim fails for a reason the user cannot act on
const GenericFailureMessage = "Sorry, something went wrong while sending your POAP. Please try again later."

// MessageSender delivers a direct message through the Graph API
type MessageSender interface {
	SendMessage(ctx context.Context, accessToken, recipientID, text string) error
}

// Responder replies to Instagram users. Replies are best-effort.
type Responder struct {
	sender MessageSender
	logger *observability.Logger
}

func New(sender MessageSender, logger *observability.Logger) *Responder {
	return &Responder{sender: sender, logger: logger}
}

// Send delivers text to recipientID and reports whether it went through.
// Failures are logged and never returned.
func (r *Responder) Send(ctx context.Context, accessToken, recipientID, text string) bool {
	if err := r.sender.SendMessage(ctx, accessToken, recipientID, text); err != nil {
		r.logger.Error(observability.WithFields(ctx,
			observability.Field{Key: "instagram_recipient_id", Value: recipientID},
		), "failed to send instagram reply", err)
		return false
	}
	return true
}

// Render fills every recipient placeholder of template with value
func Render(template, value string) string {
	return strings.ReplaceAll(template, RecipientPlaceholder, value)
}
