package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"poap-drops/internal/observability"
	"poap-drops/internal/store"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "X-Hub-Signature-256"
	signaturePrefix = "sha256="
	instagramObject = "instagram"
	maxWebhookBytes = 1 << 20
)

// HandleWebhookVerification answers the subscription handshake. Anything but
// a matching subscribe request gets an empty 200.
func (h *Handler) HandleWebhookVerification(c *gin.Context) {
	ctx := c.Request.Context()
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && h.cfg.VerifyToken != "" &&
		hmac.Equal([]byte(token), []byte(h.cfg.VerifyToken)) {
		h.logger.Info(ctx, "instagram webhook verified")
		c.String(http.StatusOK, challenge)
		return
	}

	h.logger.Warn(observability.WithFields(ctx,
		observability.Field{Key: "hub_mode", Value: mode},
	), "instagram webhook verification rejected")
	c.Status(http.StatusOK)
}

// HandleWebhook stores every inbound text message and processes story
// replies inline. It always answers 200 so Instagram does not retry.
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBytes))
	if err != nil {
		h.logger.Error(ctx, "failed to read webhook body", err)
		h.respond(c, false, "", "failed to read body")
		return
	}

	if h.cfg.AppSecret != "" && !validSignature(h.cfg.AppSecret, body, c.GetHeader(signatureHeader)) {
		h.logger.Warn(ctx, "instagram webhook signature mismatch")
		h.respond(c, false, "", "invalid signature")
		return
	}

	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.logger.WarnWithError(ctx, "failed to decode webhook payload", err)
		h.respond(c, false, "", "invalid payload")
		return
	}

	if payload.Object != instagramObject {
		h.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "object", Value: payload.Object},
		), "unsupported webhook object")
		h.respond(c, false, "", "unsupported object")
		return
	}

	stored := 0
	for _, entry := range payload.Entry {
		for _, event := range entry.Messaging {
			if !event.storable() {
				continue
			}
			if h.handleEvent(ctx, event) {
				stored++
			}
		}
	}

	h.respond(c, true, fmt.Sprintf("received %d new messages", stored), "")
}

// handleEvent stores one message and, for story replies, processes it against
// the story's active drop. Failures are logged and never reach sibling events.
func (h *Handler) handleEvent(ctx context.Context, event MessagingEvent) bool {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "instagram_message_mid", Value: event.Message.MID},
		observability.Field{Key: "instagram_sender_id", Value: event.Sender.ID},
	)

	msg, err := h.store.CreateInstagramMessage(ctx, event.toParams())
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			h.logger.Info(ctx, "duplicate instagram message, skipping")
			return false
		}
		h.logger.Error(ctx, "failed to store instagram message", err)
		return false
	}

	if msg.StoryID == nil {
		return true
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "instagram_story_id", Value: *msg.StoryID})

	drop, err := h.store.GetActiveDropByStoryID(ctx, *msg.StoryID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.logger.Debug(ctx, "no active drop for story")
			return true
		}
		h.logger.Error(ctx, "failed to look up drop for story", err)
		return true
	}

	details, err := h.store.GetDropDetails(ctx, drop)
	if err != nil {
		h.logger.Error(ctx, "failed to load drop details", err)
		return true
	}

	h.processor.ProcessMessage(ctx, msg, details)
	return true
}

func (h *Handler) respond(c *gin.Context, success bool, message, errMsg string) {
	c.JSON(http.StatusOK, WebhookResponse{
		Success:   success,
		Message:   message,
		Error:     errMsg,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

func validSignature(secret string, body []byte, header string) bool {
	if !strings.HasPrefix(header, signaturePrefix) {
		return false
	}
	got, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
