package handler

import (
	"context"
	"errors"
	"time"

	"poap-drops/internal/apierrors"
	"poap-drops/internal/events"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	liveWriteWait  = 10 * time.Second
	livePingPeriod = 30 * time.Second
)

// HandleLiveUpdates streams a drop's update events over a WebSocket
func (h *Handler) HandleLiveUpdates(c *gin.Context) {
	dropID, ok := h.dropID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	if _, err := h.store.GetDropByID(ctx, dropID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	updates, err := h.live.Updates(ctx, dropID)
	if err != nil {
		if errors.Is(err, events.ErrLiveUpdatesDisabled) {
			apierrors.ServiceUnavailable(c, apierrors.CodeLiveFeedUnavailable, "Live updates are not available", err)
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error(ctx, "failed to upgrade live connection", err)
		return
	}
	defer conn.Close()

	h.logger.Info(ctx, "live feed connected")

	// The client never sends data; reading only detects the close
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(livePingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info(ctx, "live feed disconnected")
			return
		case payload, ok := <-updates:
			if !ok {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "feed closed"),
					time.Now().Add(liveWriteWait))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.logger.WarnWithError(ctx, "failed to write live update", err)
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait)); err != nil {
				return
			}
		}
	}
}
