package handler

import (
	"net/http"

	"poap-drops/internal/apierrors"
	"poap-drops/internal/jobs"
	"poap-drops/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultDeliveriesLimit = 50
	dropIDParam            = "drop_id"
)

// HandleTriggerBackfill queues a historical backfill for a drop and returns
// without waiting for it.
func (h *Handler) HandleTriggerBackfill(c *gin.Context) {
	dropID, ok := h.dropID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	drop, err := h.store.GetDropByID(ctx, dropID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	if !drop.IsActive || drop.InstagramStoryID == nil || *drop.InstagramStoryID == "" {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Drop has no active Instagram story")
		return
	}

	taskID, err := h.backfills.EnqueueInstagramBackfill(ctx, jobs.InstagramBackfillPayload{DropID: dropID})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"drop_id": dropID,
		"task_id": taskID,
	})
}

// HandleListDeliveries returns a page of a drop's deliveries, newest first
func (h *Handler) HandleListDeliveries(c *gin.Context) {
	dropID, ok := h.dropID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var query DeliveriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apierrors.ValidationError(c, err)
		return
	}
	if query.Limit == 0 {
		query.Limit = defaultDeliveriesLimit
	}
	if query.Page == 0 {
		query.Page = 1
	}

	if _, err := h.store.GetDropByID(ctx, dropID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	page, err := h.deliveries.ListByDrop(ctx, dropID, query.Limit, (query.Page-1)*query.Limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deliveries": page.Deliveries,
		"total":      page.Total,
		"limit":      page.Limit,
		"page":       query.Page,
	})
}

func (h *Handler) dropID(c *gin.Context) (uuid.UUID, bool) {
	dropID, err := uuid.Parse(c.Param(dropIDParam))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid drop ID")
		return uuid.Nil, false
	}
	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "drop_id", Value: dropID.String()})
	c.Request = c.Request.WithContext(ctx)
	return dropID, true
}
