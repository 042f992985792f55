package apierrors

import (
	"errors"

	"poap-drops/internal/jobs"
	"poap-drops/internal/store"

	"github.com/gin-gonic/gin"
)

// RespondWithError maps a domain error to a sanitized response.
// Unknown errors become a 500 without leaking details.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		NotFound(c, "Resource not found")
	case errors.Is(err, jobs.ErrBackfillAlreadyQueued):
		Conflict(c, CodeBackfillQueued, "A backfill for this drop is already queued")
	default:
		InternalError(c, err)
	}
}
