package handler

import (
	"context"
	"net/http"
	"strings"

	"poap-drops/internal/auth/processor"
	"poap-drops/internal/observability"

	"github.com/gin-gonic/gin"
)

// OperatorKey is the gin context key holding the authenticated operator subject
const OperatorKey = "Operator-ID"

// TokenValidator validates operator bearer tokens
type TokenValidator interface {
	ValidateJWTToken(ctx context.Context, token string) (processor.BaseClaims, error)
}

type Handler struct {
	validator TokenValidator
	logger    *observability.Logger
}

func New(validator TokenValidator, logger *observability.Logger) Handler {
	return Handler{validator: validator, logger: logger}
}

func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is missing or invalid"})
		c.Abort()
		return
	}

	claims, err := h.validator.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token has no subject"})
		c.Abort()
		return
	}

	c.Set(OperatorKey, sub)
	c.Request = c.Request.WithContext(observability.WithFields(ctx, observability.Field{Key: "operator", Value: sub}))
	c.Next()
}

// bearerToken reads the Authorization header, falling back to the token query
// parameter for browser WebSocket clients that cannot set headers.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if header == "" && c.GetHeader("Upgrade") != "" {
		return c.Query("token")
	}
	return ""
}
