package api

import (
	"net/http"

	authHandler "poap-drops/internal/auth/handler"
	instagramHandler "poap-drops/internal/instagram/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type API struct {
	router           *gin.RouterGroup
	authHandler      authHandler.Handler
	instagramHandler instagramHandler.Handler
	operatorLimit    gin.HandlerFunc
}

func New(router *gin.RouterGroup, authHandler authHandler.Handler, instagramHandler instagramHandler.Handler, operatorLimit gin.HandlerFunc) API {
	return API{
		router:           router,
		authHandler:      authHandler,
		instagramHandler: instagramHandler,
		operatorLimit:    operatorLimit,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Instagram webhook subscription and deliveries
	a.router.GET("/webhook", a.instagramHandler.HandleWebhookVerification)
	a.router.POST("/webhook", a.instagramHandler.HandleWebhook)

	apiGroup := a.router.Group("/api")
	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	if a.operatorLimit != nil {
		protectedGroup.Use(a.operatorLimit)
	}
	{
		protectedGroup.POST("drops/:drop_id/backfill", a.instagramHandler.HandleTriggerBackfill)
		protectedGroup.GET("drops/:drop_id/deliveries", a.instagramHandler.HandleListDeliveries)
		protectedGroup.GET("drops/:drop_id/live", a.instagramHandler.HandleLiveUpdates)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
