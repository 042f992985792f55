package handler

import (
	"net/http"
	"time"

	"poap-drops/internal/observability"

	"github.com/gorilla/websocket"
)

// Config holds the webhook secrets and live feed origin policy
type Config struct {
	VerifyToken string
	// AppSecret enables X-Hub-Signature-256 verification when set
	AppSecret string
	// AllowedOrigins limits browser WebSocket origins. Empty allows any.
	AllowedOrigins []string
}

// Dependencies are the collaborators the handlers call
type Dependencies struct {
	Store      MessageStore
	Processor  MessageProcessor
	Backfills  BackfillEnqueuer
	Deliveries DeliveryLister
	Live       LiveFeed
}

type Handler struct {
	store      MessageStore
	processor  MessageProcessor
	backfills  BackfillEnqueuer
	deliveries DeliveryLister
	live       LiveFeed
	cfg        Config
	upgrader   websocket.Upgrader
	logger     *observability.Logger
	now        func() time.Time
}

func New(deps Dependencies, cfg Config, logger *observability.Logger) Handler {
	h := Handler{
		store:      deps.Store,
		processor:  deps.Processor,
		backfills:  deps.Backfills,
		deliveries: deps.Deliveries,
		live:       deps.Live,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.cfg.AllowedOrigins) == 0 {
		return true
	}
	for _, allowed := range h.cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}
