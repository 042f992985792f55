package bootstrap

import (
	"context"
	"fmt"

	"poap-drops/internal/alerts"
	authHandler "poap-drops/internal/auth/handler"
	authProcessor "poap-drops/internal/auth/processor"
	"poap-drops/internal/clients/instagram"
	kafkaClient "poap-drops/internal/clients/kafka"
	"poap-drops/internal/clients/mail"
	"poap-drops/internal/clients/poap"
	redisClient "poap-drops/internal/clients/redis"
	"poap-drops/internal/config"
	"poap-drops/internal/events"
	instagramHandler "poap-drops/internal/instagram/handler"
	"poap-drops/internal/instagram/processor"
	"poap-drops/internal/instagram/responder"
	"poap-drops/internal/jobs"
	"poap-drops/internal/ledger"
	"poap-drops/internal/observability"
	"poap-drops/internal/ratelimit"
	"poap-drops/internal/store"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger
	Redis  *redisClient.Client

	// Pipeline
	Processor *processor.Processor

	// Handlers
	AuthHandler      authHandler.Handler
	InstagramHandler instagramHandler.Handler
	RateLimiter      *ratelimit.Service

	// Clients (for cleanup)
	JobClient     *jobs.Client
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize Redis (token cache, live updates, alert dedupe)
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Initialize POAP clients
	var tokenCache poap.TokenCache
	if deps.Redis.IsEnabled() {
		tokenCache = poap.NewRedisTokenCache(deps.Redis)
	}
	poapAuth := poap.NewAuthManager(cfg.POAP, tokenCache, logger)
	poapClient := poap.NewClient(cfg.POAP.APIBaseURL, poapAuth, logger)

	// Initialize Instagram client and responder
	graphClient := instagram.NewClient(cfg.Instagram.GraphBaseURL, cfg.Instagram.APIVersion, logger)
	replier := responder.New(graphClient, logger)

	// Initialize event publisher
	var producer events.EventProducer
	if cfg.Kafka.Enabled() {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		producer = deps.KafkaProducer
	} else {
		logger.Info(ctx, "Kafka brokers not configured, delivery events disabled")
	}
	publisher := events.NewPublisher(deps.Redis, producer, logger)

	// Initialize exhaustion alerts
	var mailer alerts.Mailer
	if cfg.Alerts.Enabled() {
		resend, err := mail.NewResendClient(cfg.Alerts.ResendAPIKey, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create resend client: %w", err)
		}
		mailer = resend
	}
	var locker alerts.Locker
	if deps.Redis.IsEnabled() {
		locker = deps.Redis
	}
	notifier := alerts.NewNotifier(locker, mailer, cfg.Alerts.Sender, cfg.Alerts.Recipient, logger)

	// Initialize message processor
	deliveryLedger := ledger.New(&deps.Store)
	deps.Processor = processor.New(processor.Dependencies{
		Store:     &deps.Store,
		Ledger:    deliveryLedger,
		Claims:    poapClient,
		Ownership: poapClient,
		Users:     graphClient,
		Replier:   replier,
		Events:    publisher,
		Alerts:    notifier,
	}, cfg.Backfill.MessageDelay, logger)

	// Initialize job client
	deps.JobClient = jobs.NewClient(jobs.RedisOpt(cfg.Redis), logger)

	// Initialize handlers
	deps.AuthHandler = authHandler.New(authProcessor.New(cfg.Auth, logger), logger)
	deps.InstagramHandler = instagramHandler.New(instagramHandler.Dependencies{
		Store:      &deps.Store,
		Processor:  deps.Processor,
		Backfills:  deps.JobClient,
		Deliveries: deliveryLedger,
		Live:       events.NewSubscriber(deps.Redis, logger),
	}, instagramHandler.Config{
		VerifyToken:    cfg.Instagram.VerifyToken,
		AppSecret:      cfg.Instagram.AppSecret,
		AllowedOrigins: allowedOrigins(cfg.Server),
	}, logger)
	deps.RateLimiter = ratelimit.NewService(deps.Redis, cfg.Server.OperatorRateLimit, logger)

	return deps, nil
}

func allowedOrigins(cfg config.ServerConfig) []string {
	if !cfg.Production {
		return nil
	}
	return []string{cfg.WebAppURI}
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
