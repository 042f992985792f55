package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	POAP      POAPConfig
	Instagram InstagramConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Alerts    AlertsConfig
	Backfill  BackfillConfig
	Logging   LoggingConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds the operator API token settings
type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// POAPConfig holds POAP API and OAuth client credentials
type POAPConfig struct {
	APIBaseURL   string
	APIKey       string
	AuthURL      string
	ClientID     string
	ClientSecret string
	Audience     string
}

// InstagramConfig holds Graph API and webhook settings
type InstagramConfig struct {
	GraphBaseURL string
	APIVersion   string
	VerifyToken  string
	// AppSecret enables X-Hub-Signature-256 verification when set
	AppSecret string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns the host:port pair used by Redis and asynq clients.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether a broker list was configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// AlertsConfig holds operator alert email settings
type AlertsConfig struct {
	ResendAPIKey string
	Sender       string
	Recipient    string
}

// Enabled reports whether exhaustion alerts can be sent.
func (c AlertsConfig) Enabled() bool {
	return c.ResendAPIKey != "" && c.Sender != "" && c.Recipient != ""
}

// BackfillConfig holds historical backfill tuning
type BackfillConfig struct {
	MessageDelay time.Duration
}

// LoggingConfig holds optional log sinks
type LoggingConfig struct {
	FilePath string
	Debug    bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port       int
	WebAppURI  string
	Production bool
	// OperatorRateLimit is the per-operator requests-per-minute cap on the operator API
	OperatorRateLimit int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	production := os.Getenv("GO_ENV") == "production"
	if !production {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return fromEnv(production)
}

func fromEnv(production bool) (*Config, error) {
	cfg := &Config{}
	cfg.Server.Production = production

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	cfg.Auth.Issuer = getEnvWithDefault("JWT_ISSUER", "poap-drops")

	// POAP configuration
	cfg.POAP.APIBaseURL = getEnvWithDefault("POAP_API_URL", "https://api.poap.tech")
	if cfg.POAP.APIKey, err = requireEnv("POAP_API_KEY"); err != nil {
		return nil, err
	}
	cfg.POAP.AuthURL = getEnvWithDefault("POAP_AUTH_URL", "https://auth.accounts.poap.xyz")
	if cfg.POAP.ClientID, err = requireEnv("POAP_CLIENT_ID"); err != nil {
		return nil, err
	}
	if cfg.POAP.ClientSecret, err = requireEnv("POAP_CLIENT_SECRET"); err != nil {
		return nil, err
	}
	cfg.POAP.Audience = getEnvWithDefault("POAP_AUDIENCE", "https://api.poap.tech")

	// Instagram configuration
	cfg.Instagram.GraphBaseURL = getEnvWithDefault("INSTAGRAM_GRAPH_URL", "https://graph.facebook.com")
	cfg.Instagram.APIVersion = getEnvWithDefault("INSTAGRAM_API_VERSION", "v18.0")
	if cfg.Instagram.VerifyToken, err = requireEnv("INSTAGRAM_VERIFY_TOKEN"); err != nil {
		return nil, err
	}
	cfg.Instagram.AppSecret = os.Getenv("INSTAGRAM_APP_SECRET")

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "true") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = strconv.Atoi(getEnvWithDefault("REDIS_PORT", "6379")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_PORT: %w", err)
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.DB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	// Kafka configuration (optional)
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "instagram-deliveries")

	// Alerts configuration (optional)
	cfg.Alerts.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Alerts.Sender = os.Getenv("DEFAULT_EMAIL_SENDER_ADDRESS")
	cfg.Alerts.Recipient = os.Getenv("OPERATOR_ALERT_EMAIL")

	// Backfill configuration
	if cfg.Backfill.MessageDelay, err = time.ParseDuration(getEnvWithDefault("BACKFILL_MESSAGE_DELAY", "100ms")); err != nil {
		return nil, fmt.Errorf("failed to parse BACKFILL_MESSAGE_DELAY: %w", err)
	}

	// Logging configuration
	cfg.Logging.FilePath = os.Getenv("LOG_FILE")
	cfg.Logging.Debug = os.Getenv("LOG_DEBUG") == "true"

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")
	if cfg.Server.OperatorRateLimit, err = strconv.Atoi(getEnvWithDefault("OPERATOR_RATE_LIMIT", "120")); err != nil {
		return nil, fmt.Errorf("failed to parse OPERATOR_RATE_LIMIT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
