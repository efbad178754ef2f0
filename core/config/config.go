package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"givebase.app/crm/core/db"
)

type Config struct {
	Env          string `env:"GIVEBASE_ENV" envDefault:"development"`
	Port         string `env:"PORT" envDefault:"8080"`
	DashboardURL string `env:"DASHBOARD_URL" envDefault:"http://localhost:3000"`

	DB           db.Config
	OTel         OTelConfig
	WorkOS       WorkOSConfig
	Auth         AuthConfig
	Stripe       StripeConfig
	Pipeline     PipelineConfig
	Completeness CompletenessConfig
}

type OTelConfig struct {
	Endpoint       string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Headers        string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName    string `env:"OTEL_SERVICE_NAME" envDefault:"givebase-crm"`
	ServiceVersion string `env:"OTEL_SERVICE_VERSION" envDefault:"dev"`
}

type WorkOSConfig struct {
	APIKey      string `env:"WORKOS_API_KEY"`
	ClientID    string `env:"WORKOS_CLIENT_ID"`
	RedirectURI string `env:"WORKOS_REDIRECT_URI" envDefault:"http://localhost:8080/auth/callback"`
}

// AuthConfig controls staff session tokens and subdomain tenant routing.
type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET"`
	JWTIssuer  string        `env:"JWT_ISSUER" envDefault:"givebase"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	// Organizations are addressed as <slug>.<BaseDomain>.
	BaseDomain string `env:"BASE_DOMAIN" envDefault:"givebase.localhost"`
}

type StripeConfig struct {
	SecretKey     string `env:"STRIPE_SECRET_KEY"`
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
	// Overrides the Stripe API base URL (stripe-mock in development).
	APIBaseURL string `env:"STRIPE_API_BASE_URL"`
}

type PipelineConfig struct {
	RedisURL       string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisStream    string `env:"REDIS_STREAM" envDefault:"givebase_tasks"`
	RedisGroup     string `env:"REDIS_CONSUMER_GROUP" envDefault:"givebase_group"`
	RedisDLQStream string `env:"REDIS_DLQ_STREAM" envDefault:"givebase_tasks_dlq"`
	RedisConsumer  string `env:"REDIS_CONSUMER_NAME" envDefault:"api-server"`
	EventStream    string `env:"REDIS_EVENT_STREAM" envDefault:"givebase_events"`
}

type CompletenessConfig struct {
	CheckTimeout time.Duration `env:"COMPLETENESS_CHECK_TIMEOUT" envDefault:"5s"`
}

type ServiceType string

const (
	ServiceTypeServer ServiceType = "server"
	ServiceTypeWorker ServiceType = "worker"
	ServiceTypeCLI    ServiceType = "cli"
)

// Load loads configuration from environment variables.
// In development, it loads from service-specific .env files:
//   - .env.server for the API server
//   - .env.worker for the background worker
//
// Falls back to .env if service-specific file doesn't exist.
func Load(serviceType ServiceType) (Config, error) {
	if envOr("GIVEBASE_ENV", "development") == "development" {
		envFile := fmt.Sprintf(".env.%s", serviceType)
		if err := godotenv.Load(envFile); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing env: %w", err)
	}

	if err := cfg.validate(serviceType); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate(serviceType ServiceType) error {
	if c.Stripe.SecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is required")
	}

	if serviceType != ServiceTypeServer {
		return nil
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 bytes")
	}
	if c.WorkOS.APIKey == "" || c.WorkOS.ClientID == "" {
		return fmt.Errorf("WORKOS_API_KEY and WORKOS_CLIENT_ID are required")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c WorkOSConfig) Enabled() bool {
	return c.APIKey != "" && c.ClientID != ""
}

func (c StripeConfig) WebhooksEnabled() bool {
	return c.WebhookSecret != ""
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
