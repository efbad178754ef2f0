package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/workos/workos-go/v6/pkg/usermanagement"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"givebase.app/crm/common/id"
	"givebase.app/crm/common/logger"
	"givebase.app/crm/common/otel"
	"givebase.app/crm/core/config"
	"givebase.app/crm/core/db"
	"givebase.app/crm/internal/auth"
	"givebase.app/crm/internal/http/middleware"
	httprouter "givebase.app/crm/internal/http/router"
	"givebase.app/crm/internal/payment"
	"givebase.app/crm/internal/queue"
	"givebase.app/crm/internal/service"
	"givebase.app/crm/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "crm server starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Pipeline.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Pipeline.RedisStream)

	rechecks := queue.NewRedisProducer(redisClient, cfg.Pipeline.RedisStream, nil)
	defer rechecks.Close()

	tokens := auth.NewIssuer(cfg.Auth)

	services := service.NewServices(
		store.NewStores(database.Queries()),
		service.NewTxRunner(database),
		service.Deps{
			Payments:     payment.NewProvider(cfg.Stripe),
			Events:       queue.NewEventPublisher(redisClient, cfg.Pipeline.EventStream),
			Rechecks:     rechecks,
			Identity:     usermanagement.NewClient(cfg.WorkOS.APIKey),
			Tokens:       tokens,
			WorkOS:       cfg.WorkOS,
			CheckTimeout: cfg.Completeness.CheckTimeout,
		},
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, tokens)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services, tokens *auth.Issuer) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	routerCfg := httprouter.RouterConfig{
		DashboardURL: cfg.DashboardURL,
		IsProduction: cfg.IsProduction(),
		BaseDomain:   cfg.Auth.BaseDomain,
		Tokens:       tokens,
	}
	if cfg.Stripe.WebhooksEnabled() {
		routerCfg.StripeEvents = payment.NewWebhookVerifier(cfg.Stripe.WebhookSecret)
	} else {
		slog.Warn("stripe webhooks disabled (no signing secret configured)")
	}

	httprouter.SetupRoutes(router, services, routerCfg)

	return router
}

const banner = `
  ____ _____     _______ ____    _    ____  _____
 / ___|_ _\ \   / / ____| __ )  / \  / ___|| ____|
| |  _ | | \ \ / /|  _| |  _ \ / _ \ \___ \|  _|
| |_| || |  \ V / | |___| |_) / ___ \ ___) | |___
 \____|___|  \_/  |_____|____/_/   \_\____/|_____|
`
