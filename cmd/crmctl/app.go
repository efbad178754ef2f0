package main

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"givebase.app/crm/common/id"
	"givebase.app/crm/common/logger"
	"givebase.app/crm/core/config"
	"givebase.app/crm/core/db"
	"givebase.app/crm/internal/payment"
	"givebase.app/crm/internal/queue"
	"givebase.app/crm/internal/service"
	"givebase.app/crm/internal/store"
)

// app holds the connections one command needs. Call close when done.
type app struct {
	services *service.Services
	close    func()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(config.ServiceTypeCLI)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Setup(cfg)

	if err := id.Init(3); err != nil {
		return nil, fmt.Errorf("initializing id generator: %w", err)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	redisOpts, err := redis.ParseURL(cfg.Pipeline.RedisURL)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	redisClient := redis.NewClient(redisOpts)

	services := service.NewServices(
		store.NewStores(database.Queries()),
		service.NewTxRunner(database),
		service.Deps{
			Payments:     payment.NewProvider(cfg.Stripe),
			Events:       queue.NewEventPublisher(redisClient, cfg.Pipeline.EventStream),
			CheckTimeout: cfg.Completeness.CheckTimeout,
		},
	)

	return &app{
		services: services,
		close: func() {
			_ = redisClient.Close()
			database.Close()
		},
	}, nil
}

// organizationID reads --org, or resolves --slug when --org is absent.
func (a *app) organizationID(cmd *cobra.Command) (int64, error) {
	orgID, _ := cmd.Flags().GetInt64("org")
	if orgID > 0 {
		return orgID, nil
	}

	slug, _ := cmd.Flags().GetString("slug")
	if slug == "" {
		return 0, fmt.Errorf("either --org or --slug is required")
	}
	org, err := a.services.Organizations().Resolve(cmd.Context(), slug)
	if err != nil {
		return 0, fmt.Errorf("resolving %q: %w", slug, err)
	}
	return org.ID, nil
}

func addOrganizationFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("org", 0, "Organization ID")
	cmd.Flags().String("slug", "", "Organization slug (used when --org is not set)")
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
}
