package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"givebase.app/crm/internal/http/handler"
	"givebase.app/crm/internal/http/handler/webhook"
	"givebase.app/crm/internal/http/middleware"
	"givebase.app/crm/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
	// Tenants are addressed as <slug>.<BaseDomain>; session cookies are scoped to it.
	BaseDomain string
	Tokens     middleware.TokenVerifier
	// StripeEvents is nil when webhooks are not configured.
	StripeEvents webhook.EventParser
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	orgs := services.Organizations()
	authHandler := handler.NewAuthHandler(services.Auth(), orgs, cfg.DashboardURL, cfg.BaseDomain, cfg.IsProduction)
	router.GET("/auth/callback", authHandler.Callback)

	if cfg.StripeEvents != nil {
		WebhookRouter(router.Group("/webhooks"), webhook.NewStripeWebhookHandler(cfg.StripeEvents, services.PaymentEvents()))
	}

	tenant := router.Group("", middleware.Tenant(orgs, cfg.BaseDomain))
	staff := middleware.RequireStaff(cfg.Tokens)

	AuthRouter(tenant.Group("/auth"), staff, authHandler)

	orgHandler := handler.NewOrganizationHandler(orgs)
	campaignHandler := handler.NewCampaignHandler(services.Campaigns())
	PublicRouter(tenant.Group("/public"), orgHandler, campaignHandler)

	v1 := tenant.Group("/api/v1", staff)
	{
		OrganizationRouter(v1, orgHandler, handler.NewCompletenessHandler(services.Completeness()))
		PublicationRouter(v1, handler.NewPublicationHandler(services.Publication()))
		CampaignRouter(v1, campaignHandler, handler.NewSchemaHandler())
	}
}
