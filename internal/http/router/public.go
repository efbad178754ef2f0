package router

import (
	"github.com/gin-gonic/gin"

	"givebase.app/crm/internal/http/handler"
)

// PublicRouter serves unauthenticated donor-facing reads.
func PublicRouter(rg *gin.RouterGroup, orgs *handler.OrganizationHandler, campaigns *handler.CampaignHandler) {
	rg.GET("/site", orgs.PublicSite)
	rg.GET("/campaigns/:campaign_id", campaigns.PublicCampaign)
}
