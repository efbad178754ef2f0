package router

import (
	"github.com/gin-gonic/gin"

	"givebase.app/crm/internal/http/handler"
	"givebase.app/crm/internal/http/middleware"
	"givebase.app/crm/internal/model"
)

func PublicationRouter(rg *gin.RouterGroup, h *handler.PublicationHandler) {
	rg.POST("/site/publish", middleware.RequireRole(model.RoleAdmin), h.PublishSite)
	rg.POST("/pages/:page_type/publish", middleware.RequireRole(model.RoleEditor), h.PublishPage)
	rg.POST("/campaigns/:campaign_id/publish", middleware.RequireRole(model.RoleEditor), h.PublishCampaign)
}
