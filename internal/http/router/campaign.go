package router

import (
	"github.com/gin-gonic/gin"

	"givebase.app/crm/internal/http/handler"
	"givebase.app/crm/internal/http/middleware"
	"givebase.app/crm/internal/model"
)

func CampaignRouter(rg *gin.RouterGroup, h *handler.CampaignHandler, schemas *handler.SchemaHandler) {
	rg.GET("/schemas/questions", schemas.Questions)

	editor := rg.Group("/campaigns/:campaign_id", middleware.RequireRole(model.RoleEditor))
	{
		editor.PUT("/designations", h.ReconcileDesignations)
		editor.PUT("/questions", h.ReconcileQuestions)
	}
}
