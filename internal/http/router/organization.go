package router

import (
	"github.com/gin-gonic/gin"

	"givebase.app/crm/internal/http/handler"
	"givebase.app/crm/internal/http/middleware"
	"givebase.app/crm/internal/model"
)

func OrganizationRouter(rg *gin.RouterGroup, orgs *handler.OrganizationHandler, completeness *handler.CompletenessHandler) {
	admin := middleware.RequireRole(model.RoleAdmin)

	rg.GET("/organization", orgs.Get)
	rg.PATCH("/organization", admin, orgs.Update)
	rg.GET("/completeness", completeness.Status)
	rg.POST("/completeness/refresh", admin, completeness.Refresh)
}
