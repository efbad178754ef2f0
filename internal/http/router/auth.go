package router

import (
	"github.com/gin-gonic/gin"

	"givebase.app/crm/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, requireStaff gin.HandlerFunc, h *handler.AuthHandler) {
	rg.GET("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/me", requireStaff, h.Me)
}
