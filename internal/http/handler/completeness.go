package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"givebase.app/crm/internal/http/middleware"
	"givebase.app/crm/internal/service"
)

type CompletenessHandler struct {
	completeness service.CompletenessService
}

func NewCompletenessHandler(completeness service.CompletenessService) *CompletenessHandler {
	return &CompletenessHandler{completeness: completeness}
}

// Status reports every criterion without changing stored visibility.
func (h *CompletenessHandler) Status(c *gin.Context) {
	status, err := h.completeness.GetCompletenessStatus(c.Request.Context(), middleware.CurrentOrganization(c).ID)
	if err != nil {
		respondError(c, err, "get completeness status")
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *CompletenessHandler) Refresh(c *gin.Context) {
	status, err := h.completeness.RefreshStatus(c.Request.Context(), middleware.CurrentOrganization(c).ID)
	if err != nil {
		respondError(c, err, "refresh completeness status")
		return
	}
	c.JSON(http.StatusOK, status)
}
