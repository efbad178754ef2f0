package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"givebase.app/crm/internal/http/dto"
	"givebase.app/crm/internal/http/middleware"
	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/service"
)

type OrganizationHandler struct {
	orgs service.OrganizationService
}

func NewOrganizationHandler(orgs service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgs: orgs}
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	org, err := h.orgs.GetByID(c.Request.Context(), middleware.CurrentOrganization(c).ID)
	if err != nil {
		respondError(c, err, "get organization")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.orgs.UpdateProfile(c.Request.Context(), middleware.CurrentOrganization(c).ID, model.OrganizationProfile{
		Name:     req.Name,
		Settings: req.Settings,
	})
	if err != nil {
		respondError(c, err, "update organization")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// PublicSite serves the donor-facing site. Organizations that are not publicly
// active are indistinguishable from missing ones.
func (h *OrganizationHandler) PublicSite(c *gin.Context) {
	org, err := h.orgs.GetPublicSite(c.Request.Context(), middleware.CurrentOrganization(c).ID)
	if err != nil {
		respondError(c, err, "get site")
		return
	}
	c.JSON(http.StatusOK, dto.ToPublicSiteResponse(org))
}
