package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"givebase.app/crm/internal/http/dto"
	"givebase.app/crm/internal/http/middleware"
	"givebase.app/crm/internal/service"
)

type PublicationHandler struct {
	publication service.PublicationService
}

func NewPublicationHandler(publication service.PublicationService) *PublicationHandler {
	return &PublicationHandler{publication: publication}
}

func (h *PublicationHandler) PublishSite(c *gin.Context) {
	published, err := h.publication.PublishSite(c.Request.Context(), middleware.CurrentOrganization(c).ID)
	if err != nil {
		respondError(c, err, "publish site")
		return
	}
	c.JSON(http.StatusOK, published)
}

func (h *PublicationHandler) PublishCampaign(c *gin.Context) {
	campaignID, ok := idParam(c, "campaign_id")
	if !ok {
		return
	}
	var req dto.PublishCampaignRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	campaign, err := h.publication.PublishCampaign(c.Request.Context(), middleware.CurrentOrganization(c).ID, campaignID, req.PageConfig)
	if err != nil {
		respondError(c, err, "publish campaign")
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (h *PublicationHandler) PublishPage(c *gin.Context) {
	var req dto.PublishPageRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	page, err := h.publication.PublishOrganizationPage(c.Request.Context(), middleware.CurrentOrganization(c).ID, c.Param("page_type"), req.ContentConfig)
	if err != nil {
		respondError(c, err, "publish page")
		return
	}
	c.JSON(http.StatusOK, page)
}
