package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"givebase.app/crm/internal/http/dto"
	"givebase.app/crm/internal/http/middleware"
	"givebase.app/crm/internal/service"
)

type CampaignHandler struct {
	campaigns service.CampaignService
}

func NewCampaignHandler(campaigns service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

func (h *CampaignHandler) ReconcileDesignations(c *gin.Context) {
	campaignID, ok := idParam(c, "campaign_id")
	if !ok {
		return
	}
	var req dto.ReconcileDesignationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.campaigns.ReconcileDesignations(c.Request.Context(), middleware.CurrentOrganization(c).ID, campaignID, dto.Int64s(req.DesignationIDs))
	if err != nil {
		respondError(c, err, "update campaign designations")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CampaignHandler) ReconcileQuestions(c *gin.Context) {
	campaignID, ok := idParam(c, "campaign_id")
	if !ok {
		return
	}
	var req dto.ReconcileQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.campaigns.ReconcileQuestions(c.Request.Context(), middleware.CurrentOrganization(c).ID, campaignID, req.Questions)
	if err != nil {
		respondError(c, err, "update campaign questions")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CampaignHandler) PublicCampaign(c *gin.Context) {
	campaignID, ok := idParam(c, "campaign_id")
	if !ok {
		return
	}

	campaign, err := h.campaigns.GetPublicCampaign(c.Request.Context(), middleware.CurrentOrganization(c).ID, campaignID)
	if err != nil {
		respondError(c, err, "get campaign")
		return
	}
	c.JSON(http.StatusOK, campaign)
}
