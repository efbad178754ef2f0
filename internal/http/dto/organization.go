package dto

import (
	"encoding/json"
	"time"

	"givebase.app/crm/internal/model"
)

type UpdateOrganizationRequest struct {
	Name     string          `json:"name" binding:"required,min=1,max=255"`
	Settings json.RawMessage `json:"settings,omitempty"`
}

type OrganizationResponse struct {
	ID                int64           `json:"id,string"`
	Name              string          `json:"name"`
	Slug              string          `json:"slug"`
	Settings          json.RawMessage `json:"settings"`
	HasPaymentAccount bool            `json:"has_payment_account"`
	IsPubliclyActive  bool            `json:"is_publicly_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func ToOrganizationResponse(org *model.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:                org.ID,
		Name:              org.Name,
		Slug:              org.Slug,
		Settings:          org.Settings,
		HasPaymentAccount: org.HasPaymentAccount(),
		IsPubliclyActive:  org.IsPubliclyActive,
		CreatedAt:         org.CreatedAt,
		UpdatedAt:         org.UpdatedAt,
	}
}

// PublicSiteResponse is what donors see for a publicly active organization.
type PublicSiteResponse struct {
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	Settings json.RawMessage `json:"settings"`
}

func ToPublicSiteResponse(org *model.Organization) *PublicSiteResponse {
	return &PublicSiteResponse{Name: org.Name, Slug: org.Slug, Settings: org.Settings}
}
