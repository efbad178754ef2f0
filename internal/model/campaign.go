package model

import (
	"encoding/json"
	"time"
)

type Campaign struct {
	ID             int64           `json:"id,string"`
	OrganizationID int64           `json:"organization_id,string"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	PageConfig     json.RawMessage `json:"page_config"`
	IsActive       bool            `json:"is_active"`
	PublishedAt    *time.Time      `json:"published_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type Designation struct {
	ID             int64     `json:"id,string"`
	OrganizationID int64     `json:"organization_id,string"`
	Name           string    `json:"name"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DesignationSyncResult summarises a campaign designation reconciliation.
type DesignationSyncResult struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
	Total   int `json:"total"`
}

// QuestionSyncResult summarises a campaign question reconciliation.
type QuestionSyncResult struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Removed int `json:"removed"`
	Total   int `json:"total"`
}

// PublicCampaign is what donors see on a published campaign page.
type PublicCampaign struct {
	Campaign     Campaign      `json:"campaign"`
	Designations []Designation `json:"designations"`
	Questions    []Question    `json:"questions"`
}
