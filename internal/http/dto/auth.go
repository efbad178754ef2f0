package dto

import (
	"time"

	"givebase.app/crm/internal/model"
)

type SessionResponse struct {
	StaffID        int64      `json:"staff_id,string"`
	OrganizationID int64      `json:"organization_id,string"`
	Role           model.Role `json:"role"`
	ExpiresAt      time.Time  `json:"expires_at"`
}
