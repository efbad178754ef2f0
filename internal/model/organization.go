package model

import (
	"encoding/json"
	"time"
)

type Organization struct {
	ID              int64           `json:"id,string"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	StripeAccountID *string         `json:"stripe_account_id,omitempty"`
	Settings        json.RawMessage `json:"settings"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Written only by the completeness evaluator.
	IsPubliclyActive bool `json:"is_publicly_active"`
}

// OrganizationProfile holds the fields a general organization update may change.
// Visibility is deliberately absent.
type OrganizationProfile struct {
	Name     string          `json:"name"`
	Settings json.RawMessage `json:"settings,omitempty"`
}

// HasPaymentAccount reports whether a Stripe connected account is linked.
func (o *Organization) HasPaymentAccount() bool {
	return o.StripeAccountID != nil && *o.StripeAccountID != ""
}
