package model

import "time"

// Requirement names a completeness criterion. Values are stable and returned to API clients.
type Requirement string

const (
	RequirementPaymentAccount     Requirement = "payment_account_verification"
	RequirementRequiredPages      Requirement = "required_pages"
	RequirementActiveSubscription Requirement = "active_subscription"
)

// Requirements lists every criterion in reporting order.
var Requirements = []Requirement{
	RequirementPaymentAccount,
	RequirementRequiredPages,
	RequirementActiveSubscription,
}

type CompletenessStatus struct {
	IsPubliclyActive       bool          `json:"is_publicly_active"`
	StripeAccountVerified  bool          `json:"stripe_account_verified"`
	RequiredPagesPublished bool          `json:"required_pages_published"`
	HasActiveSubscription  bool          `json:"has_active_subscription"`
	MissingRequirements    []Requirement `json:"missing_requirements"`
}

// Complete reports whether every criterion is met.
func (s CompletenessStatus) Complete() bool {
	return s.StripeAccountVerified && s.RequiredPagesPublished && s.HasActiveSubscription
}

type SitePublication struct {
	IsPubliclyActive bool      `json:"is_publicly_active"`
	PublishedAt      time.Time `json:"published_at"`
}
