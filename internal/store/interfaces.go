package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"givebase.app/crm/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// OrganizationStore defines the contract for organization data access
type OrganizationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)
	GetByStripeAccount(ctx context.Context, accountID string) (*model.Organization, error)
	UpdateProfile(ctx context.Context, id int64, profile model.OrganizationProfile) (*model.Organization, error)
	// SetPubliclyActive is reserved for the completeness evaluator.
	SetPubliclyActive(ctx context.Context, id int64, active bool) error
}

// PageStore defines the contract for organization page data access
type PageStore interface {
	GetByType(ctx context.Context, orgID int64, pageType model.PageType) (*model.OrganizationPage, error)
	ListPublishedTypes(ctx context.Context, orgID int64) ([]model.PageType, error)
	// Publish marks the page published. An empty contentConfig keeps the stored one.
	Publish(ctx context.Context, id int64, contentConfig json.RawMessage) (*model.OrganizationPage, error)
}

// CampaignStore defines the contract for campaign data access.
// Every lookup is scoped to an organization.
type CampaignStore interface {
	GetForOrganization(ctx context.Context, orgID, campaignID int64) (*model.Campaign, error)
	// Publish activates the campaign. An empty pageConfig keeps the stored one.
	Publish(ctx context.Context, id int64, pageConfig json.RawMessage, publishedAt time.Time) (*model.Campaign, error)
}

// DesignationStore defines the contract for designations and their campaign links
type DesignationStore interface {
	ListIDsForCampaign(ctx context.Context, campaignID int64) ([]int64, error)
	ListForCampaign(ctx context.Context, campaignID int64) ([]model.Designation, error)
	// FilterOwned returns the subset of ids that are designations of orgID.
	FilterOwned(ctx context.Context, orgID int64, ids []int64) ([]int64, error)
	LinkMany(ctx context.Context, campaignID int64, designationIDs []int64) error
	UnlinkMany(ctx context.Context, campaignID int64, designationIDs []int64) (int64, error)
}

// QuestionStore defines the contract for campaign question data access
type QuestionStore interface {
	ListForCampaign(ctx context.Context, campaignID int64) ([]model.Question, error)
	CreateMany(ctx context.Context, questions []model.Question) ([]model.Question, error)
	UpdateOne(ctx context.Context, question *model.Question) error
	DeleteMany(ctx context.Context, campaignID int64, ids []int64) (int64, error)
}

// SubscriptionStore defines the contract for subscription data access
type SubscriptionStore interface {
	GetLatest(ctx context.Context, orgID int64) (*model.Subscription, error)
}

// StaffStore defines the contract for staff member data access
type StaffStore interface {
	GetByID(ctx context.Context, id int64) (*model.StaffMember, error)
	GetByOrgAndEmail(ctx context.Context, orgID int64, email string) (*model.StaffMember, error)
	LinkWorkOSUser(ctx context.Context, id int64, workOSUserID string) error
}
