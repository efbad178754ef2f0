package store

import (
	"givebase.app/crm/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Organizations() OrganizationStore {
	return newOrganizationStore(s.queries)
}

func (s *Stores) Pages() PageStore {
	return newPageStore(s.queries)
}

func (s *Stores) Campaigns() CampaignStore {
	return newCampaignStore(s.queries)
}

func (s *Stores) Designations() DesignationStore {
	return newDesignationStore(s.queries)
}

func (s *Stores) Questions() QuestionStore {
	return newQuestionStore(s.queries)
}

func (s *Stores) Subscriptions() SubscriptionStore {
	return newSubscriptionStore(s.queries)
}

func (s *Stores) Staff() StaffStore {
	return newStaffStore(s.queries)
}
