package store

import (
	"context"

	"givebase.app/crm/common/id"
	"givebase.app/crm/core/db/sqlc"
	"givebase.app/crm/internal/model"
)

type designationStore struct {
	queries *sqlc.Queries
}

func newDesignationStore(queries *sqlc.Queries) DesignationStore {
	return &designationStore{queries: queries}
}

func (s *designationStore) ListIDsForCampaign(ctx context.Context, campaignID int64) ([]int64, error) {
	return s.queries.ListCampaignDesignationIDs(ctx, campaignID)
}

func (s *designationStore) ListForCampaign(ctx context.Context, campaignID int64) ([]model.Designation, error) {
	rows, err := s.queries.ListCampaignDesignations(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Designation, len(rows))
	for i, row := range rows {
		result[i] = *toDesignationModel(row)
	}
	return result, nil
}

func (s *designationStore) FilterOwned(ctx context.Context, orgID int64, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.queries.ListOwnedDesignationIDs(ctx, sqlc.ListOwnedDesignationIDsParams{
		OrganizationID: orgID,
		Ids:            ids,
	})
}

func (s *designationStore) LinkMany(ctx context.Context, campaignID int64, designationIDs []int64) error {
	for _, designationID := range designationIDs {
		if err := s.queries.LinkCampaignDesignation(ctx, sqlc.LinkCampaignDesignationParams{
			ID:            id.New(),
			CampaignID:    campaignID,
			DesignationID: designationID,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *designationStore) UnlinkMany(ctx context.Context, campaignID int64, designationIDs []int64) (int64, error) {
	if len(designationIDs) == 0 {
		return 0, nil
	}
	return s.queries.UnlinkCampaignDesignations(ctx, sqlc.UnlinkCampaignDesignationsParams{
		CampaignID:     campaignID,
		DesignationIds: designationIDs,
	})
}

func toDesignationModel(row sqlc.Designation) *model.Designation {
	return &model.Designation{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Name:           row.Name,
		IsActive:       row.IsActive,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
