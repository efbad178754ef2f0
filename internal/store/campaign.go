package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"givebase.app/crm/core/db/sqlc"
	"givebase.app/crm/internal/model"
)

type campaignStore struct {
	queries *sqlc.Queries
}

func newCampaignStore(queries *sqlc.Queries) CampaignStore {
	return &campaignStore{queries: queries}
}

func (s *campaignStore) GetForOrganization(ctx context.Context, orgID, campaignID int64) (*model.Campaign, error) {
	row, err := s.queries.GetCampaignForOrganization(ctx, sqlc.GetCampaignForOrganizationParams{
		ID:             campaignID,
		OrganizationID: orgID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toCampaignModel(row), nil
}

func (s *campaignStore) Publish(ctx context.Context, id int64, pageConfig json.RawMessage, publishedAt time.Time) (*model.Campaign, error) {
	row, err := s.queries.PublishCampaign(ctx, sqlc.PublishCampaignParams{
		ID:          id,
		PageConfig:  jsonOrNull(pageConfig),
		PublishedAt: toPgTimestamptz(&publishedAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toCampaignModel(row), nil
}

func toCampaignModel(row sqlc.Campaign) *model.Campaign {
	return &model.Campaign{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Name:           row.Name,
		Slug:           row.Slug,
		PageConfig:     row.PageConfig,
		IsActive:       row.IsActive,
		PublishedAt:    toTimePointer(row.PublishedAt),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
