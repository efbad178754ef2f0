package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"

	"givebase.app/crm/core/db/sqlc"
	"givebase.app/crm/internal/model"
)

type pageStore struct {
	queries *sqlc.Queries
}

func newPageStore(queries *sqlc.Queries) PageStore {
	return &pageStore{queries: queries}
}

func (s *pageStore) GetByType(ctx context.Context, orgID int64, pageType model.PageType) (*model.OrganizationPage, error) {
	row, err := s.queries.GetOrganizationPageByType(ctx, sqlc.GetOrganizationPageByTypeParams{
		OrganizationID: orgID,
		PageType:       string(pageType),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPageModel(row), nil
}

func (s *pageStore) ListPublishedTypes(ctx context.Context, orgID int64) ([]model.PageType, error) {
	rows, err := s.queries.ListPublishedPageTypes(ctx, orgID)
	if err != nil {
		return nil, err
	}
	types := make([]model.PageType, len(rows))
	for i, row := range rows {
		types[i] = model.PageType(row)
	}
	return types, nil
}

func (s *pageStore) Publish(ctx context.Context, id int64, contentConfig json.RawMessage) (*model.OrganizationPage, error) {
	row, err := s.queries.PublishOrganizationPage(ctx, sqlc.PublishOrganizationPageParams{
		ID:            id,
		ContentConfig: jsonOrNull(contentConfig),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPageModel(row), nil
}

func toPageModel(row sqlc.OrganizationPage) *model.OrganizationPage {
	return &model.OrganizationPage{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		PageType:       model.PageType(row.PageType),
		ContentConfig:  row.ContentConfig,
		IsPublished:    row.IsPublished,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
