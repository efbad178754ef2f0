package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"givebase.app/crm/core/db/sqlc"
	"givebase.app/crm/internal/model"
)

type organizationStore struct {
	queries *sqlc.Queries
}

func newOrganizationStore(queries *sqlc.Queries) OrganizationStore {
	return &organizationStore{queries: queries}
}

func (s *organizationStore) GetByID(ctx context.Context, id int64) (*model.Organization, error) {
	row, err := s.queries.GetOrganization(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	row, err := s.queries.GetOrganizationBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) GetByStripeAccount(ctx context.Context, accountID string) (*model.Organization, error) {
	row, err := s.queries.GetOrganizationByStripeAccount(ctx, &accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) UpdateProfile(ctx context.Context, id int64, profile model.OrganizationProfile) (*model.Organization, error) {
	row, err := s.queries.UpdateOrganizationProfile(ctx, sqlc.UpdateOrganizationProfileParams{
		ID:       id,
		Name:     profile.Name,
		Settings: jsonOrEmpty(profile.Settings),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) SetPubliclyActive(ctx context.Context, id int64, active bool) error {
	n, err := s.queries.SetOrganizationPubliclyActive(ctx, sqlc.SetOrganizationPubliclyActiveParams{
		ID:               id,
		IsPubliclyActive: active,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toOrganizationModel(row sqlc.Organization) *model.Organization {
	return &model.Organization{
		ID:               row.ID,
		Name:             row.Name,
		Slug:             row.Slug,
		StripeAccountID:  row.StripeAccountID,
		IsPubliclyActive: row.IsPubliclyActive,
		Settings:         row.Settings,
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
}
