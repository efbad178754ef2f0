package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"givebase.app/crm/core/db/sqlc"
	"givebase.app/crm/internal/model"
)

type subscriptionStore struct {
	queries *sqlc.Queries
}

func newSubscriptionStore(queries *sqlc.Queries) SubscriptionStore {
	return &subscriptionStore{queries: queries}
}

func (s *subscriptionStore) GetLatest(ctx context.Context, orgID int64) (*model.Subscription, error) {
	row, err := s.queries.GetLatestSubscription(ctx, orgID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.Subscription{
		ID:               row.ID,
		OrganizationID:   row.OrganizationID,
		Status:           model.SubscriptionStatus(row.Status),
		CurrentPeriodEnd: row.CurrentPeriodEnd.Time,
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}, nil
}
