package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"givebase.app/crm/core/db/sqlc"
	"givebase.app/crm/internal/model"
)

type staffStore struct {
	queries *sqlc.Queries
}

func newStaffStore(queries *sqlc.Queries) StaffStore {
	return &staffStore{queries: queries}
}

func (s *staffStore) GetByID(ctx context.Context, id int64) (*model.StaffMember, error) {
	row, err := s.queries.GetStaffMember(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toStaffModel(row), nil
}

func (s *staffStore) GetByOrgAndEmail(ctx context.Context, orgID int64, email string) (*model.StaffMember, error) {
	row, err := s.queries.GetStaffMemberByOrgAndEmail(ctx, sqlc.GetStaffMemberByOrgAndEmailParams{
		OrganizationID: orgID,
		Email:          email,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toStaffModel(row), nil
}

func (s *staffStore) LinkWorkOSUser(ctx context.Context, id int64, workOSUserID string) error {
	return s.queries.SetStaffMemberWorkOSUser(ctx, sqlc.SetStaffMemberWorkOSUserParams{
		ID:           id,
		WorkosUserID: &workOSUserID,
	})
}

func toStaffModel(row sqlc.StaffMember) *model.StaffMember {
	return &model.StaffMember{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Email:          row.Email,
		Name:           row.Name,
		Role:           model.Role(row.Role),
		WorkOSUserID:   row.WorkosUserID,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
