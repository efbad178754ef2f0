package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"givebase.app/crm/core/db/sqlc"
	"givebase.app/crm/internal/model"
)

type questionStore struct {
	queries *sqlc.Queries
}

func newQuestionStore(queries *sqlc.Queries) QuestionStore {
	return &questionStore{queries: queries}
}

func (s *questionStore) ListForCampaign(ctx context.Context, campaignID int64) ([]model.Question, error) {
	rows, err := s.queries.ListCampaignQuestions(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Question, len(rows))
	for i, row := range rows {
		result[i] = *toQuestionModel(row)
	}
	return result, nil
}

// CreateMany inserts questions whose IDs are already assigned by the caller.
func (s *questionStore) CreateMany(ctx context.Context, questions []model.Question) ([]model.Question, error) {
	created := make([]model.Question, 0, len(questions))
	for _, q := range questions {
		row, err := s.queries.CreateCampaignQuestion(ctx, sqlc.CreateCampaignQuestionParams{
			ID:           q.ID,
			CampaignID:   q.CampaignID,
			QuestionText: q.Text,
			QuestionType: string(q.Type),
			Options:      jsonOrEmpty(q.Options),
			IsRequired:   q.IsRequired,
			DisplayOrder: q.DisplayOrder,
		})
		if err != nil {
			return nil, err
		}
		created = append(created, *toQuestionModel(row))
	}
	return created, nil
}

func (s *questionStore) UpdateOne(ctx context.Context, q *model.Question) error {
	row, err := s.queries.UpdateCampaignQuestion(ctx, sqlc.UpdateCampaignQuestionParams{
		ID:           q.ID,
		CampaignID:   q.CampaignID,
		QuestionText: q.Text,
		QuestionType: string(q.Type),
		Options:      jsonOrEmpty(q.Options),
		IsRequired:   q.IsRequired,
		DisplayOrder: q.DisplayOrder,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*q = *toQuestionModel(row)
	return nil
}

func (s *questionStore) DeleteMany(ctx context.Context, campaignID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.queries.DeleteCampaignQuestions(ctx, sqlc.DeleteCampaignQuestionsParams{
		CampaignID: campaignID,
		Ids:        ids,
	})
}

func toQuestionModel(row sqlc.CampaignQuestion) *model.Question {
	return &model.Question{
		ID:           row.ID,
		CampaignID:   row.CampaignID,
		Text:         row.QuestionText,
		Type:         model.QuestionType(row.QuestionType),
		Options:      row.Options,
		IsRequired:   row.IsRequired,
		DisplayOrder: row.DisplayOrder,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}
