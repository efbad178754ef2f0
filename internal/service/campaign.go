package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"givebase.app/crm/common/id"
	"givebase.app/crm/common/logger"
	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/reconcile"
	"givebase.app/crm/internal/store"
)

type CampaignService interface {
	// ReconcileDesignations makes the campaign's linked designations equal desiredIDs.
	ReconcileDesignations(ctx context.Context, orgID, campaignID int64, desiredIDs []int64) (*model.DesignationSyncResult, error)
	// ReconcileQuestions makes the campaign's questions match desired.
	ReconcileQuestions(ctx context.Context, orgID, campaignID int64, desired []model.QuestionInput) (*model.QuestionSyncResult, error)
	// GetPublicCampaign returns an active campaign with its designations and questions.
	GetPublicCampaign(ctx context.Context, orgID, campaignID int64) (*model.PublicCampaign, error)
}

type campaignService struct {
	txRunner TxRunner
}

func NewCampaignService(txRunner TxRunner) CampaignService {
	return &campaignService{txRunner: txRunner}
}

// Concurrent reconciliations of the same campaign are not serialized; the
// unique (campaign_id, designation_id) constraint is the only guard.
func (s *campaignService) ReconcileDesignations(ctx context.Context, orgID, campaignID int64, desiredIDs []int64) (*model.DesignationSyncResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{OrganizationID: &orgID, CampaignID: &campaignID})

	var result model.DesignationSyncResult
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := ensureCampaign(ctx, stores, orgID, campaignID); err != nil {
			return err
		}

		desired := reconcile.Unique(desiredIDs)
		owned, err := stores.Designations().FilterOwned(ctx, orgID, desired)
		if err != nil {
			return fmt.Errorf("checking designation ownership: %w", err)
		}
		if foreign := reconcile.Missing(desired, owned); len(foreign) > 0 {
			return &ValidationError{
				Field:   "designation_ids",
				Message: "unknown designations: " + joinIDs(foreign),
			}
		}

		current, err := stores.Designations().ListIDsForCampaign(ctx, campaignID)
		if err != nil {
			return fmt.Errorf("listing campaign designations: %w", err)
		}

		diff := reconcile.Sets(current, desired)
		if len(diff.Remove) > 0 {
			if _, err := stores.Designations().UnlinkMany(ctx, campaignID, diff.Remove); err != nil {
				return fmt.Errorf("unlinking designations: %w", err)
			}
		}
		if len(diff.Add) > 0 {
			if err := stores.Designations().LinkMany(ctx, campaignID, diff.Add); err != nil {
				return fmt.Errorf("linking designations: %w", err)
			}
		}

		result = model.DesignationSyncResult{
			Added:   len(diff.Add),
			Removed: len(diff.Remove),
			Total:   len(diff.Desired),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "campaign designations reconciled",
		"added", result.Added,
		"removed", result.Removed,
		"total", result.Total)

	return &result, nil
}

func (s *campaignService) ReconcileQuestions(ctx context.Context, orgID, campaignID int64, desired []model.QuestionInput) (*model.QuestionSyncResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{OrganizationID: &orgID, CampaignID: &campaignID})

	var result model.QuestionSyncResult
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := ensureCampaign(ctx, stores, orgID, campaignID); err != nil {
			return err
		}

		current, err := stores.Questions().ListForCampaign(ctx, campaignID)
		if err != nil {
			return fmt.Errorf("listing campaign questions: %w", err)
		}

		plan, err := reconcile.Questions(current, desired)
		if err != nil {
			var fe *reconcile.FieldError
			if errors.As(err, &fe) {
				return &ValidationError{Field: fe.Field, Message: fe.Message}
			}
			return err
		}

		if len(plan.Delete) > 0 {
			if _, err := stores.Questions().DeleteMany(ctx, campaignID, plan.Delete); err != nil {
				return fmt.Errorf("deleting questions: %w", err)
			}
		}
		for i := range plan.Update {
			if err := stores.Questions().UpdateOne(ctx, &plan.Update[i]); err != nil {
				return fmt.Errorf("updating question %d: %w", plan.Update[i].ID, err)
			}
		}
		if len(plan.Create) > 0 {
			for i := range plan.Create {
				plan.Create[i].ID = id.New()
				plan.Create[i].CampaignID = campaignID
			}
			if _, err := stores.Questions().CreateMany(ctx, plan.Create); err != nil {
				return fmt.Errorf("creating questions: %w", err)
			}
		}

		result = model.QuestionSyncResult{
			Added:   len(plan.Create),
			Updated: len(plan.Update),
			Removed: len(plan.Delete),
			Total:   plan.Total(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "campaign questions reconciled",
		"added", result.Added,
		"updated", result.Updated,
		"removed", result.Removed,
		"total", result.Total)

	return &result, nil
}

func (s *campaignService) GetPublicCampaign(ctx context.Context, orgID, campaignID int64) (*model.PublicCampaign, error) {
	var out model.PublicCampaign
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		campaign, err := stores.Campaigns().GetForOrganization(ctx, orgID, campaignID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCampaignNotFound
			}
			return fmt.Errorf("getting campaign: %w", err)
		}
		if !campaign.IsActive {
			return ErrCampaignNotFound
		}

		designations, err := stores.Designations().ListForCampaign(ctx, campaignID)
		if err != nil {
			return fmt.Errorf("listing designations: %w", err)
		}
		questions, err := stores.Questions().ListForCampaign(ctx, campaignID)
		if err != nil {
			return fmt.Errorf("listing questions: %w", err)
		}

		active := designations[:0]
		for _, d := range designations {
			if d.IsActive {
				active = append(active, d)
			}
		}

		out = model.PublicCampaign{Campaign: *campaign, Designations: active, Questions: questions}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ensureCampaign is the tenancy check every campaign mutation runs first.
func ensureCampaign(ctx context.Context, stores StoreProvider, orgID, campaignID int64) error {
	if _, err := stores.Campaigns().GetForOrganization(ctx, orgID, campaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		return fmt.Errorf("getting campaign: %w", err)
	}
	return nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, v := range ids {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ", ")
}
