package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"givebase.app/crm/common/logger"
	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/store"
)

type PublicationService interface {
	// PublishSite re-validates completeness from scratch and fails with
	// *PreconditionFailedError when any criterion is unmet.
	PublishSite(ctx context.Context, orgID int64) (*model.SitePublication, error)
	PublishCampaign(ctx context.Context, orgID, campaignID int64, pageConfig json.RawMessage) (*model.Campaign, error)
	// PublishOrganizationPage publishes an existing page. It does not re-run completeness.
	PublishOrganizationPage(ctx context.Context, orgID int64, pageSlug string, contentConfig json.RawMessage) (*model.OrganizationPage, error)
}

type publicationService struct {
	completeness CompletenessService
	txRunner     TxRunner
	now          func() time.Time
}

func NewPublicationService(completeness CompletenessService, txRunner TxRunner) PublicationService {
	return &publicationService{
		completeness: completeness,
		txRunner:     txRunner,
		now:          time.Now,
	}
}

func (s *publicationService) PublishSite(ctx context.Context, orgID int64) (*model.SitePublication, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{OrganizationID: &orgID})

	status, err := s.completeness.RefreshStatus(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !status.IsPubliclyActive {
		slog.InfoContext(ctx, "site publish blocked", "missing_requirements", status.MissingRequirements)
		return nil, &PreconditionFailedError{MissingRequirements: status.MissingRequirements}
	}

	published := &model.SitePublication{IsPubliclyActive: true, PublishedAt: s.now().UTC()}
	slog.InfoContext(ctx, "site published")
	return published, nil
}

func (s *publicationService) PublishCampaign(ctx context.Context, orgID, campaignID int64, pageConfig json.RawMessage) (*model.Campaign, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{OrganizationID: &orgID, CampaignID: &campaignID})

	if err := validateConfigObject("page_config", pageConfig); err != nil {
		return nil, err
	}

	var campaign *model.Campaign
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if err := ensureCampaign(ctx, stores, orgID, campaignID); err != nil {
			return err
		}

		var err error
		campaign, err = stores.Campaigns().Publish(ctx, campaignID, pageConfig, s.now().UTC())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCampaignNotFound
			}
			return fmt.Errorf("publishing campaign: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "campaign published")
	return campaign, nil
}

func (s *publicationService) PublishOrganizationPage(ctx context.Context, orgID int64, pageSlug string, contentConfig json.RawMessage) (*model.OrganizationPage, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{OrganizationID: &orgID})

	pageType, ok := model.ParsePageType(pageSlug)
	if !ok {
		return nil, &ValidationError{Field: "page_type", Message: fmt.Sprintf("unknown page type %q", pageSlug)}
	}
	if err := validateConfigObject("content_config", contentConfig); err != nil {
		return nil, err
	}

	var page *model.OrganizationPage
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		existing, err := stores.Pages().GetByType(ctx, orgID, pageType)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrPageNotFound
			}
			return fmt.Errorf("getting page: %w", err)
		}

		page, err = stores.Pages().Publish(ctx, existing.ID, contentConfig)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrPageNotFound
			}
			return fmt.Errorf("publishing page: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "organization page published", "page_type", pageType)
	return page, nil
}

// validateConfigObject accepts an absent value or a JSON object.
func validateConfigObject(field string, raw json.RawMessage) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}
	if !json.Valid(trimmed) || trimmed[0] != '{' {
		return &ValidationError{Field: field, Message: "must be a JSON object"}
	}
	return nil
}
