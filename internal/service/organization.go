package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/store"
)

type OrganizationService interface {
	GetByID(ctx context.Context, orgID int64) (*model.Organization, error)
	// Resolve finds the tenant addressed by a subdomain slug.
	Resolve(ctx context.Context, slug string) (*model.Organization, error)
	// UpdateProfile changes name and settings. Public visibility is not writable here.
	UpdateProfile(ctx context.Context, orgID int64, profile model.OrganizationProfile) (*model.Organization, error)
	// GetPublicSite returns the organization only while it is publicly active.
	GetPublicSite(ctx context.Context, orgID int64) (*model.Organization, error)
}

type organizationService struct {
	orgStore store.OrganizationStore
}

func NewOrganizationService(orgStore store.OrganizationStore) OrganizationService {
	return &organizationService{orgStore: orgStore}
}

func (s *organizationService) GetByID(ctx context.Context, orgID int64) (*model.Organization, error) {
	org, err := s.orgStore.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("getting organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) Resolve(ctx context.Context, slug string) (*model.Organization, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, ErrOrganizationNotFound
	}

	org, err := s.orgStore.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("resolving organization %q: %w", slug, err)
	}
	return org, nil
}

func (s *organizationService) UpdateProfile(ctx context.Context, orgID int64, profile model.OrganizationProfile) (*model.Organization, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "is required"}
	}
	if err := validateConfigObject("settings", profile.Settings); err != nil {
		return nil, err
	}

	org, err := s.orgStore.UpdateProfile(ctx, orgID, profile)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("updating organization profile: %w", err)
	}
	return org, nil
}

func (s *organizationService) GetPublicSite(ctx context.Context, orgID int64) (*model.Organization, error) {
	org, err := s.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !org.IsPubliclyActive {
		return nil, ErrOrganizationNotFound
	}
	return org, nil
}
