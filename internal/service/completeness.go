package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"givebase.app/crm/common/logger"
	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/queue"
	"givebase.app/crm/internal/store"
)

const defaultCheckTimeout = 5 * time.Second

// PaymentVerifier reports whether an external payment account is fully onboarded.
type PaymentVerifier interface {
	IsAccountVerified(ctx context.Context, accountID string) (bool, error)
}

// VisibilityPublisher announces changes to an organization's stored visibility.
type VisibilityPublisher interface {
	PublishVisibilityChanged(ctx context.Context, evt queue.VisibilityChanged) error
}

type CompletenessService interface {
	// CheckAndSetPublicStatus evaluates every criterion and persists the result.
	CheckAndSetPublicStatus(ctx context.Context, orgID int64) (bool, error)
	// GetCompletenessStatus evaluates every criterion without writing anything.
	GetCompletenessStatus(ctx context.Context, orgID int64) (*model.CompletenessStatus, error)
	// RefreshStatus persists like CheckAndSetPublicStatus and returns the full report.
	RefreshStatus(ctx context.Context, orgID int64) (*model.CompletenessStatus, error)
}

type completenessService struct {
	orgs          store.OrganizationStore
	pages         store.PageStore
	payments      PaymentVerifier
	subscriptions SubscriptionChecker
	events        VisibilityPublisher
	timeout       time.Duration
}

// NewCompletenessService wires the evaluator. events may be nil.
func NewCompletenessService(
	orgs store.OrganizationStore,
	pages store.PageStore,
	payments PaymentVerifier,
	subscriptions SubscriptionChecker,
	events VisibilityPublisher,
	timeout time.Duration,
) CompletenessService {
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}
	return &completenessService{
		orgs:          orgs,
		pages:         pages,
		payments:      payments,
		subscriptions: subscriptions,
		events:        events,
		timeout:       timeout,
	}
}

func (s *completenessService) CheckAndSetPublicStatus(ctx context.Context, orgID int64) (bool, error) {
	status, err := s.RefreshStatus(ctx, orgID)
	if err != nil {
		return false, err
	}
	return status.IsPubliclyActive, nil
}

func (s *completenessService) GetCompletenessStatus(ctx context.Context, orgID int64) (*model.CompletenessStatus, error) {
	org, err := s.getOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	status := s.evaluate(ctx, org)
	status.IsPubliclyActive = org.IsPubliclyActive
	return &status, nil
}

func (s *completenessService) RefreshStatus(ctx context.Context, orgID int64) (*model.CompletenessStatus, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{OrganizationID: &orgID})

	org, err := s.getOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	status := s.evaluate(ctx, org)
	active := status.Complete()

	if err := s.orgs.SetPubliclyActive(ctx, orgID, active); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("persisting public status: %w", err)
	}
	status.IsPubliclyActive = active

	slog.InfoContext(ctx, "completeness evaluated",
		"is_publicly_active", active,
		"previously_active", org.IsPubliclyActive,
		"missing_requirements", status.MissingRequirements)

	if active != org.IsPubliclyActive {
		s.publishChange(ctx, orgID, status)
	}

	return &status, nil
}

func (s *completenessService) getOrganization(ctx context.Context, orgID int64) (*model.Organization, error) {
	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("getting organization: %w", err)
	}
	return org, nil
}

// evaluate runs the criteria concurrently. A failing or slow criterion counts as unmet.
func (s *completenessService) evaluate(ctx context.Context, org *model.Organization) model.CompletenessStatus {
	sc := logger.StartSpan(ctx, "completeness.evaluate")
	defer sc.End()
	ctx = sc.Context()

	var (
		status model.CompletenessStatus
		g      errgroup.Group
	)

	g.Go(func() error {
		status.StripeAccountVerified = s.check(ctx, model.RequirementPaymentAccount, func(ctx context.Context) (bool, error) {
			if !org.HasPaymentAccount() {
				return false, nil
			}
			return s.payments.IsAccountVerified(ctx, *org.StripeAccountID)
		})
		return nil
	})
	g.Go(func() error {
		status.RequiredPagesPublished = s.check(ctx, model.RequirementRequiredPages, func(ctx context.Context) (bool, error) {
			published, err := s.pages.ListPublishedTypes(ctx, org.ID)
			if err != nil {
				return false, err
			}
			return coversRequiredPages(published), nil
		})
		return nil
	})
	g.Go(func() error {
		status.HasActiveSubscription = s.check(ctx, model.RequirementActiveSubscription, func(ctx context.Context) (bool, error) {
			return s.subscriptions.IsActive(ctx, org.ID)
		})
		return nil
	})
	_ = g.Wait()

	status.MissingRequirements = missingRequirements(status)
	sc.SetAttributes(
		attribute.Int64("organization.id", org.ID),
		attribute.Bool("completeness.complete", status.Complete()),
	)
	return status
}

type checkResult struct {
	ok  bool
	err error
}

// check bounds fn by the configured timeout and degrades errors, panics and
// timeouts to false.
func (s *completenessService) check(ctx context.Context, req model.Requirement, fn func(context.Context) (bool, error)) bool {
	sc := logger.StartSpan(ctx, "completeness.check")
	defer sc.End()
	sc.SetAttributes(attribute.String("completeness.requirement", string(req)))

	ctx, cancel := context.WithTimeout(sc.Context(), s.timeout)
	defer cancel()

	done := make(chan checkResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- checkResult{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		ok, err := fn(ctx)
		done <- checkResult{ok: ok, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			sc.RecordError(res.err)
			slog.WarnContext(ctx, "completeness check failed, treating as unmet",
				"requirement", req,
				"error", res.err)
			return false
		}
		return res.ok
	case <-ctx.Done():
		sc.RecordError(ctx.Err())
		slog.WarnContext(ctx, "completeness check timed out, treating as unmet",
			"requirement", req,
			"timeout", s.timeout)
		return false
	}
}

func (s *completenessService) publishChange(ctx context.Context, orgID int64, status model.CompletenessStatus) {
	if s.events == nil {
		return
	}

	missing := make([]string, len(status.MissingRequirements))
	for i, r := range status.MissingRequirements {
		missing[i] = string(r)
	}

	if err := s.events.PublishVisibilityChanged(ctx, queue.VisibilityChanged{
		OrganizationID:      orgID,
		IsPubliclyActive:    status.IsPubliclyActive,
		MissingRequirements: missing,
		OccurredAt:          time.Now(),
	}); err != nil {
		slog.WarnContext(ctx, "failed to publish visibility change", "error", err)
	}
}

func coversRequiredPages(published []model.PageType) bool {
	have := make(map[model.PageType]struct{}, len(published))
	for _, pt := range published {
		have[pt] = struct{}{}
	}
	for _, required := range model.RequiredPageTypes {
		if _, ok := have[required]; !ok {
			return false
		}
	}
	return true
}

func missingRequirements(status model.CompletenessStatus) []model.Requirement {
	met := map[model.Requirement]bool{
		model.RequirementPaymentAccount:     status.StripeAccountVerified,
		model.RequirementRequiredPages:      status.RequiredPagesPublished,
		model.RequirementActiveSubscription: status.HasActiveSubscription,
	}
	missing := []model.Requirement{}
	for _, r := range model.Requirements {
		if !met[r] {
			missing = append(missing, r)
		}
	}
	return missing
}
