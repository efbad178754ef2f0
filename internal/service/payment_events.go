package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"givebase.app/crm/internal/payment"
	"givebase.app/crm/internal/queue"
	"givebase.app/crm/internal/store"
)

// RecheckEnqueuer schedules an asynchronous completeness evaluation.
type RecheckEnqueuer interface {
	EnqueueRecheck(ctx context.Context, msg queue.RecheckMessage) error
}

type PaymentEventService interface {
	// HandleEvent reacts to a verified Stripe webhook event. It reports whether a
	// recheck was scheduled.
	HandleEvent(ctx context.Context, evt *payment.Event) (bool, error)
}

type paymentEventService struct {
	orgStore store.OrganizationStore
	rechecks RecheckEnqueuer
}

func NewPaymentEventService(orgStore store.OrganizationStore, rechecks RecheckEnqueuer) PaymentEventService {
	return &paymentEventService{orgStore: orgStore, rechecks: rechecks}
}

func (s *paymentEventService) HandleEvent(ctx context.Context, evt *payment.Event) (bool, error) {
	if !evt.AffectsVerification() {
		slog.DebugContext(ctx, "ignoring stripe event", "event_id", evt.ID, "event_type", evt.Type)
		return false, nil
	}

	org, err := s.orgStore.GetByStripeAccount(ctx, evt.AccountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "stripe event for unknown account", "event_id", evt.ID, "stripe_account_id", evt.AccountID)
			return false, nil
		}
		return false, fmt.Errorf("finding organization for stripe account: %w", err)
	}

	if err := s.rechecks.EnqueueRecheck(ctx, queue.RecheckMessage{
		OrganizationID: org.ID,
		Reason:         queue.ReasonPaymentAccountUpdated,
	}); err != nil {
		return false, fmt.Errorf("enqueueing completeness recheck: %w", err)
	}
	return true, nil
}
