package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"givebase.app/crm/internal/store"
)

// SubscriptionChecker reports whether an organization's platform subscription is current.
type SubscriptionChecker interface {
	IsActive(ctx context.Context, orgID int64) (bool, error)
}

type storeSubscriptionChecker struct {
	subscriptions store.SubscriptionStore
	now           func() time.Time
}

// NewSubscriptionChecker reads the latest subscription row. An organization
// without one is inactive.
func NewSubscriptionChecker(subscriptions store.SubscriptionStore) SubscriptionChecker {
	return &storeSubscriptionChecker{subscriptions: subscriptions, now: time.Now}
}

func (c *storeSubscriptionChecker) IsActive(ctx context.Context, orgID int64) (bool, error) {
	sub, err := c.subscriptions.GetLatest(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("getting subscription: %w", err)
	}
	return sub.ActiveAt(c.now()), nil
}
