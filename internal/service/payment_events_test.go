package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stripe/stripe-go/v82"

	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/payment"
	"givebase.app/crm/internal/queue"
	"givebase.app/crm/internal/service"
	"givebase.app/crm/internal/store"
)

var _ = Describe("PaymentEventService", func() {
	var (
		ctx      context.Context
		mockOrg  *mockOrganizationStore
		rechecks *mockRecheckEnqueuer
		svc      service.PaymentEventService
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockOrg = &mockOrganizationStore{
			getByStripeAccountFn: func(_ context.Context, accountID string) (*model.Organization, error) {
				if accountID != "acct_123" {
					return nil, store.ErrNotFound
				}
				return &model.Organization{ID: 42, StripeAccountID: strPtr(accountID)}, nil
			},
		}
		rechecks = &mockRecheckEnqueuer{}
		svc = service.NewPaymentEventService(mockOrg, rechecks)
	})

	It("schedules a recheck for an account update", func() {
		scheduled, err := svc.HandleEvent(ctx, &payment.Event{ID: "evt_1", Type: stripe.EventTypeAccountUpdated, AccountID: "acct_123"})
		Expect(err).NotTo(HaveOccurred())
		Expect(scheduled).To(BeTrue())
		Expect(rechecks.messages).To(Equal([]queue.RecheckMessage{{
			OrganizationID: 42,
			Reason:         queue.ReasonPaymentAccountUpdated,
		}}))
	})

	It("ignores unrelated event types", func() {
		scheduled, err := svc.HandleEvent(ctx, &payment.Event{ID: "evt_2", Type: stripe.EventTypeChargeSucceeded, AccountID: "acct_123"})
		Expect(err).NotTo(HaveOccurred())
		Expect(scheduled).To(BeFalse())
		Expect(rechecks.messages).To(BeEmpty())
	})

	It("ignores accounts no organization owns", func() {
		scheduled, err := svc.HandleEvent(ctx, &payment.Event{ID: "evt_3", Type: stripe.EventTypeAccountUpdated, AccountID: "acct_unknown"})
		Expect(err).NotTo(HaveOccurred())
		Expect(scheduled).To(BeFalse())
	})

	It("fails when the recheck cannot be enqueued", func() {
		rechecks.err = errors.New("redis down")

		_, err := svc.HandleEvent(ctx, &payment.Event{ID: "evt_4", Type: stripe.EventTypeAccountUpdated, AccountID: "acct_123"})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("redis down"))
	})
})
