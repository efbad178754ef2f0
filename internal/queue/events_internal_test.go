package queue

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("visibilityValues", func() {
	It("flattens the event into stream fields", func() {
		at := time.Date(2026, 4, 2, 10, 30, 0, 0, time.FixedZone("EST", -5*3600))
		values := visibilityValues(VisibilityChanged{
			OrganizationID:      42,
			IsPubliclyActive:    false,
			MissingRequirements: []string{"payment_account_verification", "required_pages"},
		}, at)

		Expect(values).To(HaveKeyWithValue("event_type", EventTypeVisibilityChanged))
		Expect(values).To(HaveKeyWithValue("organization_id", int64(42)))
		Expect(values).To(HaveKeyWithValue("missing_requirements", "payment_account_verification,required_pages"))
		Expect(values).To(HaveKeyWithValue("occurred_at", "2026-04-02T15:30:00Z"))
	})
})
