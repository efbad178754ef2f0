package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"givebase.app/crm/core/config"
	"givebase.app/crm/internal/payment"
)

var _ = Describe("Provider", func() {
	var (
		server   *httptest.Server
		response string
		status   int
		path     string
		provider *payment.Provider
	)

	BeforeEach(func() {
		status = http.StatusOK
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(response))
		}))
		provider = payment.NewProvider(config.StripeConfig{SecretKey: "sk_test_123", APIBaseURL: server.URL})
	})

	AfterEach(func() {
		server.Close()
	})

	It("reports a fully onboarded account as verified", func() {
		response = `{"id":"acct_1","object":"account","details_submitted":true,"charges_enabled":true,"payouts_enabled":true}`

		ok, err := provider.IsAccountVerified(context.Background(), "acct_1")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(path).To(Equal("/v1/accounts/acct_1"))
	})

	It("reports an account with payouts disabled as unverified", func() {
		response = `{"id":"acct_1","object":"account","details_submitted":true,"charges_enabled":true,"payouts_enabled":false}`

		ok, err := provider.IsAccountVerified(context.Background(), "acct_1")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("returns an error when Stripe fails", func() {
		status = http.StatusInternalServerError
		response = `{"error":{"type":"api_error","message":"boom"}}`

		ok, err := provider.IsAccountVerified(context.Background(), "acct_1")
		Expect(err).To(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("honours context cancellation", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
		defer cancel()
		time.Sleep(time.Millisecond)

		_, err := provider.IsAccountVerified(ctx, "acct_1")
		Expect(err).To(HaveOccurred())
	})
})
