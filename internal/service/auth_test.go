package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"givebase.app/crm/core/config"
	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/service"
	"givebase.app/crm/internal/store"
)

var _ = Describe("AuthService", func() {
	var (
		ctx      context.Context
		identity *mockIdentityProvider
		staff    *mockStaffStore
		tokens   *mockTokenIssuer
		svc      service.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		identity = &mockIdentityProvider{
			authenticateFn: func(_ context.Context, opts usermanagement.AuthenticateWithCodeOpts) (usermanagement.AuthenticateResponse, error) {
				if opts.Code != "good-code" {
					return usermanagement.AuthenticateResponse{}, errors.New("invalid_grant")
				}
				return usermanagement.AuthenticateResponse{
					User: usermanagement.User{ID: "user_01", Email: "Ana@Example.org"},
				}, nil
			},
		}
		staff = &mockStaffStore{
			getByOrgAndEmailFn: func(_ context.Context, orgID int64, email string) (*model.StaffMember, error) {
				if orgID != 42 || email != "ana@example.org" {
					return nil, store.ErrNotFound
				}
				return &model.StaffMember{ID: 5, OrganizationID: 42, Email: email, Role: model.RoleEditor}, nil
			},
		}
		tokens = &mockTokenIssuer{}
		svc = service.NewAuthService(identity, staff, tokens, config.WorkOSConfig{
			ClientID:    "client_123",
			RedirectURI: "https://app.example.test/auth/callback",
		})
	})

	It("builds an authorization URL carrying the state", func() {
		u, err := svc.GetAuthorizationURL("abc.helping-hands")
		Expect(err).NotTo(HaveOccurred())
		Expect(u).To(ContainSubstring("state=abc.helping-hands"))
		Expect(identity.lastURLOpts.ClientID).To(Equal("client_123"))
		Expect(identity.lastURLOpts.RedirectURI).To(Equal("https://app.example.test/auth/callback"))
	})

	It("signs a session for a staff member and links the identity", func() {
		result, err := svc.HandleCallback(ctx, 42, "good-code")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Token).To(Equal("signed-token"))
		Expect(result.Staff.ID).To(Equal(int64(5)))
		Expect(*result.Staff.WorkOSUserID).To(Equal("user_01"))
		Expect(staff.linkCalls).To(Equal(1))
		Expect(tokens.issued).To(HaveLen(1))
	})

	It("skips linking when the identity is already linked", func() {
		staff.getByOrgAndEmailFn = func(_ context.Context, _ int64, email string) (*model.StaffMember, error) {
			return &model.StaffMember{ID: 5, OrganizationID: 42, Email: email, Role: model.RoleOwner, WorkOSUserID: strPtr("user_01")}, nil
		}

		_, err := svc.HandleCallback(ctx, 42, "good-code")
		Expect(err).NotTo(HaveOccurred())
		Expect(staff.linkCalls).To(BeZero())
	})

	It("rejects a bad code", func() {
		_, err := svc.HandleCallback(ctx, 42, "bad-code")
		Expect(err).To(MatchError(service.ErrInvalidCode))
		Expect(tokens.issued).To(BeEmpty())
	})

	It("rejects users who are not staff of the organization", func() {
		_, err := svc.HandleCallback(ctx, 7, "good-code")
		Expect(err).To(MatchError(service.ErrNotStaff))
		Expect(tokens.issued).To(BeEmpty())
	})

	It("fails when linking fails", func() {
		staff.linkWorkOSUserFn = func(context.Context, int64, string) error { return errors.New("constraint") }

		_, err := svc.HandleCallback(ctx, 42, "good-code")
		Expect(err).To(HaveOccurred())
		Expect(tokens.issued).To(BeEmpty())
	})
})
