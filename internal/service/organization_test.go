package service_test

import (
	"context"
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/service"
	"givebase.app/crm/internal/store"
)

var _ = Describe("OrganizationService", func() {
	var (
		ctx     context.Context
		mockOrg *mockOrganizationStore
		svc     service.OrganizationService
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockOrg = &mockOrganizationStore{}
		svc = service.NewOrganizationService(mockOrg)
	})

	It("resolves a slug case-insensitively", func() {
		mockOrg.getBySlugFn = func(_ context.Context, slug string) (*model.Organization, error) {
			Expect(slug).To(Equal("helping-hands"))
			return &model.Organization{ID: 42, Slug: slug}, nil
		}

		org, err := svc.Resolve(ctx, " Helping-Hands ")
		Expect(err).NotTo(HaveOccurred())
		Expect(org.ID).To(Equal(int64(42)))
	})

	It("treats an empty slug as not found", func() {
		_, err := svc.Resolve(ctx, "  ")
		Expect(err).To(MatchError(service.ErrOrganizationNotFound))
	})

	It("maps a missing organization to not found", func() {
		_, err := svc.GetByID(ctx, 1)
		Expect(err).To(MatchError(service.ErrOrganizationNotFound))
	})

	It("wraps unexpected store errors", func() {
		mockOrg.getByIDFn = func(context.Context, int64) (*model.Organization, error) {
			return nil, errors.New("pool exhausted")
		}
		_, err := svc.GetByID(ctx, 1)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, service.ErrNotFound)).To(BeFalse())
	})

	Describe("UpdateProfile", func() {
		It("trims the name and never touches visibility", func() {
			mockOrg.updateProfileFn = func(_ context.Context, id int64, profile model.OrganizationProfile) (*model.Organization, error) {
				Expect(profile.Name).To(Equal("Helping Hands"))
				return &model.Organization{ID: id, Name: profile.Name}, nil
			}

			org, err := svc.UpdateProfile(ctx, 42, model.OrganizationProfile{Name: "  Helping Hands "})
			Expect(err).NotTo(HaveOccurred())
			Expect(org.Name).To(Equal("Helping Hands"))
			Expect(mockOrg.activeCalls).To(BeEmpty())
		})

		It("requires a name", func() {
			_, err := svc.UpdateProfile(ctx, 42, model.OrganizationProfile{Name: " "})
			var validation *service.ValidationError
			Expect(errors.As(err, &validation)).To(BeTrue())
			Expect(validation.Field).To(Equal("name"))
		})

		It("requires settings to be an object", func() {
			_, err := svc.UpdateProfile(ctx, 42, model.OrganizationProfile{Name: "A", Settings: json.RawMessage(`42`)})
			var validation *service.ValidationError
			Expect(errors.As(err, &validation)).To(BeTrue())
			Expect(validation.Field).To(Equal("settings"))
		})

		It("maps a missing organization to not found", func() {
			mockOrg.updateProfileFn = func(context.Context, int64, model.OrganizationProfile) (*model.Organization, error) {
				return nil, store.ErrNotFound
			}
			_, err := svc.UpdateProfile(ctx, 42, model.OrganizationProfile{Name: "A"})
			Expect(err).To(MatchError(service.ErrOrganizationNotFound))
		})
	})

	Describe("GetPublicSite", func() {
		It("returns a publicly active organization", func() {
			mockOrg.getByIDFn = func(context.Context, int64) (*model.Organization, error) {
				return &model.Organization{ID: 42, IsPubliclyActive: true}, nil
			}
			org, err := svc.GetPublicSite(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(org.ID).To(Equal(int64(42)))
		})

		It("hides an organization that is not publicly active", func() {
			mockOrg.getByIDFn = func(context.Context, int64) (*model.Organization, error) {
				return &model.Organization{ID: 42}, nil
			}
			_, err := svc.GetPublicSite(ctx, 42)
			Expect(err).To(MatchError(service.ErrOrganizationNotFound))
		})
	})
})
