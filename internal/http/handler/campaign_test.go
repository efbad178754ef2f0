package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"givebase.app/crm/internal/http/handler"
	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/service"
)

var _ = Describe("CampaignHandler", func() {
	var (
		router *gin.Engine
		svc    *mockCampaignService
	)

	BeforeEach(func() {
		router = newTenantRouter()
		svc = &mockCampaignService{}
		h := handler.NewCampaignHandler(svc)
		router.PUT("/campaigns/:campaign_id/designations", h.ReconcileDesignations)
		router.PUT("/campaigns/:campaign_id/questions", h.ReconcileQuestions)
		router.GET("/public/campaigns/:campaign_id", h.PublicCampaign)
	})

	Describe("ReconcileDesignations", func() {
		It("passes the tenant, campaign and desired ids through", func() {
			svc.reconcileDesignationsFn = func(_ context.Context, orgID, campaignID int64, ids []int64) (*model.DesignationSyncResult, error) {
				Expect(orgID).To(Equal(int64(42)))
				Expect(campaignID).To(Equal(int64(100)))
				Expect(ids).To(Equal([]int64{2, 3, 1234567890123456789}))
				return &model.DesignationSyncResult{Added: 2, Removed: 1, Total: 3}, nil
			}

			w := do(router, http.MethodPut, "/campaigns/100/designations", `{"designation_ids":[2,"3","1234567890123456789"]}`)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)).To(Equal(map[string]any{"added": 2.0, "removed": 1.0, "total": 3.0}))
		})

		It("accepts an empty list", func() {
			svc.reconcileDesignationsFn = func(_ context.Context, _, _ int64, ids []int64) (*model.DesignationSyncResult, error) {
				Expect(ids).To(BeEmpty())
				return &model.DesignationSyncResult{Removed: 2}, nil
			}

			w := do(router, http.MethodPut, "/campaigns/100/designations", `{"designation_ids":[]}`)
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("rejects a missing list", func() {
			w := do(router, http.MethodPut, "/campaigns/100/designations", `{}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects malformed ids", func() {
			w := do(router, http.MethodPut, "/campaigns/100/designations", `{"designation_ids":["abc"]}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects a malformed campaign id", func() {
			w := do(router, http.MethodPut, "/campaigns/abc/designations", `{"designation_ids":[]}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for a campaign outside the tenant", func() {
			svc.reconcileDesignationsFn = func(context.Context, int64, int64, []int64) (*model.DesignationSyncResult, error) {
				return nil, service.ErrCampaignNotFound
			}

			w := do(router, http.MethodPut, "/campaigns/100/designations", `{"designation_ids":[1]}`)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decode(w)["error"]).To(Equal("campaign not found"))
		})

		It("returns 400 with the field for foreign designations", func() {
			svc.reconcileDesignationsFn = func(context.Context, int64, int64, []int64) (*model.DesignationSyncResult, error) {
				return nil, &service.ValidationError{Field: "designation_ids", Message: "unknown designations: 9"}
			}

			w := do(router, http.MethodPut, "/campaigns/100/designations", `{"designation_ids":[9]}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["field"]).To(Equal("designation_ids"))
		})
	})

	Describe("ReconcileQuestions", func() {
		It("decodes question inputs with string ids", func() {
			svc.reconcileQuestionsFn = func(_ context.Context, _, _ int64, desired []model.QuestionInput) (*model.QuestionSyncResult, error) {
				Expect(desired).To(HaveLen(2))
				Expect(*desired[0].ID).To(Equal(int64(11)))
				Expect(*desired[0].IsRequired).To(BeTrue())
				Expect(desired[1].ID).To(BeNil())
				Expect(*desired[1].Type).To(Equal(model.QuestionTypeSingleSelect))
				Expect(string(desired[1].Options)).To(MatchJSON(`{"choices":["Yes","No"]}`))
				return &model.QuestionSyncResult{Added: 1, Updated: 1, Total: 2}, nil
			}

			w := do(router, http.MethodPut, "/campaigns/100/questions", `{"questions":[
				{"id":"11","is_required":true},
				{"question_text":"Gift Aid?","question_type":"single_select","options":{"choices":["Yes","No"]}}
			]}`)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["updated"]).To(Equal(1.0))
		})

		It("reports the offending question field", func() {
			svc.reconcileQuestionsFn = func(context.Context, int64, int64, []model.QuestionInput) (*model.QuestionSyncResult, error) {
				return nil, &service.ValidationError{Field: "questions[0].options", Message: "at least one choice is required"}
			}

			w := do(router, http.MethodPut, "/campaigns/100/questions", `{"questions":[{"question_text":"x","question_type":"single_select"}]}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(w)["field"]).To(Equal("questions[0].options"))
		})

		It("hides internal errors", func() {
			svc.reconcileQuestionsFn = func(context.Context, int64, int64, []model.QuestionInput) (*model.QuestionSyncResult, error) {
				return nil, context.DeadlineExceeded
			}

			w := do(router, http.MethodPut, "/campaigns/100/questions", `{"questions":[]}`)
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(decode(w)["error"]).To(Equal("failed to update campaign questions"))
		})
	})

	It("serves a published campaign publicly", func() {
		svc.getPublicCampaignFn = func(_ context.Context, orgID, campaignID int64) (*model.PublicCampaign, error) {
			return &model.PublicCampaign{Campaign: model.Campaign{ID: campaignID, OrganizationID: orgID, Name: "Spring Appeal", IsActive: true}}, nil
		}

		w := do(router, http.MethodGet, "/public/campaigns/100", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		campaign := decode(w)["campaign"].(map[string]any)
		Expect(campaign["id"]).To(Equal("100"))
		Expect(campaign["organization_id"]).To(Equal("42"))
	})
})
