package reconcile_test

import (
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/reconcile"
)

func ptr[T any](v T) *T { return &v }

var _ = Describe("Questions", func() {
	var current []model.Question

	BeforeEach(func() {
		current = []model.Question{
			{ID: 1, CampaignID: 9, Text: "In honor of", Type: model.QuestionTypeShortText, Options: json.RawMessage(`{}`), DisplayOrder: 0},
			{ID: 2, CampaignID: 9, Text: "Frequency", Type: model.QuestionTypeSingleSelect, Options: json.RawMessage(`{"choices": ["Once", "Monthly"]}`), IsRequired: true, DisplayOrder: 1},
			{ID: 3, CampaignID: 9, Text: "Subscribe", Type: model.QuestionTypeCheckbox, Options: json.RawMessage(`{}`), DisplayOrder: 2},
		}
	})

	It("creates, updates and deletes in one plan", func() {
		plan, err := reconcile.Questions(current, []model.QuestionInput{
			{ID: ptr(int64(1)), Text: ptr("In memory of")},
			{ID: ptr(int64(2))},
			{Text: ptr("Employer"), Type: ptr(model.QuestionTypeShortText)},
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(plan.Create).To(HaveLen(1))
		Expect(plan.Create[0].Text).To(Equal("Employer"))
		Expect(plan.Create[0].DisplayOrder).To(BeZero())
		Expect(plan.Create[0].IsRequired).To(BeFalse())
		Expect(string(plan.Create[0].Options)).To(Equal("{}"))

		Expect(plan.Update).To(HaveLen(1))
		Expect(plan.Update[0].ID).To(Equal(int64(1)))
		Expect(plan.Update[0].Text).To(Equal("In memory of"))

		Expect(plan.Unchanged).To(Equal(1))
		Expect(plan.Delete).To(Equal([]int64{3}))
		Expect(plan.Total()).To(Equal(3))
	})

	It("keeps stored values for omitted fields", func() {
		plan, err := reconcile.Questions(current, []model.QuestionInput{
			{ID: ptr(int64(2)), DisplayOrder: ptr(int32(5))},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(plan.Update).To(HaveLen(1))

		q := plan.Update[0]
		Expect(q.Text).To(Equal("Frequency"))
		Expect(q.IsRequired).To(BeTrue())
		Expect(q.DisplayOrder).To(Equal(int32(5)))
		Expect(string(q.Options)).To(Equal(`{"choices":["Once","Monthly"]}`))
	})

	It("ignores formatting differences in stored options", func() {
		plan, err := reconcile.Questions(current, []model.QuestionInput{
			{ID: ptr(int64(1))}, {ID: ptr(int64(2))}, {ID: ptr(int64(3))},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(plan.Update).To(BeEmpty())
		Expect(plan.Create).To(BeEmpty())
		Expect(plan.Delete).To(BeEmpty())
		Expect(plan.Unchanged).To(Equal(3))
	})

	It("drops stale options when the type changes without new options", func() {
		plan, err := reconcile.Questions(current, []model.QuestionInput{
			{ID: ptr(int64(2)), Type: ptr(model.QuestionTypeLongText)},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(plan.Update).To(HaveLen(1))
		Expect(plan.Update[0].Type).To(Equal(model.QuestionTypeLongText))
		Expect(string(plan.Update[0].Options)).To(Equal("{}"))
	})

	It("keeps stored choices when switching between select types", func() {
		plan, err := reconcile.Questions(current, []model.QuestionInput{
			{ID: ptr(int64(2)), Type: ptr(model.QuestionTypeMultiSelect)},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(plan.Update).To(HaveLen(1))
		Expect(plan.Update[0].Type).To(Equal(model.QuestionTypeMultiSelect))
		Expect(string(plan.Update[0].Options)).To(Equal(`{"choices":["Once","Monthly"]}`))
	})

	It("keeps stored text options when switching between text types", func() {
		current[0].Options = json.RawMessage(`{"placeholder": "Name", "max_length": 80}`)
		plan, err := reconcile.Questions(current, []model.QuestionInput{
			{ID: ptr(int64(1)), Type: ptr(model.QuestionTypeLongText)},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(plan.Update).To(HaveLen(1))
		Expect(string(plan.Update[0].Options)).To(Equal(`{"placeholder":"Name","max_length":80}`))
	})

	It("deletes every question for an empty desired list", func() {
		plan, err := reconcile.Questions(current, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(plan.Delete).To(Equal([]int64{1, 2, 3}))
		Expect(plan.Total()).To(BeZero())
	})

	DescribeTable("rejects invalid entries",
		func(in model.QuestionInput, field string) {
			_, err := reconcile.Questions(current, []model.QuestionInput{in})
			var fe *reconcile.FieldError
			Expect(errors.As(err, &fe)).To(BeTrue())
			Expect(fe.Field).To(Equal(field))
		},
		Entry("create without text", model.QuestionInput{Type: ptr(model.QuestionTypeCheckbox)}, "questions[0].question_text"),
		Entry("create with blank text", model.QuestionInput{Text: ptr("  "), Type: ptr(model.QuestionTypeCheckbox)}, "questions[0].question_text"),
		Entry("create without type", model.QuestionInput{Text: ptr("Note")}, "questions[0].question_type"),
		Entry("unknown type", model.QuestionInput{Text: ptr("Note"), Type: ptr(model.QuestionType("rating"))}, "questions[0].question_type"),
		Entry("select without choices", model.QuestionInput{Text: ptr("Pick"), Type: ptr(model.QuestionTypeMultiSelect)}, "questions[0].options"),
		Entry("foreign id", model.QuestionInput{ID: ptr(int64(99))}, "questions[0].id"),
		Entry("blank text on update", model.QuestionInput{ID: ptr(int64(1)), Text: ptr("")}, "questions[0].question_text"),
	)

	It("rejects an id listed twice", func() {
		_, err := reconcile.Questions(current, []model.QuestionInput{
			{ID: ptr(int64(1))},
			{ID: ptr(int64(1)), Text: ptr("Again")},
		})
		var fe *reconcile.FieldError
		Expect(errors.As(err, &fe)).To(BeTrue())
		Expect(fe.Field).To(Equal("questions[1].id"))
		Expect(fe.Message).To(ContainSubstring("more than once"))
	})
})
