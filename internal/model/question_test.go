package model_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"givebase.app/crm/internal/model"
)

var _ = Describe("DecodeQuestionOptions", func() {
	It("defaults text options to an empty object", func() {
		opts, raw, err := model.DecodeQuestionOptions(model.QuestionTypeShortText, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(opts).To(Equal(model.TextOptions{}))
		Expect(string(raw)).To(Equal("{}"))
	})

	It("parses text options", func() {
		opts, raw, err := model.DecodeQuestionOptions(model.QuestionTypeLongText,
			json.RawMessage(`{"placeholder":"Tell us more","max_length":500}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(opts).To(Equal(model.TextOptions{Placeholder: "Tell us more", MaxLength: 500}))
		Expect(string(raw)).To(Equal(`{"placeholder":"Tell us more","max_length":500}`))
	})

	It("rejects unknown fields", func() {
		_, _, err := model.DecodeQuestionOptions(model.QuestionTypeShortText, json.RawMessage(`{"choices":["a"]}`))
		Expect(err).To(HaveOccurred())
	})

	It("rejects a negative max length", func() {
		_, _, err := model.DecodeQuestionOptions(model.QuestionTypeShortText, json.RawMessage(`{"max_length":-1}`))
		Expect(err).To(MatchError(ContainSubstring("max_length")))
	})

	It("trims choices for select questions", func() {
		opts, raw, err := model.DecodeQuestionOptions(model.QuestionTypeSingleSelect,
			json.RawMessage(`{"choices":[" Monthly ","Once"]}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(opts).To(Equal(model.ChoiceOptions{Choices: []string{"Monthly", "Once"}}))
		Expect(string(raw)).To(Equal(`{"choices":["Monthly","Once"]}`))
	})

	It("requires at least one choice", func() {
		_, _, err := model.DecodeQuestionOptions(model.QuestionTypeMultiSelect, nil)
		Expect(err).To(MatchError(ContainSubstring("at least one choice")))

		_, _, err = model.DecodeQuestionOptions(model.QuestionTypeMultiSelect, json.RawMessage(`{"choices":[]}`))
		Expect(err).To(MatchError(ContainSubstring("at least one choice")))
	})

	It("rejects duplicate and blank choices", func() {
		_, _, err := model.DecodeQuestionOptions(model.QuestionTypeSingleSelect, json.RawMessage(`{"choices":["a","a"]}`))
		Expect(err).To(MatchError(ContainSubstring("duplicate")))

		_, _, err = model.DecodeQuestionOptions(model.QuestionTypeSingleSelect, json.RawMessage(`{"choices":["a"," "]}`))
		Expect(err).To(MatchError(ContainSubstring("blank")))
	})

	It("accepts no options for checkbox questions", func() {
		opts, raw, err := model.DecodeQuestionOptions(model.QuestionTypeCheckbox, json.RawMessage(`null`))
		Expect(err).NotTo(HaveOccurred())
		Expect(opts).To(Equal(model.CheckboxOptions{}))
		Expect(string(raw)).To(Equal("{}"))
	})

	It("rejects options on checkbox questions", func() {
		_, _, err := model.DecodeQuestionOptions(model.QuestionTypeCheckbox, json.RawMessage(`{"placeholder":"x"}`))
		Expect(err).To(MatchError("checkbox questions take no options"))
	})

	It("rejects unknown question types", func() {
		_, _, err := model.DecodeQuestionOptions(model.QuestionType("rating"), nil)
		Expect(err).To(MatchError(ContainSubstring("unsupported question type")))
	})
})

var _ = Describe("ParsePageType", func() {
	It("normalises case and whitespace", func() {
		pt, ok := model.ParsePageType(" About ")
		Expect(ok).To(BeTrue())
		Expect(pt).To(Equal(model.PageTypeAbout))
	})

	It("rejects unknown slugs", func() {
		_, ok := model.ParsePageType("blog")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Role", func() {
	It("orders roles by privilege", func() {
		Expect(model.RoleOwner.AtLeast(model.RoleAdmin)).To(BeTrue())
		Expect(model.RoleAdmin.AtLeast(model.RoleAdmin)).To(BeTrue())
		Expect(model.RoleEditor.AtLeast(model.RoleAdmin)).To(BeFalse())
		Expect(model.RoleViewer.AtLeast(model.RoleEditor)).To(BeFalse())
	})

	It("grants nothing to unknown roles", func() {
		Expect(model.Role("guest").AtLeast(model.RoleViewer)).To(BeFalse())
	})
})
