package reconcile

import (
	"fmt"
	"strings"

	"givebase.app/crm/internal/model"
)

// FieldError reports an invalid entry in a desired question list.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// QuestionPlan is the set of writes that makes a campaign's questions match a desired list.
// Created questions carry no ID or campaign; the caller assigns both.
type QuestionPlan struct {
	Create    []model.Question
	Update    []model.Question
	Delete    []int64
	Unchanged int
}

// Total is the number of questions the campaign holds once the plan is applied.
func (p QuestionPlan) Total() int {
	return len(p.Create) + len(p.Update) + p.Unchanged
}

// Questions plans the reconciliation of current against desired. Entries with an
// ID are merged into the matching current question; omitted fields keep their
// stored values. Entries without an ID are created. Current questions not named
// by any entry are deleted. Matched questions whose merged content is identical
// to the stored row are left untouched.
func Questions(current []model.Question, desired []model.QuestionInput) (QuestionPlan, error) {
	byID := make(map[int64]model.Question, len(current))
	for _, q := range current {
		byID[q.ID] = q
	}

	var plan QuestionPlan
	matched := make(map[int64]struct{}, len(desired))

	for i, in := range desired {
		if in.ID == nil {
			q, err := newQuestion(i, in)
			if err != nil {
				return QuestionPlan{}, err
			}
			plan.Create = append(plan.Create, q)
			continue
		}

		cur, ok := byID[*in.ID]
		if !ok {
			return QuestionPlan{}, &FieldError{
				Field:   field(i, "id"),
				Message: fmt.Sprintf("question %d does not belong to this campaign", *in.ID),
			}
		}
		if _, dup := matched[*in.ID]; dup {
			return QuestionPlan{}, &FieldError{
				Field:   field(i, "id"),
				Message: fmt.Sprintf("question %d appears more than once", *in.ID),
			}
		}
		matched[*in.ID] = struct{}{}

		merged, err := mergeQuestion(i, cur, in)
		if err != nil {
			return QuestionPlan{}, err
		}
		if merged.SameContent(canonical(cur)) {
			plan.Unchanged++
			continue
		}
		plan.Update = append(plan.Update, merged)
	}

	for _, q := range current {
		if _, ok := matched[q.ID]; !ok {
			plan.Delete = append(plan.Delete, q.ID)
		}
	}

	return plan, nil
}

func newQuestion(i int, in model.QuestionInput) (model.Question, error) {
	if in.Text == nil || strings.TrimSpace(*in.Text) == "" {
		return model.Question{}, &FieldError{Field: field(i, "question_text"), Message: "is required"}
	}
	if in.Type == nil {
		return model.Question{}, &FieldError{Field: field(i, "question_type"), Message: "is required"}
	}
	if !in.Type.Valid() {
		return model.Question{}, &FieldError{
			Field:   field(i, "question_type"),
			Message: fmt.Sprintf("unsupported question type %q", *in.Type),
		}
	}

	_, options, err := model.DecodeQuestionOptions(*in.Type, in.Options)
	if err != nil {
		return model.Question{}, &FieldError{Field: field(i, "options"), Message: err.Error()}
	}

	q := model.Question{
		Text:    strings.TrimSpace(*in.Text),
		Type:    *in.Type,
		Options: options,
	}
	if in.IsRequired != nil {
		q.IsRequired = *in.IsRequired
	}
	if in.DisplayOrder != nil {
		q.DisplayOrder = *in.DisplayOrder
	}
	return q, nil
}

func mergeQuestion(i int, cur model.Question, in model.QuestionInput) (model.Question, error) {
	merged := cur

	if in.Text != nil {
		text := strings.TrimSpace(*in.Text)
		if text == "" {
			return model.Question{}, &FieldError{Field: field(i, "question_text"), Message: "must not be blank"}
		}
		merged.Text = text
	}

	typeChanged := false
	if in.Type != nil {
		if !in.Type.Valid() {
			return model.Question{}, &FieldError{
				Field:   field(i, "question_type"),
				Message: fmt.Sprintf("unsupported question type %q", *in.Type),
			}
		}
		typeChanged = *in.Type != cur.Type
		merged.Type = *in.Type
	}

	rawOptions := cur.Options
	switch {
	case len(in.Options) > 0:
		rawOptions = in.Options
	case typeChanged:
		// Stored options carry over only when they are valid for the new type.
		if _, _, err := model.DecodeQuestionOptions(merged.Type, cur.Options); err != nil {
			rawOptions = nil
		}
	}
	_, options, err := model.DecodeQuestionOptions(merged.Type, rawOptions)
	if err != nil {
		return model.Question{}, &FieldError{Field: field(i, "options"), Message: err.Error()}
	}
	merged.Options = options

	if in.IsRequired != nil {
		merged.IsRequired = *in.IsRequired
	}
	if in.DisplayOrder != nil {
		merged.DisplayOrder = *in.DisplayOrder
	}
	return merged, nil
}

// canonical re-encodes stored options so that formatting differences introduced
// by the database do not count as changes.
func canonical(q model.Question) model.Question {
	if _, options, err := model.DecodeQuestionOptions(q.Type, q.Options); err == nil {
		q.Options = options
	}
	return q
}

func field(i int, name string) string {
	return fmt.Sprintf("questions[%d].%s", i, name)
}
